package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	computekeeper "github.com/arcanum-chain/arcanum/x/compute/keeper"
	computetypes "github.com/arcanum-chain/arcanum/x/compute/types"
	escrowkeeper "github.com/arcanum-chain/arcanum/x/escrow/keeper"
	escrowtypes "github.com/arcanum-chain/arcanum/x/escrow/types"
	teekeeper "github.com/arcanum-chain/arcanum/x/tee/keeper"
	teetypes "github.com/arcanum-chain/arcanum/x/tee/types"
)

// ComputeFixture bundles the keepers the compute flow spans.
type ComputeFixture struct {
	Compute *computekeeper.Keeper
	Escrow  *escrowkeeper.Keeper
	Tee     *teekeeper.Keeper
	Bank    bankkeeper.Keeper
	Ctx     sdk.Context
}

// ComputeKeeper creates a full compute test fixture: compute, escrow and
// tee keepers over one in-memory multistore with a real bank keeper.
func ComputeKeeper(t testing.TB) ComputeFixture {
	computeStoreKey := storetypes.NewKVStoreKey(computetypes.StoreKey)
	escrowStoreKey := storetypes.NewKVStoreKey(escrowtypes.StoreKey)
	teeStoreKey := storetypes.NewKVStoreKey(teetypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(computeStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(escrowStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(teeStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	banktypes.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		escrowtypes.ModuleName:     nil,
		teetypes.ModuleName:        nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	// Module accounts are blocked recipients, as on a production app. Inter-
	// module fee settlement must use the module-to-module bank path.
	blockedAddrs := make(map[string]bool, len(maccPerms))
	for name := range maccPerms {
		blockedAddrs[authtypes.NewModuleAddress(name).String()] = true
	}

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		blockedAddrs,
		authority.String(),
		log.NewNopLogger(),
	)

	escrowKeeper := escrowkeeper.NewKeeper(escrowStoreKey, bankKeeper, authority.String())
	teeKeeper := teekeeper.NewKeeper(teeStoreKey, bankKeeper, authority.String())
	computeKeeper := computekeeper.NewKeeper(computeStoreKey, escrowKeeper, teeKeeper, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, escrowKeeper.SetParams(ctx, escrowtypes.DefaultParams()))
	require.NoError(t, teeKeeper.SetParams(ctx, teetypes.DefaultParams()))
	require.NoError(t, computeKeeper.SetParams(ctx, computetypes.DefaultParams()))

	return ComputeFixture{
		Compute: computeKeeper,
		Escrow:  escrowKeeper,
		Tee:     teeKeeper,
		Bank:    bankKeeper,
		Ctx:     ctx,
	}
}
