package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	oraclekeeper "github.com/arcanum-chain/arcanum/x/oracle/keeper"
	oracletypes "github.com/arcanum-chain/arcanum/x/oracle/types"
)

// OracleKeeper creates an oracle keeper over an in-memory multistore. The
// oracle holds no funds, so no bank keeper is wired.
func OracleKeeper(t testing.TB) (*oraclekeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)
	k := oraclekeeper.NewKeeper(storeKey, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, k.SetParams(ctx, oracletypes.DefaultParams()))

	return k, ctx
}
