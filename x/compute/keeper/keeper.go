package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// Keeper of the compute store
type Keeper struct {
	storeKey     storetypes.StoreKey
	escrowKeeper types.EscrowKeeper
	teeKeeper    types.TeeKeeper
	authority    string

	// pinner receives manifest pin/unpin callbacks. Optional.
	pinner types.PinningHook

	metrics *ComputeMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new compute Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	escrowKeeper types.EscrowKeeper,
	teeKeeper types.TeeKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:     key,
		escrowKeeper: escrowKeeper,
		teeKeeper:    teeKeeper,
		authority:    authority,
		metrics:      GetComputeMetrics(),
	}
}

// SetPinningHook registers the storage pinning callback.
func (k *Keeper) SetPinningHook(hook types.PinningHook) {
	k.pinner = hook
}

// GetAuthority returns the module's governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the compute module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
