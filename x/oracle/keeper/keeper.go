package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Keeper of the oracle store
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string
	metrics   *OracleMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:  key,
		authority: authority,
		metrics:   GetOracleMetrics(),
	}
}

// GetAuthority returns the module's governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
