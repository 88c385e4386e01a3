package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// Keeper of the escrow store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	authority  string

	// expiryPolicy decides what happens to locks whose expiry height fires.
	// Registered after construction by the module that owns the lock ids.
	expiryPolicy types.ExpiryPolicy
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new escrow Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		authority:  authority,
	}
}

// SetExpiryPolicy registers the expiry disposition policy. Expired locks
// are refunded to the payer when no policy is registered.
func (k *Keeper) SetExpiryPolicy(policy types.ExpiryPolicy) {
	k.expiryPolicy = policy
}

// GetAuthority returns the module's governance authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the escrow module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
