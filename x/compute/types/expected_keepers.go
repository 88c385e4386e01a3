package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EscrowKeeper is the subset of x/escrow used to hold request fees.
type EscrowKeeper interface {
	Lock(ctx context.Context, lockID uint64, payer sdk.AccAddress, amount math.Int) error
	ReleaseAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error
	ReleaseAllToModule(ctx context.Context, lockID uint64, recipientModule string) error
	RefundAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error
}

// TeeKeeper is the subset of x/tee used for scheduling, result verification
// and settlement.
type TeeKeeper interface {
	IsNodeActive(ctx context.Context, address sdk.AccAddress) bool
	GetEnclavePubkey(ctx context.Context, address sdk.AccAddress) ([]byte, error)
	IterateActiveNodes(ctx context.Context, cb func(address sdk.AccAddress) (stop bool))
	AccrueReward(ctx context.Context, address sdk.AccAddress, amount math.Int) error
	Slash(ctx context.Context, address sdk.AccAddress, amount math.Int, reason string) error
}

// PinningHook is notified when result manifests should be pinned to or
// unpinned from the storage layer. Failures are logged and non-fatal.
type PinningHook interface {
	Pin(ctx context.Context, cid string, tier PinTier) error
	Unpin(ctx context.Context, cid string) error
}
