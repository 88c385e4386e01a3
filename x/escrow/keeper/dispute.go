package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// Dispute freezes a lock: no funds move until a decision is applied.
func (k Keeper) Dispute(ctx context.Context, lockID uint64, reason string) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}

	record, found := k.GetLock(ctx, lockID)
	if !found {
		return types.ErrNoLock.Wrapf("lock %d", lockID)
	}
	if record.State == types.LockStateDisputed {
		return types.ErrDisputeActive.Wrapf("lock %d already disputed", lockID)
	}
	if record.State != types.LockStateLocked {
		return types.ErrAlreadyClosed.Wrapf("lock %d in state %s", lockID, record.State)
	}

	record.State = types.LockStateDisputed
	if err := k.SetLock(ctx, record); err != nil {
		return fmt.Errorf("failed to store lock record: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDisputed,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)

	return nil
}

// ApplyDecisionReleaseAll resolves a dispute by paying the full balance to
// the recipient. Only valid while the lock is disputed.
func (k Keeper) ApplyDecisionReleaseAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error {
	record, err := k.resolveDispute(ctx, lockID, "release_all")
	if err != nil {
		return err
	}
	return k.payAndClose(ctx, record, to, types.EventTypeReleased)
}

// ApplyDecisionRefundAll resolves a dispute by refunding the full balance.
func (k Keeper) ApplyDecisionRefundAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error {
	record, err := k.resolveDispute(ctx, lockID, "refund_all")
	if err != nil {
		return err
	}
	return k.payAndClose(ctx, record, to, types.EventTypeRefunded)
}

// ApplyDecisionPartialBps resolves a dispute with a basis-point split
// between the release and refund recipients.
func (k Keeper) ApplyDecisionPartialBps(ctx context.Context, lockID uint64, releaseTo, refundTo sdk.AccAddress, bps uint32) error {
	record, err := k.resolveDispute(ctx, lockID, "partial_bps")
	if err != nil {
		return err
	}
	return k.splitByBps(ctx, record, releaseTo, refundTo, bps)
}

// resolveDispute validates the disputed state, marks the lock resolved and
// emits the decision event. The caller completes the payout.
func (k Keeper) resolveDispute(ctx context.Context, lockID uint64, decision string) (types.LockRecord, error) {
	if err := k.checkNotPaused(ctx); err != nil {
		return types.LockRecord{}, err
	}

	record, found := k.GetLock(ctx, lockID)
	if !found {
		return types.LockRecord{}, types.ErrNoLock.Wrapf("lock %d", lockID)
	}
	if record.State != types.LockStateDisputed {
		return types.LockRecord{}, types.ErrNotDisputed.Wrapf("lock %d in state %s", lockID, record.State)
	}

	record.State = types.LockStateResolved

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDecisionApplied,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
			sdk.NewAttribute(types.AttributeKeyAction, decision),
		),
	)

	return record, nil
}
