package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// GetLock retrieves a lock record by id
func (k Keeper) GetLock(ctx context.Context, lockID uint64) (types.LockRecord, bool) {
	store := k.getStore(ctx)
	bz := store.Get(LockKey(lockID))
	if bz == nil {
		return types.LockRecord{}, false
	}

	var record types.LockRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		return types.LockRecord{}, false
	}
	return record, true
}

// SetLock stores a lock record
func (k Keeper) SetLock(ctx context.Context, record types.LockRecord) error {
	bz, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal lock record: %w", err)
	}

	k.getStore(ctx).Set(LockKey(record.Id), bz)
	return nil
}

// IterateLocks visits every lock record in id order.
func (k Keeper) IterateLocks(ctx context.Context, cb func(record types.LockRecord) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LockKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.LockRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			continue
		}
		if cb(record) {
			break
		}
	}
}

// Lock pulls amount from payer into the module account under the given id.
// A second Lock on an existing LOCKED id tops up the balance; locks in any
// other state reject further deposits.
func (k Keeper) Lock(ctx context.Context, lockID uint64, payer sdk.AccAddress, amount math.Int) error {
	return k.lock(ctx, lockID, payer, amount, 0, false)
}

// LockWithNonce is the at-most-once variant of Lock. A nonce at or below the
// lock's last seen nonce makes the call a silent no-op, so retried messages
// cannot double-deposit.
func (k Keeper) LockWithNonce(ctx context.Context, lockID uint64, payer sdk.AccAddress, amount math.Int, nonce uint64) error {
	return k.lock(ctx, lockID, payer, amount, nonce, true)
}

func (k Keeper) lock(ctx context.Context, lockID uint64, payer sdk.AccAddress, amount math.Int, nonce uint64, useNonce bool) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("lock amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	record, found := k.GetLock(ctx, lockID)
	if found {
		if record.State != types.LockStateLocked {
			return types.ErrDisputeActive.Wrapf("lock %d cannot accept deposits in state %s", lockID, record.State)
		}
		if useNonce && nonce <= record.LastNonce {
			// Replay of an already-applied deposit. Deliberately not an error.
			return nil
		}
	} else {
		record = types.LockRecord{
			Id:        lockID,
			Payer:     payer.String(),
			Amount:    math.ZeroInt(),
			State:     types.LockStateLocked,
			CreatedAt: sdkCtx.BlockHeight(),
		}
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, payer, types.ModuleName, coins); err != nil {
		return fmt.Errorf("failed to lock escrow funds: %w", err)
	}

	record.Amount = record.Amount.Add(amount)
	if useNonce {
		record.LastNonce = nonce
	}

	if err := k.SetLock(ctx, record); err != nil {
		// Funds moved but state write failed. Refund; escalate when even
		// the refund fails.
		if refundErr := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, payer, coins); refundErr != nil {
			k.recordCatastrophicFailure(ctx, lockID, payer, amount, "failed to store lock record and refund")
		}
		return fmt.Errorf("failed to store lock record: %w", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLocked,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
			sdk.NewAttribute(types.AttributeKeyPayer, payer.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNonce, fmt.Sprintf("%d", nonce)),
		),
	)

	return nil
}

// ReleaseAll pays the full locked balance to a single recipient and closes
// the lock. Rejected while the lock is disputed.
func (k Keeper) ReleaseAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	record, err := k.movableLock(ctx, lockID)
	if err != nil {
		return err
	}
	return k.payAndClose(ctx, record, to, types.EventTypeReleased)
}

// ReleaseAllToModule pays the full locked balance into another module
// account and closes the lock. Module accounts are blocked recipients for
// regular sends, so this goes through the module-to-module bank path.
func (k Keeper) ReleaseAllToModule(ctx context.Context, lockID uint64, recipientModule string) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	record, err := k.movableLock(ctx, lockID)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	amount := record.Amount

	k.deleteLock(ctx, record.Id)

	if amount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(sdkCtx, types.ModuleName, recipientModule, coins); err != nil {
			k.recordCatastrophicFailure(ctx, record.Id, authtypes.NewModuleAddress(recipientModule), amount, "state updated but module payment failed")
			return fmt.Errorf("failed to pay out lock %d to module %s: %w", record.Id, recipientModule, err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReleased,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", record.Id)),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipientModule),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	k.emitClosed(sdkCtx, record.Id)

	return nil
}

// RefundAll returns the full locked balance to the refund recipient and
// closes the lock. Rejected while the lock is disputed.
func (k Keeper) RefundAll(ctx context.Context, lockID uint64, to sdk.AccAddress) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	record, err := k.movableLock(ctx, lockID)
	if err != nil {
		return err
	}
	return k.payAndClose(ctx, record, to, types.EventTypeRefunded)
}

// ReleaseSplit pays multiple recipients out of a single lock atomically.
// The entry sum must not exceed the locked balance; any remainder stays
// locked. The lock closes when the balance reaches zero.
func (k Keeper) ReleaseSplit(ctx context.Context, lockID uint64, entries []types.SplitEntry) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}

	record, err := k.movableLock(ctx, lockID)
	if err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return types.ErrInvalidAmount.Wrap("split requires at least one entry")
	}
	if uint32(len(entries)) > params.MaxSplitEntries {
		return types.ErrTooManyEntries.Wrapf("%d entries exceeds limit %d", len(entries), params.MaxSplitEntries)
	}

	// Validate everything before moving a single coin: the split is
	// all-or-nothing.
	total := math.ZeroInt()
	recipients := make([]sdk.AccAddress, len(entries))
	for i, entry := range entries {
		if entry.Amount.IsNil() || !entry.Amount.IsPositive() {
			return types.ErrInvalidAmount.Wrapf("split entry %d must be positive", i)
		}
		addr, err := sdk.AccAddressFromBech32(entry.Recipient)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("split entry %d: %s", i, err)
		}
		recipients[i] = addr
		total = total.Add(entry.Amount)
	}
	if total.GT(record.Amount) {
		return types.ErrInsufficient.Wrapf("split total %s exceeds locked %s", total, record.Amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// State first, transfers after.
	record.Amount = record.Amount.Sub(total)
	closed := record.Amount.IsZero()
	if closed {
		k.deleteLock(ctx, record.Id)
	} else if err := k.SetLock(ctx, record); err != nil {
		return fmt.Errorf("failed to store lock record: %w", err)
	}

	for i, entry := range entries {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, entry.Amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, recipients[i], coins); err != nil {
			k.recordCatastrophicFailure(ctx, lockID, recipients[i], entry.Amount, "state updated but split payment failed")
			return fmt.Errorf("failed to pay split entry %d: %w", i, err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSplitReleased,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
			sdk.NewAttribute("entries", fmt.Sprintf("%d", len(entries))),
		),
	)
	if closed {
		k.emitClosed(sdkCtx, lockID)
	}

	return nil
}

// SplitPartial pays floor(amount*bps/10000) to releaseTo, refunds the
// remainder to refundTo and closes the lock.
func (k Keeper) SplitPartial(ctx context.Context, lockID uint64, releaseTo, refundTo sdk.AccAddress, bps uint32) error {
	if err := k.checkNotPaused(ctx); err != nil {
		return err
	}
	record, err := k.movableLock(ctx, lockID)
	if err != nil {
		return err
	}
	return k.splitByBps(ctx, record, releaseTo, refundTo, bps)
}

// splitByBps performs the two-way basis-point split and closes the lock.
// Shared by SplitPartial and the dispute decision path.
func (k Keeper) splitByBps(ctx context.Context, record types.LockRecord, releaseTo, refundTo sdk.AccAddress, bps uint32) error {
	if bps > 10000 {
		return types.ErrInvalidBasisPoints.Wrapf("bps %d exceeds 10000", bps)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	releaseAmount := record.Amount.MulRaw(int64(bps)).QuoRaw(10000)
	refundAmount := record.Amount.Sub(releaseAmount)

	k.deleteLock(ctx, record.Id)

	if releaseAmount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, releaseAmount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, releaseTo, coins); err != nil {
			k.recordCatastrophicFailure(ctx, record.Id, releaseTo, releaseAmount, "state updated but release payment failed")
			return fmt.Errorf("failed to release payment: %w", err)
		}
	}
	if refundAmount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, refundAmount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, refundTo, coins); err != nil {
			k.recordCatastrophicFailure(ctx, record.Id, refundTo, refundAmount, "state updated but refund payment failed")
			return fmt.Errorf("failed to refund payment: %w", err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSplitReleased,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", record.Id)),
			sdk.NewAttribute(types.AttributeKeyBps, fmt.Sprintf("%d", bps)),
			sdk.NewAttribute(types.AttributeKeyRecipient, releaseTo.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, releaseAmount.String()),
		),
	)
	k.emitClosed(sdkCtx, record.Id)

	return nil
}

// movableLock fetches a lock and verifies funds may move out of it.
func (k Keeper) movableLock(ctx context.Context, lockID uint64) (types.LockRecord, error) {
	record, found := k.GetLock(ctx, lockID)
	if !found {
		return types.LockRecord{}, types.ErrNoLock.Wrapf("lock %d", lockID)
	}
	if record.State == types.LockStateDisputed {
		return types.LockRecord{}, types.ErrDisputeActive.Wrapf("lock %d", lockID)
	}
	if record.State != types.LockStateLocked {
		return types.LockRecord{}, types.ErrAlreadyClosed.Wrapf("lock %d in state %s", lockID, record.State)
	}
	return record, nil
}

// payAndClose applies the check-effects-interactions pattern: delete state,
// then transfer, escalating transfer failures for manual resolution.
func (k Keeper) payAndClose(ctx context.Context, record types.LockRecord, to sdk.AccAddress, eventType string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	amount := record.Amount

	k.deleteLock(ctx, record.Id)

	if amount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, to, coins); err != nil {
			k.recordCatastrophicFailure(ctx, record.Id, to, amount, "state updated but payment failed")
			return fmt.Errorf("failed to pay out lock %d: %w", record.Id, err)
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", record.Id)),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	k.emitClosed(sdkCtx, record.Id)

	return nil
}

// deleteLock removes the record and any scheduled expiry.
func (k Keeper) deleteLock(ctx context.Context, lockID uint64) {
	k.removeExpiryIndex(ctx, lockID)
	k.getStore(ctx).Delete(LockKey(lockID))
}

func (k Keeper) emitClosed(sdkCtx sdk.Context, lockID uint64) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClosed,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
		),
	)
}

// recordCatastrophicFailure flags a funds/state divergence for manual
// resolution. Mirrors the payment failure escalation used elsewhere on the
// chain: the event is the audit trail, block production continues.
func (k Keeper) recordCatastrophicFailure(ctx context.Context, lockID uint64, account sdk.AccAddress, amount math.Int, reason string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCatastrophicFailure,
			sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
			sdk.NewAttribute("account", account.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
			sdk.NewAttribute("severity", "CRITICAL"),
		),
	)
}
