package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// ScheduleExpiry queues a lock for expiry processing at the given height.
// Rescheduling replaces the previous entry. The per-height bucket is
// bounded so EndBlocker work stays bounded.
func (k Keeper) ScheduleExpiry(ctx context.Context, lockID uint64, height int64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if height <= sdkCtx.BlockHeight() {
		return types.ErrInvalidExpiry.Wrapf("height %d not in the future", height)
	}

	record, found := k.GetLock(ctx, lockID)
	if !found {
		return types.ErrNoLock.Wrapf("lock %d", lockID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if k.countExpiringAt(ctx, height) >= params.MaxExpiringPerBlock {
		return types.ErrTooManyExpiring.Wrapf("height %d", height)
	}

	// Drop any previous schedule before writing the new one.
	k.removeExpiryIndex(ctx, lockID)

	store := k.getStore(ctx)
	store.Set(ExpiryQueueKey(height, lockID), []byte{})

	heightBz := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBz, uint64(height))
	store.Set(ExpiryReverseKey(lockID), heightBz)

	record.ExpiryHeight = height
	return k.SetLock(ctx, record)
}

// CancelExpiry removes a lock's scheduled expiry, if any.
func (k Keeper) CancelExpiry(ctx context.Context, lockID uint64) error {
	record, found := k.GetLock(ctx, lockID)
	if !found {
		return types.ErrNoLock.Wrapf("lock %d", lockID)
	}

	k.removeExpiryIndex(ctx, lockID)
	record.ExpiryHeight = 0
	return k.SetLock(ctx, record)
}

// removeExpiryIndex deletes both sides of the expiry index via the reverse
// entry, giving O(1) removal.
func (k Keeper) removeExpiryIndex(ctx context.Context, lockID uint64) {
	store := k.getStore(ctx)

	heightBz := store.Get(ExpiryReverseKey(lockID))
	if heightBz == nil {
		return
	}

	height := int64(binary.BigEndian.Uint64(heightBz))
	store.Delete(ExpiryQueueKey(height, lockID))
	store.Delete(ExpiryReverseKey(lockID))
}

// countExpiringAt counts queued expiries for a height. Bounded by
// MaxExpiringPerBlock so the scan stays cheap.
func (k Keeper) countExpiringAt(ctx context.Context, height int64) uint32 {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ExpiryQueuePrefixForHeight(height))
	defer iterator.Close()

	var count uint32
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}

// ProcessExpiredLocks dispatches every lock queued at the current height.
// Disputed locks are skipped: the dispute decision supersedes expiry.
// Called from EndBlocker.
func (k Keeper) ProcessExpiredLocks(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	store := k.getStore(ctx)
	prefix := ExpiryQueuePrefixForHeight(height)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)

	var expired []uint64
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		if len(key) < len(prefix)+8 {
			continue
		}
		expired = append(expired, GetLockIDFromBytes(key[len(key)-8:]))
	}
	iterator.Close()

	for _, lockID := range expired {
		// The queue entry is consumed either way; a skipped dispute keeps
		// its funds until a decision lands.
		store.Delete(ExpiryQueueKey(height, lockID))
		store.Delete(ExpiryReverseKey(lockID))

		record, found := k.GetLock(ctx, lockID)
		if !found {
			continue
		}
		if record.State == types.LockStateDisputed {
			sdkCtx.Logger().Info("skipping expiry of disputed lock", "lock_id", lockID)
			continue
		}

		record.ExpiryHeight = 0
		if err := k.SetLock(ctx, record); err != nil {
			sdkCtx.Logger().Error("failed to clear expiry height", "lock_id", lockID, "error", err)
			continue
		}

		decision := k.decideExpiry(sdkCtx, lockID, record)

		var err error
		switch decision.Action {
		case types.ExpiryRelease:
			err = k.ReleaseAll(ctx, lockID, decision.Recipient)
		case types.ExpiryRefund:
			err = k.RefundAll(ctx, lockID, decision.Recipient)
		case types.ExpiryNoop:
			// Lock stays open with no expiry scheduled.
		}
		if err != nil {
			sdkCtx.Logger().Error("failed to settle expired lock", "lock_id", lockID, "error", err)
			continue
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeExpired,
				sdk.NewAttribute(types.AttributeKeyLockID, fmt.Sprintf("%d", lockID)),
				sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", height)),
				sdk.NewAttribute(types.AttributeKeyAction, decision.Action.String()),
			),
		)
	}

	return nil
}

// decideExpiry consults the registered policy, defaulting to a payer refund.
func (k Keeper) decideExpiry(sdkCtx sdk.Context, lockID uint64, record types.LockRecord) types.ExpiryDecision {
	if k.expiryPolicy != nil {
		return k.expiryPolicy.OnExpire(sdkCtx, lockID)
	}

	payer, err := sdk.AccAddressFromBech32(record.Payer)
	if err != nil {
		return types.ExpiryDecision{Action: types.ExpiryNoop}
	}
	return types.ExpiryDecision{Action: types.ExpiryRefund, Recipient: payer}
}
