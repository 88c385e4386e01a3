package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// escrowLockNamespace keeps compute lock ids disjoint from any other
// module locking into x/escrow.
const escrowLockNamespace uint64 = 1 << 62

func escrowLockID(requestID uint64) uint64 {
	return escrowLockNamespace | requestID
}

// GetRequest retrieves a request by id
func (k Keeper) GetRequest(ctx context.Context, requestID uint64) (types.Request, bool) {
	bz := k.getStore(ctx).Get(RequestKey(requestID))
	if bz == nil {
		return types.Request{}, false
	}

	var request types.Request
	if err := json.Unmarshal(bz, &request); err != nil {
		return types.Request{}, false
	}
	return request, true
}

// SetRequest stores a request row
func (k Keeper) SetRequest(ctx context.Context, request types.Request) error {
	bz, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	k.getStore(ctx).Set(RequestKey(request.Id), bz)
	return nil
}

// IterateRequests visits every request row.
func (k Keeper) IterateRequests(ctx context.Context, cb func(request types.Request) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var request types.Request
		if err := json.Unmarshal(iterator.Value(), &request); err != nil {
			continue
		}
		if cb(request) {
			break
		}
	}
}

// NextRequestID returns and bumps the request id counter. Ids start at 1.
func (k Keeper) NextRequestID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	id := uint64(1)
	if bz := store.Get(NextRequestIDKey); bz != nil {
		id = GetIDFromBytes(bz)
	}
	store.Set(NextRequestIDKey, uint64Bytes(id+1))
	return id
}

// SubmitRequest validates, fee-locks and enqueues a new compute request.
func (k Keeper) SubmitRequest(ctx context.Context, requester sdk.AccAddress, computeType uint8, privacyMode types.PrivacyMode, inputHash, input, userPubkey []byte) (uint64, error) {
	return k.submitRequest(ctx, requester, computeType, privacyMode, inputHash, input, userPubkey, nil)
}

func (k Keeper) submitRequest(ctx context.Context, requester sdk.AccAddress, computeType uint8, privacyMode types.PrivacyMode, inputHash, input, userPubkey []byte, hint *types.VersionHint) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if uint32(len(input)) > params.MaxInputSize {
		return 0, types.ErrInputTooLarge.Wrapf("input %d bytes, limit %d", len(input), params.MaxInputSize)
	}
	if len(inputHash) != types.InputHashSize {
		return 0, types.ErrInvalidRequest.Wrapf("input hash must be %d bytes", types.InputHashSize)
	}
	if k.PendingCount(ctx) >= params.MaxPendingRequests {
		return 0, types.ErrQueueFull.Wrapf("queue holds %d requests", params.MaxPendingRequests)
	}

	requestID := k.NextRequestID(ctx)

	if params.RequestFee.IsPositive() {
		if err := k.escrowKeeper.Lock(ctx, escrowLockID(requestID), requester, params.RequestFee); err != nil {
			return 0, fmt.Errorf("failed to lock request fee: %w", err)
		}
	}

	request := types.Request{
		Id:          requestID,
		Requester:   requester.String(),
		ComputeType: computeType,
		PrivacyMode: privacyMode,
		InputHash:   inputHash,
		CreatedAt:   sdkCtx.BlockHeight(),
		Status:      types.RequestStatusPending,
	}
	if err := k.SetRequest(ctx, request); err != nil {
		return 0, err
	}

	store := k.getStore(ctx)
	store.Set(InputDataKey(requestID), input)
	if len(userPubkey) > 0 {
		store.Set(UserPubkeyKey(requestID), userPubkey)
	}
	if hint != nil {
		hintBz, err := json.Marshal(hint)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal version hint: %w", err)
		}
		store.Set(VersionHintKey(requestID), hintBz)
	}

	if err := k.enqueue(ctx, requestID); err != nil {
		return 0, err
	}

	k.metrics.RequestsSubmitted.WithLabelValues(fmt.Sprintf("%d", computeType)).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestSubmitted,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
			sdk.NewAttribute(types.AttributeKeyComputeType, fmt.Sprintf("%d", computeType)),
		),
	)
	return requestID, nil
}

// CancelRequest withdraws a still-pending request and refunds its fee.
// The row is kept for audit; transient data is deleted.
func (k Keeper) CancelRequest(ctx context.Context, requester sdk.AccAddress, requestID uint64) error {
	request, found := k.GetRequest(ctx, requestID)
	if !found {
		return types.ErrRequestNotFound.Wrapf("request %d", requestID)
	}
	if request.Requester != requester.String() {
		return types.ErrNotOwner.Wrapf("request %d belongs to %s", requestID, request.Requester)
	}
	if request.Status != types.RequestStatusPending {
		return types.ErrCannotCancel.Wrapf("request %d is %s", requestID, request.Status)
	}

	k.removeFromQueue(ctx, requestID)

	request.Status = types.RequestStatusCancelled
	request.FailureReason = "cancelled by requester"
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}
	k.clearTransientData(ctx, requestID)

	if err := k.refundFee(ctx, request); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCancelled,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
		),
	)
	return nil
}

// ForceFail moves any non-terminal request to FAILED and refunds its fee.
// Governance escape hatch for stuck requests.
func (k Keeper) ForceFail(ctx context.Context, requestID uint64, reason string) error {
	request, found := k.GetRequest(ctx, requestID)
	if !found {
		return types.ErrRequestNotFound.Wrapf("request %d", requestID)
	}
	if request.Status.IsTerminal() {
		return types.ErrRequestAlreadyProcessed.Wrapf("request %d is %s", requestID, request.Status)
	}

	switch request.Status {
	case types.RequestStatusPending:
		k.removeFromQueue(ctx, requestID)
	case types.RequestStatusProcessing:
		k.releaseAssignment(ctx, request)
	}

	request.Status = types.RequestStatusFailed
	request.FailureReason = reason
	request.AssignedNode = ""
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}
	k.clearTransientData(ctx, requestID)

	if err := k.refundFee(ctx, request); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestFailed,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	return nil
}

// releaseAssignment frees the node and timeout index of a processing request.
func (k Keeper) releaseAssignment(ctx context.Context, request types.Request) {
	if request.AssignedNode != "" {
		if node, err := sdk.AccAddressFromBech32(request.AssignedNode); err == nil {
			k.clearNodeBusy(ctx, node)
		}
	}
	if request.TimeoutAt > 0 {
		k.getStore(ctx).Delete(ProcessingIndexKey(request.TimeoutAt, request.Id))
	}
}

// refundFee returns the escrowed request fee to the requester.
func (k Keeper) refundFee(ctx context.Context, request types.Request) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if !params.RequestFee.IsPositive() {
		return nil
	}

	requester, err := sdk.AccAddressFromBech32(request.Requester)
	if err != nil {
		return types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := k.escrowKeeper.RefundAll(ctx, escrowLockID(request.Id), requester); err != nil {
		return fmt.Errorf("failed to refund request fee: %w", err)
	}
	return nil
}

// GetInputData returns a request's transient input payload.
func (k Keeper) GetInputData(ctx context.Context, requestID uint64) ([]byte, bool) {
	bz := k.getStore(ctx).Get(InputDataKey(requestID))
	return bz, bz != nil
}

// GetUserPubkey returns a request's transient user pubkey.
func (k Keeper) GetUserPubkey(ctx context.Context, requestID uint64) ([]byte, bool) {
	bz := k.getStore(ctx).Get(UserPubkeyKey(requestID))
	return bz, bz != nil
}

// GetVersionHint returns a request's transient version hint.
func (k Keeper) GetVersionHint(ctx context.Context, requestID uint64) (types.VersionHint, bool) {
	bz := k.getStore(ctx).Get(VersionHintKey(requestID))
	if bz == nil {
		return types.VersionHint{}, false
	}

	var hint types.VersionHint
	if err := json.Unmarshal(bz, &hint); err != nil {
		return types.VersionHint{}, false
	}
	return hint, true
}

// clearTransientData deletes the input, user pubkey and version hint for a
// request. Called on every terminal transition.
func (k Keeper) clearTransientData(ctx context.Context, requestID uint64) {
	store := k.getStore(ctx)
	store.Delete(InputDataKey(requestID))
	store.Delete(UserPubkeyKey(requestID))
	store.Delete(VersionHintKey(requestID))
}
