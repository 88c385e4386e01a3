package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// AssignPendingRequests walks the queue head and hands requests to free
// admitted nodes in round-robin order. At most MaxRequestsPerBlock
// assignments are made per call; the walk stops early once no free node
// remains.
func (k Keeper) AssignPendingRequests(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	assigned := uint32(0)
	k.walkQueue(ctx, func(requestID uint64) (consume, stop bool) {
		if assigned >= params.MaxRequestsPerBlock {
			return false, true
		}

		request, found := k.GetRequest(ctx, requestID)
		if !found || request.Status != types.RequestStatusPending {
			// stale queue entry, drop it
			return true, false
		}

		node, ok := k.selectNode(ctx)
		if !ok {
			return false, true
		}

		request.Status = types.RequestStatusProcessing
		request.AssignedNode = node.String()
		request.TimeoutAt = sdkCtx.BlockHeight() + params.TimeoutBlocks
		if err := k.SetRequest(ctx, request); err != nil {
			sdkCtx.Logger().Error("failed to persist assignment", "request_id", requestID, "error", err)
			return false, true
		}

		k.setNodeBusy(ctx, node, requestID)
		k.getStore(ctx).Set(ProcessingIndexKey(request.TimeoutAt, requestID), []byte{})
		assigned++

		k.metrics.RequestsAssigned.WithLabelValues(node.String()).Inc()
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRequestAssigned,
				sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
				sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			),
		)
		return true, false
	})

	return nil
}
