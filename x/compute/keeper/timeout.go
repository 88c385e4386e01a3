package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// ProcessTimeouts scans the timeout-ordered processing index up to the
// current height. Requests below the failover cap are requeued; the rest
// go to TIMEOUT terminally with an escrow refund.
func (k Keeper) ProcessTimeouts(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	store := k.getStore(ctx)
	end := ProcessingIndexKey(sdkCtx.BlockHeight()+1, 0)
	iterator := store.Iterator(ProcessingIndexPrefix, end)

	var keys [][]byte
	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		key := make([]byte, len(iterator.Key()))
		copy(key, iterator.Key())
		keys = append(keys, key)
		ids = append(ids, GetIDFromBytes(key[len(key)-8:]))
	}
	iterator.Close()

	for i, requestID := range ids {
		store.Delete(keys[i])

		request, found := k.GetRequest(ctx, requestID)
		if !found || request.Status != types.RequestStatusProcessing {
			continue
		}

		if request.AssignedNode != "" {
			if node, err := sdk.AccAddressFromBech32(request.AssignedNode); err == nil {
				k.clearNodeBusy(ctx, node)
			}
		}

		if request.FailoverCount < params.MaxFailovers {
			if err := k.failoverRequest(ctx, request); err != nil {
				sdkCtx.Logger().Error("failover failed", "request_id", requestID, "error", err)
			}
			continue
		}

		if err := k.timeoutRequest(ctx, request); err != nil {
			sdkCtx.Logger().Error("timeout settlement failed", "request_id", requestID, "error", err)
		}
	}
	return nil
}

// failoverRequest puts a timed-out request back at the queue tail for
// reassignment to a different node.
func (k Keeper) failoverRequest(ctx context.Context, request types.Request) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	previousNode := request.AssignedNode
	request.Status = types.RequestStatusPending
	request.AssignedNode = ""
	request.TimeoutAt = 0
	request.FailoverCount++
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}
	if err := k.enqueue(ctx, request.Id); err != nil {
		return err
	}

	k.metrics.Failovers.Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestFailover,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", request.Id)),
			sdk.NewAttribute(types.AttributeKeyNode, previousNode),
			sdk.NewAttribute(types.AttributeKeyFailoverCount, fmt.Sprintf("%d", request.FailoverCount)),
		),
	)
	return nil
}

// timeoutRequest terminates a request that exhausted its failovers.
func (k Keeper) timeoutRequest(ctx context.Context, request types.Request) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	request.Status = types.RequestStatusTimeout
	request.FailureReason = "compute deadline exceeded"
	request.AssignedNode = ""
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}
	k.clearTransientData(ctx, request.Id)

	if err := k.refundFee(ctx, request); err != nil {
		return err
	}

	k.metrics.Timeouts.Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestTimedOut,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", request.Id)),
			sdk.NewAttribute(types.AttributeKeyFailoverCount, fmt.Sprintf("%d", request.FailoverCount)),
		),
	)
	return nil
}
