package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/compute/types"
)

func TestAssignmentRoundRobin(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	registerTestNode(t, fx, ctx, nodeAddrB)

	first := submitFundedRequest(t, fx, ctx, []byte("first"))
	second := submitFundedRequest(t, fx, ctx, []byte("second"))

	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	reqFirst, _ := fx.Compute.GetRequest(ctx, first)
	reqSecond, _ := fx.Compute.GetRequest(ctx, second)
	require.Equal(t, types.RequestStatusProcessing, reqFirst.Status)
	require.Equal(t, types.RequestStatusProcessing, reqSecond.Status)
	require.NotEqual(t, reqFirst.AssignedNode, reqSecond.AssignedNode)
	require.Zero(t, fx.Compute.PendingCount(ctx))

	idA, busyA := fx.Compute.NodeCurrentRequest(ctx, nodeAddrA)
	idB, busyB := fx.Compute.NodeCurrentRequest(ctx, nodeAddrB)
	require.True(t, busyA)
	require.True(t, busyB)
	require.ElementsMatch(t, []uint64{first, second}, []uint64{idA, idB})
}

func TestAssignmentWaitsForFreeNode(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)

	first := submitFundedRequest(t, fx, ctx, []byte("first"))
	second := submitFundedRequest(t, fx, ctx, []byte("second"))

	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	reqFirst, _ := fx.Compute.GetRequest(ctx, first)
	reqSecond, _ := fx.Compute.GetRequest(ctx, second)
	require.Equal(t, types.RequestStatusProcessing, reqFirst.Status)
	require.Equal(t, types.RequestStatusPending, reqSecond.Status)
	require.Equal(t, uint32(1), fx.Compute.PendingCount(ctx))
}

func TestAssignmentSkipsInactiveNodes(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	require.NoError(t, fx.Tee.SuspendNode(ctx, nodeAddrA, "maintenance"))

	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	request, _ := fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusPending, request.Status)
}

func TestTimeoutFailover(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	registerTestNode(t, fx, ctx, nodeAddrB)

	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	request, _ := fx.Compute.GetRequest(ctx, id)
	firstNode := request.AssignedNode

	// let the deadline pass
	late := fx.Ctx.WithBlockHeight(request.TimeoutAt)
	require.NoError(t, fx.Compute.ProcessTimeouts(late))

	request, _ = fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusPending, request.Status)
	require.Equal(t, uint32(1), request.FailoverCount)
	require.Empty(t, request.AssignedNode)

	// the previous node is free again and reassignment picks the other one
	require.NoError(t, fx.Compute.AssignPendingRequests(late))
	request, _ = fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusProcessing, request.Status)
	require.NotEqual(t, firstNode, request.AssignedNode)
}

func TestTimeoutTerminalAfterMaxFailovers(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)

	id := submitFundedRequest(t, fx, ctx, []byte("input"))

	height := int64(1)
	for i := uint32(0); i <= params.MaxFailovers; i++ {
		stepCtx := fx.Ctx.WithBlockHeight(height)
		require.NoError(t, fx.Compute.AssignPendingRequests(stepCtx))

		request, _ := fx.Compute.GetRequest(stepCtx, id)
		require.Equal(t, types.RequestStatusProcessing, request.Status)

		height = request.TimeoutAt
		require.NoError(t, fx.Compute.ProcessTimeouts(fx.Ctx.WithBlockHeight(height)))
	}

	request, _ := fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusTimeout, request.Status)
	require.Equal(t, params.MaxFailovers, request.FailoverCount)

	// fee refunded and transient data gone
	require.Equal(t, params.RequestFee, fx.Bank.GetBalance(ctx, requesterAddr, types.DefaultDenom).Amount)
	_, ok := fx.Compute.GetInputData(ctx, id)
	require.False(t, ok)

	_, busy := fx.Compute.NodeCurrentRequest(ctx, nodeAddrA)
	require.False(t, busy)
}
