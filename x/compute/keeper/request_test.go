package keeper_test

import (
	"crypto/ed25519"
	"crypto/sha256"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/compute/types"
	teetypes "github.com/arcanum-chain/arcanum/x/tee/types"
)

var (
	requesterAddr = sdk.AccAddress([]byte{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20, 0x21, 0x22, 0x23, 0x24})
	nodeAddrA     = sdk.AccAddress([]byte{0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f, 0x40, 0x41, 0x42, 0x43, 0x44})
	nodeAddrB     = sdk.AccAddress([]byte{0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f, 0x60, 0x61, 0x62, 0x63, 0x64})
)

func hashOf(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// registerTestNode bonds the minimum stake and registers a node whose
// enclave key is derived deterministically from its address.
func registerTestNode(t *testing.T, fx testkeeper.ComputeFixture, ctx sdk.Context, addr sdk.AccAddress) ed25519.PrivateKey {
	t.Helper()

	seed := sha256.Sum256(addr.Bytes())
	priv := ed25519.NewKeyFromSeed(seed[:])
	pub := priv.Public().(ed25519.PublicKey)

	params, err := fx.Tee.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, fx.Bank, addr, params.MinimumStake)
	require.NoError(t, fx.Tee.Bond(ctx, addr, params.MinimumStake))

	measurement := make([]byte, teetypes.MeasurementSize)
	require.NoError(t, fx.Tee.RegisterNode(ctx, addr, pub, measurement, measurement, 1))
	return priv
}

// submitFundedRequest funds the requester with the request fee and submits.
func submitFundedRequest(t *testing.T, fx testkeeper.ComputeFixture, ctx sdk.Context, input []byte) uint64 {
	t.Helper()

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	testkeeper.FundAccount(t, ctx, fx.Bank, requesterAddr, params.RequestFee)

	id, err := fx.Compute.SubmitRequest(ctx, requesterAddr, 1, types.PrivacyModePublic, hashOf(input), input, nil)
	require.NoError(t, err)
	return id
}

func TestSubmitRequestLocksFee(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	id := submitFundedRequest(t, fx, ctx, []byte("draw three cards"))
	require.Equal(t, uint64(1), id)

	request, found := fx.Compute.GetRequest(ctx, id)
	require.True(t, found)
	require.Equal(t, types.RequestStatusPending, request.Status)
	require.Equal(t, uint32(1), fx.Compute.PendingCount(ctx))

	// fee moved out of the requester into escrow
	require.True(t, fx.Bank.GetBalance(ctx, requesterAddr, types.DefaultDenom).Amount.IsZero())

	input, ok := fx.Compute.GetInputData(ctx, id)
	require.True(t, ok)
	require.Equal(t, []byte("draw three cards"), input)
}

func TestSubmitRequestBounds(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	params.MaxInputSize = 8
	params.MaxPendingRequests = 1
	require.NoError(t, fx.Compute.SetParams(ctx, params))

	testkeeper.FundAccount(t, ctx, fx.Bank, requesterAddr, params.RequestFee.MulRaw(3))

	_, err = fx.Compute.SubmitRequest(ctx, requesterAddr, 1, types.PrivacyModePublic, hashOf([]byte("long")), []byte("far too long input"), nil)
	require.ErrorIs(t, err, types.ErrInputTooLarge)

	_, err = fx.Compute.SubmitRequest(ctx, requesterAddr, 1, types.PrivacyModePublic, hashOf([]byte("ok")), []byte("ok"), nil)
	require.NoError(t, err)

	_, err = fx.Compute.SubmitRequest(ctx, requesterAddr, 1, types.PrivacyModePublic, hashOf([]byte("no")), []byte("no"), nil)
	require.ErrorIs(t, err, types.ErrQueueFull)
}

func TestCancelRequestRefunds(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	id := submitFundedRequest(t, fx, ctx, []byte("input"))

	require.NoError(t, fx.Compute.CancelRequest(ctx, requesterAddr, id))

	request, found := fx.Compute.GetRequest(ctx, id)
	require.True(t, found)
	require.Equal(t, types.RequestStatusCancelled, request.Status)
	require.Zero(t, fx.Compute.PendingCount(ctx))

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, params.RequestFee, fx.Bank.GetBalance(ctx, requesterAddr, types.DefaultDenom).Amount)

	_, ok := fx.Compute.GetInputData(ctx, id)
	require.False(t, ok)

	err = fx.Compute.CancelRequest(ctx, requesterAddr, id)
	require.ErrorIs(t, err, types.ErrCannotCancel)
}

func TestCancelRequestOwnerOnly(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	id := submitFundedRequest(t, fx, ctx, []byte("input"))

	err := fx.Compute.CancelRequest(ctx, nodeAddrA, id)
	require.ErrorIs(t, err, types.ErrNotOwner)

	err = fx.Compute.CancelRequest(ctx, requesterAddr, 999)
	require.ErrorIs(t, err, types.ErrRequestNotFound)
}

func TestForceFailProcessingRequest(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))

	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))
	request, _ := fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusProcessing, request.Status)

	require.NoError(t, fx.Compute.ForceFail(ctx, id, "operator intervention"))

	request, _ = fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusFailed, request.Status)
	require.Equal(t, "operator intervention", request.FailureReason)

	// node freed and fee refunded
	_, busy := fx.Compute.NodeCurrentRequest(ctx, nodeAddrA)
	require.False(t, busy)
	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, params.RequestFee, fx.Bank.GetBalance(ctx, requesterAddr, types.DefaultDenom).Amount)

	err = fx.Compute.ForceFail(ctx, id, "again")
	require.ErrorIs(t, err, types.ErrRequestAlreadyProcessed)
}
