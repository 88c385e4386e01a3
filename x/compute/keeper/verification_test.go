package keeper_test

import (
	"context"
	"crypto/ed25519"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/compute/types"
	escrowtypes "github.com/arcanum-chain/arcanum/x/escrow/types"
	teetypes "github.com/arcanum-chain/arcanum/x/tee/types"
)

// completeRequest drives a submitted request through assignment and a valid
// result submission by whichever node got it.
func completeRequest(t *testing.T, fx testkeeper.ComputeFixture, ctx sdk.Context, requestID uint64, keys map[string]ed25519.PrivateKey, output []byte) {
	t.Helper()

	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))
	request, found := fx.Compute.GetRequest(ctx, requestID)
	require.True(t, found)
	require.Equal(t, types.RequestStatusProcessing, request.Status)

	node, err := sdk.AccAddressFromBech32(request.AssignedNode)
	require.NoError(t, err)
	priv, ok := keys[request.AssignedNode]
	require.True(t, ok)

	outputHash := hashOf(output)
	manifestHash := hashOf([]byte("manifest"))
	message := types.ResultSigningBytes(requestID, request.InputHash, outputHash, manifestHash)
	signature := ed25519.Sign(priv, message)

	require.NoError(t, fx.Compute.SubmitResult(ctx, node, requestID, outputHash, []byte("idx"), "bafymanifest", manifestHash, signature))
}

func TestSubmitResultCompletesAndRewards(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	completeRequest(t, fx, ctx, id, keys, []byte("output"))

	request, _ := fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusCompleted, request.Status)

	// node freed, transient data gone
	_, busy := fx.Compute.NodeCurrentRequest(ctx, nodeAddrA)
	require.False(t, busy)
	_, ok := fx.Compute.GetInputData(ctx, id)
	require.False(t, ok)

	// result stored as version 1 of a fresh chain
	result, found := fx.Compute.GetResult(ctx, id)
	require.True(t, found)
	require.Equal(t, uint64(1), result.Version)
	require.Equal(t, id, result.FirstVersionId)
	require.True(t, result.IsLatest)
	require.Equal(t, types.GenerationTEE, result.Generation.Kind)
	require.Equal(t, nodeAddrA.String(), result.Generation.Node)

	// fee released into the reward pool and accrued to the node
	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, params.RequestFee, fx.Tee.GetReward(ctx, nodeAddrA).Amount)

	escrowAddr := authtypes.NewModuleAddress(escrowtypes.ModuleName)
	require.True(t, fx.Bank.GetBalance(ctx, escrowAddr, types.DefaultDenom).Amount.IsZero())
}

func TestSettlementFundsRewardPool(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	teeAddr := authtypes.NewModuleAddress(teetypes.ModuleName)
	poolBefore := fx.Bank.GetBalance(ctx, teeAddr, types.DefaultDenom).Amount

	completeRequest(t, fx, ctx, id, keys, []byte("output"))

	// the fee moves between module accounts even though both are blocked
	// recipients for regular sends
	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, poolBefore.Add(params.RequestFee), fx.Bank.GetBalance(ctx, teeAddr, types.DefaultDenom).Amount)

	// the accrued reward is payable out of that pool
	reward := fx.Tee.GetReward(ctx, nodeAddrA).Amount
	require.True(t, reward.IsPositive())
	require.NoError(t, fx.Tee.ClaimReward(ctx, nodeAddrA))
	require.Equal(t, reward, fx.Bank.GetBalance(ctx, nodeAddrA, types.DefaultDenom).Amount)
}

func TestSubmitResultRejectsBadSignature(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	stakeBefore := fx.Tee.GetStake(ctx, nodeAddrA).Amount

	outputHash := hashOf([]byte("output"))
	manifestHash := hashOf([]byte("manifest"))
	badSignature := make([]byte, ed25519.SignatureSize)

	require.NoError(t, fx.Compute.SubmitResult(ctx, nodeAddrA, id, outputHash, nil, "bafymanifest", manifestHash, badSignature))

	request, _ := fx.Compute.GetRequest(ctx, id)
	require.Equal(t, types.RequestStatusFailed, request.Status)
	require.Equal(t, "result signature invalid", request.FailureReason)

	// no result stored, fee refunded, node slashed
	_, found := fx.Compute.GetResult(ctx, id)
	require.False(t, found)

	computeParams, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, computeParams.RequestFee, fx.Bank.GetBalance(ctx, requesterAddr, types.DefaultDenom).Amount)
	require.Equal(t, stakeBefore.Sub(computeParams.SlashOnInvalidSignature), fx.Tee.GetStake(ctx, nodeAddrA).Amount)

	_, busy := fx.Compute.NodeCurrentRequest(ctx, nodeAddrA)
	require.False(t, busy)
}

func TestSubmitResultWrongNode(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	registerTestNode(t, fx, ctx, nodeAddrB)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))
	require.NoError(t, fx.Compute.AssignPendingRequests(ctx))

	request, _ := fx.Compute.GetRequest(ctx, id)
	wrongNode := nodeAddrB
	if request.AssignedNode == nodeAddrB.String() {
		wrongNode = nodeAddrA
	}

	outputHash := hashOf([]byte("output"))
	manifestHash := hashOf([]byte("manifest"))
	signature := make([]byte, ed25519.SignatureSize)

	err := fx.Compute.SubmitResult(ctx, wrongNode, id, outputHash, nil, "bafymanifest", manifestHash, signature)
	require.ErrorIs(t, err, types.ErrNotAssigned)
}

func TestSubmitResultPendingRequest(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	registerTestNode(t, fx, ctx, nodeAddrA)
	id := submitFundedRequest(t, fx, ctx, []byte("input"))

	err := fx.Compute.SubmitResult(ctx, nodeAddrA, id, hashOf(nil), nil, "cid", hashOf(nil), make([]byte, ed25519.SignatureSize))
	require.ErrorIs(t, err, types.ErrRequestAlreadyProcessed)
}

type recordingPinner struct {
	pins   map[string]types.PinTier
	unpins []string
}

func (p *recordingPinner) Pin(_ context.Context, cid string, tier types.PinTier) error {
	if p.pins == nil {
		p.pins = make(map[string]types.PinTier)
	}
	p.pins[cid] = tier
	return nil
}

func (p *recordingPinner) Unpin(_ context.Context, cid string) error {
	p.unpins = append(p.unpins, cid)
	return nil
}

func TestPinningTiersFollowPrivacyMode(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	pinner := &recordingPinner{}
	fx.Compute.SetPinningHook(pinner)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	testkeeper.FundAccount(t, ctx, fx.Bank, requesterAddr, params.RequestFee)

	id, err := fx.Compute.SubmitRequest(ctx, requesterAddr, 1, types.PrivacyModePrivate, hashOf([]byte("secret")), []byte("secret"), nil)
	require.NoError(t, err)

	completeRequest(t, fx, ctx, id, keys, []byte("output"))

	require.Equal(t, types.PinTierCritical, pinner.pins["bafymanifest"])

	// private results carry no type index even when one is submitted
	result, found := fx.Compute.GetResult(ctx, id)
	require.True(t, found)
	require.Empty(t, result.TypeIndex)

	require.NoError(t, fx.Compute.DeleteResult(ctx, requesterAddr, id))
	require.Equal(t, []string{"bafymanifest"}, pinner.unpins)
}
