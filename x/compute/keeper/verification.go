package keeper

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	teetypes "github.com/arcanum-chain/arcanum/x/tee/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// SubmitResult processes a signed TEE result for a processing request.
// A valid signature completes the request, persists the result and settles
// the fee into the node reward flow. An invalid signature fails the request
// and slashes the node.
func (k Keeper) SubmitResult(ctx context.Context, node sdk.AccAddress, requestID uint64, outputHash, typeIndex []byte, manifestCid string, manifestHash, signature []byte) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	request, found := k.GetRequest(ctx, requestID)
	if !found {
		return types.ErrRequestNotFound.Wrapf("request %d", requestID)
	}
	if request.Status != types.RequestStatusProcessing {
		return types.ErrRequestAlreadyProcessed.Wrapf("request %d is %s", requestID, request.Status)
	}
	if request.AssignedNode != node.String() {
		return types.ErrNotAssigned.Wrapf("request %d assigned to %s", requestID, request.AssignedNode)
	}

	enclavePubkey, err := k.teeKeeper.GetEnclavePubkey(ctx, node)
	if err != nil {
		return fmt.Errorf("failed to load enclave pubkey: %w", err)
	}

	message := types.ResultSigningBytes(requestID, request.InputHash, outputHash, manifestHash)
	if !verifyEnclaveSignature(enclavePubkey, message, signature) {
		return k.failInvalidSignature(ctx, request, node)
	}

	k.releaseAssignment(ctx, request)
	request.Status = types.RequestStatusCompleted
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}

	if err := k.persistResult(ctx, request, node, outputHash, typeIndex, manifestCid, manifestHash, signature); err != nil {
		return err
	}
	k.clearTransientData(ctx, requestID)

	if err := k.settleFee(ctx, request, node); err != nil {
		return err
	}

	k.metrics.RequestsCompleted.WithLabelValues(node.String()).Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCompleted,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
		),
	)
	return nil
}

// failInvalidSignature terminates a request whose result signature did not
// verify. The requester is refunded and the node is slashed. Returns nil so
// the failure transition is committed rather than rolled back with the tx.
func (k Keeper) failInvalidSignature(ctx context.Context, request types.Request, node sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	k.releaseAssignment(ctx, request)
	request.Status = types.RequestStatusFailed
	request.FailureReason = "result signature invalid"
	request.AssignedNode = ""
	if err := k.SetRequest(ctx, request); err != nil {
		return err
	}
	k.clearTransientData(ctx, request.Id)

	if err := k.refundFee(ctx, request); err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.SlashOnInvalidSignature.IsPositive() {
		if err := k.teeKeeper.Slash(ctx, node, params.SlashOnInvalidSignature, "invalid result signature"); err != nil {
			sdkCtx.Logger().Error("failed to slash node", "node", node.String(), "error", err)
		}
	}

	k.metrics.InvalidSignatures.WithLabelValues(node.String()).Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlashCandidate,
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", request.Id)),
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyReason, "invalid result signature"),
		),
	)
	return nil
}

// settleFee releases the escrowed fee into the reward pool and accrues the
// node reward. Any fee above the per-result reward stays in the pool as
// protocol revenue.
func (k Keeper) settleFee(ctx context.Context, request types.Request, node sdk.AccAddress) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if !params.RequestFee.IsPositive() {
		return nil
	}

	if err := k.escrowKeeper.ReleaseAllToModule(ctx, escrowLockID(request.Id), teetypes.ModuleName); err != nil {
		return fmt.Errorf("failed to release request fee: %w", err)
	}

	reward := params.RequestFee
	if params.RewardPerResult.IsPositive() && params.RewardPerResult.LT(reward) {
		reward = params.RewardPerResult
	}
	if err := k.teeKeeper.AccrueReward(ctx, node, reward); err != nil {
		return fmt.Errorf("failed to accrue node reward: %w", err)
	}
	return nil
}

// lowOrderPoints are the 8 small-subgroup points of ed25519. Keys equal to
// any of these allow signature forgery and are rejected outright.
var lowOrderPoints = [][]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0xec, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	{0xc7, 0x17, 0x6a, 0x70, 0x3d, 0x4d, 0xd8, 0x4f, 0xba, 0x3c, 0x0b, 0x76, 0x0d, 0x10, 0x67, 0x0f, 0x2a, 0x20, 0x53, 0xfa, 0x2c, 0x39, 0xcc, 0xc6, 0x4e, 0xc7, 0xfd, 0x77, 0x92, 0xac, 0x03, 0x7a},
	{0xc7, 0x17, 0x6a, 0x70, 0x3d, 0x4d, 0xd8, 0x4f, 0xba, 0x3c, 0x0b, 0x76, 0x0d, 0x10, 0x67, 0x0f, 0x2a, 0x20, 0x53, 0xfa, 0x2c, 0x39, 0xcc, 0xc6, 0x4e, 0xc7, 0xfd, 0x77, 0x92, 0xac, 0x03, 0xfa},
	{0x26, 0xe8, 0x95, 0x8f, 0xc2, 0xb2, 0x27, 0xb0, 0x45, 0xc3, 0xf4, 0x89, 0xf2, 0xef, 0x98, 0xf0, 0xd5, 0xdf, 0xac, 0x05, 0xd3, 0xc6, 0x33, 0x39, 0xb1, 0x38, 0x02, 0x88, 0x6d, 0x53, 0xfc, 0x05},
	{0x26, 0xe8, 0x95, 0x8f, 0xc2, 0xb2, 0x27, 0xb0, 0x45, 0xc3, 0xf4, 0x89, 0xf2, 0xef, 0x98, 0xf0, 0xd5, 0xdf, 0xac, 0x05, 0xd3, 0xc6, 0x33, 0x39, 0xb1, 0x38, 0x02, 0x88, 0x6d, 0x53, 0xfc, 0x85},
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80},
}

// verifyEnclaveSignature checks an ed25519 signature over the canonical
// result message, rejecting malformed and small-subgroup keys.
func verifyEnclaveSignature(pubkey, message, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	if len(pubkey) != ed25519.PublicKeySize {
		return false
	}
	for _, lowOrder := range lowOrderPoints {
		if bytes.Equal(pubkey, lowOrder) {
			return false
		}
	}
	return ed25519.Verify(ed25519.PublicKey(pubkey), message, signature)
}
