package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/arcanum-chain/arcanum/x/shared/keeper"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the compute MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SubmitRequest handles new compute requests
func (ms msgServer) SubmitRequest(goCtx context.Context, msg *types.MsgSubmitRequest) (*types.MsgSubmitRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SubmitRequest: validate: %w", err)
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, fmt.Errorf("SubmitRequest: invalid requester address: %w", err)
	}

	requestID, err := ms.Keeper.SubmitRequest(goCtx, requester, msg.ComputeType, msg.PrivacyMode, msg.InputHash, msg.Input, msg.UserPubkey)
	if err != nil {
		return nil, fmt.Errorf("SubmitRequest: %w", err)
	}
	return &types.MsgSubmitRequestResponse{RequestId: requestID}, nil
}

// CancelRequest handles request cancellation
func (ms msgServer) CancelRequest(goCtx context.Context, msg *types.MsgCancelRequest) (*types.MsgCancelRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelRequest: validate: %w", err)
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, fmt.Errorf("CancelRequest: invalid requester address: %w", err)
	}

	if err := ms.Keeper.CancelRequest(goCtx, requester, msg.RequestId); err != nil {
		return nil, fmt.Errorf("CancelRequest: %w", err)
	}
	return &types.MsgCancelRequestResponse{}, nil
}

// SubmitResult handles signed TEE result submissions
func (ms msgServer) SubmitResult(goCtx context.Context, msg *types.MsgSubmitResult) (*types.MsgSubmitResultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SubmitResult: validate: %w", err)
	}
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, fmt.Errorf("SubmitResult: invalid node address: %w", err)
	}

	if err := ms.Keeper.SubmitResult(goCtx, node, msg.RequestId, msg.OutputHash, msg.TypeIndex, msg.ManifestCid, msg.ManifestHash, msg.Signature); err != nil {
		return nil, fmt.Errorf("SubmitResult: %w", err)
	}
	return &types.MsgSubmitResultResponse{}, nil
}

// ForceFail handles administrative request termination. Governance only.
func (ms msgServer) ForceFail(goCtx context.Context, msg *types.MsgForceFail) (*types.MsgForceFailResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ForceFail: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ForceFail(goCtx, msg.RequestId, msg.Reason); err != nil {
		return nil, fmt.Errorf("ForceFail: %w", err)
	}
	return &types.MsgForceFailResponse{}, nil
}

// UpdateResult handles recomputation requests extending a result chain
func (ms msgServer) UpdateResult(goCtx context.Context, msg *types.MsgUpdateResult) (*types.MsgUpdateResultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateResult: validate: %w", err)
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("UpdateResult: invalid owner address: %w", err)
	}

	requestID, err := ms.Keeper.UpdateResult(goCtx, owner, msg.ResultId, msg.InputHash, msg.Input, msg.UserPubkey)
	if err != nil {
		return nil, fmt.Errorf("UpdateResult: %w", err)
	}
	return &types.MsgUpdateResultResponse{RequestId: requestID}, nil
}

// DeleteResult handles result deletion
func (ms msgServer) DeleteResult(goCtx context.Context, msg *types.MsgDeleteResult) (*types.MsgDeleteResultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DeleteResult: validate: %w", err)
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("DeleteResult: invalid owner address: %w", err)
	}

	if err := ms.Keeper.DeleteResult(goCtx, owner, msg.ResultId); err != nil {
		return nil, fmt.Errorf("DeleteResult: %w", err)
	}
	return &types.MsgDeleteResultResponse{}, nil
}

// UpdateParams updates the compute module parameters. Governance only.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
