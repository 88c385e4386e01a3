package keeper

import (
	"context"
	"fmt"

	sharedkeeper "github.com/arcanum-chain/arcanum/x/shared/keeper"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the oracle MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SubmitExchangeRate handles rate submissions from feed authorities
func (ms msgServer) SubmitExchangeRate(goCtx context.Context, msg *types.MsgSubmitExchangeRate) (*types.MsgSubmitExchangeRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SubmitExchangeRate: validate: %w", err)
	}

	params, err := ms.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("SubmitExchangeRate: %w", err)
	}
	if !params.IsFeedAuthority(msg.Feeder) {
		return nil, types.ErrUnauthorizedFeeder.Wrapf("feeder %s", msg.Feeder)
	}

	if err := ms.SetExchangeRate(goCtx, msg.Rate); err != nil {
		return nil, fmt.Errorf("SubmitExchangeRate: %w", err)
	}
	return &types.MsgSubmitExchangeRateResponse{}, nil
}

// SetColdStartParams handles cold-start parameter changes
func (ms msgServer) SetColdStartParams(goCtx context.Context, msg *types.MsgSetColdStartParams) (*types.MsgSetColdStartParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetColdStartParams: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetColdStartParams(goCtx, msg.ColdStartThreshold, msg.DefaultPrice); err != nil {
		return nil, fmt.Errorf("SetColdStartParams: %w", err)
	}
	return &types.MsgSetColdStartParamsResponse{}, nil
}

// ResetColdStart handles re-arming the cold-start latch
func (ms msgServer) ResetColdStart(goCtx context.Context, msg *types.MsgResetColdStart) (*types.MsgResetColdStartResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResetColdStart: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ResetColdStart(goCtx, msg.Reason); err != nil {
		return nil, fmt.Errorf("ResetColdStart: %w", err)
	}
	return &types.MsgResetColdStartResponse{}, nil
}

// UpdateParams handles governance parameter updates
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
