package keeper

import (
	"context"
	"fmt"

	sharedkeeper "github.com/arcanum-chain/arcanum/x/shared/keeper"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the escrow MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SetPause toggles the module-wide kill switch. Governance only.
func (ms msgServer) SetPause(goCtx context.Context, msg *types.MsgSetPause) (*types.MsgSetPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetPause: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	ms.SetPaused(goCtx, msg.Paused)
	return &types.MsgSetPauseResponse{}, nil
}

// UpdateParams updates the escrow module parameters. Governance only.
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
