package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	SetPause(context.Context, *MsgSetPause) (*MsgSetPauseResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgSetPauseResponse defines the response for SetPause
type MsgSetPauseResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
