package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	SubmitExchangeRate(context.Context, *MsgSubmitExchangeRate) (*MsgSubmitExchangeRateResponse, error)
	SetColdStartParams(context.Context, *MsgSetColdStartParams) (*MsgSetColdStartParamsResponse, error)
	ResetColdStart(context.Context, *MsgResetColdStart) (*MsgResetColdStartResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgSubmitExchangeRateResponse defines the response for SubmitExchangeRate
type MsgSubmitExchangeRateResponse struct{}

// MsgSetColdStartParamsResponse defines the response for SetColdStartParams
type MsgSetColdStartParamsResponse struct{}

// MsgResetColdStartResponse defines the response for ResetColdStart
type MsgResetColdStartResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
