package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	SubmitRequest(context.Context, *MsgSubmitRequest) (*MsgSubmitRequestResponse, error)
	CancelRequest(context.Context, *MsgCancelRequest) (*MsgCancelRequestResponse, error)
	SubmitResult(context.Context, *MsgSubmitResult) (*MsgSubmitResultResponse, error)
	ForceFail(context.Context, *MsgForceFail) (*MsgForceFailResponse, error)
	UpdateResult(context.Context, *MsgUpdateResult) (*MsgUpdateResultResponse, error)
	DeleteResult(context.Context, *MsgDeleteResult) (*MsgDeleteResultResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgSubmitRequestResponse returns the id assigned to the new request
type MsgSubmitRequestResponse struct {
	RequestId uint64 `json:"request_id"`
}

// MsgCancelRequestResponse defines the response for CancelRequest
type MsgCancelRequestResponse struct{}

// MsgSubmitResultResponse defines the response for SubmitResult
type MsgSubmitResultResponse struct{}

// MsgForceFailResponse defines the response for ForceFail
type MsgForceFailResponse struct{}

// MsgUpdateResultResponse returns the id of the spawned recomputation request
type MsgUpdateResultResponse struct {
	RequestId uint64 `json:"request_id"`
}

// MsgDeleteResultResponse defines the response for DeleteResult
type MsgDeleteResultResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
