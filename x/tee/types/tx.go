package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	RegisterNode(context.Context, *MsgRegisterNode) (*MsgRegisterNodeResponse, error)
	RefreshAttestation(context.Context, *MsgRefreshAttestation) (*MsgRefreshAttestationResponse, error)
	Bond(context.Context, *MsgBond) (*MsgBondResponse, error)
	Unbond(context.Context, *MsgUnbond) (*MsgUnbondResponse, error)
	WithdrawUnbonded(context.Context, *MsgWithdrawUnbonded) (*MsgWithdrawUnbondedResponse, error)
	DepositReward(context.Context, *MsgDepositReward) (*MsgDepositRewardResponse, error)
	ClaimReward(context.Context, *MsgClaimReward) (*MsgClaimRewardResponse, error)
	SlashNode(context.Context, *MsgSlashNode) (*MsgSlashNodeResponse, error)
	SuspendNode(context.Context, *MsgSuspendNode) (*MsgSuspendNodeResponse, error)
	ResumeNode(context.Context, *MsgResumeNode) (*MsgResumeNodeResponse, error)
	SetAllowedEnclaves(context.Context, *MsgSetAllowedEnclaves) (*MsgSetAllowedEnclavesResponse, error)
	SetAllowedSigners(context.Context, *MsgSetAllowedSigners) (*MsgSetAllowedSignersResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgRegisterNodeResponse defines the response for RegisterNode
type MsgRegisterNodeResponse struct{}

// MsgRefreshAttestationResponse defines the response for RefreshAttestation
type MsgRefreshAttestationResponse struct{}

// MsgBondResponse defines the response for Bond
type MsgBondResponse struct{}

// MsgUnbondResponse defines the response for Unbond
type MsgUnbondResponse struct {
	UnlockHeight int64 `json:"unlock_height"`
}

// MsgWithdrawUnbondedResponse defines the response for WithdrawUnbonded
type MsgWithdrawUnbondedResponse struct{}

// MsgDepositRewardResponse defines the response for DepositReward
type MsgDepositRewardResponse struct{}

// MsgClaimRewardResponse defines the response for ClaimReward
type MsgClaimRewardResponse struct{}

// MsgSlashNodeResponse defines the response for SlashNode
type MsgSlashNodeResponse struct{}

// MsgSuspendNodeResponse defines the response for SuspendNode
type MsgSuspendNodeResponse struct{}

// MsgResumeNodeResponse defines the response for ResumeNode
type MsgResumeNodeResponse struct{}

// MsgSetAllowedEnclavesResponse defines the response for SetAllowedEnclaves
type MsgSetAllowedEnclavesResponse struct{}

// MsgSetAllowedSignersResponse defines the response for SetAllowedSigners
type MsgSetAllowedSignersResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
