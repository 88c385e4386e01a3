package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/arcanum-chain/arcanum/x/shared/keeper"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the tee MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterNode handles node registration
func (ms msgServer) RegisterNode(goCtx context.Context, msg *types.MsgRegisterNode) (*types.MsgRegisterNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterNode: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("RegisterNode: invalid sender address: %w", err)
	}

	if err := ms.Keeper.RegisterNode(goCtx, sender, msg.EnclavePubkey, msg.MrEnclave, msg.MrSigner, msg.TeeType); err != nil {
		return nil, fmt.Errorf("RegisterNode: %w", err)
	}
	return &types.MsgRegisterNodeResponse{}, nil
}

// RefreshAttestation handles attestation renewal
func (ms msgServer) RefreshAttestation(goCtx context.Context, msg *types.MsgRefreshAttestation) (*types.MsgRefreshAttestationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RefreshAttestation: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("RefreshAttestation: invalid sender address: %w", err)
	}

	if err := ms.Keeper.RefreshAttestation(goCtx, sender, msg.MrEnclave, msg.MrSigner); err != nil {
		return nil, fmt.Errorf("RefreshAttestation: %w", err)
	}
	return &types.MsgRefreshAttestationResponse{}, nil
}

// Bond handles stake deposits
func (ms msgServer) Bond(goCtx context.Context, msg *types.MsgBond) (*types.MsgBondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Bond: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Bond: invalid sender address: %w", err)
	}

	if err := ms.Keeper.Bond(goCtx, sender, msg.Amount); err != nil {
		return nil, fmt.Errorf("Bond: %w", err)
	}
	return &types.MsgBondResponse{}, nil
}

// Unbond starts the unbonding clock
func (ms msgServer) Unbond(goCtx context.Context, msg *types.MsgUnbond) (*types.MsgUnbondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unbond: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Unbond: invalid sender address: %w", err)
	}

	unlockHeight, err := ms.Keeper.Unbond(goCtx, sender, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Unbond: %w", err)
	}
	return &types.MsgUnbondResponse{UnlockHeight: unlockHeight}, nil
}

// WithdrawUnbonded pays out matured unbonding stake
func (ms msgServer) WithdrawUnbonded(goCtx context.Context, msg *types.MsgWithdrawUnbonded) (*types.MsgWithdrawUnbondedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawUnbonded: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("WithdrawUnbonded: invalid sender address: %w", err)
	}

	if err := ms.Keeper.WithdrawUnbonded(goCtx, sender); err != nil {
		return nil, fmt.Errorf("WithdrawUnbonded: %w", err)
	}
	return &types.MsgWithdrawUnbondedResponse{}, nil
}

// DepositReward funds the shared reward pool for a node
func (ms msgServer) DepositReward(goCtx context.Context, msg *types.MsgDepositReward) (*types.MsgDepositRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DepositReward: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("DepositReward: invalid sender address: %w", err)
	}
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, fmt.Errorf("DepositReward: invalid node address: %w", err)
	}

	if err := ms.Keeper.DepositReward(goCtx, sender, node, msg.Amount); err != nil {
		return nil, fmt.Errorf("DepositReward: %w", err)
	}
	return &types.MsgDepositRewardResponse{}, nil
}

// ClaimReward pays out accrued rewards
func (ms msgServer) ClaimReward(goCtx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimReward: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("ClaimReward: invalid sender address: %w", err)
	}

	if err := ms.Keeper.ClaimReward(goCtx, sender); err != nil {
		return nil, fmt.Errorf("ClaimReward: %w", err)
	}
	return &types.MsgClaimRewardResponse{}, nil
}

// SlashNode confiscates stake. Governance only.
func (ms msgServer) SlashNode(goCtx context.Context, msg *types.MsgSlashNode) (*types.MsgSlashNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SlashNode: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, fmt.Errorf("SlashNode: invalid node address: %w", err)
	}

	if err := ms.Keeper.Slash(goCtx, node, msg.Amount, msg.Reason); err != nil {
		return nil, fmt.Errorf("SlashNode: %w", err)
	}
	return &types.MsgSlashNodeResponse{}, nil
}

// SuspendNode removes a node from rotation. Governance only.
func (ms msgServer) SuspendNode(goCtx context.Context, msg *types.MsgSuspendNode) (*types.MsgSuspendNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SuspendNode: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, fmt.Errorf("SuspendNode: invalid node address: %w", err)
	}

	if err := ms.Keeper.SuspendNode(goCtx, node, msg.Reason); err != nil {
		return nil, fmt.Errorf("SuspendNode: %w", err)
	}
	return &types.MsgSuspendNodeResponse{}, nil
}

// ResumeNode returns a suspended node to rotation. Governance only.
func (ms msgServer) ResumeNode(goCtx context.Context, msg *types.MsgResumeNode) (*types.MsgResumeNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResumeNode: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, fmt.Errorf("ResumeNode: invalid node address: %w", err)
	}

	if err := ms.Keeper.ResumeNode(goCtx, node); err != nil {
		return nil, fmt.Errorf("ResumeNode: %w", err)
	}
	return &types.MsgResumeNodeResponse{}, nil
}

// SetAllowedEnclaves replaces the MRENCLAVE allow-list. Governance only.
func (ms msgServer) SetAllowedEnclaves(goCtx context.Context, msg *types.MsgSetAllowedEnclaves) (*types.MsgSetAllowedEnclavesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetAllowedEnclaves: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetAllowedEnclaves(goCtx, msg.Measurements); err != nil {
		return nil, fmt.Errorf("SetAllowedEnclaves: %w", err)
	}
	return &types.MsgSetAllowedEnclavesResponse{}, nil
}

// SetAllowedSigners replaces the MRSIGNER allow-list. Governance only.
func (ms msgServer) SetAllowedSigners(goCtx context.Context, msg *types.MsgSetAllowedSigners) (*types.MsgSetAllowedSignersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetAllowedSigners: validate: %w", err)
	}
	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetAllowedSigners(goCtx, msg.Measurements); err != nil {
		return nil, fmt.Errorf("SetAllowedSigners: %w", err)
	}
	return &types.MsgSetAllowedSignersResponse{}, nil
}

// UpdateParams updates the tee module parameters. Governance only.
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
