package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgRegisterNode{}
	_ sdk.Msg = &MsgRefreshAttestation{}
	_ sdk.Msg = &MsgBond{}
	_ sdk.Msg = &MsgUnbond{}
	_ sdk.Msg = &MsgWithdrawUnbonded{}
	_ sdk.Msg = &MsgDepositReward{}
	_ sdk.Msg = &MsgClaimReward{}
)

// MsgRegisterNode registers a new TEE node with its attestation evidence.
type MsgRegisterNode struct {
	Sender        string `json:"sender"`
	EnclavePubkey []byte `json:"enclave_pubkey"`
	MrEnclave     []byte `json:"mr_enclave"`
	MrSigner      []byte `json:"mr_signer"`
	TeeType       uint32 `json:"tee_type"`
}

// NewMsgRegisterNode creates a new MsgRegisterNode instance
func NewMsgRegisterNode(sender string, enclavePubkey, mrEnclave, mrSigner []byte, teeType uint32) *MsgRegisterNode {
	return &MsgRegisterNode{
		Sender:        sender,
		EnclavePubkey: enclavePubkey,
		MrEnclave:     mrEnclave,
		MrSigner:      mrSigner,
		TeeType:       teeType,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterNode) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterNode) Type() string { return "register_node" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterNode) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if len(msg.EnclavePubkey) != EnclavePubkeySize {
		return sdkerrors.Wrapf(ErrAttestationInvalid, "enclave pubkey must be %d bytes", EnclavePubkeySize)
	}
	if len(msg.MrEnclave) != MeasurementSize {
		return sdkerrors.Wrapf(ErrInvalidMeasurement, "mr_enclave must be %d bytes", MeasurementSize)
	}
	if len(msg.MrSigner) != MeasurementSize {
		return sdkerrors.Wrapf(ErrInvalidMeasurement, "mr_signer must be %d bytes", MeasurementSize)
	}
	return nil
}

// MsgRefreshAttestation renews a node's attestation before the TTL lapses.
type MsgRefreshAttestation struct {
	Sender    string `json:"sender"`
	MrEnclave []byte `json:"mr_enclave"`
	MrSigner  []byte `json:"mr_signer"`
}

// NewMsgRefreshAttestation creates a new MsgRefreshAttestation instance
func NewMsgRefreshAttestation(sender string, mrEnclave, mrSigner []byte) *MsgRefreshAttestation {
	return &MsgRefreshAttestation{Sender: sender, MrEnclave: mrEnclave, MrSigner: mrSigner}
}

// Route implements the sdk.Msg interface
func (msg MsgRefreshAttestation) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRefreshAttestation) Type() string { return "refresh_attestation" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRefreshAttestation) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRefreshAttestation) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRefreshAttestation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if len(msg.MrEnclave) != MeasurementSize || len(msg.MrSigner) != MeasurementSize {
		return sdkerrors.Wrapf(ErrInvalidMeasurement, "measurements must be %d bytes", MeasurementSize)
	}
	return nil
}

// MsgBond adds stake to a node.
type MsgBond struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

// NewMsgBond creates a new MsgBond instance
func NewMsgBond(sender string, amount math.Int) *MsgBond {
	return &MsgBond{Sender: sender, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgBond) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBond) Type() string { return "bond" }

// GetSigners implements the sdk.Msg interface
func (msg MsgBond) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "bond amount must be positive")
	}
	return nil
}

// MsgUnbond starts the unbonding clock for part of a node's stake.
type MsgUnbond struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

// NewMsgUnbond creates a new MsgUnbond instance
func NewMsgUnbond(sender string, amount math.Int) *MsgUnbond {
	return &MsgUnbond{Sender: sender, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgUnbond) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUnbond) Type() string { return "unbond" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUnbond) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUnbond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUnbond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "unbond amount must be positive")
	}
	return nil
}

// MsgWithdrawUnbonded withdraws stake whose unbonding period has elapsed.
type MsgWithdrawUnbonded struct {
	Sender string `json:"sender"`
}

// NewMsgWithdrawUnbonded creates a new MsgWithdrawUnbonded instance
func NewMsgWithdrawUnbonded(sender string) *MsgWithdrawUnbonded {
	return &MsgWithdrawUnbonded{Sender: sender}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawUnbonded) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdrawUnbonded) Type() string { return "withdraw_unbonded" }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawUnbonded) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawUnbonded) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawUnbonded) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}

// MsgDepositReward funds the shared reward pool, crediting a node.
type MsgDepositReward struct {
	Sender string   `json:"sender"`
	Node   string   `json:"node"`
	Amount math.Int `json:"amount"`
}

// NewMsgDepositReward creates a new MsgDepositReward instance
func NewMsgDepositReward(sender, node string, amount math.Int) *MsgDepositReward {
	return &MsgDepositReward{Sender: sender, Node: node, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgDepositReward) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDepositReward) Type() string { return "deposit_reward" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDepositReward) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDepositReward) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDepositReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid node address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "deposit amount must be positive")
	}
	return nil
}

// MsgClaimReward pays out a node's accrued rewards.
type MsgClaimReward struct {
	Sender string `json:"sender"`
}

// NewMsgClaimReward creates a new MsgClaimReward instance
func NewMsgClaimReward(sender string) *MsgClaimReward {
	return &MsgClaimReward{Sender: sender}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimReward) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaimReward) Type() string { return "claim_reward" }

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimReward) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimReward) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}
