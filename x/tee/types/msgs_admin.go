package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSlashNode{}
	_ sdk.Msg = &MsgSuspendNode{}
	_ sdk.Msg = &MsgResumeNode{}
	_ sdk.Msg = &MsgSetAllowedEnclaves{}
	_ sdk.Msg = &MsgSetAllowedSigners{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSlashNode confiscates part of a node's stake. Governance only.
type MsgSlashNode struct {
	Authority string   `json:"authority"`
	Node      string   `json:"node"`
	Amount    math.Int `json:"amount"`
	Reason    string   `json:"reason"`
}

// NewMsgSlashNode creates a new MsgSlashNode instance
func NewMsgSlashNode(authority, node string, amount math.Int, reason string) *MsgSlashNode {
	return &MsgSlashNode{Authority: authority, Node: node, Amount: amount, Reason: reason}
}

// Route implements the sdk.Msg interface
func (msg MsgSlashNode) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSlashNode) Type() string { return "slash_node" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSlashNode) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSlashNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSlashNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid node address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "slash amount must be positive")
	}
	return nil
}

// MsgSuspendNode takes a node out of scheduling rotation. Governance only.
type MsgSuspendNode struct {
	Authority string `json:"authority"`
	Node      string `json:"node"`
	Reason    string `json:"reason"`
}

// NewMsgSuspendNode creates a new MsgSuspendNode instance
func NewMsgSuspendNode(authority, node, reason string) *MsgSuspendNode {
	return &MsgSuspendNode{Authority: authority, Node: node, Reason: reason}
}

// Route implements the sdk.Msg interface
func (msg MsgSuspendNode) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSuspendNode) Type() string { return "suspend_node" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSuspendNode) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSuspendNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSuspendNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid node address: %s", err)
	}
	return nil
}

// MsgResumeNode returns a suspended node to rotation. Governance only.
type MsgResumeNode struct {
	Authority string `json:"authority"`
	Node      string `json:"node"`
}

// NewMsgResumeNode creates a new MsgResumeNode instance
func NewMsgResumeNode(authority, node string) *MsgResumeNode {
	return &MsgResumeNode{Authority: authority, Node: node}
}

// Route implements the sdk.Msg interface
func (msg MsgResumeNode) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResumeNode) Type() string { return "resume_node" }

// GetSigners implements the sdk.Msg interface
func (msg MsgResumeNode) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResumeNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResumeNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid node address: %s", err)
	}
	return nil
}

// MsgUpdateParams updates the tee module parameters. Governance only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}

// MsgSetAllowedEnclaves replaces the MRENCLAVE allow-list. Governance only.
type MsgSetAllowedEnclaves struct {
	Authority    string   `json:"authority"`
	Measurements []string `json:"measurements"`
}

// NewMsgSetAllowedEnclaves creates a new MsgSetAllowedEnclaves instance
func NewMsgSetAllowedEnclaves(authority string, measurements []string) *MsgSetAllowedEnclaves {
	return &MsgSetAllowedEnclaves{Authority: authority, Measurements: measurements}
}

// Route implements the sdk.Msg interface
func (msg MsgSetAllowedEnclaves) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetAllowedEnclaves) Type() string { return "set_allowed_enclaves" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetAllowedEnclaves) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetAllowedEnclaves) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetAllowedEnclaves) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	for _, m := range msg.Measurements {
		if err := validateMeasurement(m); err != nil {
			return sdkerrors.Wrapf(ErrInvalidMeasurement, "mr_enclave %s: %s", m, err)
		}
	}
	return nil
}

// MsgSetAllowedSigners replaces the MRSIGNER allow-list. Governance only.
type MsgSetAllowedSigners struct {
	Authority    string   `json:"authority"`
	Measurements []string `json:"measurements"`
}

// NewMsgSetAllowedSigners creates a new MsgSetAllowedSigners instance
func NewMsgSetAllowedSigners(authority string, measurements []string) *MsgSetAllowedSigners {
	return &MsgSetAllowedSigners{Authority: authority, Measurements: measurements}
}

// Route implements the sdk.Msg interface
func (msg MsgSetAllowedSigners) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetAllowedSigners) Type() string { return "set_allowed_signers" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetAllowedSigners) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetAllowedSigners) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetAllowedSigners) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	for _, m := range msg.Measurements {
		if err := validateMeasurement(m); err != nil {
			return sdkerrors.Wrapf(ErrInvalidMeasurement, "mr_signer %s: %s", m, err)
		}
	}
	return nil
}
