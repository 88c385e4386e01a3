package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetPause{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetPause toggles the module-wide kill switch. Governance only.
type MsgSetPause struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

// NewMsgSetPause creates a new MsgSetPause instance
func NewMsgSetPause(authority string, paused bool) *MsgSetPause {
	return &MsgSetPause{Authority: authority, Paused: paused}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPause) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPause) Type() string { return "set_pause" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPause) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPause) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

// MsgUpdateParams updates the escrow module parameters. Governance only.
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
