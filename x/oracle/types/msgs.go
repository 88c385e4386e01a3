package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSubmitExchangeRate{}
	_ sdk.Msg = &MsgSetColdStartParams{}
	_ sdk.Msg = &MsgResetColdStart{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSubmitExchangeRate carries a freshly aggregated CNY/USDT rate from the
// ratefeed worker. Only feed authorities may submit.
type MsgSubmitExchangeRate struct {
	Feeder string `json:"feeder"`
	Rate   uint64 `json:"rate"`
}

// NewMsgSubmitExchangeRate creates a new MsgSubmitExchangeRate instance
func NewMsgSubmitExchangeRate(feeder string, rate uint64) *MsgSubmitExchangeRate {
	return &MsgSubmitExchangeRate{Feeder: feeder, Rate: rate}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitExchangeRate) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitExchangeRate) Type() string { return "submit_exchange_rate" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitExchangeRate) GetSigners() []sdk.AccAddress {
	feeder, err := sdk.AccAddressFromBech32(msg.Feeder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{feeder}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitExchangeRate) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitExchangeRate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Feeder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid feeder address: %s", err)
	}
	if msg.Rate < RateLowerBound || msg.Rate > RateUpperBound {
		return sdkerrors.Wrapf(ErrRateOutOfBand, "rate %d outside [%d, %d]", msg.Rate, RateLowerBound, RateUpperBound)
	}
	return nil
}

// MsgSetColdStartParams adjusts the cold-start threshold and default price.
// A zero field leaves the current value unchanged. Only valid while the
// cold-start latch is down.
type MsgSetColdStartParams struct {
	Authority          string `json:"authority"`
	ColdStartThreshold uint64 `json:"cold_start_threshold,omitempty"`
	DefaultPrice       uint64 `json:"default_price,omitempty"`
}

// NewMsgSetColdStartParams creates a new MsgSetColdStartParams instance
func NewMsgSetColdStartParams(authority string, threshold, defaultPrice uint64) *MsgSetColdStartParams {
	return &MsgSetColdStartParams{
		Authority:          authority,
		ColdStartThreshold: threshold,
		DefaultPrice:       defaultPrice,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetColdStartParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetColdStartParams) Type() string { return "set_cold_start_params" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetColdStartParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetColdStartParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetColdStartParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.ColdStartThreshold == 0 && msg.DefaultPrice == 0 {
		return fmt.Errorf("nothing to change")
	}
	return nil
}

// MsgResetColdStart re-arms the cold-start latch. Only valid while the latch
// is up.
type MsgResetColdStart struct {
	Authority string `json:"authority"`
	Reason    string `json:"reason"`
}

// NewMsgResetColdStart creates a new MsgResetColdStart instance
func NewMsgResetColdStart(authority, reason string) *MsgResetColdStart {
	return &MsgResetColdStart{Authority: authority, Reason: reason}
}

// Route implements the sdk.Msg interface
func (msg MsgResetColdStart) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResetColdStart) Type() string { return "reset_cold_start" }

// GetSigners implements the sdk.Msg interface
func (msg MsgResetColdStart) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResetColdStart) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResetColdStart) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.Reason == "" {
		return fmt.Errorf("reason cannot be empty")
	}
	return nil
}

// MsgUpdateParams updates the oracle module parameters via governance.
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
