package types

import (
	"crypto/ed25519"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSubmitRequest{}
	_ sdk.Msg = &MsgCancelRequest{}
	_ sdk.Msg = &MsgSubmitResult{}
	_ sdk.Msg = &MsgForceFail{}
	_ sdk.Msg = &MsgUpdateResult{}
	_ sdk.Msg = &MsgDeleteResult{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSubmitRequest enqueues a new compute request.
type MsgSubmitRequest struct {
	Requester   string      `json:"requester"`
	ComputeType uint8       `json:"compute_type"`
	PrivacyMode PrivacyMode `json:"privacy_mode"`
	InputHash   []byte      `json:"input_hash"`
	Input       []byte      `json:"input"`
	UserPubkey  []byte      `json:"user_pubkey,omitempty"`
}

// NewMsgSubmitRequest creates a new MsgSubmitRequest instance
func NewMsgSubmitRequest(requester string, computeType uint8, privacyMode PrivacyMode, inputHash, input, userPubkey []byte) *MsgSubmitRequest {
	return &MsgSubmitRequest{
		Requester:   requester,
		ComputeType: computeType,
		PrivacyMode: privacyMode,
		InputHash:   inputHash,
		Input:       input,
		UserPubkey:  userPubkey,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitRequest) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitRequest) Type() string { return "submit_request" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitRequest) GetSigners() []sdk.AccAddress {
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{requester}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid requester address: %s", err)
	}
	if len(msg.InputHash) != InputHashSize {
		return sdkerrors.Wrapf(ErrInvalidRequest, "input hash must be %d bytes", InputHashSize)
	}
	if len(msg.Input) == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "input data is required")
	}
	if err := msg.PrivacyMode.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidRequest, err.Error())
	}
	return nil
}

// MsgCancelRequest cancels a still-pending request. Requester only.
type MsgCancelRequest struct {
	Requester string `json:"requester"`
	RequestId uint64 `json:"request_id"`
}

// NewMsgCancelRequest creates a new MsgCancelRequest instance
func NewMsgCancelRequest(requester string, requestID uint64) *MsgCancelRequest {
	return &MsgCancelRequest{Requester: requester, RequestId: requestID}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelRequest) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelRequest) Type() string { return "cancel_request" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelRequest) GetSigners() []sdk.AccAddress {
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{requester}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid requester address: %s", err)
	}
	if msg.RequestId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "request id cannot be zero")
	}
	return nil
}

// MsgSubmitResult delivers a signed TEE result for an assigned request.
type MsgSubmitResult struct {
	Node         string `json:"node"`
	RequestId    uint64 `json:"request_id"`
	OutputHash   []byte `json:"output_hash"`
	TypeIndex    []byte `json:"type_index,omitempty"`
	ManifestCid  string `json:"manifest_cid"`
	ManifestHash []byte `json:"manifest_hash"`
	Signature    []byte `json:"signature"`
}

// NewMsgSubmitResult creates a new MsgSubmitResult instance
func NewMsgSubmitResult(node string, requestID uint64, outputHash, typeIndex []byte, manifestCid string, manifestHash, signature []byte) *MsgSubmitResult {
	return &MsgSubmitResult{
		Node:         node,
		RequestId:    requestID,
		OutputHash:   outputHash,
		TypeIndex:    typeIndex,
		ManifestCid:  manifestCid,
		ManifestHash: manifestHash,
		Signature:    signature,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitResult) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitResult) Type() string { return "submit_result" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitResult) GetSigners() []sdk.AccAddress {
	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{node}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitResult) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid node address: %s", err)
	}
	if msg.RequestId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "request id cannot be zero")
	}
	if len(msg.OutputHash) != InputHashSize {
		return sdkerrors.Wrapf(ErrInvalidRequest, "output hash must be %d bytes", InputHashSize)
	}
	if len(msg.TypeIndex) > MaxTypeIndexLength {
		return sdkerrors.Wrapf(ErrInvalidRequest, "type index exceeds %d bytes", MaxTypeIndexLength)
	}
	if len(msg.ManifestCid) == 0 || len(msg.ManifestCid) > MaxManifestCidLength {
		return sdkerrors.Wrapf(ErrInvalidRequest, "manifest cid must be 1..%d bytes", MaxManifestCidLength)
	}
	if len(msg.ManifestHash) != ManifestHashSize {
		return sdkerrors.Wrapf(ErrInvalidRequest, "manifest hash must be %d bytes", ManifestHashSize)
	}
	if len(msg.Signature) != ed25519.SignatureSize {
		return sdkerrors.Wrapf(ErrSignatureInvalid, "signature must be %d bytes", ed25519.SignatureSize)
	}
	return nil
}

// MsgForceFail moves any non-terminal request to FAILED. Governance only.
type MsgForceFail struct {
	Authority string `json:"authority"`
	RequestId uint64 `json:"request_id"`
	Reason    string `json:"reason"`
}

// NewMsgForceFail creates a new MsgForceFail instance
func NewMsgForceFail(authority string, requestID uint64, reason string) *MsgForceFail {
	return &MsgForceFail{Authority: authority, RequestId: requestID, Reason: reason}
}

// Route implements the sdk.Msg interface
func (msg MsgForceFail) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgForceFail) Type() string { return "force_fail" }

// GetSigners implements the sdk.Msg interface
func (msg MsgForceFail) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgForceFail) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgForceFail) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.RequestId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "request id cannot be zero")
	}
	return nil
}

// MsgUpdateResult spawns a recomputation extending an existing result chain.
type MsgUpdateResult struct {
	Owner      string `json:"owner"`
	ResultId   uint64 `json:"result_id"`
	InputHash  []byte `json:"input_hash"`
	Input      []byte `json:"input"`
	UserPubkey []byte `json:"user_pubkey,omitempty"`
}

// NewMsgUpdateResult creates a new MsgUpdateResult instance
func NewMsgUpdateResult(owner string, resultID uint64, inputHash, input, userPubkey []byte) *MsgUpdateResult {
	return &MsgUpdateResult{
		Owner:      owner,
		ResultId:   resultID,
		InputHash:  inputHash,
		Input:      input,
		UserPubkey: userPubkey,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateResult) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateResult) Type() string { return "update_result" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateResult) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateResult) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if msg.ResultId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "result id cannot be zero")
	}
	if len(msg.InputHash) != InputHashSize {
		return sdkerrors.Wrapf(ErrInvalidRequest, "input hash must be %d bytes", InputHashSize)
	}
	if len(msg.Input) == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "input data is required")
	}
	return nil
}

// MsgDeleteResult removes a result version. Owner only.
type MsgDeleteResult struct {
	Owner    string `json:"owner"`
	ResultId uint64 `json:"result_id"`
}

// NewMsgDeleteResult creates a new MsgDeleteResult instance
func NewMsgDeleteResult(owner string, resultID uint64) *MsgDeleteResult {
	return &MsgDeleteResult{Owner: owner, ResultId: resultID}
}

// Route implements the sdk.Msg interface
func (msg MsgDeleteResult) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDeleteResult) Type() string { return "delete_result" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDeleteResult) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeleteResult) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeleteResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if msg.ResultId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "result id cannot be zero")
	}
	return nil
}

// MsgUpdateParams updates the compute module parameters. Governance only.
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
