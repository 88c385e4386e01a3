package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/proto"
)

// The chain ships no generated protobuf code; the gogoproto plumbing below
// makes the hand-rolled tx types registrable with the interface registry and
// routable through the msg service router.

var (
	_ proto.Message = &MsgSubmitExchangeRate{}
	_ proto.Message = &MsgSubmitExchangeRateResponse{}
	_ proto.Message = &MsgSetColdStartParams{}
	_ proto.Message = &MsgSetColdStartParamsResponse{}
	_ proto.Message = &MsgResetColdStart{}
	_ proto.Message = &MsgResetColdStartResponse{}
	_ proto.Message = &MsgUpdateParams{}
	_ proto.Message = &MsgUpdateParamsResponse{}
)

func protoString(msg any) string {
	out, err := json.Marshal(msg)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func (msg *MsgSubmitExchangeRate) Reset()         { *msg = MsgSubmitExchangeRate{} }
func (msg *MsgSubmitExchangeRate) ProtoMessage()  {}
func (msg *MsgSubmitExchangeRate) String() string { return protoString(msg) }
func (msg *MsgSubmitExchangeRate) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgSubmitExchangeRate"
}

func (msg *MsgSubmitExchangeRateResponse) Reset()         { *msg = MsgSubmitExchangeRateResponse{} }
func (msg *MsgSubmitExchangeRateResponse) ProtoMessage()  {}
func (msg *MsgSubmitExchangeRateResponse) String() string { return protoString(msg) }
func (msg *MsgSubmitExchangeRateResponse) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgSubmitExchangeRateResponse"
}

func (msg *MsgSetColdStartParams) Reset()         { *msg = MsgSetColdStartParams{} }
func (msg *MsgSetColdStartParams) ProtoMessage()  {}
func (msg *MsgSetColdStartParams) String() string { return protoString(msg) }
func (msg *MsgSetColdStartParams) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgSetColdStartParams"
}

func (msg *MsgSetColdStartParamsResponse) Reset()         { *msg = MsgSetColdStartParamsResponse{} }
func (msg *MsgSetColdStartParamsResponse) ProtoMessage()  {}
func (msg *MsgSetColdStartParamsResponse) String() string { return protoString(msg) }
func (msg *MsgSetColdStartParamsResponse) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgSetColdStartParamsResponse"
}

func (msg *MsgResetColdStart) Reset()                  { *msg = MsgResetColdStart{} }
func (msg *MsgResetColdStart) ProtoMessage()           {}
func (msg *MsgResetColdStart) String() string          { return protoString(msg) }
func (msg *MsgResetColdStart) XXX_MessageName() string { return "arcanum.oracle.v1.MsgResetColdStart" }

func (msg *MsgResetColdStartResponse) Reset()         { *msg = MsgResetColdStartResponse{} }
func (msg *MsgResetColdStartResponse) ProtoMessage()  {}
func (msg *MsgResetColdStartResponse) String() string { return protoString(msg) }
func (msg *MsgResetColdStartResponse) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgResetColdStartResponse"
}

func (msg *MsgUpdateParams) Reset()                  { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()           {}
func (msg *MsgUpdateParams) String() string          { return protoString(msg) }
func (msg *MsgUpdateParams) XXX_MessageName() string { return "arcanum.oracle.v1.MsgUpdateParams" }

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) String() string { return protoString(msg) }
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "arcanum.oracle.v1.MsgUpdateParamsResponse"
}
