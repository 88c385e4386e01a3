package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/proto"
)

// The chain ships no generated protobuf code; the gogoproto plumbing below
// makes the hand-rolled tx types registrable with the interface registry and
// routable through the msg service router.

var (
	_ proto.Message = &MsgSubmitRequest{}
	_ proto.Message = &MsgSubmitRequestResponse{}
	_ proto.Message = &MsgCancelRequest{}
	_ proto.Message = &MsgCancelRequestResponse{}
	_ proto.Message = &MsgSubmitResult{}
	_ proto.Message = &MsgSubmitResultResponse{}
	_ proto.Message = &MsgForceFail{}
	_ proto.Message = &MsgForceFailResponse{}
	_ proto.Message = &MsgUpdateResult{}
	_ proto.Message = &MsgUpdateResultResponse{}
	_ proto.Message = &MsgDeleteResult{}
	_ proto.Message = &MsgDeleteResultResponse{}
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

func (msg *MsgSubmitRequest) Reset()                  { *msg = MsgSubmitRequest{} }
func (msg *MsgSubmitRequest) ProtoMessage()           {}
func (msg *MsgSubmitRequest) String() string          { return protoString(msg) }
func (msg *MsgSubmitRequest) XXX_MessageName() string { return "arcanum.compute.v1.MsgSubmitRequest" }

func (msg *MsgSubmitRequestResponse) Reset()         { *msg = MsgSubmitRequestResponse{} }
func (msg *MsgSubmitRequestResponse) ProtoMessage()  {}
func (msg *MsgSubmitRequestResponse) String() string { return protoString(msg) }
func (msg *MsgSubmitRequestResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgSubmitRequestResponse"
}

func (msg *MsgCancelRequest) Reset()                  { *msg = MsgCancelRequest{} }
func (msg *MsgCancelRequest) ProtoMessage()           {}
func (msg *MsgCancelRequest) String() string          { return protoString(msg) }
func (msg *MsgCancelRequest) XXX_MessageName() string { return "arcanum.compute.v1.MsgCancelRequest" }

func (msg *MsgCancelRequestResponse) Reset()         { *msg = MsgCancelRequestResponse{} }
func (msg *MsgCancelRequestResponse) ProtoMessage()  {}
func (msg *MsgCancelRequestResponse) String() string { return protoString(msg) }
func (msg *MsgCancelRequestResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgCancelRequestResponse"
}

func (msg *MsgSubmitResult) Reset()                  { *msg = MsgSubmitResult{} }
func (msg *MsgSubmitResult) ProtoMessage()           {}
func (msg *MsgSubmitResult) String() string          { return protoString(msg) }
func (msg *MsgSubmitResult) XXX_MessageName() string { return "arcanum.compute.v1.MsgSubmitResult" }

func (msg *MsgSubmitResultResponse) Reset()         { *msg = MsgSubmitResultResponse{} }
func (msg *MsgSubmitResultResponse) ProtoMessage()  {}
func (msg *MsgSubmitResultResponse) String() string { return protoString(msg) }
func (msg *MsgSubmitResultResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgSubmitResultResponse"
}

func (msg *MsgForceFail) Reset()                  { *msg = MsgForceFail{} }
func (msg *MsgForceFail) ProtoMessage()           {}
func (msg *MsgForceFail) String() string          { return protoString(msg) }
func (msg *MsgForceFail) XXX_MessageName() string { return "arcanum.compute.v1.MsgForceFail" }

func (msg *MsgForceFailResponse) Reset()         { *msg = MsgForceFailResponse{} }
func (msg *MsgForceFailResponse) ProtoMessage()  {}
func (msg *MsgForceFailResponse) String() string { return protoString(msg) }
func (msg *MsgForceFailResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgForceFailResponse"
}

func (msg *MsgUpdateResult) Reset()                  { *msg = MsgUpdateResult{} }
func (msg *MsgUpdateResult) ProtoMessage()           {}
func (msg *MsgUpdateResult) String() string          { return protoString(msg) }
func (msg *MsgUpdateResult) XXX_MessageName() string { return "arcanum.compute.v1.MsgUpdateResult" }

func (msg *MsgUpdateResultResponse) Reset()         { *msg = MsgUpdateResultResponse{} }
func (msg *MsgUpdateResultResponse) ProtoMessage()  {}
func (msg *MsgUpdateResultResponse) String() string { return protoString(msg) }
func (msg *MsgUpdateResultResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgUpdateResultResponse"
}

func (msg *MsgDeleteResult) Reset()                  { *msg = MsgDeleteResult{} }
func (msg *MsgDeleteResult) ProtoMessage()           {}
func (msg *MsgDeleteResult) String() string          { return protoString(msg) }
func (msg *MsgDeleteResult) XXX_MessageName() string { return "arcanum.compute.v1.MsgDeleteResult" }

func (msg *MsgDeleteResultResponse) Reset()         { *msg = MsgDeleteResultResponse{} }
func (msg *MsgDeleteResultResponse) ProtoMessage()  {}
func (msg *MsgDeleteResultResponse) String() string { return protoString(msg) }
func (msg *MsgDeleteResultResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgDeleteResultResponse"
}

func (msg *MsgUpdateParams) Reset()                  { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()           {}
func (msg *MsgUpdateParams) String() string          { return protoString(msg) }
func (msg *MsgUpdateParams) XXX_MessageName() string { return "arcanum.compute.v1.MsgUpdateParams" }

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) String() string { return protoString(msg) }
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "arcanum.compute.v1.MsgUpdateParamsResponse"
}
