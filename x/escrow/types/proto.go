package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/proto"
)

// The chain ships no generated protobuf code; the gogoproto plumbing below
// makes the hand-rolled tx types registrable with the interface registry and
// routable through the msg service router.

var (
	_ proto.Message = &MsgSetPause{}
	_ proto.Message = &MsgSetPauseResponse{}
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

func (msg *MsgSetPause) Reset()                  { *msg = MsgSetPause{} }
func (msg *MsgSetPause) ProtoMessage()           {}
func (msg *MsgSetPause) String() string          { return protoString(msg) }
func (msg *MsgSetPause) XXX_MessageName() string { return "arcanum.escrow.v1.MsgSetPause" }

func (msg *MsgSetPauseResponse) Reset()         { *msg = MsgSetPauseResponse{} }
func (msg *MsgSetPauseResponse) ProtoMessage()  {}
func (msg *MsgSetPauseResponse) String() string { return protoString(msg) }
func (msg *MsgSetPauseResponse) XXX_MessageName() string {
	return "arcanum.escrow.v1.MsgSetPauseResponse"
}

func (msg *MsgUpdateParams) Reset()                  { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()           {}
func (msg *MsgUpdateParams) String() string          { return protoString(msg) }
func (msg *MsgUpdateParams) XXX_MessageName() string { return "arcanum.escrow.v1.MsgUpdateParams" }

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) String() string { return protoString(msg) }
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "arcanum.escrow.v1.MsgUpdateParamsResponse"
}
