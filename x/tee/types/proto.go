package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/proto"
)

// The chain ships no generated protobuf code; the gogoproto plumbing below
// makes the hand-rolled tx types registrable with the interface registry and
// routable through the msg service router.

var (
	_ proto.Message = &MsgRegisterNode{}
	_ proto.Message = &MsgRegisterNodeResponse{}
	_ proto.Message = &MsgRefreshAttestation{}
	_ proto.Message = &MsgRefreshAttestationResponse{}
	_ proto.Message = &MsgBond{}
	_ proto.Message = &MsgBondResponse{}
	_ proto.Message = &MsgUnbond{}
	_ proto.Message = &MsgUnbondResponse{}
	_ proto.Message = &MsgWithdrawUnbonded{}
	_ proto.Message = &MsgWithdrawUnbondedResponse{}
	_ proto.Message = &MsgDepositReward{}
	_ proto.Message = &MsgDepositRewardResponse{}
	_ proto.Message = &MsgClaimReward{}
	_ proto.Message = &MsgClaimRewardResponse{}
	_ proto.Message = &MsgSlashNode{}
	_ proto.Message = &MsgSlashNodeResponse{}
	_ proto.Message = &MsgSuspendNode{}
	_ proto.Message = &MsgSuspendNodeResponse{}
	_ proto.Message = &MsgResumeNode{}
	_ proto.Message = &MsgResumeNodeResponse{}
	_ proto.Message = &MsgSetAllowedEnclaves{}
	_ proto.Message = &MsgSetAllowedEnclavesResponse{}
	_ proto.Message = &MsgSetAllowedSigners{}
	_ proto.Message = &MsgSetAllowedSignersResponse{}
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

func (msg *MsgRegisterNode) Reset()                  { *msg = MsgRegisterNode{} }
func (msg *MsgRegisterNode) ProtoMessage()           {}
func (msg *MsgRegisterNode) String() string          { return protoString(msg) }
func (msg *MsgRegisterNode) XXX_MessageName() string { return "arcanum.tee.v1.MsgRegisterNode" }

func (msg *MsgRegisterNodeResponse) Reset()         { *msg = MsgRegisterNodeResponse{} }
func (msg *MsgRegisterNodeResponse) ProtoMessage()  {}
func (msg *MsgRegisterNodeResponse) String() string { return protoString(msg) }
func (msg *MsgRegisterNodeResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgRegisterNodeResponse"
}

func (msg *MsgRefreshAttestation) Reset()         { *msg = MsgRefreshAttestation{} }
func (msg *MsgRefreshAttestation) ProtoMessage()  {}
func (msg *MsgRefreshAttestation) String() string { return protoString(msg) }
func (msg *MsgRefreshAttestation) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgRefreshAttestation"
}

func (msg *MsgRefreshAttestationResponse) Reset()         { *msg = MsgRefreshAttestationResponse{} }
func (msg *MsgRefreshAttestationResponse) ProtoMessage()  {}
func (msg *MsgRefreshAttestationResponse) String() string { return protoString(msg) }
func (msg *MsgRefreshAttestationResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgRefreshAttestationResponse"
}

func (msg *MsgBond) Reset()                  { *msg = MsgBond{} }
func (msg *MsgBond) ProtoMessage()           {}
func (msg *MsgBond) String() string          { return protoString(msg) }
func (msg *MsgBond) XXX_MessageName() string { return "arcanum.tee.v1.MsgBond" }

func (msg *MsgBondResponse) Reset()                  { *msg = MsgBondResponse{} }
func (msg *MsgBondResponse) ProtoMessage()           {}
func (msg *MsgBondResponse) String() string          { return protoString(msg) }
func (msg *MsgBondResponse) XXX_MessageName() string { return "arcanum.tee.v1.MsgBondResponse" }

func (msg *MsgUnbond) Reset()                  { *msg = MsgUnbond{} }
func (msg *MsgUnbond) ProtoMessage()           {}
func (msg *MsgUnbond) String() string          { return protoString(msg) }
func (msg *MsgUnbond) XXX_MessageName() string { return "arcanum.tee.v1.MsgUnbond" }

func (msg *MsgUnbondResponse) Reset()                  { *msg = MsgUnbondResponse{} }
func (msg *MsgUnbondResponse) ProtoMessage()           {}
func (msg *MsgUnbondResponse) String() string          { return protoString(msg) }
func (msg *MsgUnbondResponse) XXX_MessageName() string { return "arcanum.tee.v1.MsgUnbondResponse" }

func (msg *MsgWithdrawUnbonded) Reset()                  { *msg = MsgWithdrawUnbonded{} }
func (msg *MsgWithdrawUnbonded) ProtoMessage()           {}
func (msg *MsgWithdrawUnbonded) String() string          { return protoString(msg) }
func (msg *MsgWithdrawUnbonded) XXX_MessageName() string { return "arcanum.tee.v1.MsgWithdrawUnbonded" }

func (msg *MsgWithdrawUnbondedResponse) Reset()         { *msg = MsgWithdrawUnbondedResponse{} }
func (msg *MsgWithdrawUnbondedResponse) ProtoMessage()  {}
func (msg *MsgWithdrawUnbondedResponse) String() string { return protoString(msg) }
func (msg *MsgWithdrawUnbondedResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgWithdrawUnbondedResponse"
}

func (msg *MsgDepositReward) Reset()                  { *msg = MsgDepositReward{} }
func (msg *MsgDepositReward) ProtoMessage()           {}
func (msg *MsgDepositReward) String() string          { return protoString(msg) }
func (msg *MsgDepositReward) XXX_MessageName() string { return "arcanum.tee.v1.MsgDepositReward" }

func (msg *MsgDepositRewardResponse) Reset()         { *msg = MsgDepositRewardResponse{} }
func (msg *MsgDepositRewardResponse) ProtoMessage()  {}
func (msg *MsgDepositRewardResponse) String() string { return protoString(msg) }
func (msg *MsgDepositRewardResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgDepositRewardResponse"
}

func (msg *MsgClaimReward) Reset()                  { *msg = MsgClaimReward{} }
func (msg *MsgClaimReward) ProtoMessage()           {}
func (msg *MsgClaimReward) String() string          { return protoString(msg) }
func (msg *MsgClaimReward) XXX_MessageName() string { return "arcanum.tee.v1.MsgClaimReward" }

func (msg *MsgClaimRewardResponse) Reset()         { *msg = MsgClaimRewardResponse{} }
func (msg *MsgClaimRewardResponse) ProtoMessage()  {}
func (msg *MsgClaimRewardResponse) String() string { return protoString(msg) }
func (msg *MsgClaimRewardResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgClaimRewardResponse"
}

func (msg *MsgSlashNode) Reset()                  { *msg = MsgSlashNode{} }
func (msg *MsgSlashNode) ProtoMessage()           {}
func (msg *MsgSlashNode) String() string          { return protoString(msg) }
func (msg *MsgSlashNode) XXX_MessageName() string { return "arcanum.tee.v1.MsgSlashNode" }

func (msg *MsgSlashNodeResponse) Reset()                  { *msg = MsgSlashNodeResponse{} }
func (msg *MsgSlashNodeResponse) ProtoMessage()           {}
func (msg *MsgSlashNodeResponse) String() string          { return protoString(msg) }
func (msg *MsgSlashNodeResponse) XXX_MessageName() string { return "arcanum.tee.v1.MsgSlashNodeResponse" }

func (msg *MsgSuspendNode) Reset()                  { *msg = MsgSuspendNode{} }
func (msg *MsgSuspendNode) ProtoMessage()           {}
func (msg *MsgSuspendNode) String() string          { return protoString(msg) }
func (msg *MsgSuspendNode) XXX_MessageName() string { return "arcanum.tee.v1.MsgSuspendNode" }

func (msg *MsgSuspendNodeResponse) Reset()         { *msg = MsgSuspendNodeResponse{} }
func (msg *MsgSuspendNodeResponse) ProtoMessage()  {}
func (msg *MsgSuspendNodeResponse) String() string { return protoString(msg) }
func (msg *MsgSuspendNodeResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgSuspendNodeResponse"
}

func (msg *MsgResumeNode) Reset()                  { *msg = MsgResumeNode{} }
func (msg *MsgResumeNode) ProtoMessage()           {}
func (msg *MsgResumeNode) String() string          { return protoString(msg) }
func (msg *MsgResumeNode) XXX_MessageName() string { return "arcanum.tee.v1.MsgResumeNode" }

func (msg *MsgResumeNodeResponse) Reset()         { *msg = MsgResumeNodeResponse{} }
func (msg *MsgResumeNodeResponse) ProtoMessage()  {}
func (msg *MsgResumeNodeResponse) String() string { return protoString(msg) }
func (msg *MsgResumeNodeResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgResumeNodeResponse"
}

func (msg *MsgSetAllowedEnclaves) Reset()         { *msg = MsgSetAllowedEnclaves{} }
func (msg *MsgSetAllowedEnclaves) ProtoMessage()  {}
func (msg *MsgSetAllowedEnclaves) String() string { return protoString(msg) }
func (msg *MsgSetAllowedEnclaves) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgSetAllowedEnclaves"
}

func (msg *MsgSetAllowedEnclavesResponse) Reset()         { *msg = MsgSetAllowedEnclavesResponse{} }
func (msg *MsgSetAllowedEnclavesResponse) ProtoMessage()  {}
func (msg *MsgSetAllowedEnclavesResponse) String() string { return protoString(msg) }
func (msg *MsgSetAllowedEnclavesResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgSetAllowedEnclavesResponse"
}

func (msg *MsgSetAllowedSigners) Reset()                  { *msg = MsgSetAllowedSigners{} }
func (msg *MsgSetAllowedSigners) ProtoMessage()           {}
func (msg *MsgSetAllowedSigners) String() string          { return protoString(msg) }
func (msg *MsgSetAllowedSigners) XXX_MessageName() string { return "arcanum.tee.v1.MsgSetAllowedSigners" }

func (msg *MsgSetAllowedSignersResponse) Reset()         { *msg = MsgSetAllowedSignersResponse{} }
func (msg *MsgSetAllowedSignersResponse) ProtoMessage()  {}
func (msg *MsgSetAllowedSignersResponse) String() string { return protoString(msg) }
func (msg *MsgSetAllowedSignersResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgSetAllowedSignersResponse"
}

func (msg *MsgUpdateParams) Reset()                  { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()           {}
func (msg *MsgUpdateParams) String() string          { return protoString(msg) }
func (msg *MsgUpdateParams) XXX_MessageName() string { return "arcanum.tee.v1.MsgUpdateParams" }

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) String() string { return protoString(msg) }
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "arcanum.tee.v1.MsgUpdateParamsResponse"
}
