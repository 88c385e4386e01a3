package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterNode{}, "tee/MsgRegisterNode", nil)
	cdc.RegisterConcrete(&MsgRefreshAttestation{}, "tee/MsgRefreshAttestation", nil)
	cdc.RegisterConcrete(&MsgBond{}, "tee/MsgBond", nil)
	cdc.RegisterConcrete(&MsgUnbond{}, "tee/MsgUnbond", nil)
	cdc.RegisterConcrete(&MsgWithdrawUnbonded{}, "tee/MsgWithdrawUnbonded", nil)
	cdc.RegisterConcrete(&MsgDepositReward{}, "tee/MsgDepositReward", nil)
	cdc.RegisterConcrete(&MsgClaimReward{}, "tee/MsgClaimReward", nil)
	cdc.RegisterConcrete(&MsgSlashNode{}, "tee/MsgSlashNode", nil)
	cdc.RegisterConcrete(&MsgSuspendNode{}, "tee/MsgSuspendNode", nil)
	cdc.RegisterConcrete(&MsgResumeNode{}, "tee/MsgResumeNode", nil)
	cdc.RegisterConcrete(&MsgSetAllowedEnclaves{}, "tee/MsgSetAllowedEnclaves", nil)
	cdc.RegisterConcrete(&MsgSetAllowedSigners{}, "tee/MsgSetAllowedSigners", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "tee/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterNode{},
		&MsgRefreshAttestation{},
		&MsgBond{},
		&MsgUnbond{},
		&MsgWithdrawUnbonded{},
		&MsgDepositReward{},
		&MsgClaimReward{},
		&MsgSlashNode{},
		&MsgSuspendNode{},
		&MsgResumeNode{},
		&MsgSetAllowedEnclaves{},
		&MsgSetAllowedSigners{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgRegisterNodeResponse{},
		&MsgRefreshAttestationResponse{},
		&MsgBondResponse{},
		&MsgUnbondResponse{},
		&MsgWithdrawUnbondedResponse{},
		&MsgDepositRewardResponse{},
		&MsgClaimRewardResponse{},
		&MsgSlashNodeResponse{},
		&MsgSuspendNodeResponse{},
		&MsgResumeNodeResponse{},
		&MsgSetAllowedEnclavesResponse{},
		&MsgSetAllowedSignersResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
