package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitRequest{}, "compute/MsgSubmitRequest", nil)
	cdc.RegisterConcrete(&MsgCancelRequest{}, "compute/MsgCancelRequest", nil)
	cdc.RegisterConcrete(&MsgSubmitResult{}, "compute/MsgSubmitResult", nil)
	cdc.RegisterConcrete(&MsgForceFail{}, "compute/MsgForceFail", nil)
	cdc.RegisterConcrete(&MsgUpdateResult{}, "compute/MsgUpdateResult", nil)
	cdc.RegisterConcrete(&MsgDeleteResult{}, "compute/MsgDeleteResult", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "compute/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitRequest{},
		&MsgCancelRequest{},
		&MsgSubmitResult{},
		&MsgForceFail{},
		&MsgUpdateResult{},
		&MsgDeleteResult{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgSubmitRequestResponse{},
		&MsgCancelRequestResponse{},
		&MsgSubmitResultResponse{},
		&MsgForceFailResponse{},
		&MsgUpdateResultResponse{},
		&MsgDeleteResultResponse{},
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
