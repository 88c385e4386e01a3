package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitExchangeRate{}, "oracle/MsgSubmitExchangeRate", nil)
	cdc.RegisterConcrete(&MsgSetColdStartParams{}, "oracle/MsgSetColdStartParams", nil)
	cdc.RegisterConcrete(&MsgResetColdStart{}, "oracle/MsgResetColdStart", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitExchangeRate{},
		&MsgSetColdStartParams{},
		&MsgResetColdStart{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgSubmitExchangeRateResponse{},
		&MsgSetColdStartParamsResponse{},
		&MsgResetColdStartResponse{},
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
