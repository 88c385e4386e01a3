package types

import (
	"testing"

	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMsgsResolve(t *testing.T) {
	registry := cdctypes.NewInterfaceRegistry()
	RegisterInterfaces(registry)

	msgs := []sdk.Msg{
		&MsgSubmitRequest{},
		&MsgCancelRequest{},
		&MsgSubmitResult{},
		&MsgForceFail{},
		&MsgUpdateResult{},
		&MsgDeleteResult{},
		&MsgUpdateParams{},
	}

	seen := make(map[string]bool)
	for _, msg := range msgs {
		url := sdk.MsgTypeURL(msg)
		require.False(t, seen[url], "type url %s registered twice", url)
		seen[url] = true

		resolved, err := registry.Resolve(url)
		require.NoError(t, err)
		require.IsType(t, msg, resolved)
	}

	require.Equal(t, "/arcanum.compute.v1.MsgSubmitRequest", sdk.MsgTypeURL(&MsgSubmitRequest{}))
}
