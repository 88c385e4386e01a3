package keeper_test

import (
	"encoding/hex"
	"testing"

	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	teekeeper "github.com/arcanum-chain/arcanum/x/tee/keeper"
	"github.com/arcanum-chain/arcanum/x/tee/types"
)

func TestSetAllowedEnclavesRequiresAuthority(t *testing.T) {
	k, _, ctx := testkeeper.TeeKeeper(t)
	ms := teekeeper.NewMsgServerImpl(k)

	allowed := hex.EncodeToString(fillBytes(0x02))

	_, err := ms.SetAllowedEnclaves(ctx, &types.MsgSetAllowedEnclaves{
		Authority:    nodeAddr.String(),
		Measurements: []string{allowed},
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = ms.SetAllowedEnclaves(ctx, &types.MsgSetAllowedEnclaves{
		Authority:    k.GetAuthority(),
		Measurements: []string{allowed},
	})
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{allowed}, params.AllowedMrEnclaves)
}

func TestSetAllowedListsGateRegistration(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)
	ms := teekeeper.NewMsgServerImpl(k)

	_, err := ms.SetAllowedEnclaves(ctx, &types.MsgSetAllowedEnclaves{
		Authority:    k.GetAuthority(),
		Measurements: []string{hex.EncodeToString(fillBytes(0x02))},
	})
	require.NoError(t, err)

	_, err = ms.SetAllowedSigners(ctx, &types.MsgSetAllowedSigners{
		Authority:    k.GetAuthority(),
		Measurements: []string{hex.EncodeToString(fillBytes(0x03))},
	})
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{hex.EncodeToString(fillBytes(0x03))}, params.AllowedMrSigners)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))

	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0xff), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrEnclaveNotAllowed)

	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))
}
