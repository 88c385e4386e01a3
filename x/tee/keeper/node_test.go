package keeper_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/tee/types"
)

var (
	nodeAddr  = sdk.AccAddress([]byte{0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3, 0xb4})
	nodeAddr2 = sdk.AccAddress([]byte{0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xcb, 0xcc, 0xcd, 0xce, 0xcf, 0xd0, 0xd1, 0xd2, 0xd3, 0xd4})
)

func fillBytes(b byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestRegisterNodeRequiresStake(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	err := k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))

	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	node, found := k.GetNode(ctx, nodeAddr)
	require.True(t, found)
	require.Equal(t, types.NodeStatusActive, node.Status)
	require.Equal(t, fillBytes(0x01), node.EnclavePubkey)
	require.True(t, k.IsNodeActive(ctx, nodeAddr))

	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrNodeAlreadyRegistered)
}

func TestRegisterNodeAllowLists(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.AllowedMrEnclaves = []string{hex.EncodeToString(fillBytes(0x02))}
	params.AllowedMrSigners = []string{hex.EncodeToString(fillBytes(0x03))}
	require.NoError(t, k.SetParams(ctx, params))

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))

	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0xff), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrEnclaveNotAllowed)

	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0xff), 1)
	require.ErrorIs(t, err, types.ErrSignerNotAllowed)

	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))
}

func TestAttestationExpiry(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	atTTL := ctx.WithBlockHeight(ctx.BlockHeight() + params.AttestationTTLBlocks)
	require.True(t, k.IsNodeActive(atTTL, nodeAddr))

	expired := ctx.WithBlockHeight(ctx.BlockHeight() + params.AttestationTTLBlocks + 1)
	require.False(t, k.IsNodeActive(expired, nodeAddr))

	require.NoError(t, k.RefreshAttestation(expired, nodeAddr, fillBytes(0x02), fillBytes(0x03)))
	require.True(t, k.IsNodeActive(expired, nodeAddr))
}

func TestRefreshRejectsChangedMeasurements(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	err = k.RefreshAttestation(ctx, nodeAddr, fillBytes(0x04), fillBytes(0x03))
	require.ErrorIs(t, err, types.ErrPubkeyImmutable)

	err = k.RefreshAttestation(ctx, nodeAddr2, fillBytes(0x02), fillBytes(0x03))
	require.ErrorIs(t, err, types.ErrNodeNotFound)
}

func TestSuspendAndResume(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	require.NoError(t, k.SuspendNode(ctx, nodeAddr, "maintenance"))
	require.False(t, k.IsNodeActive(ctx, nodeAddr))

	var activeCount int
	k.IterateActiveNodes(ctx, func(addr sdk.AccAddress) bool {
		activeCount++
		return false
	})
	require.Zero(t, activeCount)

	err = k.SuspendNode(ctx, nodeAddr, "again")
	require.ErrorIs(t, err, types.ErrNodeNotActive)

	require.NoError(t, k.ResumeNode(ctx, nodeAddr))
	require.True(t, k.IsNodeActive(ctx, nodeAddr))

	err = k.ResumeNode(ctx, nodeAddr)
	require.ErrorIs(t, err, types.ErrNodeNotSuspended)
}

func TestIterateActiveNodes(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	for _, addr := range []sdk.AccAddress{nodeAddr, nodeAddr2} {
		testkeeper.FundAccount(t, ctx, bk, addr, params.MinimumStake)
		require.NoError(t, k.Bond(ctx, addr, params.MinimumStake))
		require.NoError(t, k.RegisterNode(ctx, addr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))
	}

	var visited []string
	k.IterateActiveNodes(ctx, func(addr sdk.AccAddress) bool {
		visited = append(visited, addr.String())
		return false
	})
	require.Len(t, visited, 2)
	require.Contains(t, visited, nodeAddr.String())
	require.Contains(t, visited, nodeAddr2.String())

	require.NoError(t, k.Slash(ctx, nodeAddr2, params.MinimumStake, "invalid result"))

	visited = nil
	k.IterateActiveNodes(ctx, func(addr sdk.AccAddress) bool {
		visited = append(visited, addr.String())
		return false
	})
	require.Equal(t, []string{nodeAddr.String()}, visited)
}

func TestGetEnclavePubkey(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	pk, err := k.GetEnclavePubkey(ctx, nodeAddr)
	require.NoError(t, err)
	require.Equal(t, fillBytes(0x01), pk)

	_, err = k.GetEnclavePubkey(ctx, nodeAddr2)
	require.ErrorIs(t, err, types.ErrNodeNotFound)
}

func TestStakeBelowMinimumDeactivates(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	extra := math.NewInt(500)
	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake.Add(extra))
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake.Add(extra)))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	_, err = k.Unbond(ctx, nodeAddr, extra.Add(math.NewInt(1)))
	require.NoError(t, err)
	require.False(t, k.IsNodeActive(ctx, nodeAddr))
}

type stubVerifier struct {
	err error
}

func (v stubVerifier) VerifyAttestation(_ context.Context, _, _, _ []byte, _ uint32) error {
	return v.err
}

func TestAttestationVerifierGatesRegistration(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))

	k.SetAttestationVerifier(stubVerifier{err: errors.New("quote does not verify")})
	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrAttestationInvalid)

	// stale collateral keeps its own error
	k.SetAttestationVerifier(stubVerifier{err: types.ErrAttestationExpired})
	err = k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1)
	require.ErrorIs(t, err, types.ErrAttestationExpired)

	k.SetAttestationVerifier(stubVerifier{})
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))
}

func TestAttestationVerifierGatesRefresh(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	k.SetAttestationVerifier(stubVerifier{err: errors.New("quote does not verify")})
	err = k.RefreshAttestation(ctx, nodeAddr, fillBytes(0x02), fillBytes(0x03))
	require.ErrorIs(t, err, types.ErrAttestationInvalid)

	k.SetAttestationVerifier(stubVerifier{})
	require.NoError(t, k.RefreshAttestation(ctx, nodeAddr, fillBytes(0x02), fillBytes(0x03)))
}
