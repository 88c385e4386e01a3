package keeper_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/compute/types"
)

func TestUpdateResultExtendsChain(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	firstID := submitFundedRequest(t, fx, ctx, []byte("reading one"))
	completeRequest(t, fx, ctx, firstID, keys, []byte("output one"))

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	testkeeper.FundAccount(t, ctx, fx.Bank, requesterAddr, params.RequestFee)

	secondID, err := fx.Compute.UpdateResult(ctx, requesterAddr, firstID, hashOf([]byte("reading two")), []byte("reading two"), nil)
	require.NoError(t, err)
	require.NotEqual(t, firstID, secondID)

	hint, ok := fx.Compute.GetVersionHint(ctx, secondID)
	require.True(t, ok)
	require.Equal(t, firstID, hint.FirstVersionId)
	require.Equal(t, firstID, hint.PreviousVersion)

	completeRequest(t, fx, ctx, secondID, keys, []byte("output two"))

	second, found := fx.Compute.GetResult(ctx, secondID)
	require.True(t, found)
	require.Equal(t, uint64(2), second.Version)
	require.Equal(t, firstID, second.FirstVersionId)
	require.Equal(t, firstID, second.PreviousVersion)
	require.True(t, second.IsLatest)

	first, found := fx.Compute.GetResult(ctx, firstID)
	require.True(t, found)
	require.False(t, first.IsLatest)

	require.Equal(t, []uint64{firstID, secondID}, fx.Compute.GetVersionChain(ctx, firstID))
	latestID, ok := fx.Compute.GetLatestVersion(ctx, firstID)
	require.True(t, ok)
	require.Equal(t, secondID, latestID)
}

func TestUpdateResultChecks(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	firstID := submitFundedRequest(t, fx, ctx, []byte("reading"))
	completeRequest(t, fx, ctx, firstID, keys, []byte("output"))

	_, err := fx.Compute.UpdateResult(ctx, nodeAddrB, firstID, hashOf([]byte("x")), []byte("x"), nil)
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = fx.Compute.UpdateResult(ctx, requesterAddr, 999, hashOf([]byte("x")), []byte("x"), nil)
	require.ErrorIs(t, err, types.ErrResultNotFound)

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	params.MaxVersions = 1
	require.NoError(t, fx.Compute.SetParams(ctx, params))

	_, err = fx.Compute.UpdateResult(ctx, requesterAddr, firstID, hashOf([]byte("x")), []byte("x"), nil)
	require.ErrorIs(t, err, types.ErrTooManyVersions)
}

func TestDeleteResultCascades(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	firstID := submitFundedRequest(t, fx, ctx, []byte("reading one"))
	completeRequest(t, fx, ctx, firstID, keys, []byte("output one"))

	params, err := fx.Compute.GetParams(ctx)
	require.NoError(t, err)
	testkeeper.FundAccount(t, ctx, fx.Bank, requesterAddr, params.RequestFee)
	secondID, err := fx.Compute.UpdateResult(ctx, requesterAddr, firstID, hashOf([]byte("reading two")), []byte("reading two"), nil)
	require.NoError(t, err)
	completeRequest(t, fx, ctx, secondID, keys, []byte("output two"))

	// deleting the latest version promotes the previous one
	require.NoError(t, fx.Compute.DeleteResult(ctx, requesterAddr, secondID))

	_, found := fx.Compute.GetResult(ctx, secondID)
	require.False(t, found)

	require.Equal(t, []uint64{firstID}, fx.Compute.GetVersionChain(ctx, firstID))
	latestID, ok := fx.Compute.GetLatestVersion(ctx, firstID)
	require.True(t, ok)
	require.Equal(t, firstID, latestID)

	first, found := fx.Compute.GetResult(ctx, firstID)
	require.True(t, found)
	require.True(t, first.IsLatest)

	// deleting the last version removes the chain entirely
	require.NoError(t, fx.Compute.DeleteResult(ctx, requesterAddr, firstID))
	require.Empty(t, fx.Compute.GetVersionChain(ctx, firstID))
	_, ok = fx.Compute.GetLatestVersion(ctx, firstID)
	require.False(t, ok)
}

func TestDeleteResultOwnerOnly(t *testing.T) {
	fx := testkeeper.ComputeKeeper(t)
	ctx := fx.Ctx.WithBlockHeight(1)

	priv := registerTestNode(t, fx, ctx, nodeAddrA)
	keys := map[string]ed25519.PrivateKey{nodeAddrA.String(): priv}

	id := submitFundedRequest(t, fx, ctx, []byte("reading"))
	completeRequest(t, fx, ctx, id, keys, []byte("output"))

	err := fx.Compute.DeleteResult(ctx, nodeAddrB, id)
	require.ErrorIs(t, err, types.ErrNotOwner)

	err = fx.Compute.DeleteResult(ctx, requesterAddr, 999)
	require.ErrorIs(t, err, types.ErrResultNotFound)
}
