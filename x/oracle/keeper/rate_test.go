package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	oraclekeeper "github.com/arcanum-chain/arcanum/x/oracle/keeper"
	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

var feederAddr = sdk.AccAddress([]byte{0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x7b, 0x7c, 0x7d, 0x7e, 0x7f, 0x80, 0x81, 0x82, 0x83, 0x84})

func TestSetExchangeRateBandAndInterval(t *testing.T) {
	k, baseCtx := testkeeper.OracleKeeper(t)

	err := k.SetExchangeRate(baseCtx.WithBlockHeight(10), 4_000_000)
	require.ErrorIs(t, err, types.ErrRateOutOfBand)
	err = k.SetExchangeRate(baseCtx.WithBlockHeight(10), 11_000_000)
	require.ErrorIs(t, err, types.ErrRateOutOfBand)

	require.NoError(t, k.SetExchangeRate(baseCtx.WithBlockHeight(10), 7_230_000))

	rate, found := k.GetExchangeRate(baseCtx)
	require.True(t, found)
	require.Equal(t, uint64(7_230_000), rate.Rate)
	require.Equal(t, int64(10), rate.UpdatedAtHeight)

	// interval not elapsed: rejected as stale
	err = k.SetExchangeRate(baseCtx.WithBlockHeight(50), 7_240_000)
	require.ErrorIs(t, err, types.ErrRateStale)

	rate, _ = k.GetExchangeRate(baseCtx)
	require.Equal(t, uint64(7_230_000), rate.Rate)

	// a full interval later the update is accepted
	require.NoError(t, k.SetExchangeRate(baseCtx.WithBlockHeight(110), 7_240_000))
	rate, _ = k.GetExchangeRate(baseCtx)
	require.Equal(t, uint64(7_240_000), rate.Rate)
	require.Equal(t, int64(110), rate.UpdatedAtHeight)
}

func TestSubmitExchangeRateFeederGate(t *testing.T) {
	k, baseCtx := testkeeper.OracleKeeper(t)
	ms := oraclekeeper.NewMsgServerImpl(k)
	ctx := baseCtx.WithBlockHeight(10)

	msg := types.NewMsgSubmitExchangeRate(feederAddr.String(), 7_230_000)
	_, err := ms.SubmitExchangeRate(ctx, msg)
	require.ErrorIs(t, err, types.ErrUnauthorizedFeeder)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.FeedAuthorities = []string{feederAddr.String()}
	require.NoError(t, k.SetParams(ctx, params))

	_, err = ms.SubmitExchangeRate(ctx, msg)
	require.NoError(t, err)

	rate, found := k.GetExchangeRate(ctx)
	require.True(t, found)
	require.Equal(t, uint64(7_230_000), rate.Rate)
}

func TestColdStartMsgsRequireAuthority(t *testing.T) {
	k, baseCtx := testkeeper.OracleKeeper(t)
	ms := oraclekeeper.NewMsgServerImpl(k)
	ctx := baseCtx.WithBlockHeight(1)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	_, err := ms.SetColdStartParams(ctx, types.NewMsgSetColdStartParams(feederAddr.String(), 2_000_000_000, 0))
	require.Error(t, err)

	_, err = ms.SetColdStartParams(ctx, types.NewMsgSetColdStartParams(authority, 2_000_000_000, 0))
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000_000), params.ColdStartThreshold)

	_, err = ms.ResetColdStart(ctx, types.NewMsgResetColdStart(authority, "still cold"))
	require.ErrorIs(t, err, types.ErrColdStartActive)
}

func TestGenesisRoundTrip(t *testing.T) {
	k, baseCtx := testkeeper.OracleKeeper(t)
	ctx := baseCtx.WithBlockHeight(10)

	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 2_000_000, 400_000_000_000))
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 2, 3_000_000, 600_000_000_000))
	require.NoError(t, k.AddOrder(ctx, types.VenueBridge, 3, 2_500_000, 100_000_000_000))
	require.NoError(t, k.SetExchangeRate(ctx, 7_230_000))

	_, err := k.ReferencePrice(ctx)
	require.NoError(t, err)
	require.True(t, k.ColdStartExited(ctx))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())

	k2, ctx2 := testkeeper.OracleKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	require.True(t, k2.ColdStartExited(ctx2))
	require.Equal(t, k.GetVenueSummary(ctx, types.VenueOTC), k2.GetVenueSummary(ctx2, types.VenueOTC))
	require.Equal(t, k.GetVenueSummary(ctx, types.VenueBridge), k2.GetVenueSummary(ctx2, types.VenueBridge))
	require.Equal(t, k.VenueVWAP(ctx, types.VenueOTC), k2.VenueVWAP(ctx2, types.VenueOTC))

	rate, found := k2.GetExchangeRate(ctx2)
	require.True(t, found)
	require.Equal(t, uint64(7_230_000), rate.Rate)
}
