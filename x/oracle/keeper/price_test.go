package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

func countEvents(ctx sdk.Context, eventType string) int {
	count := 0
	for _, event := range ctx.EventManager().Events() {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

func TestVenueVWAP(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	require.Zero(t, k.VenueVWAP(ctx, types.VenueOTC))

	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 2_000_000, 400_000_000_000))
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 2, 3_000_000, 600_000_000_000))

	// weighted: 0.4 * 2.0 + 0.6 * 3.0 = 2.6
	require.Equal(t, uint64(2_600_000), k.VenueVWAP(ctx, types.VenueOTC))
}

func TestColdStartExitOneShot(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	// below threshold: default price, latch stays down
	price, err := k.ReferencePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, params.DefaultPrice, price)
	require.False(t, k.ColdStartExited(ctx))

	// push OTC volume over the threshold
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 2_000_000, 2*params.ColdStartThreshold))

	// the first read flips the latch, emits once and returns market price
	price, err = k.ReferencePrice(ctx)
	require.NoError(t, err)
	require.True(t, k.ColdStartExited(ctx))
	require.Equal(t, uint64(2_000_000), price)
	require.Equal(t, 1, countEvents(ctx, types.EventTypeColdStartExited))

	// subsequent reads do not re-emit
	price, err = k.ReferencePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), price)
	require.Equal(t, 1, countEvents(ctx, types.EventTypeColdStartExited))
}

func TestColdStartAdminGates(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	// while the latch is down params may change, reset is rejected
	require.NoError(t, k.SetColdStartParams(ctx, 5_000_000_000, 3_000_000))
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000_000), params.ColdStartThreshold)
	require.Equal(t, uint64(3_000_000), params.DefaultPrice)

	err = k.ResetColdStart(ctx, "not yet exited")
	require.ErrorIs(t, err, types.ErrColdStartActive)

	// exit cold start
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 3_000_000, params.ColdStartThreshold+1))
	_, err = k.ReferencePrice(ctx)
	require.NoError(t, err)
	require.True(t, k.ColdStartExited(ctx))

	// now the gates flip
	err = k.SetColdStartParams(ctx, 1_000_000_000, 0)
	require.ErrorIs(t, err, types.ErrColdStartExited)

	require.NoError(t, k.ResetColdStart(ctx, "volume collapsed"))
	require.False(t, k.ColdStartExited(ctx))
	require.Equal(t, 1, countEvents(ctx, types.EventTypeColdStartReset))
}

func TestCheckPriceDeviation(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), params.DefaultPrice)

	require.ErrorIs(t, k.CheckPriceDeviation(ctx, 0), types.ErrInvalidPrice)

	// 5% off the reference, within the 10% limit
	require.NoError(t, k.CheckPriceDeviation(ctx, 1_050_000))
	require.NoError(t, k.CheckPriceDeviation(ctx, 950_000))

	// 20% off
	err = k.CheckPriceDeviation(ctx, 1_200_000)
	require.ErrorIs(t, err, types.ErrDeviationTooLarge)

	// deviation does not fit in 16 bits: rejected outright
	err = k.CheckPriceDeviation(ctx, 70_000*1_000_000)
	require.ErrorIs(t, err, types.ErrPriceOutOfRange)
}
