package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// GetExchangeRate returns the last accepted exchange rate
func (k Keeper) GetExchangeRate(ctx context.Context) (types.ExchangeRate, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ExchangeRateKey)
	if bz == nil {
		return types.ExchangeRate{}, false
	}

	var rate types.ExchangeRate
	if err := json.Unmarshal(bz, &rate); err != nil {
		panic(fmt.Errorf("failed to unmarshal exchange rate: %w", err))
	}
	return rate, true
}

func (k Keeper) setExchangeRate(ctx context.Context, rate types.ExchangeRate) {
	bz, err := json.Marshal(rate)
	if err != nil {
		panic(fmt.Errorf("failed to marshal exchange rate: %w", err))
	}
	k.getStore(ctx).Set(ExchangeRateKey, bz)
}

// SetExchangeRate validates and stores a freshly aggregated rate. The sanity
// band catches bogus feeds, the interval gate deduplicates concurrent
// workers racing to submit the same window.
func (k Keeper) SetExchangeRate(ctx context.Context, rate uint64) error {
	if rate < types.RateLowerBound || rate > types.RateUpperBound {
		k.metrics.RateSubmissions.WithLabelValues("out_of_band").Inc()
		return types.ErrRateOutOfBand.Wrapf("rate %d outside [%d, %d]", rate, types.RateLowerBound, types.RateUpperBound)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	if last, found := k.GetExchangeRate(ctx); found {
		if height-last.UpdatedAtHeight < params.RateUpdateIntervalBlocks {
			k.metrics.RateSubmissions.WithLabelValues("stale").Inc()
			return types.ErrRateStale.Wrapf("last update at height %d, interval %d", last.UpdatedAtHeight, params.RateUpdateIntervalBlocks)
		}
	}

	k.setExchangeRate(ctx, types.ExchangeRate{Rate: rate, UpdatedAtHeight: height})
	k.metrics.RateSubmissions.WithLabelValues("accepted").Inc()
	k.metrics.ExchangeRate.Set(float64(rate) / float64(types.PriceScale))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExchangeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyRate, fmt.Sprintf("%d", rate)),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", height)),
		),
	)
	return nil
}
