package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the oracle module parameters. Prices and the window are in
// 6dp fixed-point units; deviations are basis points.
type Params struct {
	WindowSize               uint64   `json:"window_size"`
	MaxSingleOrder           uint64   `json:"max_single_order"`
	ColdStartThreshold       uint64   `json:"cold_start_threshold"`
	DefaultPrice             uint64   `json:"default_price"`
	MaxPriceDeviationBps     uint32   `json:"max_price_deviation_bps"`
	RateUpdateIntervalBlocks int64    `json:"rate_update_interval_blocks"`
	MaxSourceDeviationBps    uint32   `json:"max_source_deviation_bps"`
	MinSuccessfulSources     uint32   `json:"min_successful_sources"`
	FeedAuthorities          []string `json:"feed_authorities"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		WindowSize:               1_000_000 * PriceScale,
		MaxSingleOrder:           100_000 * PriceScale,
		ColdStartThreshold:       1_000_000_000,
		DefaultPrice:             PriceScale, // 1.000000
		MaxPriceDeviationBps:     1_000,      // 10%
		RateUpdateIntervalBlocks: 100,
		MaxSourceDeviationBps:    500,
		MinSuccessfulSources:     1,
		FeedAuthorities:          []string{},
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.WindowSize == 0 {
		return fmt.Errorf("window size must be positive")
	}
	if p.MaxSingleOrder == 0 || p.MaxSingleOrder > p.WindowSize {
		return fmt.Errorf("max single order must be positive and within the window")
	}
	if p.ColdStartThreshold == 0 {
		return fmt.Errorf("cold start threshold must be positive")
	}
	if p.DefaultPrice == 0 {
		return fmt.Errorf("default price must be positive")
	}
	if p.MaxPriceDeviationBps == 0 {
		return fmt.Errorf("max price deviation must be positive")
	}
	if p.RateUpdateIntervalBlocks <= 0 {
		return fmt.Errorf("rate update interval must be positive")
	}
	if p.MaxSourceDeviationBps == 0 {
		return fmt.Errorf("max source deviation must be positive")
	}
	if p.MinSuccessfulSources == 0 {
		return fmt.Errorf("at least one successful source is required")
	}
	for _, feeder := range p.FeedAuthorities {
		if _, err := sdk.AccAddressFromBech32(feeder); err != nil {
			return fmt.Errorf("invalid feed authority %q: %w", feeder, err)
		}
	}
	return nil
}

// IsFeedAuthority reports whether an address may submit exchange rates.
func (p Params) IsFeedAuthority(addr string) bool {
	for _, feeder := range p.FeedAuthorities {
		if feeder == addr {
			return true
		}
	}
	return false
}
