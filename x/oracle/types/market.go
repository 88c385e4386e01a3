package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Venue identifies one of the two tracked liquidity venues.
type Venue uint32

const (
	VenueOTC    Venue = 1
	VenueBridge Venue = 2
)

// Venues lists all tracked venues in iteration order.
var Venues = []Venue{VenueOTC, VenueBridge}

// String returns a human-readable venue name
func (v Venue) String() string {
	switch v {
	case VenueOTC:
		return "otc"
	case VenueBridge:
		return "bridge"
	default:
		return fmt.Sprintf("venue(%d)", uint32(v))
	}
}

// Validate checks that the venue is a known one
func (v Venue) Validate() error {
	switch v {
	case VenueOTC, VenueBridge:
		return nil
	default:
		return ErrInvalidVenue.Wrapf("venue %d", uint32(v))
	}
}

// OrderSnapshot is one filled order inside a venue's sliding window.
// Price is 6dp fixed-point, Qty is in base units.
type OrderSnapshot struct {
	Ts    uint64 `json:"ts"`
	Price uint64 `json:"price"`
	Qty   uint64 `json:"qty"`
}

// VenueSummary is the running aggregate over a venue's ring buffer.
// TotalQuote is kept wide because qty*price products exceed 64 bits.
type VenueSummary struct {
	TotalQty    uint64   `json:"total_qty"`
	TotalQuote  math.Int `json:"total_quote"`
	OrderCount  uint32   `json:"order_count"`
	OldestIndex uint32   `json:"oldest_index"`
	NewestIndex uint32   `json:"newest_index"`
}

// NewVenueSummary returns an empty summary
func NewVenueSummary() VenueSummary {
	return VenueSummary{TotalQuote: math.ZeroInt()}
}

// Validate checks internal consistency of the summary
func (s VenueSummary) Validate() error {
	if s.TotalQuote.IsNil() || s.TotalQuote.IsNegative() {
		return fmt.Errorf("total quote must be non-negative")
	}
	if s.OrderCount > RingSize {
		return fmt.Errorf("order count %d exceeds ring size", s.OrderCount)
	}
	if s.OldestIndex >= RingSize || s.NewestIndex >= RingSize {
		return fmt.Errorf("ring index out of range")
	}
	return nil
}

// ExchangeRate is the last accepted CNY/USDT rate, 6dp fixed-point.
type ExchangeRate struct {
	Rate            uint64 `json:"rate"`
	UpdatedAtHeight int64  `json:"updated_at_height"`
}

// Validate checks the rate against the sanity band
func (r ExchangeRate) Validate() error {
	if r.Rate < RateLowerBound || r.Rate > RateUpperBound {
		return fmt.Errorf("rate %d outside band [%d, %d]", r.Rate, RateLowerBound, RateUpperBound)
	}
	if r.UpdatedAtHeight < 0 {
		return fmt.Errorf("updated height must be non-negative")
	}
	return nil
}
