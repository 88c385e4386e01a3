package types

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

const (
	// RingSize is the number of order slots per venue ring buffer
	RingSize = 10_000

	// PriceScale is the fixed-point denominator for prices and rates (6dp)
	PriceScale = 1_000_000

	// BasePrecision scales VWAP quotients back into price units
	BasePrecision = 1_000_000_000_000

	// RateLowerBound and RateUpperBound bracket acceptable exchange rates
	RateLowerBound = 5_000_000
	RateUpperBound = 10_000_000
)
