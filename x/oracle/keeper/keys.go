package keeper

import (
	"encoding/binary"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// SummaryKeyPrefix is the prefix for per-venue window summaries
	SummaryKeyPrefix = []byte{0x02}

	// OrderKeyPrefix is the prefix for ring buffer order slots
	OrderKeyPrefix = []byte{0x03}

	// ColdStartExitedKey stores the sticky cold-start latch
	ColdStartExitedKey = []byte{0x04}

	// ExchangeRateKey stores the last accepted exchange rate
	ExchangeRateKey = []byte{0x05}
)

// SummaryKey returns the store key for a venue summary
func SummaryKey(venue types.Venue) []byte {
	return append(SummaryKeyPrefix, byte(venue))
}

// OrderKey returns the store key for one ring buffer slot of a venue
func OrderKey(venue types.Venue, index uint32) []byte {
	key := make([]byte, 0, len(OrderKeyPrefix)+5)
	key = append(key, OrderKeyPrefix...)
	key = append(key, byte(venue))
	return binary.BigEndian.AppendUint32(key, index)
}
