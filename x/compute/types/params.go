package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the compute module parameters
type Params struct {
	TimeoutBlocks           int64    `json:"timeout_blocks"`
	MaxFailovers            uint32   `json:"max_failovers"`
	MaxPendingRequests      uint32   `json:"max_pending_requests"`
	MaxRequestsPerBlock     uint32   `json:"max_requests_per_block"`
	MaxInputSize            uint32   `json:"max_input_size"`
	MaxVersions             uint32   `json:"max_versions"`
	RequestFee              math.Int `json:"request_fee"`
	RewardPerResult         math.Int `json:"reward_per_result"`
	SlashOnInvalidSignature math.Int `json:"slash_on_invalid_signature"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		TimeoutBlocks:           100,
		MaxFailovers:            2,
		MaxPendingRequests:      10_000,
		MaxRequestsPerBlock:     50,
		MaxInputSize:            64 * 1024,
		MaxVersions:             100,
		RequestFee:              math.NewInt(1_000_000), // 1 ARC
		RewardPerResult:         math.NewInt(1_000_000),
		SlashOnInvalidSignature: math.NewInt(100_000_000),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.TimeoutBlocks <= 0 {
		return fmt.Errorf("timeout blocks must be positive")
	}
	if p.MaxPendingRequests == 0 {
		return fmt.Errorf("max pending requests must be positive")
	}
	if p.MaxRequestsPerBlock == 0 {
		return fmt.Errorf("max requests per block must be positive")
	}
	if p.MaxInputSize == 0 {
		return fmt.Errorf("max input size must be positive")
	}
	if p.MaxVersions == 0 {
		return fmt.Errorf("max versions must be positive")
	}
	if p.RequestFee.IsNil() || p.RequestFee.IsNegative() {
		return fmt.Errorf("request fee cannot be negative")
	}
	if p.RewardPerResult.IsNil() || p.RewardPerResult.IsNegative() {
		return fmt.Errorf("reward per result cannot be negative")
	}
	if p.SlashOnInvalidSignature.IsNil() || p.SlashOnInvalidSignature.IsNegative() {
		return fmt.Errorf("slash on invalid signature cannot be negative")
	}
	return nil
}
