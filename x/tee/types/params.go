package types

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the tee module parameters. The measurement allow-lists are
// hex-encoded; an empty list accepts any measurement.
type Params struct {
	MinimumStake          math.Int `json:"minimum_stake"`
	AttestationTTLBlocks  int64    `json:"attestation_ttl_blocks"`
	UnbondingPeriodBlocks int64    `json:"unbonding_period_blocks"`
	AllowedMrEnclaves     []string `json:"allowed_mr_enclaves"`
	AllowedMrSigners      []string `json:"allowed_mr_signers"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		MinimumStake:          math.NewInt(1_000_000_000), // 1000 ARC
		AttestationTTLBlocks:  14_400,                     // ~24h at 6s blocks
		UnbondingPeriodBlocks: 100_800,                    // ~7d at 6s blocks
		AllowedMrEnclaves:     []string{},
		AllowedMrSigners:      []string{},
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MinimumStake.IsNil() || !p.MinimumStake.IsPositive() {
		return fmt.Errorf("minimum stake must be positive")
	}
	if p.AttestationTTLBlocks <= 0 {
		return fmt.Errorf("attestation TTL must be positive")
	}
	if p.UnbondingPeriodBlocks <= 0 {
		return fmt.Errorf("unbonding period must be positive")
	}
	for _, m := range p.AllowedMrEnclaves {
		if err := validateMeasurement(m); err != nil {
			return fmt.Errorf("allowed mr_enclave: %w", err)
		}
	}
	for _, m := range p.AllowedMrSigners {
		if err := validateMeasurement(m); err != nil {
			return fmt.Errorf("allowed mr_signer: %w", err)
		}
	}
	return nil
}

func validateMeasurement(s string) error {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("not hex: %w", err)
	}
	if len(bz) != MeasurementSize {
		return fmt.Errorf("measurement must be %d bytes, got %d", MeasurementSize, len(bz))
	}
	return nil
}

// MeasurementAllowed reports whether a raw measurement appears in a
// hex-encoded allow-list. An empty list allows everything.
func MeasurementAllowed(allowed []string, measurement []byte) bool {
	if len(allowed) == 0 {
		return true
	}
	encoded := hex.EncodeToString(measurement)
	for _, m := range allowed {
		if m == encoded {
			return true
		}
	}
	return false
}
