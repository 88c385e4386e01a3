package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PrivacyMode controls what is persisted alongside a result and which
// pinning tier its manifest gets.
type PrivacyMode uint32

const (
	PrivacyModePublic    PrivacyMode = 0
	PrivacyModeEncrypted PrivacyMode = 1
	PrivacyModePrivate   PrivacyMode = 2
)

// String implements fmt.Stringer
func (p PrivacyMode) String() string {
	switch p {
	case PrivacyModeEncrypted:
		return "ENCRYPTED"
	case PrivacyModePrivate:
		return "PRIVATE"
	default:
		return "PUBLIC"
	}
}

// Validate rejects unknown privacy modes.
func (p PrivacyMode) Validate() error {
	switch p {
	case PrivacyModePublic, PrivacyModeEncrypted, PrivacyModePrivate:
		return nil
	default:
		return fmt.Errorf("unknown privacy mode %d", p)
	}
}

// PinTier is the storage durability class requested from the pinning layer.
type PinTier uint32

const (
	PinTierTemporary PinTier = 0
	PinTierStandard  PinTier = 1
	PinTierCritical  PinTier = 2
)

// String implements fmt.Stringer
func (t PinTier) String() string {
	switch t {
	case PinTierStandard:
		return "STANDARD"
	case PinTierCritical:
		return "CRITICAL"
	default:
		return "TEMPORARY"
	}
}

// PinTierForPrivacy maps a result's privacy mode to a pinning tier.
func PinTierForPrivacy(mode PrivacyMode) PinTier {
	switch mode {
	case PrivacyModeEncrypted:
		return PinTierStandard
	case PrivacyModePrivate:
		return PinTierCritical
	default:
		return PinTierTemporary
	}
}

// GenerationKind distinguishes how a result was produced.
type GenerationKind uint32

const (
	GenerationOCW GenerationKind = 1
	GenerationTEE GenerationKind = 2
)

// Generation records the provenance of a result. TEE results carry the
// producing node and its signature as proof; off-chain worker results carry
// neither.
type Generation struct {
	Kind  GenerationKind `json:"kind"`
	Node  string         `json:"node,omitempty"`
	Proof []byte         `json:"proof,omitempty"`
}

// Validate checks provenance consistency for the generation kind.
func (g Generation) Validate() error {
	switch g.Kind {
	case GenerationOCW:
		if g.Node != "" || len(g.Proof) > 0 {
			return fmt.Errorf("off-chain worker results carry no node or proof")
		}
	case GenerationTEE:
		if _, err := sdk.AccAddressFromBech32(g.Node); err != nil {
			return fmt.Errorf("invalid generation node: %w", err)
		}
		if len(g.Proof) == 0 {
			return fmt.Errorf("enclave results must carry a proof")
		}
	default:
		return fmt.Errorf("unknown generation kind %d", g.Kind)
	}
	return nil
}

// Result is a versioned compute result. Results for the same logical
// computation form a chain rooted at FirstVersionId; exactly one entry per
// chain has IsLatest set.
type Result struct {
	RequestId       uint64      `json:"request_id"`
	Owner           string      `json:"owner"`
	ComputeType     uint8       `json:"compute_type"`
	PrivacyMode     PrivacyMode `json:"privacy_mode"`
	TypeIndex       []byte      `json:"type_index,omitempty"`
	OutputHash      []byte      `json:"output_hash"`
	ManifestCid     string      `json:"manifest_cid"`
	ManifestHash    []byte      `json:"manifest_hash"`
	Generation      Generation  `json:"generation"`
	Version         uint64      `json:"version"`
	FirstVersionId  uint64      `json:"first_version_id"`
	PreviousVersion uint64      `json:"previous_version,omitempty"`
	IsLatest        bool        `json:"is_latest"`
	CreatedAt       int64       `json:"created_at"`
	UpdatedAt       int64       `json:"updated_at"`
}

// Validate performs stateless validation of a result record
func (r Result) Validate() error {
	if r.RequestId == 0 {
		return fmt.Errorf("result request id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(r.Owner); err != nil {
		return fmt.Errorf("invalid result owner: %w", err)
	}
	if err := r.PrivacyMode.Validate(); err != nil {
		return err
	}
	if r.PrivacyMode == PrivacyModePrivate && len(r.TypeIndex) > 0 {
		return fmt.Errorf("private results must not carry a type index")
	}
	if len(r.TypeIndex) > MaxTypeIndexLength {
		return fmt.Errorf("type index exceeds %d bytes", MaxTypeIndexLength)
	}
	if len(r.ManifestCid) == 0 || len(r.ManifestCid) > MaxManifestCidLength {
		return fmt.Errorf("manifest cid must be 1..%d bytes", MaxManifestCidLength)
	}
	if len(r.ManifestHash) != ManifestHashSize {
		return fmt.Errorf("manifest hash must be %d bytes, got %d", ManifestHashSize, len(r.ManifestHash))
	}
	if err := r.Generation.Validate(); err != nil {
		return err
	}
	if r.Version == 0 {
		return fmt.Errorf("result version starts at 1")
	}
	if r.FirstVersionId == 0 {
		return fmt.Errorf("result first version id cannot be zero")
	}
	return nil
}
