package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestGenerationValidate(t *testing.T) {
	node := sdk.AccAddress([]byte("node________________")).String()

	require.NoError(t, Generation{Kind: GenerationOCW}.Validate())
	require.NoError(t, Generation{Kind: GenerationTEE, Node: node, Proof: []byte{0x01}}.Validate())

	// off-chain worker results carry no provenance fields
	require.Error(t, Generation{Kind: GenerationOCW, Node: node}.Validate())
	require.Error(t, Generation{Kind: GenerationOCW, Proof: []byte{0x01}}.Validate())

	// enclave results need both a node and a proof
	require.Error(t, Generation{Kind: GenerationTEE, Node: node}.Validate())
	require.Error(t, Generation{Kind: GenerationTEE, Proof: []byte{0x01}}.Validate())

	require.Error(t, Generation{}.Validate())
	require.Error(t, Generation{Kind: 9}.Validate())
}

func TestResultValidateProvenance(t *testing.T) {
	owner := sdk.AccAddress([]byte("owner_______________")).String()
	base := Result{
		RequestId:      1,
		Owner:          owner,
		PrivacyMode:    PrivacyModePublic,
		OutputHash:     make([]byte, 32),
		ManifestCid:    "bafyresult",
		ManifestHash:   make([]byte, ManifestHashSize),
		Generation:     Generation{Kind: GenerationOCW},
		Version:        1,
		FirstVersionId: 1,
	}
	require.NoError(t, base.Validate())

	base.Generation = Generation{Kind: GenerationTEE}
	require.Error(t, base.Validate())
}
