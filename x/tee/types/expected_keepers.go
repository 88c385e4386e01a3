package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank module.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// AttestationVerifier checks attestation evidence beyond the measurement
// allow-lists (quote signature chains, collateral freshness). Optional; when
// no verifier is wired, evidence that passes the allow-lists is accepted.
// Implementations return ErrAttestationExpired for stale collateral; any
// other failure is surfaced as ErrAttestationInvalid.
type AttestationVerifier interface {
	VerifyAttestation(ctx context.Context, enclavePubkey, mrEnclave, mrSigner []byte, teeType uint32) error
}
