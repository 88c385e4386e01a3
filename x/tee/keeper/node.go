package keeper

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

// GetNode retrieves a node record by address
func (k Keeper) GetNode(ctx context.Context, address sdk.AccAddress) (types.Node, bool) {
	store := k.getStore(ctx)
	bz := store.Get(NodeKey(address))
	if bz == nil {
		return types.Node{}, false
	}

	var node types.Node
	if err := json.Unmarshal(bz, &node); err != nil {
		return types.Node{}, false
	}
	return node, true
}

// SetNode stores a node record and maintains the active index
func (k Keeper) SetNode(ctx context.Context, node types.Node) error {
	addr, err := sdk.AccAddressFromBech32(node.Address)
	if err != nil {
		return types.ErrInvalidAddress.Wrap(err.Error())
	}

	bz, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to marshal node record: %w", err)
	}

	store := k.getStore(ctx)
	store.Set(NodeKey(addr), bz)

	if node.Status == types.NodeStatusActive {
		store.Set(ActiveNodeKey(addr), []byte{1})
	} else {
		store.Delete(ActiveNodeKey(addr))
	}
	return nil
}

// RegisterNode admits a new TEE worker. The attestation measurements must
// pass the allow-lists and the enclave pubkey is pinned permanently.
// Stake must already be bonded at or above the minimum before registration.
func (k Keeper) RegisterNode(ctx context.Context, sender sdk.AccAddress, enclavePubkey, mrEnclave, mrSigner []byte, teeType uint32) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if _, found := k.GetNode(ctx, sender); found {
		return types.ErrNodeAlreadyRegistered.Wrapf("node %s", sender)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if !types.MeasurementAllowed(params.AllowedMrEnclaves, mrEnclave) {
		return types.ErrEnclaveNotAllowed.Wrapf("mr_enclave %s", hex.EncodeToString(mrEnclave))
	}
	if !types.MeasurementAllowed(params.AllowedMrSigners, mrSigner) {
		return types.ErrSignerNotAllowed.Wrapf("mr_signer %s", hex.EncodeToString(mrSigner))
	}
	if err := k.verifyAttestation(ctx, enclavePubkey, mrEnclave, mrSigner, teeType); err != nil {
		return err
	}

	stake := k.GetStake(ctx, sender)
	if stake.Amount.LT(params.MinimumStake) {
		return types.ErrInsufficientStake.Wrapf("bonded %s, minimum %s", stake.Amount, params.MinimumStake)
	}

	node := types.Node{
		Address:       sender.String(),
		EnclavePubkey: enclavePubkey,
		MrEnclave:     mrEnclave,
		MrSigner:      mrSigner,
		TeeType:       teeType,
		Status:        types.NodeStatusActive,
		AttestedAt:    sdkCtx.BlockHeight(),
		RegisteredAt:  sdkCtx.BlockHeight(),
	}
	if err := k.SetNode(ctx, node); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNodeRegistered,
			sdk.NewAttribute(types.AttributeKeyNode, sender.String()),
			sdk.NewAttribute(types.AttributeKeyMrEnclave, hex.EncodeToString(mrEnclave)),
			sdk.NewAttribute(types.AttributeKeyMrSigner, hex.EncodeToString(mrSigner)),
		),
	)

	return nil
}

// RefreshAttestation renews a node's attestation timestamp. The measurements
// are re-checked against the current allow-lists, so a governance revocation
// takes effect at the node's next refresh at the latest.
func (k Keeper) RefreshAttestation(ctx context.Context, sender sdk.AccAddress, mrEnclave, mrSigner []byte) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	node, found := k.GetNode(ctx, sender)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", sender)
	}
	if node.Status == types.NodeStatusSlashed || node.Status == types.NodeStatusRetired {
		return types.ErrNodeNotActive.Wrapf("node %s in status %s", sender, node.Status)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if !types.MeasurementAllowed(params.AllowedMrEnclaves, mrEnclave) {
		return types.ErrEnclaveNotAllowed.Wrapf("mr_enclave %s", hex.EncodeToString(mrEnclave))
	}
	if !types.MeasurementAllowed(params.AllowedMrSigners, mrSigner) {
		return types.ErrSignerNotAllowed.Wrapf("mr_signer %s", hex.EncodeToString(mrSigner))
	}

	// A changed MRENCLAVE means a different enclave binary, which would also
	// mean a different sealed key. Reject rather than silently accept.
	if !bytes.Equal(node.MrEnclave, mrEnclave) || !bytes.Equal(node.MrSigner, mrSigner) {
		return types.ErrPubkeyImmutable.Wrap("measurements differ from registration; retire and re-register")
	}

	if err := k.verifyAttestation(ctx, node.EnclavePubkey, mrEnclave, mrSigner, node.TeeType); err != nil {
		return err
	}

	node.AttestedAt = sdkCtx.BlockHeight()
	if err := k.SetNode(ctx, node); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestationRefreshed,
			sdk.NewAttribute(types.AttributeKeyNode, sender.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", node.AttestedAt)),
		),
	)

	return nil
}

// verifyAttestation runs the wired verification backend over the evidence.
// Expiry is passed through as-is; any other failure maps to
// ErrAttestationInvalid so callers see a single rejection code.
func (k Keeper) verifyAttestation(ctx context.Context, enclavePubkey, mrEnclave, mrSigner []byte, teeType uint32) error {
	if k.verifier == nil {
		return nil
	}
	if err := k.verifier.VerifyAttestation(ctx, enclavePubkey, mrEnclave, mrSigner, teeType); err != nil {
		if errors.Is(err, types.ErrAttestationExpired) {
			return err
		}
		return types.ErrAttestationInvalid.Wrap(err.Error())
	}
	return nil
}

// IsNodeActive reports whether a node may be assigned work: ACTIVE status,
// stake at or above minimum and a fresh attestation.
func (k Keeper) IsNodeActive(ctx context.Context, address sdk.AccAddress) bool {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	node, found := k.GetNode(ctx, address)
	if !found || node.Status != types.NodeStatusActive {
		return false
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return false
	}

	if k.GetStake(ctx, address).Amount.LT(params.MinimumStake) {
		return false
	}
	if sdkCtx.BlockHeight()-node.AttestedAt > params.AttestationTTLBlocks {
		return false
	}
	return true
}

// GetEnclavePubkey returns the pinned enclave pubkey for a node.
func (k Keeper) GetEnclavePubkey(ctx context.Context, address sdk.AccAddress) ([]byte, error) {
	node, found := k.GetNode(ctx, address)
	if !found {
		return nil, types.ErrNodeNotFound.Wrapf("node %s", address)
	}
	return node.EnclavePubkey, nil
}

// IterateActiveNodes visits nodes in the active index in address order.
// Status is indexed; stake and attestation freshness are re-checked by the
// caller via IsNodeActive.
func (k Keeper) IterateActiveNodes(ctx context.Context, cb func(address sdk.AccAddress) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ActiveNodesPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(ActiveNodesPrefix):])
		if cb(addr) {
			break
		}
	}
}

// IterateNodes visits every node record.
func (k Keeper) IterateNodes(ctx context.Context, cb func(node types.Node) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, NodeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var node types.Node
		if err := json.Unmarshal(iterator.Value(), &node); err != nil {
			continue
		}
		if cb(node) {
			break
		}
	}
}

// SuspendNode takes a node out of rotation without touching its stake.
func (k Keeper) SuspendNode(ctx context.Context, address sdk.AccAddress, reason string) error {
	node, found := k.GetNode(ctx, address)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", address)
	}
	if node.Status != types.NodeStatusActive {
		return types.ErrNodeNotActive.Wrapf("node %s in status %s", address, node.Status)
	}

	node.Status = types.NodeStatusSuspended
	if err := k.SetNode(ctx, node); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSuspended,
			sdk.NewAttribute(types.AttributeKeyNode, address.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	return nil
}

// ResumeNode returns a suspended node to rotation.
func (k Keeper) ResumeNode(ctx context.Context, address sdk.AccAddress) error {
	node, found := k.GetNode(ctx, address)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", address)
	}
	if node.Status != types.NodeStatusSuspended {
		return types.ErrNodeNotSuspended.Wrapf("node %s in status %s", address, node.Status)
	}

	node.Status = types.NodeStatusActive
	if err := k.SetNode(ctx, node); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResumed,
			sdk.NewAttribute(types.AttributeKeyNode, address.String()),
		),
	)
	return nil
}
