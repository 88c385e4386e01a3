package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// GetResult retrieves a result by id
func (k Keeper) GetResult(ctx context.Context, resultID uint64) (types.Result, bool) {
	bz := k.getStore(ctx).Get(ResultKey(resultID))
	if bz == nil {
		return types.Result{}, false
	}

	var result types.Result
	if err := json.Unmarshal(bz, &result); err != nil {
		return types.Result{}, false
	}
	return result, true
}

// SetResult stores a result record
func (k Keeper) SetResult(ctx context.Context, result types.Result) error {
	bz, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	k.getStore(ctx).Set(ResultKey(result.RequestId), bz)
	return nil
}

// GetVersionChain returns the ordered result ids of a chain.
func (k Keeper) GetVersionChain(ctx context.Context, firstID uint64) []uint64 {
	bz := k.getStore(ctx).Get(VersionChainKey(firstID))
	if bz == nil {
		return nil
	}

	var chain []uint64
	if err := json.Unmarshal(bz, &chain); err != nil {
		return nil
	}
	return chain
}

func (k Keeper) setVersionChain(ctx context.Context, firstID uint64, chain []uint64) error {
	bz, err := json.Marshal(chain)
	if err != nil {
		return fmt.Errorf("failed to marshal version chain: %w", err)
	}
	k.getStore(ctx).Set(VersionChainKey(firstID), bz)
	return nil
}

// GetLatestVersion returns the id of a chain's latest result.
func (k Keeper) GetLatestVersion(ctx context.Context, firstID uint64) (uint64, bool) {
	bz := k.getStore(ctx).Get(LatestVersionKey(firstID))
	if bz == nil {
		return 0, false
	}
	return GetIDFromBytes(bz), true
}

func (k Keeper) setLatestVersion(ctx context.Context, firstID, resultID uint64) {
	k.getStore(ctx).Set(LatestVersionKey(firstID), uint64Bytes(resultID))
}

// persistResult stores the result of a completed request, starting a new
// version chain or extending the one named by the request's version hint.
func (k Keeper) persistResult(ctx context.Context, request types.Request, node sdk.AccAddress, outputHash, typeIndex []byte, manifestCid string, manifestHash, signature []byte) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if request.PrivacyMode == types.PrivacyModePrivate {
		typeIndex = nil
	}

	result := types.Result{
		RequestId:    request.Id,
		Owner:        request.Requester,
		ComputeType:  request.ComputeType,
		PrivacyMode:  request.PrivacyMode,
		TypeIndex:    typeIndex,
		OutputHash:   outputHash,
		ManifestCid:  manifestCid,
		ManifestHash: manifestHash,
		Generation: types.Generation{
			Kind:  types.GenerationTEE,
			Node:  node.String(),
			Proof: signature,
		},
		IsLatest:  true,
		CreatedAt: sdkCtx.BlockHeight(),
		UpdatedAt: sdkCtx.BlockHeight(),
	}

	hint, hasHint := k.GetVersionHint(ctx, request.Id)
	if hasHint {
		if err := k.appendToChain(ctx, &result, hint); err != nil {
			return err
		}
	} else {
		result.Version = 1
		result.FirstVersionId = request.Id
		if err := k.setVersionChain(ctx, request.Id, []uint64{request.Id}); err != nil {
			return err
		}
		k.setLatestVersion(ctx, request.Id, request.Id)
	}

	if err := k.SetResult(ctx, result); err != nil {
		return err
	}

	k.pinManifest(ctx, result)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResultStored,
			sdk.NewAttribute(types.AttributeKeyResultID, fmt.Sprintf("%d", result.RequestId)),
			sdk.NewAttribute(types.AttributeKeyVersion, fmt.Sprintf("%d", result.Version)),
			sdk.NewAttribute(types.AttributeKeyManifestCid, result.ManifestCid),
		),
	)
	return nil
}

// appendToChain inserts a recomputed result as the new latest version.
func (k Keeper) appendToChain(ctx context.Context, result *types.Result, hint types.VersionHint) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	chain := k.GetVersionChain(ctx, hint.FirstVersionId)
	if uint32(len(chain)) >= params.MaxVersions {
		return types.ErrTooManyVersions.Wrapf("chain %d holds %d versions", hint.FirstVersionId, len(chain))
	}

	previous, found := k.GetResult(ctx, hint.PreviousVersion)
	if !found {
		return types.ErrResultNotFound.Wrapf("previous version %d", hint.PreviousVersion)
	}

	result.Version = previous.Version + 1
	result.FirstVersionId = hint.FirstVersionId
	result.PreviousVersion = hint.PreviousVersion

	if previous.IsLatest {
		previous.IsLatest = false
		if err := k.SetResult(ctx, previous); err != nil {
			return err
		}
	}

	chain = append(chain, result.RequestId)
	if err := k.setVersionChain(ctx, hint.FirstVersionId, chain); err != nil {
		return err
	}
	k.setLatestVersion(ctx, hint.FirstVersionId, result.RequestId)
	return nil
}

// UpdateResult spawns a recomputation request extending an existing chain.
// Completion of the new request inserts the next version.
func (k Keeper) UpdateResult(ctx context.Context, owner sdk.AccAddress, resultID uint64, inputHash, input, userPubkey []byte) (uint64, error) {
	result, found := k.GetResult(ctx, resultID)
	if !found {
		return 0, types.ErrResultNotFound.Wrapf("result %d", resultID)
	}
	if result.Owner != owner.String() {
		return 0, types.ErrNotOwner.Wrapf("result %d belongs to %s", resultID, result.Owner)
	}

	latestID, found := k.GetLatestVersion(ctx, result.FirstVersionId)
	if !found {
		return 0, types.ErrResultNotFound.Wrapf("chain %d has no latest version", result.FirstVersionId)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if uint32(len(k.GetVersionChain(ctx, result.FirstVersionId))) >= params.MaxVersions {
		return 0, types.ErrTooManyVersions.Wrapf("chain %d is at the version cap", result.FirstVersionId)
	}

	hint := &types.VersionHint{
		FirstVersionId:  result.FirstVersionId,
		PreviousVersion: latestID,
	}
	requestID, err := k.submitRequest(ctx, owner, result.ComputeType, result.PrivacyMode, inputHash, input, userPubkey, hint)
	if err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResultUpdated,
			sdk.NewAttribute(types.AttributeKeyResultID, fmt.Sprintf("%d", resultID)),
			sdk.NewAttribute(types.AttributeKeyRequestID, fmt.Sprintf("%d", requestID)),
		),
	)
	return requestID, nil
}

// DeleteResult removes a result version, cascading its chain entry and
// latest pointer, and unpins its manifest.
func (k Keeper) DeleteResult(ctx context.Context, owner sdk.AccAddress, resultID uint64) error {
	result, found := k.GetResult(ctx, resultID)
	if !found {
		return types.ErrResultNotFound.Wrapf("result %d", resultID)
	}
	if result.Owner != owner.String() {
		return types.ErrNotOwner.Wrapf("result %d belongs to %s", resultID, result.Owner)
	}

	store := k.getStore(ctx)
	store.Delete(ResultKey(resultID))

	chain := k.GetVersionChain(ctx, result.FirstVersionId)
	remaining := chain[:0]
	for _, id := range chain {
		if id != resultID {
			remaining = append(remaining, id)
		}
	}

	if len(remaining) == 0 {
		store.Delete(VersionChainKey(result.FirstVersionId))
		store.Delete(LatestVersionKey(result.FirstVersionId))
	} else {
		if err := k.setVersionChain(ctx, result.FirstVersionId, remaining); err != nil {
			return err
		}
		if latestID, ok := k.GetLatestVersion(ctx, result.FirstVersionId); ok && latestID == resultID {
			newLatestID := remaining[len(remaining)-1]
			k.setLatestVersion(ctx, result.FirstVersionId, newLatestID)
			if newLatest, ok := k.GetResult(ctx, newLatestID); ok && !newLatest.IsLatest {
				newLatest.IsLatest = true
				if err := k.SetResult(ctx, newLatest); err != nil {
					return err
				}
			}
		}
	}

	k.unpinManifest(ctx, result)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResultDeleted,
			sdk.NewAttribute(types.AttributeKeyResultID, fmt.Sprintf("%d", resultID)),
		),
	)
	return nil
}

// IterateResults visits every result record.
func (k Keeper) IterateResults(ctx context.Context, cb func(result types.Result) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ResultKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var result types.Result
		if err := json.Unmarshal(iterator.Value(), &result); err != nil {
			continue
		}
		if cb(result) {
			break
		}
	}
}

// pinManifest asks the pinning layer to persist the manifest at the tier
// implied by the result's privacy mode. Failures are logged only.
func (k Keeper) pinManifest(ctx context.Context, result types.Result) {
	if k.pinner == nil {
		return
	}
	tier := types.PinTierForPrivacy(result.PrivacyMode)
	if err := k.pinner.Pin(ctx, result.ManifestCid, tier); err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("manifest pin failed",
			"cid", result.ManifestCid, "tier", tier.String(), "error", err)
	}
}

func (k Keeper) unpinManifest(ctx context.Context, result types.Result) {
	if k.pinner == nil {
		return
	}
	if err := k.pinner.Unpin(ctx, result.ManifestCid); err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("manifest unpin failed",
			"cid", result.ManifestCid, "error", err)
	}
}
