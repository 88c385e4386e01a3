package keeper

import (
	"context"
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// enqueue appends a request id to the pending FIFO queue.
func (k Keeper) enqueue(ctx context.Context, requestID uint64) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if k.PendingCount(ctx) >= params.MaxPendingRequests {
		return types.ErrQueueFull.Wrapf("queue holds %d requests", params.MaxPendingRequests)
	}

	store := k.getStore(ctx)
	seq := k.nextQueueSeq(ctx)
	store.Set(PendingQueueKey(seq), uint64Bytes(requestID))
	k.setPendingCount(ctx, k.PendingCount(ctx)+1)
	k.metrics.QueueSize.Set(float64(k.PendingCount(ctx)))
	return nil
}

// dequeueEntry removes a specific queue entry and adjusts the count.
func (k Keeper) dequeueEntry(ctx context.Context, seqKey []byte) {
	k.getStore(ctx).Delete(seqKey)
	if count := k.PendingCount(ctx); count > 0 {
		k.setPendingCount(ctx, count-1)
	}
	k.metrics.QueueSize.Set(float64(k.PendingCount(ctx)))
}

type queueEntry struct {
	key []byte
	id  uint64
}

// queueEntries snapshots the FIFO queue in order. Entries are collected
// before any mutation so callers can delete safely.
func (k Keeper) queueEntries(ctx context.Context) []queueEntry {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PendingQueuePrefix)
	defer iterator.Close()

	var entries []queueEntry
	for ; iterator.Valid(); iterator.Next() {
		key := make([]byte, len(iterator.Key()))
		copy(key, iterator.Key())
		entries = append(entries, queueEntry{key: key, id: GetIDFromBytes(iterator.Value())})
	}
	return entries
}

// removeFromQueue drops a request id from the queue wherever it sits.
// Used by cancellation; assignment consumes entries from the head instead.
func (k Keeper) removeFromQueue(ctx context.Context, requestID uint64) {
	for _, e := range k.queueEntries(ctx) {
		if e.id == requestID {
			k.dequeueEntry(ctx, e.key)
			return
		}
	}
}

// walkQueue visits queued request ids in FIFO order. The callback returns
// (consume, stop): consume deletes the entry, stop ends the walk.
func (k Keeper) walkQueue(ctx context.Context, cb func(requestID uint64) (consume, stop bool)) {
	for _, e := range k.queueEntries(ctx) {
		consume, stop := cb(e.id)
		if consume {
			k.dequeueEntry(ctx, e.key)
		}
		if stop {
			break
		}
	}
}

// PendingCount returns the number of queued requests.
func (k Keeper) PendingCount(ctx context.Context) uint32 {
	bz := k.getStore(ctx).Get(PendingCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint32(bz)
}

func (k Keeper) setPendingCount(ctx context.Context, count uint32) {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, count)
	k.getStore(ctx).Set(PendingCountKey, bz)
}

func (k Keeper) nextQueueSeq(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	seq := uint64(1)
	if bz := store.Get(QueueSeqKey); bz != nil {
		seq = binary.BigEndian.Uint64(bz) + 1
	}
	store.Set(QueueSeqKey, uint64Bytes(seq))
	return seq
}

// NodeCurrentRequest returns the request a node is processing, if any.
func (k Keeper) NodeCurrentRequest(ctx context.Context, node sdk.AccAddress) (uint64, bool) {
	bz := k.getStore(ctx).Get(NodeBusyKey(node))
	if bz == nil {
		return 0, false
	}
	return GetIDFromBytes(bz), true
}

func (k Keeper) setNodeBusy(ctx context.Context, node sdk.AccAddress, requestID uint64) {
	k.getStore(ctx).Set(NodeBusyKey(node), uint64Bytes(requestID))
}

func (k Keeper) clearNodeBusy(ctx context.Context, node sdk.AccAddress) {
	k.getStore(ctx).Delete(NodeBusyKey(node))
}

// selectNode picks the next free admitted node in round-robin order: the
// first eligible address strictly after the cursor, wrapping to the first.
func (k Keeper) selectNode(ctx context.Context) (sdk.AccAddress, bool) {
	store := k.getStore(ctx)
	cursor := store.Get(CursorKey)

	var first, next sdk.AccAddress
	k.teeKeeper.IterateActiveNodes(ctx, func(addr sdk.AccAddress) bool {
		if !k.teeKeeper.IsNodeActive(ctx, addr) {
			return false
		}
		if _, busy := k.NodeCurrentRequest(ctx, addr); busy {
			return false
		}
		if first == nil {
			first = addr
		}
		if next == nil && string(addr.Bytes()) > string(cursor) {
			next = addr
			return true
		}
		return false
	})

	chosen := next
	if chosen == nil {
		chosen = first
	}
	if chosen == nil {
		return nil, false
	}

	store.Set(CursorKey, chosen.Bytes())
	return chosen, true
}
