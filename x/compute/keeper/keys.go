package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key layout for the compute module. Fixed-width big-endian ids keep
// iteration order equal to numeric order.
var (
	ParamsKey = []byte{0x01}

	// RequestKeyPrefix + id -> Request
	RequestKeyPrefix = []byte{0x02}

	// NextRequestIDKey -> uint64 counter
	NextRequestIDKey = []byte{0x03}

	// PendingQueuePrefix + seq -> request id (FIFO)
	PendingQueuePrefix = []byte{0x04}

	// QueueSeqKey -> uint64 tail sequence counter
	QueueSeqKey = []byte{0x05}

	// PendingCountKey -> uint32 queue length
	PendingCountKey = []byte{0x06}

	// NodeBusyPrefix + node address -> request id
	NodeBusyPrefix = []byte{0x07}

	// CursorKey -> last node address picked by the round-robin scheduler
	CursorKey = []byte{0x08}

	// InputDataPrefix + id -> raw input (transient)
	InputDataPrefix = []byte{0x09}

	// UserPubkeyPrefix + id -> user pubkey (transient)
	UserPubkeyPrefix = []byte{0x0A}

	// VersionHintPrefix + id -> VersionHint (transient)
	VersionHintPrefix = []byte{0x0B}

	// ProcessingIndexPrefix + timeoutAt + id -> nil
	ProcessingIndexPrefix = []byte{0x0C}

	// ResultKeyPrefix + id -> Result
	ResultKeyPrefix = []byte{0x0D}

	// VersionChainPrefix + firstId -> []uint64
	VersionChainPrefix = []byte{0x0E}

	// LatestVersionPrefix + firstId -> uint64
	LatestVersionPrefix = []byte{0x0F}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// RequestKey returns the store key for a request
func RequestKey(id uint64) []byte {
	return append(RequestKeyPrefix, uint64Bytes(id)...)
}

// PendingQueueKey returns the store key for a queue entry
func PendingQueueKey(seq uint64) []byte {
	return append(PendingQueuePrefix, uint64Bytes(seq)...)
}

// NodeBusyKey returns the store key for a node's current assignment
func NodeBusyKey(node sdk.AccAddress) []byte {
	return append(NodeBusyPrefix, node.Bytes()...)
}

// InputDataKey returns the store key for a request's transient input
func InputDataKey(id uint64) []byte {
	return append(InputDataPrefix, uint64Bytes(id)...)
}

// UserPubkeyKey returns the store key for a request's transient user pubkey
func UserPubkeyKey(id uint64) []byte {
	return append(UserPubkeyPrefix, uint64Bytes(id)...)
}

// VersionHintKey returns the store key for a request's transient version hint
func VersionHintKey(id uint64) []byte {
	return append(VersionHintPrefix, uint64Bytes(id)...)
}

// ProcessingIndexKey returns the timeout-ordered index key for a request
func ProcessingIndexKey(timeoutAt int64, id uint64) []byte {
	key := append(ProcessingIndexPrefix, uint64Bytes(uint64(timeoutAt))...)
	return append(key, uint64Bytes(id)...)
}

// ResultKey returns the store key for a result
func ResultKey(id uint64) []byte {
	return append(ResultKeyPrefix, uint64Bytes(id)...)
}

// VersionChainKey returns the store key for a result chain
func VersionChainKey(firstID uint64) []byte {
	return append(VersionChainPrefix, uint64Bytes(firstID)...)
}

// LatestVersionKey returns the store key for a chain's latest pointer
func LatestVersionKey(firstID uint64) []byte {
	return append(LatestVersionPrefix, uint64Bytes(firstID)...)
}

// GetIDFromBytes parses a big-endian uint64 id
func GetIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
