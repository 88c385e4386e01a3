package keeper

import (
	"encoding/binary"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// LockKeyPrefix is the prefix for lock record storage
	LockKeyPrefix = []byte{0x02}

	// ExpiryQueuePrefix indexes locks by expiry height for EndBlocker dispatch.
	// Key: prefix + height + lockID
	ExpiryQueuePrefix = []byte{0x03}

	// ExpiryReversePrefix is the reverse index for expiry lookup by lock ID.
	// Key: prefix + lockID -> height
	// This enables O(1) removal when a lock closes or is rescheduled.
	ExpiryReversePrefix = []byte{0x04}

	// PausedKey stores the module-wide pause flag
	PausedKey = []byte{0x05}
)

// LockKey returns the store key for a lock record
func LockKey(lockID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, lockID)
	return append(LockKeyPrefix, bz...)
}

// ExpiryQueueKey returns the expiry index key for a lock at a height
func ExpiryQueueKey(height int64, lockID uint64) []byte {
	heightBz := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBz, uint64(height))
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, lockID)
	return append(append(ExpiryQueuePrefix, heightBz...), idBz...)
}

// ExpiryQueuePrefixForHeight returns the prefix covering all expiries at a height
func ExpiryQueuePrefixForHeight(height int64) []byte {
	heightBz := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBz, uint64(height))
	return append(ExpiryQueuePrefix, heightBz...)
}

// ExpiryReverseKey returns the reverse index key for a lock's scheduled expiry
func ExpiryReverseKey(lockID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, lockID)
	return append(ExpiryReversePrefix, bz...)
}

// GetLockIDFromBytes converts bytes to lock ID
func GetLockIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
