package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// ResultSigningBytes builds the canonical message a TEE node signs over a
// result submission: sha256 of the big-endian request id followed by the
// input, output and manifest commitments.
func ResultSigningBytes(requestID uint64, inputHash, outputHash, manifestHash []byte) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, requestID)

	hasher := sha256.New()
	hasher.Write(idBytes)
	hasher.Write(inputHash)
	hasher.Write(outputHash)
	hasher.Write(manifestHash)
	return hasher.Sum(nil)
}
