package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

func HashString(data string) []byte {
	hash := sha256.Sum256([]byte(data))
	return hash[:]
}

func HashBytes(data []byte) []byte {
	bytes := sha256.Sum256(data)
	return bytes[:]
}

// HashHex returns the sha256 digest of data as a 0x-prefixed hex string, the
// form used for deterministic signatures and transaction hashes.
func HashHex(data []byte) string {
	bytes := sha256.Sum256(data)
	return "0x" + hex.EncodeToString(bytes[:])
}
