// Package hash provides content fingerprinting helpers shared across the
// identity API.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hashable is implemented by any value that can produce a stable content
// fingerprint of itself.
type Hashable interface {
	Hash() string
}

// Sum returns the SHA-256 digest of data as a lowercase hex string.
// Deterministic: the same input always yields the same 64-character output.
func Sum(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
