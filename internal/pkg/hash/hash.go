// Package hash provides the one-way credential digest used for password
// storage. Digests are compared for equality; plaintext secrets never are.
package hash

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest returns the lowercase hexadecimal SHA3-256 digest of secret.
// Deterministic and fixed-length regardless of input size.
func Digest(secret string) string {
	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
