// Package hashing derives stable content digests from arbitrary byte payloads.
// The digest is the content address of an uploaded image: identical bytes always
// map to the same digest, so records can be compared without retaining the bytes.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 renders digests as 64 lowercase hex characters.
type SHA256 struct{}

// New returns a SHA-256 backed hasher.
func New() SHA256 {
	return SHA256{}
}

// Digest returns the lowercase hex SHA-256 digest of data. Pure function:
// no salt, no key, no shared state.
func (SHA256) Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Digest is a package-level convenience for one-off digest computation.
func Digest(data []byte) string {
	return New().Digest(data)
}
