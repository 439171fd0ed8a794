package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of password encoded as a lowercase
// hexadecimal string.
//
// The digest format is part of the persisted account data, so it must stay
// stable across releases.
//
// Example usage:
//
//	digest := utils.HashPassword("secret")
//	// 2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// EqualDigest reports whether password hashes to digest.
func EqualDigest(password, digest string) bool {
	return HashPassword(password) == digest
}
