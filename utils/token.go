package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken hashes a provider token for use as a cache key, so raw
// tokens never appear in Redis keys or logs.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
