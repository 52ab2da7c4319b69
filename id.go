package aeo

import (
	"crypto/sha256"
	"encoding/hex"
)

// MakeID returns a stable 16-character hex identifier derived from seed.
func MakeID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:16]
}
