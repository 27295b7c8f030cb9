package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateDecisionID returns a random 128-bit hex identifier.
func GenerateDecisionID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
