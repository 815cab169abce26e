package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey maps a user id (which may contain ":" and other separator
// characters) to a filesystem- and S3-safe directory name. Document storage
// keys are namespaced by this value.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
