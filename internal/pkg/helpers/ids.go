package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a prefixed 16-hex-character identifier, e.g. "ADM3f2c...".
func GenerateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + hex[:16]
}
