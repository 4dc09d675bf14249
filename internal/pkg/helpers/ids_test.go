package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("ADM")

	assert.True(t, strings.HasPrefix(id, "ADM"))
	assert.Len(t, id, len("ADM")+16)
}

func TestGenerateIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateID("STU")
		assert.False(t, seen[id])
		seen[id] = true
	}
}
