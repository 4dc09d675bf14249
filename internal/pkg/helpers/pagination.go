package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ParseListParams extracts skip/limit query parameters for list endpoints.
// Invalid or out-of-range values fall back to defaults.
func ParseListParams(c *gin.Context) (limit, offset int) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultListLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	skipStr := c.DefaultQuery("skip", "0")
	offset, err = strconv.Atoi(skipStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
