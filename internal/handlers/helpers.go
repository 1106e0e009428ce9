package handlers

import (
	"net/http"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

func noContent(c *drift.Context) {
	_ = c.HTML(http.StatusNoContent, "")
}

// parseTimeQuery reads an RFC 3339 query parameter, nil when absent or
// malformed.
func parseTimeQuery(c *drift.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
