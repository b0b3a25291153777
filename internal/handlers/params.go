package handlers

import (
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func intParam(c *drift.Context, name string) (int, bool) {
	return parseInt(c.Param(name))
}

func parseInt(raw string) (int, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// pagination reads skip/limit query parameters with the defaults the
// original API used.
func pagination(c *drift.Context) (int, int) {
	skip := 0
	if v, err := strconv.Atoi(c.QueryParam("skip")); err == nil && v > 0 {
		skip = v
	}
	limit := defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}
	return skip, limit
}
