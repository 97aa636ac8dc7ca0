package http

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var errBadPagination = errors.New("bad pagination parameter")

// parsePagination reads limit/offset query parameters. Limit must be in
// [1,100] (default 10), offset non-negative (default 0). Rejected before
// any store access.
func parsePagination(r *http.Request) (limit, offset int64, err error) {
	limit = defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, errBadPagination
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || offset < 0 {
			return 0, 0, errBadPagination
		}
	}

	return limit, offset, nil
}
