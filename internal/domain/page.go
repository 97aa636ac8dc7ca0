package domain

import "strconv"

// Page describes the window actually returned by a listing.
type Page struct {
	Limit    int    `json:"limit"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

// NewPage computes pagination metadata. Limit is the count actually
// returned, Next the offset of the following window. Previous subtracts
// the requested limit, not the returned count; "-1" means no previous
// page. That asymmetry is part of the wire contract.
func NewPage(returned int, limit, offset int64) Page {
	previous := "-1"
	if prev := offset - limit; prev >= 0 {
		previous = strconv.FormatInt(prev, 10)
	}
	return Page{
		Limit:    returned,
		Next:     strconv.FormatInt(offset+int64(returned), 10),
		Previous: previous,
	}
}
