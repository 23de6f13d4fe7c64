package services

import "strconv"

const (
	// DefaultListLimit is the page size for list and search when the
	// caller does not provide one.
	DefaultListLimit = 50

	// DefaultLatestLimit is the default item count for the latest
	// endpoint.
	DefaultLatestLimit = 10

	// MaxLimit caps every page size regardless of caller input to
	// bound store load.
	MaxLimit = 100
)

// Pagination is the envelope accompanying multi-result responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ParsePage coerces a raw page parameter to a positive page number.
// Absent, non-numeric and non-positive values all become page 1;
// malformed input is silently recovered, never rejected.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

// ParseLimit coerces a raw limit parameter to an effective page size.
// Absent, non-numeric and non-positive values become def; anything
// above MaxLimit is clamped to MaxLimit.
func ParseLimit(raw string, def int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		limit = def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NewPagination computes the envelope for a page of results.
func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
	}
}
