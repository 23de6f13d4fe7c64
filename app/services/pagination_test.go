package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePage(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseLimit(t *testing.T) {
	cases := []struct {
		raw  string
		def  int
		want int
	}{
		{"", DefaultListLimit, 50},
		{"", DefaultLatestLimit, 10},
		{"abc", DefaultListLimit, 50},
		{"0", DefaultLatestLimit, 10},
		{"-1", DefaultListLimit, 50},
		{"25", DefaultListLimit, 25},
		{"100", DefaultListLimit, 100},
		{"101", DefaultListLimit, 100},
		{"5000", DefaultLatestLimit, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLimit(tc.raw, tc.def), "raw=%q def=%d", tc.raw, tc.def)
	}
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		total       int64
		totalPages  int64
		hasNext     bool
		hasPrev     bool
	}{
		{"empty catalogue", 1, 50, 0, 0, false, false},
		{"single partial page", 1, 50, 10, 1, false, false},
		{"exact page boundary", 1, 50, 50, 1, false, false},
		{"second page exists", 1, 50, 51, 2, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"page past the end", 9, 10, 35, 4, false, true},
		{"limit one", 1, 1, 1, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasNext, p.HasNext)
			assert.Equal(t, tc.hasPrev, p.HasPrev)
		})
	}
}

// The envelope invariants must hold for every triple, not just the
// hand-picked cases above.
func TestPaginationInvariants(t *testing.T) {
	for _, page := range []int{1, 2, 3, 10} {
		for _, limit := range []int{1, 10, 50, 100} {
			for _, total := range []int64{0, 1, 49, 50, 51, 100, 999} {
				p := NewPagination(page, limit, total)
				assert.Equal(t, int64(page)*int64(limit) < total, p.HasNext,
					"hasNext page=%d limit=%d total=%d", page, limit, total)
				assert.Equal(t, page > 1, p.HasPrev,
					"hasPrev page=%d limit=%d total=%d", page, limit, total)
			}
		}
	}
}
