package pagination

import (
	"strconv"

	"github.com/rmohit9/Healthcare-Portal/pkg/response"
)

// Page is a clamped window over a result set of Total items.
// An empty result set still has one (empty) page.
type Page struct {
	Number     int
	Size       int
	Total      int64
	TotalPages int
}

// New clamps requested into [1, TotalPages].
func New(requested, size int, total int64) Page {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ParseNumber reads a page query parameter. Anything that is not a positive integer is page 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) Meta() *response.Meta {
	return &response.Meta{
		Page:        p.Number,
		Limit:       p.Size,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}
