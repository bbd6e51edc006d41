package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	MaxPageLimit = 100
)

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ParsePage reads raw query-string values. A missing, non-numeric or < 1 page
// becomes 1; a missing, non-numeric or < 1 limit becomes defaultLimit. Limits are
// capped at MaxPageLimit, and the page number is capped so Offset cannot overflow.
func ParsePage(rawPage, rawLimit string, defaultLimit int) Page {
	p := Page{Number: DefaultPage, Limit: defaultLimit}
	if n, err := strconv.Atoi(strings.TrimSpace(rawPage)); err == nil && n >= 1 {
		p.Number = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && n >= 1 {
		p.Limit = n
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Limit > 0 && p.Number > math.MaxInt/p.Limit {
		p.Number = math.MaxInt / p.Limit
	}
	return p
}

// Pagination is the envelope returned next to every paged list.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

func NewPagination(p Page, totalCount int) Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (totalCount + p.Limit - 1) / p.Limit
	}
	return Pagination{
		CurrentPage: p.Number,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     p.Number < totalPages,
		HasPrev:     p.Number > 1,
	}
}
