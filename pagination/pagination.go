// Package pagination slices ordered listings into fixed-size pages.
package pagination

import "strconv"

// PageSize is the number of items on every listing page.
const PageSize = 10

type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ParsePageNumber interprets the "page" query parameter. Anything that is
// not a positive integer means page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the requested 1-based page of items. Out-of-range page
// numbers clamp to the nearest valid page instead of erroring. The input
// slice is never mutated.
func Paginate[T any](items []T, number int) Page[T] {
	total := (len(items) + PageSize - 1) / PageSize
	if total < 1 {
		total = 1
	}
	if number < 1 {
		number = 1
	}
	if number > total {
		number = total
	}
	start := (number - 1) * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: total,
		HasNext:    number < total,
		HasPrev:    number > 1,
	}
}

// PrevNumber and NextNumber feed the pager links in templates.
func (p Page[T]) PrevNumber() int {
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}
