// Package pagination validates page-based pagination and sort parameters
// shared by the list command and the interactive browser.
package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Validation limits. The remote endpoint serves fixed-size pages, so the
// bounds here guard CLI input rather than server behavior.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Sentinel validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 100")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'maxPrice:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// Params holds validated page-based pagination parameters.
type Params struct {
	// Page is the 1-based page number shown to the user. The wire request
	// uses Page-1.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// NewParams returns Params with default values.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks page and page-size bounds.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// WirePage returns the zero-indexed page number the server expects.
func (p Params) WirePage() int {
	return p.Page - 1
}

// TotalPages calculates the page count for a known total record count.
func (p Params) TotalPages(totalRecords int) int {
	if totalRecords <= 0 || p.PageSize < 1 {
		return 0
	}
	pages := totalRecords / p.PageSize
	if totalRecords%p.PageSize > 0 {
		pages++
	}
	return pages
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order" into its components.
// An empty input yields empty field and ascending order.
func ParseSort(sortStr string) (string, string, error) {
	if sortStr == "" {
		return "", SortOrderAsc, nil
	}

	parts := strings.Split(sortStr, ":")
	var field, order string
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = SortOrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// ApplyToSlice returns the sub-slice of items for the given page. It is used
// when a caller already holds a full result set; server-fetched pages bypass
// this entirely.
func ApplyToSlice[T any](items []T, p Params) []T {
	if len(items) == 0 {
		return items
	}

	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
