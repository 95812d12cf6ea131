package tableview

import (
	"fmt"
	"slices"
)

// PageSizes are the page sizes a user can pick from.
var PageSizes = []int{5, 10, 20}

// DefaultPageSize is the size a fresh ViewState starts with.
const DefaultPageSize = 5

// ViewState is the user-controlled part of a table: what to search for, how
// to sort, and which page to show.
type ViewState struct {
	Search    string
	SortField string
	SortDir   Direction
	Page      int
	PageSize  int
}

// NewViewState returns page 1 at the default page size, sorted ascending by
// sortField.
func NewViewState(sortField string) ViewState {
	return ViewState{SortField: sortField, SortDir: Ascending, Page: 1, PageSize: DefaultPageSize}
}

// WithSearch replaces the search text and returns to the first page.
func (s ViewState) WithSearch(text string) ViewState {
	if text != s.Search {
		s.Search = text
		s.Page = 1
	}
	return s
}

// WithSort applies ToggleSort for the selected column.
func (s ViewState) WithSort(field string) ViewState {
	s.SortField, s.SortDir = ToggleSort(s.SortField, s.SortDir, field)
	return s
}

// WithPageSize switches to one of PageSizes and returns to the first page.
func (s ViewState) WithPageSize(size int) (ViewState, error) {
	if !slices.Contains(PageSizes, size) {
		return s, fmt.Errorf("page size %d not in %v", size, PageSizes)
	}
	s.PageSize = size
	s.Page = 1
	return s, nil
}

// NextPageSize returns the page size after current in PageSizes, wrapping.
func NextPageSize(current int) int {
	i := slices.Index(PageSizes, current)
	return PageSizes[(i+1)%len(PageSizes)]
}

// NextPage moves forward one page, stopping at totalPages.
func (s ViewState) NextPage(totalPages int) ViewState {
	if s.Page < totalPages {
		s.Page++
	}
	return s
}

// PrevPage moves back one page, stopping at 1.
func (s ViewState) PrevPage() ViewState {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// Clamp forces PageSize into PageSizes and Page into [1, totalPages].
func (s ViewState) Clamp(totalPages int) ViewState {
	if !slices.Contains(PageSizes, s.PageSize) {
		s.PageSize = DefaultPageSize
	}
	if totalPages < 1 {
		totalPages = 1
	}
	s.Page = max(1, min(s.Page, totalPages))
	return s
}

// ClampToCount clamps s for a result of n records, fixing the page size
// before counting pages.
func (s ViewState) ClampToCount(n int) ViewState {
	if !slices.Contains(PageSizes, s.PageSize) {
		s.PageSize = DefaultPageSize
	}
	return s.Clamp(TotalPages(n, s.PageSize))
}
