package tableview

import "golang.org/x/text/language"

// Table binds a column set to a record type so callers can derive views
// without repeating the columns.
type Table[R any] struct {
	Columns []Column[R]

	// Key returns the stable identity of a record.
	Key func(R) string
}

// View is the derived, display-ready state of a table. It is recomputed from
// the records and ViewState on every call and never cached.
type View[R any] struct {
	// Rows holds the filtered and sorted records across all pages.
	Rows       []R
	Total      int
	TotalPages int
	Page       int
	PageRows   []R

	// First and Last are the 1-based positions of PageRows within Rows, zero
	// when there are no rows.
	First int
	Last  int
}

// Derive runs search, sort and pagination over records. The returned
// ViewState has its page clamped to the new page count, and that clamped page
// is the one rendered.
func (t Table[R]) Derive(records []R, state ViewState, tag language.Tag) (View[R], ViewState) {
	matched := ApplySearch(records, t.Columns, state.Search)
	sorted := ApplySort(matched, t.Columns, state.SortField, state.SortDir, tag)

	state = state.ClampToCount(len(sorted))
	page := Paginate(sorted, state.Page, state.PageSize)

	v := View[R]{
		Rows:       sorted,
		Total:      len(sorted),
		TotalPages: page.TotalPages,
		Page:       state.Page,
		PageRows:   page.Records,
	}
	if len(page.Records) > 0 {
		v.First = (state.Page-1)*state.PageSize + 1
		v.Last = v.First + len(page.Records) - 1
	}
	return v, state
}

// Searchable reports whether any column takes part in search.
func (t Table[R]) Searchable() bool {
	for _, c := range t.Columns {
		if c.Searchable && c.Text != nil {
			return true
		}
	}
	return false
}
