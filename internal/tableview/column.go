package tableview

import "strconv"

// Column describes one field of a record type R. Exactly one of Text or
// Number should be set; a column with Number sorts numerically, a column with
// Text sorts by locale collation.
type Column[R any] struct {
	Key   string
	Title string

	Text   func(R) string
	Number func(R) float64

	// Format overrides the cell rendering. Defaults to Text, or the number
	// printed without trailing zeros.
	Format func(R) string

	// Searchable columns take part in ApplySearch. Only text columns can be
	// searched.
	Searchable bool
}

// Cell renders the column value for display.
func (c Column[R]) Cell(r R) string {
	switch {
	case c.Format != nil:
		return c.Format(r)
	case c.Text != nil:
		return c.Text(r)
	case c.Number != nil:
		return strconv.FormatFloat(c.Number(r), 'f', -1, 64)
	default:
		return ""
	}
}

// Sortable reports whether the column has an accessor to sort by.
func (c Column[R]) Sortable() bool {
	return c.Text != nil || c.Number != nil
}

func (c Column[R]) numeric() bool {
	return c.Number != nil
}

// Find returns the column with the given key.
func Find[R any](cols []Column[R], key string) (Column[R], bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}
