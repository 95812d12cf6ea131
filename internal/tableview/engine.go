package tableview

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort order of a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts "asc" or "desc" (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q", s)
	}
}

// ApplySearch keeps the records whose searchable columns contain text,
// ignoring case. Blank text keeps every record. Input order is preserved and
// the input slice is never modified.
func ApplySearch[R any](records []R, cols []Column[R], text string) []R {
	out := make([]R, 0, len(records))
	if strings.TrimSpace(text) == "" {
		return append(out, records...)
	}

	fold := cases.Fold()
	needle := fold.String(text)
	for _, r := range records {
		for _, c := range cols {
			if !c.Searchable || c.Text == nil {
				continue
			}
			if strings.Contains(fold.String(c.Text(r)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ApplySort returns a stably sorted copy of records ordered by the column
// named field. Text columns compare with the collation rules of tag, number
// columns compare numerically. Equal records keep their input order in both
// directions. An empty field returns the records in input order.
//
// ApplySort panics when field names no sortable column.
func ApplySort[R any](records []R, cols []Column[R], field string, dir Direction, tag language.Tag) []R {
	out := append(make([]R, 0, len(records)), records...)
	if field == "" {
		return out
	}
	col, ok := Find(cols, field)
	if !ok || !col.Sortable() {
		panic(fmt.Sprintf("tableview: unknown sort field %q", field))
	}

	cmp := compareFunc(col, tag)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareFunc[R any](col Column[R], tag language.Tag) func(a, b R) int {
	if col.numeric() {
		return func(a, b R) int {
			x, y := col.Number(a), col.Number(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
	coll := collate.New(tag)
	return func(a, b R) int {
		return coll.CompareString(col.Text(a), col.Text(b))
	}
}

// Page is one window of a sorted record list.
type Page[R any] struct {
	Records    []R
	TotalPages int
}

// TotalPages returns max(1, ceil(n/size)).
func TotalPages(n, size int) int {
	if size <= 0 {
		panic(fmt.Sprintf("tableview: page size must be positive, got %d", size))
	}
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns the records in [(page-1)*size, page*size). Pages outside
// [1, TotalPages] yield no records. Paginate panics when size is not positive.
func Paginate[R any](records []R, page, size int) Page[R] {
	total := TotalPages(len(records), size)
	result := Page[R]{TotalPages: total, Records: []R{}}
	if page < 1 || page > total {
		return result
	}
	start := (page - 1) * size
	end := min(start+size, len(records))
	if start >= end {
		return result
	}
	result.Records = append(result.Records, records[start:end]...)
	return result
}

// ToggleSort returns the sort state after the user selects clicked. Selecting
// the active column flips its direction; any other column starts ascending.
func ToggleSort(currentField string, currentDir Direction, clicked string) (string, Direction) {
	if clicked == currentField {
		return currentField, currentDir.Flip()
	}
	return clicked, Ascending
}
