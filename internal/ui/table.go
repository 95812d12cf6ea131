package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/tableview"
)

// pane is an interactive table on a page. Implementations hold their own
// records and view state.
type pane interface {
	// handleKey reports whether the key was consumed.
	handleKey(msg tea.KeyMsg, keys keyMap, tag language.Tag) (tea.Cmd, bool)
	// searching reports whether the search input owns the keyboard.
	searching() bool
	render(tr i18n.Translator, th Theme, width, height int) string
}

// dataTable is a searchable, sortable, paginated table of R.
type dataTable[R any] struct {
	tbl      tableview.Table[R]
	records  []R
	state    tableview.ViewState
	input    textinput.Model
	focused  bool
	selected int // row within the current page

	// placeholder is the message key shown in the empty search input.
	placeholder string
	// statusKey names a column whose values are translated as status.<value>
	// and colored with the status palette.
	statusKey string
}

func newDataTable[R any](tbl tableview.Table[R], defaultSort string) *dataTable[R] {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	return &dataTable[R]{
		tbl:         tbl,
		state:       tableview.NewViewState(defaultSort),
		input:       input,
		placeholder: "common.search",
	}
}

// setRecords replaces the rows and clamps the stored page to the new
// result, so a reload that shrinks the set never leaves the page past the end.
func (t *dataTable[R]) setRecords(records []R) {
	t.records = records
	matched := tableview.ApplySearch(records, t.tbl.Columns, t.state.Search)
	t.state = t.state.ClampToCount(len(matched))
}

func (t *dataTable[R]) searching() bool { return t.focused }

func (t *dataTable[R]) handleKey(msg tea.KeyMsg, keys keyMap, tag language.Tag) (tea.Cmd, bool) {
	if t.focused {
		if key.Matches(msg, keys.Confirm) || key.Matches(msg, keys.Escape) {
			t.focused = false
			t.input.Blur()
			return nil, true
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		t.state = t.state.WithSearch(t.input.Value())
		t.selected = 0
		return cmd, true
	}

	view, state := t.tbl.Derive(t.records, t.state, tag)
	t.state = state

	switch {
	case key.Matches(msg, keys.Search):
		if !t.tbl.Searchable() {
			return nil, false
		}
		t.focused = true
		return t.input.Focus(), true

	case key.Matches(msg, keys.Escape):
		if t.state.Search == "" {
			return nil, false
		}
		t.input.SetValue("")
		t.state = t.state.WithSearch("")
		t.selected = 0

	case key.Matches(msg, keys.SortBy):
		idx := int(msg.String()[0] - '1')
		if idx >= len(t.tbl.Columns) || !t.tbl.Columns[idx].Sortable() {
			return nil, true
		}
		t.state = t.state.WithSort(t.tbl.Columns[idx].Key)

	case key.Matches(msg, keys.PageNext):
		t.state = t.state.NextPage(view.TotalPages)
		t.selected = 0

	case key.Matches(msg, keys.PagePrev):
		t.state = t.state.PrevPage()
		t.selected = 0

	case key.Matches(msg, keys.PageSize):
		t.state, _ = t.state.WithPageSize(tableview.NextPageSize(t.state.PageSize))
		t.selected = 0

	case key.Matches(msg, keys.Up):
		if t.selected > 0 {
			t.selected--
		}

	case key.Matches(msg, keys.Down):
		if t.selected < len(view.PageRows)-1 {
			t.selected++
		}

	case key.Matches(msg, keys.Top):
		t.selected = 0

	case key.Matches(msg, keys.Bottom):
		t.selected = max(len(view.PageRows)-1, 0)

	default:
		return nil, false
	}
	return nil, true
}

func (t *dataTable[R]) render(tr i18n.Translator, th Theme, width, height int) string {
	styles := th.Styles()
	view, state := t.tbl.Derive(t.records, t.state, tr.Tag())
	cols := t.tbl.Columns

	var lines []string

	if t.tbl.Searchable() {
		in := t.input
		in.Placeholder = tr.T(t.placeholder)
		in.Width = max(width-lipgloss.Width(tr.T("common.search"))-4, 8)
		in.TextStyle = styles.Text
		in.PlaceholderStyle = styles.FaintText
		label := styles.MutedText
		if t.focused {
			label = styles.AccentText
		}
		lines = append(lines, label.Render(tr.T("common.search")+": ")+in.View(), "")
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		h := tr.T(c.Title)
		if c.Key == state.SortField {
			if state.SortDir == tableview.Descending {
				h += " ▼"
			} else {
				h += " ▲"
			}
		}
		if i < 9 && c.Sortable() {
			h = fmt.Sprintf("%d %s", i+1, h)
		}
		headers[i] = h
	}

	cells := make([][]string, len(view.PageRows))
	for r, rec := range view.PageRows {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Cell(rec)
			if c.Key == t.statusKey && t.statusKey != "" {
				row[i] = tr.T("status." + row[i])
			}
		}
		cells[r] = row
	}

	widths := columnWidths(headers, cells, width)

	var hdr strings.Builder
	for i, h := range headers {
		if i > 0 {
			hdr.WriteString("  ")
		}
		hdr.WriteString(fit(h, widths[i]))
	}
	lines = append(lines, styles.AccentText.Bold(true).Render(hdr.String()))
	lines = append(lines, styles.FaintText.Render(strings.Repeat("─", max(width, 0))))

	if len(cells) == 0 {
		lines = append(lines, styles.MutedText.Render(tr.T("tables.noResults")))
	}
	selected := min(t.selected, len(cells)-1)
	for r, row := range cells {
		parts := make([]string, len(row))
		for i, v := range row {
			if cols[i].Number != nil {
				parts[i] = padLeft(truncate(v, widths[i]), widths[i])
			} else {
				parts[i] = fit(v, widths[i])
			}
			if r != selected && cols[i].Key == t.statusKey && t.statusKey != "" {
				parts[i] = styles.StatusStyle(cols[i].Cell(view.PageRows[r])).Render(parts[i])
			}
		}
		line := strings.Join(parts, "  ")
		if r == selected {
			line = styles.Selected.Width(width).Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}

	footer := []string{
		tr.T("tables.showing", view.First, view.Last, view.Total),
		tr.T("tables.page", view.Page, view.TotalPages),
		tr.T("tables.rowsPerPage", state.PageSize),
	}
	if state.SortField != "" {
		if col, ok := tableview.Find(cols, state.SortField); ok {
			footer = append(footer, tr.T("tables.sortedBy", tr.T(col.Title), state.SortDir))
		}
	}

	// Keep the footer on the last line of the area.
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	if len(lines) > height-1 && height > 0 {
		lines = lines[:max(height-1, 0)]
	}
	lines = append(lines, styles.MutedText.Render(strings.Join(footer, " · ")))
	return strings.Join(lines, "\n")
}

// columnWidths sizes each column to its widest cell, then shrinks the widest
// columns until the row fits width.
func columnWidths(headers []string, rows [][]string, width int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, v := range row {
			widths[i] = max(widths[i], lipgloss.Width(v))
		}
	}

	avail := width - 2*(len(headers)-1)
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > avail {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}
