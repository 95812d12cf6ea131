package ui

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/datasets"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/tableview"
)

func newShowcaseTable() *dataTable[datasets.ShowcaseUser] {
	tbl := newDataTable(datasets.ShowcaseTable, datasets.ShowcaseDefaultSort)
	tbl.statusKey = "status"
	tbl.setRecords(datasets.SampleUsers())
	return tbl
}

func press(t *testing.T, tbl pane, msg tea.KeyMsg) bool {
	t.Helper()
	_, handled := tbl.handleKey(msg, DefaultKeyMap(), language.English)
	return handled
}

func TestDataTable_SortKeysToggle(t *testing.T) {
	tbl := newShowcaseTable()

	require.True(t, press(t, tbl, runes("2")))
	assert.Equal(t, "name", tbl.state.SortField)
	assert.Equal(t, tableview.Ascending, tbl.state.SortDir)

	press(t, tbl, runes("2"))
	assert.Equal(t, tableview.Descending, tbl.state.SortDir)

	// No seventh column: consumed but ignored.
	press(t, tbl, runes("7"))
	assert.Equal(t, "name", tbl.state.SortField)
}

func TestDataTable_Paging(t *testing.T) {
	tbl := newShowcaseTable()

	press(t, tbl, runes("n"))
	assert.Equal(t, 2, tbl.state.Page)
	press(t, tbl, runes("n"))
	assert.Equal(t, 2, tbl.state.Page, "no page past the last")

	press(t, tbl, runes("p"))
	assert.Equal(t, 1, tbl.state.Page)

	press(t, tbl, runes("n"))
	press(t, tbl, runes("z"))
	assert.Equal(t, 10, tbl.state.PageSize)
	assert.Equal(t, 1, tbl.state.Page)
}

func TestDataTable_SearchResetsPage(t *testing.T) {
	tbl := newShowcaseTable()
	press(t, tbl, runes("n"))
	require.Equal(t, 2, tbl.state.Page)

	press(t, tbl, runes("/"))
	require.True(t, tbl.searching())
	for _, r := range "jane" {
		press(t, tbl, runes(string(r)))
	}
	assert.Equal(t, "jane", tbl.state.Search)
	assert.Equal(t, 1, tbl.state.Page)

	view, _ := tbl.tbl.Derive(tbl.records, tbl.state, language.English)
	require.Len(t, view.PageRows, 1)
	assert.Equal(t, "Jane Smith", view.PageRows[0].Name)
}

func TestDataTable_SelectionStaysOnPage(t *testing.T) {
	tbl := newShowcaseTable()

	for range 10 {
		press(t, tbl, runes("j"))
	}
	assert.Equal(t, 4, tbl.selected)

	press(t, tbl, runes("g"))
	assert.Equal(t, 0, tbl.selected)
	press(t, tbl, runes("G"))
	assert.Equal(t, 4, tbl.selected)

	press(t, tbl, runes("n"))
	assert.Equal(t, 0, tbl.selected)
}

func TestDataTable_UnhandledKeys(t *testing.T) {
	tbl := newShowcaseTable()
	assert.False(t, press(t, tbl, runes("x")))
	assert.False(t, press(t, tbl, tea.KeyMsg{Type: tea.KeyEsc}), "esc without a search falls through")
}

func TestDataTable_Render(t *testing.T) {
	tbl := newShowcaseTable()
	tr := i18n.New(prefs.English)

	out := tbl.render(tr, darkTheme(), 100, 12)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, out, "1 ID ▲")
	assert.Contains(t, out, "John Doe")
	assert.NotContains(t, out, "Diana Lee", "second page is not shown")
	assert.Contains(t, lines[len(lines)-1], "Showing 1 to 5 of 10 entries")
}

func TestDataTable_RenderTranslatesStatus(t *testing.T) {
	tbl := newShowcaseTable()
	out := tbl.render(i18n.New(prefs.Indonesian), lightTheme(), 100, 12)
	assert.Contains(t, out, "aktif")
	assert.Contains(t, out, "Halaman 1 dari 2")
}

func TestDataTable_RenderClampsPage(t *testing.T) {
	tbl := newShowcaseTable()
	press(t, tbl, runes("n"))
	tbl.state.Search = "john"

	out := tbl.render(i18n.New(prefs.English), darkTheme(), 100, 12)
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestDataTable_RenderNoResults(t *testing.T) {
	tbl := newShowcaseTable()
	tbl.state = tbl.state.WithSearch("nobody")
	out := tbl.render(i18n.New(prefs.English), darkTheme(), 80, 10)
	assert.Contains(t, out, "No results found.")
}

func TestColumnWidthsFit(t *testing.T) {
	headers := []string{"Name", "Email"}
	rows := [][]string{{"Charlie Wilson", "charlie@example.com"}}
	widths := columnWidths(headers, rows, 20)
	total := 2
	for _, w := range widths {
		total += w
	}
	assert.LessOrEqual(t, total, 20)
}

func TestDataTable_ReloadClampsStoredPage(t *testing.T) {
	rows := make([]analytics.OvertimeRisk, 30)
	for i := range rows {
		rows[i] = analytics.OvertimeRisk{Name: "user " + strconv.Itoa(i), Role: "Staff", OvertimeCount: i}
	}
	tbl := newDataTable(datasets.OvertimeTable, "overtime_count")
	tbl.setRecords(rows)

	for range 3 {
		press(t, tbl, runes("n"))
	}
	require.Equal(t, 4, tbl.state.Page)

	tbl.setRecords(rows[:3])
	assert.Equal(t, 1, tbl.state.Page)

	// Restoring the rows must not jump back to the old page.
	tbl.setRecords(rows)
	assert.Equal(t, 1, tbl.state.Page)
	out := tbl.render(i18n.New(prefs.English), darkTheme(), 100, 12)
	assert.Contains(t, out, "Page 1 of 6")
}

func TestDataTable_ReloadClampsAgainstSearch(t *testing.T) {
	tbl := newShowcaseTable()

	// Only John Doe matches, so the reload leaves a single page.
	tbl.state = tbl.state.WithSearch("john")
	tbl.state.Page = 2
	tbl.setRecords(datasets.SampleUsers())
	assert.Equal(t, 1, tbl.state.Page)
}
