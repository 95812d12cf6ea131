package datasets

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/tableview"
)

// Query carries the endpoint parameters a dataset may need.
type Query struct {
	Month    string
	TopLimit int
}

// Result is one rendered page of a dataset.
type Result struct {
	Headers []string
	Rows    [][]string
	Total   int
	Page    int
	Pages   int
	First   int
	Last    int
	State   tableview.ViewState
}

// Dataset is a named table the CLI can print without knowing its record type.
type Dataset struct {
	Name        string
	DefaultSort string
	Fields      []string

	load func(ctx context.Context, f analytics.Fetcher, q Query, state tableview.ViewState, tr i18n.Translator) (Result, error)
}

// Load fetches the records, derives the requested page and renders it.
// Sort fields outside Fields are rejected.
func (d Dataset) Load(ctx context.Context, f analytics.Fetcher, q Query, state tableview.ViewState, tr i18n.Translator) (Result, error) {
	if state.SortField == "" {
		state.SortField = d.DefaultSort
	}
	if !slices.Contains(d.Fields, state.SortField) {
		return Result{}, fmt.Errorf("dataset %s has no column %q (have %v)", d.Name, state.SortField, d.Fields)
	}
	return d.load(ctx, f, q, state, tr)
}

func bind[R any](name, defaultSort string, tbl tableview.Table[R], fetch func(context.Context, analytics.Fetcher, Query) ([]R, error)) Dataset {
	fields := make([]string, 0, len(tbl.Columns))
	for _, c := range tbl.Columns {
		if c.Sortable() {
			fields = append(fields, c.Key)
		}
	}
	return Dataset{
		Name:        name,
		DefaultSort: defaultSort,
		Fields:      fields,
		load: func(ctx context.Context, f analytics.Fetcher, q Query, state tableview.ViewState, tr i18n.Translator) (Result, error) {
			records, err := fetch(ctx, f, q)
			if err != nil {
				return Result{}, fmt.Errorf("load %s: %w", name, err)
			}
			return Render(tbl, records, state, tr), nil
		},
	}
}

// Render derives one page of records and turns it into translated headers
// and cell strings.
func Render[R any](tbl tableview.Table[R], records []R, state tableview.ViewState, tr i18n.Translator) Result {
	view, state := tbl.Derive(records, state, tr.Tag())

	res := Result{
		Headers: make([]string, len(tbl.Columns)),
		Rows:    make([][]string, 0, len(view.PageRows)),
		Total:   view.Total,
		Page:    view.Page,
		Pages:   view.TotalPages,
		First:   view.First,
		Last:    view.Last,
		State:   state,
	}
	for i, c := range tbl.Columns {
		res.Headers[i] = tr.T(c.Title)
	}
	for _, r := range view.PageRows {
		row := make([]string, len(tbl.Columns))
		for i, c := range tbl.Columns {
			row[i] = c.Cell(r)
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

var registry = map[string]Dataset{}

func register(d Dataset) {
	registry[d.Name] = d
}

func init() {
	register(bind("showcase", ShowcaseDefaultSort, ShowcaseTable,
		func(context.Context, analytics.Fetcher, Query) ([]ShowcaseUser, error) {
			return SampleUsers(), nil
		}))
	register(bind("interactions", "weight", RoleInteractionTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.RoleInteraction, error) {
			return f.FetchRoleInteractions(ctx)
		}))
	register(bind("top-interactions", "weight", RoleInteractionTable,
		func(ctx context.Context, f analytics.Fetcher, q Query) ([]analytics.RoleInteraction, error) {
			return f.FetchTopRoleInteractions(ctx, q.TopLimit)
		}))
	register(bind("collaboration", "weight", CollaborationTable,
		func(ctx context.Context, f analytics.Fetcher, q Query) ([]analytics.UserCollaboration, error) {
			return f.FetchUserCollaboration(ctx, q.Month)
		}))
	register(bind("overtime", "overtime_count", OvertimeTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.OvertimeRisk, error) {
			return f.FetchOvertimeRisk(ctx)
		}))
	register(bind("durations", "duration_days", DurationTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.ProjectDuration, error) {
			return f.FetchProjectDurations(ctx)
		}))
	register(bind("handovers", "avg_duration", HandoverTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.HandoverFlow, error) {
			return f.FetchHandovers(ctx)
		}))
	register(bind("roles", "name", EntityTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.Entity, error) {
			return f.FetchRoles(ctx)
		}))
	register(bind("users", "name", EntityTable,
		func(ctx context.Context, f analytics.Fetcher, _ Query) ([]analytics.Entity, error) {
			return f.FetchUsers(ctx)
		}))
}

// Lookup returns the dataset called name.
func Lookup(name string) (Dataset, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns the registered dataset names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
