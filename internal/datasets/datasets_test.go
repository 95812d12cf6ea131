package datasets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/tableview"
)

type fakeFetcher struct {
	analytics.Fetcher

	collab   []analytics.UserCollaboration
	gotMonth string
	gotLimit int
	rolesErr error
	overtime []analytics.OvertimeRisk
}

func (f *fakeFetcher) FetchUserCollaboration(_ context.Context, month string) ([]analytics.UserCollaboration, error) {
	f.gotMonth = month
	return f.collab, nil
}

func (f *fakeFetcher) FetchTopRoleInteractions(_ context.Context, limit int) ([]analytics.RoleInteraction, error) {
	f.gotLimit = limit
	return []analytics.RoleInteraction{{RoleA: "A", RoleB: "B", Weight: 1}}, nil
}

func (f *fakeFetcher) FetchRoles(context.Context) ([]analytics.Entity, error) {
	return nil, f.rolesErr
}

func (f *fakeFetcher) FetchOvertimeRisk(context.Context) ([]analytics.OvertimeRisk, error) {
	return f.overtime, nil
}

func TestShowcase_SearchSortPaginate(t *testing.T) {
	tr := i18n.New(prefs.English)
	state := tableview.NewViewState(ShowcaseDefaultSort).WithSearch("example.com")

	res := Render(ShowcaseTable, SampleUsers(), state, tr)
	assert.Equal(t, []string{"ID", "Name", "Email", "Role", "Status", "Created"}, res.Headers)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 2, res.Pages)
	require.Len(t, res.Rows, 5)
	assert.Equal(t, []string{"1", "John Doe", "john@example.com", "Admin", "active", "2024-01-15"}, res.Rows[0])
	assert.Equal(t, 1, res.First)
	assert.Equal(t, 5, res.Last)

	state = res.State.WithSort("name")
	state = state.NextPage(res.Pages)
	res = Render(ShowcaseTable, SampleUsers(), state, tr)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, "Eve Martinez", res.Rows[0][1])
	assert.Equal(t, 6, res.First)
	assert.Equal(t, 10, res.Last)
}

func TestShowcase_SearchMatchesNameOrEmailOnly(t *testing.T) {
	tr := i18n.New(prefs.English)

	res := Render(ShowcaseTable, SampleUsers(), tableview.NewViewState("id").WithSearch("ADMIN"), tr)
	assert.Zero(t, res.Total, "role is not searchable")

	res = Render(ShowcaseTable, SampleUsers(), tableview.NewViewState("id").WithSearch("jo"), tr)
	assert.Equal(t, 2, res.Total)
}

func TestRender_TranslatesHeaders(t *testing.T) {
	res := Render(OvertimeTable, nil, tableview.NewViewState("name"), i18n.New(prefs.Indonesian))
	assert.Equal(t, []string{"Nama", "Peran", "Jumlah lembur"}, res.Headers)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Pages)
}

func TestDataset_LoadPassesQuery(t *testing.T) {
	f := &fakeFetcher{collab: []analytics.UserCollaboration{
		{UserA: "Sari", UserB: "Budi", Weight: 2, Month: "2024-04"},
		{UserA: "Ayu", UserB: "Dewi", Weight: 9, Month: "2024-04"},
	}}
	d, ok := Lookup("collaboration")
	require.True(t, ok)

	state := tableview.ViewState{SortDir: tableview.Descending, Page: 1, PageSize: 5}
	res, err := d.Load(context.Background(), f, Query{Month: "2024-04"}, state, i18n.New(prefs.English))
	require.NoError(t, err)
	assert.Equal(t, "2024-04", f.gotMonth)
	assert.Equal(t, "weight", res.State.SortField)
	assert.Equal(t, "Ayu", res.Rows[0][0])
	assert.Equal(t, "9", res.Rows[0][4])

	top, _ := Lookup("top-interactions")
	_, err = top.Load(context.Background(), f, Query{TopLimit: 3}, state, i18n.New(prefs.English))
	require.NoError(t, err)
	assert.Equal(t, 3, f.gotLimit)
}

func TestDataset_LoadRejectsUnknownSort(t *testing.T) {
	d, _ := Lookup("overtime")
	state := tableview.NewViewState("salary")
	_, err := d.Load(context.Background(), &fakeFetcher{}, Query{}, state, i18n.New(prefs.English))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no column "salary"`)
}

func TestDataset_LoadWrapsFetchError(t *testing.T) {
	boom := errors.New("boom")
	d, _ := Lookup("roles")
	_, err := d.Load(context.Background(), &fakeFetcher{rolesErr: boom}, Query{}, tableview.NewViewState(""), i18n.New(prefs.English))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load roles")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"collaboration", "durations", "handovers", "interactions", "overtime",
		"roles", "showcase", "top-interactions", "users",
	}, Names())
}
