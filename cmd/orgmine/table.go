package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/datasets"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/logging"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/tableview"
)

type tableFlags struct {
	search   string
	sort     string
	desc     bool
	page     int
	pageSize int
	lang     string
	month    string
	top      int
}

func newTableCmd(global *globalFlags) *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table <dataset>",
		Short: "Print one page of a dataset",
		Long: fmt.Sprintf(`Fetch a dataset, then search, sort and paginate it the same way the
dashboard tables do.

Datasets: %s`, strings.Join(datasets.Names(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, global, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.search, "search", "s", "", "case-insensitive text to match")
	f.StringVar(&flags.sort, "sort", "", "column to sort by (default depends on the dataset)")
	f.BoolVar(&flags.desc, "desc", false, "sort descending")
	f.IntVarP(&flags.page, "page", "p", 1, "page number, clamped to the last page")
	f.IntVar(&flags.pageSize, "page-size", tableview.DefaultPageSize, fmt.Sprintf("rows per page, one of %v", tableview.PageSizes))
	f.StringVar(&flags.lang, "lang", "", "output language, en or id (default from preferences)")
	f.StringVar(&flags.month, "month", "", "collaboration month YYYY-MM (default from config)")
	f.IntVar(&flags.top, "top", 0, "limit for top-interactions (default from config)")
	return cmd
}

func runTable(cmd *cobra.Command, global *globalFlags, flags *tableFlags, name string) error {
	ds, ok := datasets.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown dataset %q (have %s)", name, strings.Join(datasets.Names(), ", "))
	}

	cfg, err := config.Load(global.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lang := prefs.Load(cfg.PrefsPath).Language
	if flags.lang != "" {
		lang = prefs.Language(flags.lang)
		if !lang.Valid() {
			return fmt.Errorf("unsupported language %q (have %v)", flags.lang, prefs.Languages)
		}
	}

	query := datasets.Query{Month: cfg.Filters.Month, TopLimit: cfg.Filters.TopLimit}
	if flags.month != "" {
		if !config.ValidMonth(flags.month) {
			return fmt.Errorf("invalid month %q: want YYYY-MM", flags.month)
		}
		query.Month = flags.month
	}
	if flags.top > 0 {
		query.TopLimit = flags.top
	}

	state, err := tableview.NewViewState(flags.sort).WithPageSize(flags.pageSize)
	if err != nil {
		return err
	}
	state = state.WithSearch(flags.search)
	state.Page = flags.page
	if flags.desc {
		state.SortDir = tableview.Descending
	}

	logger, err := logging.New(logging.Options{Verbose: global.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := analytics.NewClient(analytics.Options{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger.Named("analytics"),
	})
	if err != nil {
		return err
	}

	tr := i18n.New(lang)
	res, err := ds.Load(cmd.Context(), client, query, state, tr)
	if err != nil {
		return err
	}
	logger.Debug("dataset loaded",
		zap.String("dataset", ds.Name),
		zap.Int("total", res.Total),
		zap.Int("page", res.Page))

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(res, tr))
	return nil
}

// renderResult draws the page as a bordered table followed by the paging
// summary.
func renderResult(res datasets.Result, tr i18n.Translator) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(res.Headers...).
		Rows(res.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	lines := []string{t.Render()}
	if res.Total == 0 {
		lines = append(lines, tr.T("tables.noResults"))
	}
	lines = append(lines, strings.Join([]string{
		tr.T("tables.showing", res.First, res.Last, res.Total),
		tr.T("tables.page", res.Page, res.Pages),
		tr.T("tables.rowsPerPage", res.State.PageSize),
	}, " · "))
	return strings.Join(lines, "\n")
}
