package ui

import (
	"strings"

	"github.com/five82/orgmine/internal/charts"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/state"
)

func (m Model) filters() config.Filters {
	if m.loader == nil {
		return config.DefaultFilters()
	}
	return m.loader.Filters()
}

// keyValue renders "label  value" with the label padded to labelW.
func keyValue(label, value string, labelW int, styles Styles) string {
	return styles.MutedText.Render(padRight(label, labelW)) + "  " + styles.Text.Render(value)
}

// countLines returns the number of lines in s, zero for "".
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

func (m Model) renderDashboardPage(tr i18n.Translator, th Theme) string {
	styles := th.Styles()
	lines := []string{
		styles.MutedText.Render(tr.T("dashboard.subtitle")),
		"",
		styles.AccentText.Bold(true).Render(tr.T("dashboard.sections")),
	}

	nameW := 0
	for _, sec := range state.Sections {
		nameW = max(nameW, len([]rune(tr.T("nav."+sec.String()))))
	}
	for _, sec := range state.Sections {
		st := m.snapshot.Section(sec)
		var status string
		switch st.Status {
		case state.StatusReady:
			status = styles.StatusStyle("ready").Render(tr.T("common.ready"))
		case state.StatusError:
			status = styles.StatusStyle("error").Render(errorLabel(st.Err, tr))
		default:
			status = styles.StatusStyle("loading").Render(tr.T("common.loading"))
		}
		line := styles.Text.Render(padRight(tr.T("nav."+sec.String()), nameW)) + "  " + status
		if !st.UpdatedAt.IsZero() {
			line += "  " + styles.FaintText.Render(tr.T("common.updated", st.UpdatedAt.Format("15:04:05")))
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	type count struct {
		label string
		sec   state.Section
		n     int
	}
	counts := []count{
		{"dashboard.users", state.SectionUsers, len(m.snapshot.Users.All)},
		{"dashboard.roles", state.SectionRoles, len(m.snapshot.Roles.All)},
		{"dashboard.cases", state.SectionPerformance, len(m.snapshot.Performance.Durations)},
		{"dashboard.nodes", state.SectionBPMN, len(m.snapshot.BPMN.Nodes)},
	}
	labelW := 0
	for _, c := range counts {
		labelW = max(labelW, len([]rune(tr.T(c.label))))
	}
	for _, c := range counts {
		value := "-"
		if m.snapshot.Section(c.sec).HasData {
			value = tr.Int(c.n)
		}
		lines = append(lines, keyValue(tr.T(c.label), value, labelW, styles))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTablesPage(tr i18n.Translator, th Theme, width, height int) string {
	styles := th.Styles()
	head := styles.MutedText.Render(tr.T("tables.subtitle"))
	return head + "\n\n" + m.showcase.render(tr, th, width, max(height-2, 3))
}

func (m Model) renderOrganizationPage(tr i18n.Translator, th Theme, width, height int) string {
	banner, ok := m.sectionGate(state.SectionOrganization, tr, th)
	if !ok {
		return banner
	}
	styles := th.Styles()
	org := m.snapshot.Organization
	f := m.filters()

	labels := []string{"org.activeUsers", "org.activeRoles", "org.totalInteractions", "org.topRoles"}
	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, len([]rune(tr.T(l))))
	}

	topRoles := strings.Join(org.Evolution.TopRoles, ", ")
	if topRoles == "" {
		topRoles = "-"
	}
	lines := []string{
		styles.MutedText.Render(tr.T("org.range", f.StartMonth, f.EndMonth)),
		"",
		keyValue(tr.T("org.activeUsers"), tr.Int(org.Evolution.ActiveUsers), labelW, styles),
		keyValue(tr.T("org.activeRoles"), tr.Int(org.Evolution.ActiveRoles), labelW, styles),
		keyValue(tr.T("org.totalInteractions"), tr.Int(org.Evolution.TotalInteractions), labelW, styles),
		keyValue(tr.T("org.topRoles"), truncate(topRoles, max(width-labelW-2, 4)), labelW, styles),
		"",
		styles.AccentText.Bold(true).Render(tr.T("org.trend")),
	}

	trend := make([]charts.Bar, 0, len(org.Trend))
	for _, e := range org.Trend {
		trend = append(trend, charts.Bar{Label: e.Phase, Value: float64(e.TotalInteractions)})
	}
	lines = append(lines, renderBars(limitBars(trend), width, 0, tr, th)...)

	year := tr.T("org.allYears")
	if f.Year != "" {
		year = tr.T("org.year", f.Year)
	}
	lines = append(lines, "", styles.AccentText.Bold(true).Render(tr.T("org.monthly"))+"  "+styles.FaintText.Render(year))
	monthly := make([]charts.Bar, 0, len(org.Monthly))
	for _, mi := range org.Monthly {
		monthly = append(monthly, charts.Bar{Label: mi.Month, Value: float64(mi.TotalInteractions)})
	}
	remaining := height - len(lines) - countLines(banner)
	if len(monthly) > remaining && remaining > 0 {
		monthly = monthly[len(monthly)-remaining:]
	}
	lines = append(lines, renderBars(monthly, width, 0, tr, th)...)

	return withBanner(banner, strings.Join(lines, "\n"))
}

// limitBars keeps the last BarChartRows bars, the most recent for a trend.
func limitBars(bars []charts.Bar) []charts.Bar {
	if len(bars) > BarChartRows {
		return bars[len(bars)-BarChartRows:]
	}
	return bars
}

func (m Model) renderRolesPage(tr i18n.Translator, th Theme, width, height int) string {
	banner, ok := m.sectionGate(state.SectionRoles, tr, th)
	if !ok {
		return banner
	}
	styles := th.Styles()
	roles := m.snapshot.Roles

	top := make([]charts.Bar, 0, len(roles.Top))
	for _, r := range roles.Top {
		top = append(top, charts.Bar{Label: r.RoleA + " ↔ " + r.RoleB, Value: r.Weight})
	}
	top = charts.Top(top, 5)

	tail := []string{"", styles.AccentText.Bold(true).Render(tr.T("roles.top", m.filters().TopLimit))}
	tail = append(tail, renderBars(top, width, 0, tr, th)...)
	tail = append(tail, "", styles.MutedText.Render(tr.T("roles.all", len(roles.All))))

	tableH := max(height-countLines(banner)-len(tail)-1, 4)
	body := styles.AccentText.Bold(true).Render(tr.T("roles.interactions")) + "\n" +
		m.interactions.render(tr, th, width, tableH) + "\n" +
		strings.Join(tail, "\n")
	return withBanner(banner, body)
}

func (m Model) renderUsersPage(tr i18n.Translator, th Theme, width, height int) string {
	styles := th.Styles()
	month := m.snapshot.Users.Month
	if month == "" {
		month = m.filters().Month
	}

	head := []string{
		styles.AccentText.Bold(true).Render(tr.T("users.collab", month)) + "  " +
			styles.FaintText.Render(m.keys.Month.Help().Key+": "+tr.T(m.keys.Month.Help().Desc)),
	}
	if m.editingMonth {
		head = append(head, styles.Text.Render(tr.T("users.monthPrompt"))+m.monthInput.View())
	}
	if m.monthErr != "" {
		head = append(head, styles.DangerText.Render(tr.T(m.monthErr)))
	}

	banner, ok := m.sectionGate(state.SectionUsers, tr, th)
	if !ok {
		return strings.Join(head, "\n") + "\n\n" + banner
	}

	tail := styles.MutedText.Render(tr.T("users.all", len(m.snapshot.Users.All)))
	tableH := max(height-len(head)-countLines(banner)-3, 4)
	body := strings.Join(head, "\n") + "\n\n" +
		m.collab.render(tr, th, width, tableH) + "\n" + tail
	return withBanner(banner, body)
}

func (m Model) renderPerformancePage(tr i18n.Translator, th Theme, width, height int) string {
	banner, ok := m.sectionGate(state.SectionPerformance, tr, th)
	if !ok {
		return banner
	}
	styles := th.Styles()
	perf := m.snapshot.Performance

	durations := make([]charts.Bar, 0, len(perf.Durations))
	for _, d := range perf.Durations {
		durations = append(durations, charts.Bar{Label: d.CaseID, Value: d.DurationDays})
	}
	durations = charts.Top(durations, 5)

	head := []string{
		styles.Text.Bold(true).Render(tr.T("perf.average", tr.Float(perf.AverageDuration, 1))),
		"",
		styles.AccentText.Bold(true).Render(tr.T("perf.overtime")),
	}
	tail := []string{"", styles.AccentText.Bold(true).Render(tr.T("perf.durations"))}
	tail = append(tail, renderBars(durations, width, 1, tr, th)...)

	tableH := max(height-countLines(banner)-len(head)-len(tail), 4)
	body := strings.Join(head, "\n") + "\n" +
		m.overtime.render(tr, th, width, tableH) + "\n" +
		strings.Join(tail, "\n")
	return withBanner(banner, body)
}

func (m Model) renderAdvancedPage(tr i18n.Translator, th Theme, width, height int) string {
	banner, ok := m.sectionGate(state.SectionAdvanced, tr, th)
	if !ok {
		return banner
	}
	styles := th.Styles()

	lines := []string{styles.AccentText.Bold(true).Render(tr.T("adv.heatmap"))}
	lines = append(lines, renderHeatmap(charts.NewHeatmap(m.snapshot.Advanced.Utilization), tr, th, width)...)
	lines = append(lines, "", styles.AccentText.Bold(true).Render(tr.T("adv.handovers")))

	tableH := max(height-countLines(banner)-len(lines), 4)
	body := strings.Join(lines, "\n") + "\n" + m.handovers.render(tr, th, width, tableH)
	return withBanner(banner, body)
}

func (m Model) renderBPMNPage(tr i18n.Translator, th Theme) string {
	banner, ok := m.sectionGate(state.SectionBPMN, tr, th)
	if !ok {
		return banner
	}
	styles := th.Styles()
	data := m.snapshot.BPMN
	summary := styles.MutedText.Render(tr.T("bpmn.summary", len(data.Nodes), len(data.Edges)))
	return withBanner(banner, summary+"\n\n"+m.bpmnView.View())
}

// syncBPMN refreshes the flow viewport after data, size, language or theme
// changes.
func (m *Model) syncBPMN() {
	w, h := m.contentSize()
	m.bpmnView.Width = w
	m.bpmnView.Height = max(h-3, 1)
	m.bpmnView.SetContent(bpmnContent(m.snapshot.BPMN, m.translator(), m.theme(), w))
}

func (m Model) renderSettingsPage(tr i18n.Translator, th Theme, width int) string {
	styles := th.Styles()
	p := m.prefs.Get()

	labels := []string{"settings.language", "settings.theme", "settings.sidebar", "settings.file"}
	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, len([]rune(tr.T(l))))
	}

	sidebar := tr.T("settings.expanded")
	if p.SidebarCollapsed {
		sidebar = tr.T("settings.collapsed")
	}
	file := tr.T("settings.notSaved")
	if m.prefsPath != "" {
		file = tr.T("settings.saved", truncate(m.prefsPath, max(width-labelW-20, 10)))
	}

	lines := []string{
		keyValue(tr.T("settings.language"), tr.T("language."+string(p.Language)), labelW, styles),
		keyValue(tr.T("settings.theme"), themeLabel(tr, p.Theme, th), labelW, styles),
		keyValue(tr.T("settings.sidebar"), sidebar, labelW, styles),
		keyValue(tr.T("settings.file"), file, labelW, styles),
		"",
		styles.FaintText.Render(tr.T("settings.hint")),
	}
	return strings.Join(lines, "\n")
}
