package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/state"
)

// renderMain renders the header, command bar, sidebar and current page.
func (m Model) renderMain() string {
	tr := m.translator()
	th := m.theme()

	var b strings.Builder
	b.WriteString(m.renderHeader(tr, th))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar(tr, th))
	b.WriteString("\n")

	sidebarW, contentW, bodyH := m.bodySize()
	sidebar := m.renderSidebar(tr, th, sidebarW, bodyH)
	content := m.renderContent(tr, th, contentW, bodyH)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content))

	return lipgloss.NewStyle().Background(lipgloss.Color(th.Background)).Render(b.String())
}

// sidebarCollapsed reports whether the sidebar shows only page markers. Narrow
// terminals collapse it without touching the preference.
func (m Model) sidebarCollapsed() bool {
	return m.prefs.SidebarCollapsed() || m.width < LayoutCompactWidth
}

// bodySize splits the area below the two header lines.
func (m Model) bodySize() (sidebarW, contentW, bodyH int) {
	sidebarW = SidebarWidth
	if m.sidebarCollapsed() {
		sidebarW = SidebarCollapsedWidth
	}
	sidebarW = min(sidebarW, m.width)
	return sidebarW, max(m.width-sidebarW, 0), max(m.height-2, 0)
}

// contentSize is the drawable area inside the page box.
func (m Model) contentSize() (width, height int) {
	_, contentW, bodyH := m.bodySize()
	return max(contentW-4, 0), max(bodyH-2, 0)
}

func (m Model) renderSidebar(tr i18n.Translator, th Theme, width, height int) string {
	styles := th.Styles().WithBackground(th.Surface)
	collapsed := m.sidebarCollapsed()

	lines := make([]string, 0, len(Pages)+1)
	lines = append(lines, "")
	for _, p := range Pages {
		label := tr.T(p.TitleKey())
		if collapsed {
			label = string([]rune(label)[:min(2, len([]rune(label)))])
		}
		marker := "  "
		if sec, ok := p.Section(); ok && m.snapshot.Section(sec).Status == state.StatusError {
			marker = "! "
		}
		line := fit(marker+label, max(width-2, 0))
		switch {
		case p == m.page:
			line = styles.Selected.Bold(true).Render(" " + line + " ")
		case marker == "! ":
			line = styles.WarningText.Render(" " + line + " ")
		default:
			line = styles.Text.Render(" " + line + " ")
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(th.Surface)).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderContent draws the current page inside a titled box.
func (m Model) renderContent(tr i18n.Translator, th Theme, width, height int) string {
	innerW, innerH := m.contentSize()

	var body string
	switch m.page {
	case PageTables:
		body = m.renderTablesPage(tr, th, innerW, innerH)
	case PageOrganization:
		body = m.renderOrganizationPage(tr, th, innerW, innerH)
	case PageRoles:
		body = m.renderRolesPage(tr, th, innerW, innerH)
	case PageUsers:
		body = m.renderUsersPage(tr, th, innerW, innerH)
	case PagePerformance:
		body = m.renderPerformancePage(tr, th, innerW, innerH)
	case PageAdvanced:
		body = m.renderAdvancedPage(tr, th, innerW, innerH)
	case PageBPMN:
		body = m.renderBPMNPage(tr, th)
	case PageSettings:
		body = m.renderSettingsPage(tr, th, innerW)
	default:
		body = m.renderDashboardPage(tr, th)
	}

	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return renderTitledBox(th, tr.T(m.page.TitleKey()), strings.Join(lines, "\n"), width, height, true)
}

// sectionGate decides what a page shows for sec. Without data it returns a
// loading or error line and ok=false; with data it returns an optional banner
// describing a newer failed or pending load.
func (m Model) sectionGate(sec state.Section, tr i18n.Translator, th Theme) (banner string, ok bool) {
	styles := th.Styles()
	st := m.snapshot.Section(sec)

	if !st.HasData {
		if st.Status == state.StatusError {
			return styles.DangerText.Render(tr.T("common.error", errorLabel(st.Err, tr))) + "\n" +
				styles.MutedText.Render(tr.T("common.retrying")), false
		}
		return styles.MutedText.Render(tr.T("common.loading")), false
	}

	switch st.Status {
	case state.StatusError:
		return styles.WarningText.Render(tr.T("common.stale") + " · " + tr.T("common.error", errorLabel(st.Err, tr))), true
	case state.StatusLoading:
		return styles.MutedText.Render(tr.T("common.loading")), true
	default:
		return "", true
	}
}

// errorLabel is the short form of a load error used in banners.
func errorLabel(err error, tr i18n.Translator) string {
	label := classifyConnectionError(err)
	if label == "OFFLINE" {
		return tr.T("common.offline")
	}
	if label == "ERROR" {
		return truncate(err.Error(), 60)
	}
	return label
}

// withBanner prepends banner to body when it is not empty.
func withBanner(banner, body string) string {
	if banner == "" {
		return body
	}
	return banner + "\n" + body
}
