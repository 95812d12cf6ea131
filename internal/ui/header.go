package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/state"
)

// renderHeader renders the title bar: app name on the left, connection state,
// language and theme on the right.
func (m Model) renderHeader(tr i18n.Translator, th Theme) string {
	styles := th.Styles().WithBackground(th.Surface)
	bg := NewBgStyle(th.Surface)
	sep := bg.Spaces(2)

	left := bg.Render("orgmine", styles.Logo) + sep + bg.Render(tr.T("app.title"), styles.Text.Bold(true))
	if m.width >= LayoutCompactWidth {
		left += sep + bg.Render(tr.T("app.subtitle"), styles.MutedText)
	}

	var right []string
	if status := m.connectionStatus(); status != "" {
		label := status
		if status == "OFFLINE" {
			label = tr.T("common.offline")
		}
		right = append(right, bg.Render(label, styles.DangerText))
	} else if m.loadingAny() {
		right = append(right, bg.Render(tr.T("common.loading"), styles.WarningText))
	}
	right = append(right,
		bg.Render(tr.T("header.language"), styles.FaintText)+bg.Space()+
			bg.Render(tr.T("language."+string(m.prefs.Language())), styles.AccentText),
		bg.Render(tr.T("header.theme"), styles.FaintText)+bg.Space()+
			bg.Render(themeLabel(tr, m.prefs.Theme(), th), styles.AccentText),
	)
	rightStr := bg.Join(right, "  ")

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(rightStr)
	content := left
	if gap > 0 {
		content += bg.Spaces(gap) + rightStr
	}
	return styles.Header.Width(m.width).MaxHeight(1).Render(content)
}

// themeLabel names the preference, adding the resolved scheme for system.
func themeLabel(tr i18n.Translator, pref prefs.Theme, resolved Theme) string {
	label := tr.T("theme." + string(pref))
	if pref == prefs.ThemeSystem {
		label += " (" + tr.T("theme."+string(resolved.Name)) + ")"
	}
	return label
}

// connectionStatus summarizes failing sections. It stays empty until a
// section has failed repeatedly so a single slow request does not flash.
func (m Model) connectionStatus() string {
	for _, sec := range state.Sections {
		st := m.snapshot.Section(sec)
		if st.Status == state.StatusError && st.IsOffline() {
			return classifyConnectionError(m.snapshot.LastError())
		}
	}
	return ""
}

func (m Model) loadingAny() bool {
	for _, sec := range state.Sections {
		if m.snapshot.Section(sec).Status == state.StatusLoading {
			return true
		}
	}
	return false
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *analytics.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the current page.
func (m Model) renderCommandBar(tr i18n.Translator, th Theme) string {
	styles := th.Styles().WithBackground(th.Surface)
	bg := NewBgStyle(th.Surface)

	bindings := make([]key.Binding, 0, 12)
	if _, ok := m.tables[m.page]; ok {
		bindings = append(bindings, m.keys.Search, m.keys.SortBy, m.keys.PageNext, m.keys.PageSize)
	}
	if m.page == PageUsers {
		bindings = append(bindings, m.keys.Month)
	}
	bindings = append(bindings, m.keys.ShortHelp()...)

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(tr.T(h.Desc), styles.MutedText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(segments, "  "))
}
