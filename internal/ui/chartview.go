package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/charts"
	"github.com/five82/orgmine/internal/i18n"
)

// renderBars draws one horizontal bar per line: label, bar, value. Values are
// formatted with precision decimals in the translator's locale.
func renderBars(bars []charts.Bar, width, precision int, tr i18n.Translator, th Theme) []string {
	styles := th.Styles()
	if len(bars) == 0 {
		return []string{styles.MutedText.Render(tr.T("common.noData"))}
	}

	values := make([]string, len(bars))
	valueW := 0
	for i, b := range bars {
		values[i] = tr.Float(b.Value, precision)
		valueW = max(valueW, lipgloss.Width(values[i]))
	}

	labelW := min(BarLabelWidth, max(width/3, 4))
	barW := max(width-labelW-valueW-2, 1)
	maxValue := charts.MaxValue(bars)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent))

	lines := make([]string, 0, len(bars))
	for i, b := range bars {
		eighths := charts.BarWidth(b.Value, maxValue, barW)
		bar := charts.RenderBar(eighths)
		cells := (eighths + 7) / 8
		lines = append(lines,
			styles.Text.Render(fit(b.Label, labelW))+" "+
				barStyle.Render(bar)+strings.Repeat(" ", max(barW-cells, 0))+" "+
				styles.MutedText.Render(padLeft(values[i], valueW)))
	}
	return lines
}

// renderHeatmap draws the weekday by hour grid, an hour ruler, a legend and
// the peak slot. Cells are two columns wide when width allows.
func renderHeatmap(h charts.Heatmap, tr i18n.Translator, th Theme, width int) []string {
	styles := th.Styles()

	const dayW = 4
	cell := "██"
	if width < dayW+1+charts.Hours*2 {
		cell = "█"
	}
	cellW := lipgloss.Width(cell)

	var ruler strings.Builder
	ruler.WriteString(strings.Repeat(" ", dayW+1))
	for hour := 0; hour < charts.Hours; hour += 3 {
		ruler.WriteString(padRight(fmt.Sprintf("%02d", hour), 3*cellW))
	}

	lines := []string{styles.FaintText.Render(ruler.String())}
	for d := 0; d < charts.Days; d++ {
		var row strings.Builder
		row.WriteString(styles.MutedText.Render(fit(tr.T(fmt.Sprintf("day.%d", d+1)), dayW)))
		row.WriteString(" ")
		for hour := 0; hour < charts.Hours; hour++ {
			level := h.Level(h.Counts[d][hour])
			row.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(th.Heat[level])).Render(cell))
		}
		lines = append(lines, row.String())
	}

	var legend strings.Builder
	legend.WriteString(strings.Repeat(" ", dayW+1))
	legend.WriteString(styles.FaintText.Render(tr.T("adv.legend") + " "))
	for level := 0; level < charts.Levels; level++ {
		legend.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(th.Heat[level])).Render(cell))
	}
	legend.WriteString(styles.FaintText.Render(" " + tr.T("adv.legendMax")))
	lines = append(lines, legend.String())

	if day, hour, count, ok := h.Peak(); ok {
		lines = append(lines, styles.AccentText.Render(
			tr.T("adv.peak", tr.T(fmt.Sprintf("day.%d", day)), hour, count)))
	}
	return lines
}

// bpmnContent lists the process stages left to right, then every flow.
func bpmnContent(data analytics.BPMNData, tr i18n.Translator, th Theme, width int) string {
	styles := th.Styles()
	if len(data.Nodes) == 0 {
		return styles.MutedText.Render(tr.T("common.noData"))
	}

	labels := make(map[string]string, len(data.Nodes))
	for _, n := range data.Nodes {
		if _, seen := labels[n.ID]; seen {
			continue
		}
		label := strings.TrimSpace(n.Label)
		if label == "" {
			label = n.ID
		}
		labels[n.ID] = label
	}

	layout := charts.LayoutFlow(data)
	var lines []string
	for i, stage := range layout.Stages {
		names := make([]string, len(stage))
		for j, id := range stage {
			names[j] = labels[id]
		}
		lines = append(lines,
			styles.AccentText.Bold(true).Render(tr.T("bpmn.stage", i+1)),
			styles.Text.Render("  "+truncate(strings.Join(names, ", "), max(width-2, 4))))
	}

	lines = append(lines, "", styles.AccentText.Bold(true).Render(tr.T("bpmn.flows")))
	for _, e := range data.Edges {
		src, ok1 := labels[e.Source]
		dst, ok2 := labels[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		flow := src + " → " + dst
		if e.Label != "" {
			flow += " (" + e.Label + ")"
		}
		lines = append(lines, styles.Text.Render("  "+truncate(flow, max(width-2, 4))))
	}
	return strings.Join(lines, "\n")
}
