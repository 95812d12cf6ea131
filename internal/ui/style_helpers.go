package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints text segments on a shared background. Every styled segment
// ends in an ANSI reset, so plain spaces between segments would show the
// terminal background instead
// (https://github.com/charmbracelet/lipgloss/discussions/78).
type BgStyle struct {
	fill lipgloss.Style
}

// NewBgStyle returns a BgStyle for the given hex color.
func NewBgStyle(color string) BgStyle {
	return BgStyle{fill: lipgloss.NewStyle().Background(lipgloss.Color(color))}
}

// Render draws text in style on the background. Spaces inside text are
// painted separately so multi-word labels have no gaps.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.fill.GetBackground())
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.Space())
}

// Space returns one painted space.
func (b BgStyle) Space() string {
	return b.fill.Render(" ")
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep paints a separator.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins rendered parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}
