package charts

import (
	"math"
	"sort"
	"strings"
)

// Bar is one labelled value of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
}

const (
	fullBlock = "█"
)

var partialBlocks = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// BarWidth returns how many cells value occupies when maxValue spans width
// cells, in eighths of a cell.
func BarWidth(value, maxValue float64, width int) int {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return 0
	}
	eighths := int(math.Round(value / maxValue * float64(width*8)))
	return min(max(eighths, 1), width*8)
}

// RenderBar draws a bar of the given width in eighths of a cell.
func RenderBar(eighths int) string {
	if eighths <= 0 {
		return ""
	}
	return strings.Repeat(fullBlock, eighths/8) + partialBlocks[eighths%8]
}

// MaxValue returns the largest bar value, or 0 for no bars.
func MaxValue(bars []Bar) float64 {
	var m float64
	for _, b := range bars {
		m = math.Max(m, b.Value)
	}
	return m
}

// Top returns the n largest bars in decreasing order. Bars with equal values
// keep their input order. A negative n keeps every bar.
func Top(bars []Bar, n int) []Bar {
	out := append([]Bar(nil), bars...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
