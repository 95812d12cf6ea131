package charts

import "github.com/five82/orgmine/internal/analytics"

const (
	// Days is the number of weekday rows in a heatmap, Monday first.
	Days = 7
	// Hours is the number of hour columns in a heatmap.
	Hours = 24
	// Levels is the number of intensity levels, including the empty level 0.
	Levels = 6
)

// Heatmap is a weekday by hour grid of event counts.
type Heatmap struct {
	Counts [Days][Hours]int
	Max    int
}

// NewHeatmap places metrics into a grid. The first entry for a slot wins and
// later duplicates are ignored. Entries outside day 1-7 or hour 0-23 are
// dropped.
func NewHeatmap(metrics []analytics.UtilizationMetric) Heatmap {
	var (
		h    Heatmap
		seen [Days][Hours]bool
	)
	for _, m := range metrics {
		if m.Day < 1 || m.Day > Days || m.Hour < 0 || m.Hour >= Hours {
			continue
		}
		if seen[m.Day-1][m.Hour] {
			continue
		}
		seen[m.Day-1][m.Hour] = true
		h.Counts[m.Day-1][m.Hour] = m.Count
	}
	for d := range h.Counts {
		for _, c := range h.Counts[d] {
			h.Max = max(h.Max, c)
		}
	}
	return h
}

// Level buckets count relative to the grid maximum. Zero maps to level 0;
// non-zero counts map to 1-5 at 20% steps of the maximum.
func (h Heatmap) Level(count int) int {
	if count <= 0 {
		return 0
	}
	ratio := float64(count) / float64(max(h.Max, 1))
	switch {
	case ratio < 0.2:
		return 1
	case ratio < 0.4:
		return 2
	case ratio < 0.6:
		return 3
	case ratio < 0.8:
		return 4
	default:
		return 5
	}
}

// Peak returns the busiest slot as a 1-based day and an hour. ok is false
// when the grid is empty. Ties go to the earliest day and hour.
func (h Heatmap) Peak() (day, hour, count int, ok bool) {
	for d := range h.Counts {
		for hr, c := range h.Counts[d] {
			if c > count {
				day, hour, count, ok = d+1, hr, c, true
			}
		}
	}
	return day, hour, count, ok
}
