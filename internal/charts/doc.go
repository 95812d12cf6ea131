// Package charts turns analytics payloads into the shapes the terminal
// renders: horizontal bars measured in eighths of a cell, a weekday by hour
// utilization heatmap bucketed into intensity levels, and a staged layout of
// the mined process graph.
package charts
