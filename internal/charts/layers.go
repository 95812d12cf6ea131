package charts

import "github.com/five82/orgmine/internal/analytics"

// Layout arranges process nodes into left-to-right stages.
type Layout struct {
	// Stages holds node ids per stage, in input order within a stage.
	Stages [][]string
	// Stage maps a node id to its stage index.
	Stage map[string]int
	// Dangling counts edges that reference unknown nodes.
	Dangling int
}

// LayoutFlow assigns every node the length of the longest path reaching it
// from a node without predecessors. Cycles are broken at the earliest node,
// in input order, that is still waiting on a predecessor. Self loops and
// edges to unknown nodes are ignored, and only the first node with a given
// id is kept.
func LayoutFlow(data analytics.BPMNData) Layout {
	index := make(map[string]int, len(data.Nodes))
	var order []int
	for i, n := range data.Nodes {
		if _, dup := index[n.ID]; !dup {
			index[n.ID] = i
			order = append(order, i)
		}
	}

	layout := Layout{Stage: make(map[string]int, len(order))}
	out := make([][]int, len(data.Nodes))
	indeg := make([]int, len(data.Nodes))
	for _, e := range data.Edges {
		s, okS := index[e.Source]
		t, okT := index[e.Target]
		if !okS || !okT {
			layout.Dangling++
			continue
		}
		if s == t {
			continue
		}
		out[s] = append(out[s], t)
		indeg[t]++
	}

	stage := make([]int, len(data.Nodes))
	done := make([]bool, len(data.Nodes))
	var queue []int
	for _, i := range order {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	for processed := 0; processed < len(order); {
		if len(queue) == 0 {
			// Only cycles remain.
			for _, i := range order {
				if !done[i] {
					queue = append(queue, i)
					break
				}
			}
		}
		i := queue[0]
		queue = queue[1:]
		if done[i] {
			continue
		}
		done[i] = true
		processed++
		for _, t := range out[i] {
			if done[t] {
				continue
			}
			stage[t] = max(stage[t], stage[i]+1)
			indeg[t]--
			if indeg[t] == 0 {
				queue = append(queue, t)
			}
		}
	}

	for _, i := range order {
		s := stage[i]
		for len(layout.Stages) <= s {
			layout.Stages = append(layout.Stages, nil)
		}
		id := data.Nodes[i].ID
		layout.Stages[s] = append(layout.Stages[s], id)
		layout.Stage[id] = s
	}
	return layout
}
