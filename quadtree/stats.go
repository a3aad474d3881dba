package quadtree

// Stats describes the shape of a tree.
type Stats struct {
	// Nodes is the number of materialized nodes, including the root.
	Nodes int

	// Points is the number of stored points, counting duplicates.
	Points int

	// MaxDepth is the depth of the deepest node (root = 0).
	MaxDepth int
}

// Stats walks the subtree and returns its shape counters.
func (t *Tree) Stats() Stats {
	s := Stats{}
	t.collectStats(0, &s)
	return s
}

func (t *Tree) collectStats(depth int, s *Stats) {
	s.Nodes++
	s.Points += len(t.points)
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	for _, child := range t.children {
		if child != nil {
			child.collectStats(depth+1, s)
		}
	}
}
