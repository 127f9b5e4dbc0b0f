package planner

import "github.com/azybler/lambdapunter/pkg/boardgraph"

// selectFutures implements spec §4.2.2. It returns the declared futures
// and the target list with one Target(mine, far_node) appended per
// future found.
func selectFutures(s *boardgraph.Store, targets []boardgraph.Target) ([]Future, []boardgraph.Target) {
	numMines := len(s.Mines)
	if numMines == 0 {
		return nil, targets
	}

	// At setup time OptionsAvail was initialized to num_mines iff the
	// options ruleset is enabled (spec §4.1 step 6), so it doubles as
	// the "has_options" flag here, before any move has consumed it.
	f := 0.10
	if s.Header.OptionsAvail > 0 {
		f = 0.30
	}
	nfut := int(ceil(f * float64(numMines)))
	if nfut > numMines {
		nfut = numMines
	}

	var futures []Future
	for i := 0; i < nfut; i++ {
		mineSite := s.Mines[i].Site
		farNode, length, ok := furthestBreadcrumbNode(s, mineSite)
		if !ok || length <= 1 {
			continue
		}
		if s.IsMine(farNode) {
			continue
		}
		futures = append(futures, Future{Mine: mineSite, Node: farNode})
		targets = append(targets, boardgraph.Target{Source: mineSite, Target: farNode})
	}
	return futures, targets
}

// furthestBreadcrumbNode runs a BFS from origin restricted to
// breadcrumb edges and returns the last node drained from the FIFO
// frontier (the furthest breadcrumb-reachable node in BFS order) along
// with its path length in edges.
func furthestBreadcrumbNode(s *boardgraph.Store, origin uint32) (uint32, int, bool) {
	n := s.Header.Nodes
	visited := make([]bool, n)
	depth := make([]int, n)
	visited[origin] = true

	queue := []uint32{origin}
	last := origin
	found := false
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		last = u
		found = true

		first, lastRef := s.EdgesIter(u)
		for ref := first; ref < lastRef; ref++ {
			e := s.GetEdgeByRef(ref)
			if !e.Breadcrumb() {
				continue
			}
			v := other(e, u)
			if !visited[v] {
				visited[v] = true
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	return last, depth[last], true
}
