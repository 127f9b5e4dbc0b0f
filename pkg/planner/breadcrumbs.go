package planner

import (
	"sort"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
)

const noNode = ^uint32(0)

// minePath is the unrestricted BFS result from one mine to the first
// other mine reached.
type minePath struct {
	mineIndex int
	endpoint  uint32   // the other mine's site id
	edgeRefs  []uint32 // EdgeRef indices, in order from mine to endpoint
}

func (p minePath) length() int { return len(p.edgeRefs) }

// breadcrumbPaths runs an unrestricted BFS from every mine, stopping at
// the first other mine reached, per spec §4.2.1 step 2.
func breadcrumbPaths(s *boardgraph.Store) []minePath {
	var paths []minePath
	for i, m := range s.Mines {
		if path, ok := bfsToOtherMine(s, m.Site); ok {
			paths = append(paths, minePath{mineIndex: i, endpoint: path.endpoint, edgeRefs: path.refs})
		}
	}
	return paths
}

type bfsResult struct {
	endpoint uint32
	refs     []uint32
}

// bfsToOtherMine does an unrestricted (all-edges) BFS from origin,
// stopping at the first node other than origin that is a mine.
func bfsToOtherMine(s *boardgraph.Store, origin uint32) (bfsResult, bool) {
	n := s.Header.Nodes
	visited := make([]bool, n)
	cameFromRef := make([]uint32, n)
	cameFromNode := make([]uint32, n)
	for i := range cameFromNode {
		cameFromNode[i] = noNode
	}
	visited[origin] = true

	queue := []uint32{origin}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u != origin && s.IsMine(u) {
			return bfsResult{endpoint: u, refs: reconstructPath(origin, u, cameFromRef, cameFromNode)}, true
		}

		first, last := s.EdgesIter(u)
		for ref := first; ref < last; ref++ {
			e := s.GetEdgeByRef(ref)
			v := other(e, u)
			if !visited[v] {
				visited[v] = true
				cameFromRef[v] = ref
				cameFromNode[v] = u
				queue = append(queue, v)
			}
		}
	}
	return bfsResult{}, false
}

func other(e *boardgraph.Edge, from uint32) uint32 {
	if e.Source == from {
		return e.Target
	}
	return e.Source
}

// reconstructPath unwinds cameFrom* from `to` back to `from`, returning
// the EdgeRef sequence in forward (from -> to) order.
func reconstructPath(from, to uint32, cameFromRef, cameFromNode []uint32) []uint32 {
	var refs []uint32
	n := to
	for n != from {
		refs = append(refs, cameFromRef[n])
		n = cameFromNode[n]
	}
	// reverse
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
	return refs
}

// selectBreadcrumbs sorts mine paths by length ascending, accumulates
// until the budget is met, marks every edge of the chosen paths as a
// breadcrumb, and returns the Target list (spec §4.2.1 step 3, before
// the caller's reversal).
func selectBreadcrumbs(s *boardgraph.Store, paths []minePath, budget int) []boardgraph.Target {
	sorted := make([]minePath, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].length() < sorted[j].length() })

	var targets []boardgraph.Target
	total := 0
	for _, p := range sorted {
		if total >= budget {
			break
		}
		total += p.length()

		for _, ref := range p.edgeRefs {
			e := s.GetEdgeByRef(ref)
			e.Flags |= boardgraph.FlagBreadcrumb
		}

		mineSite := s.Mines[p.mineIndex].Site
		lo, hi := orderPair(mineSite, p.endpoint)
		targets = append(targets, boardgraph.Target{Source: lo, Target: hi})
	}
	return targets
}

func orderPair(a, b uint32) (lo, hi uint32) {
	if a < b {
		return a, b
	}
	return b, a
}

func reverseTargets(t []boardgraph.Target) {
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}
