package selector

import "github.com/azybler/lambdapunter/pkg/boardgraph"

// searchOutcome is the result of shortestPath.
type searchOutcome struct {
	found        bool
	alreadyOwned bool          // every edge on the path is self-owned
	edge         *boardgraph.Edge
}

// shortestPath implements spec §4.3.1: BFS from `from` to `to`, edges
// traversable if CanPass() or (useOptions and the edge is unoptioned
// and the local options budget remains). The budget is a heuristic
// local counter seeded from the store's real OptionsAvail and
// decremented once per non-pass edge added to the BFS tree — before the
// edge is necessarily used in the final path, matching spec §9's
// "Option search heuristic" note (overestimates consumption; keep the
// behavior to reproduce move choices).
//
// Edges incident to each node are visited in storage (incidence) order,
// and the frontier is strict FIFO, per spec §4.3.1 "Notes".
func shortestPath(sel *Selector, s *boardgraph.Store, from, to uint32, useOptions bool) searchOutcome {
	sel.reset()

	if from == to {
		return searchOutcome{found: true, alreadyOwned: true}
	}

	optionsBudget := s.Header.OptionsAvail

	sel.visited[from] = true
	sel.touched = append(sel.touched, from)
	sel.queue = append(sel.queue, from)

	reached := false
	for len(sel.queue) > 0 {
		u := sel.queue[0]
		sel.queue = sel.queue[1:]

		if u == to {
			reached = true
			break
		}

		first, last := s.EdgesIter(u)
		for ref := first; ref < last; ref++ {
			e := s.GetEdgeByRef(ref)
			v := other(e, u)
			if sel.visited[v] {
				continue
			}

			canTraverse := e.CanPass()
			if !canTraverse && useOptions && !e.Optioned() && optionsBudget > 0 {
				canTraverse = true
			}
			if !canTraverse {
				continue
			}
			if !e.CanPass() {
				optionsBudget--
			}

			sel.visited[v] = true
			sel.touched = append(sel.touched, v)
			sel.cameFromRef[v] = ref
			sel.cameFromNode[v] = u
			sel.queue = append(sel.queue, v)
		}
	}

	if !reached {
		return searchOutcome{found: false}
	}

	path := unwindPath(sel, s, from, to)
	if len(path) == 0 {
		return searchOutcome{found: true, alreadyOwned: true}
	}

	for _, ref := range path {
		e := s.GetEdgeByRef(ref)
		if !e.Mine() {
			return searchOutcome{found: true, edge: e}
		}
	}
	// Every edge is self-owned: signal "already connected" by returning
	// the last edge of the path.
	last := s.GetEdgeByRef(path[len(path)-1])
	return searchOutcome{found: true, alreadyOwned: true, edge: last}
}

func other(e *boardgraph.Edge, from uint32) uint32 {
	if e.Source == from {
		return e.Target
	}
	return e.Source
}

// unwindPath walks from `to` back to `from` via cameFromNode/Ref, then
// reverses so the result runs from -> to.
func unwindPath(sel *Selector, s *boardgraph.Store, from, to uint32) []uint32 {
	var refs []uint32
	n := to
	for n != from {
		refs = append(refs, sel.cameFromRef[n])
		n = sel.cameFromNode[n]
	}
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
	return refs
}
