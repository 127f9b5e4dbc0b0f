// Package planner computes, once at game setup, the breadcrumb target
// paths and optional futures that the selector spends the rest of the
// game trying to complete.
//
// The breadcrumb search here is the same "BFS over the CSR graph,
// building an auxiliary per-node structure, then filtering down to a
// subset" shape as the teacher's pkg/graph/component.go (there:
// union-find over all edges, then filter to the largest component);
// here: BFS per mine, then filter down to the mines whose paths fit the
// move budget.
package planner

import "github.com/azybler/lambdapunter/pkg/boardgraph"

// Future is a setup-time declaration the turn driver must echo back to
// the host in the "ready" reply.
type Future struct {
	Mine uint32
	Node uint32
}

// Plan runs breadcrumb selection and, if enabled, future selection, and
// returns the futures to publish. It mutates s in place: setting
// FlagBreadcrumb on chosen edges and growing s.Targets.
func Plan(s *boardgraph.Store) []Future {
	budget := moveBudget(s)
	minePaths := breadcrumbPaths(s)

	targets := selectBreadcrumbs(s, minePaths, budget)
	// Reverse once: earliest-found (shortest) paths are scheduled last.
	reverseTargets(targets)

	var futures []Future
	if s.Header.HasFutures {
		futures, targets = selectFutures(s, targets)
		// Reverse again: net effect is futures first (last-found first),
		// then mine-to-mine targets ordered shortest-first. Without
		// futures only the first reversal applies and mine-to-mine
		// targets stay longest-first.
		reverseTargets(targets)
	}

	s.GrowTargets(targets)
	return futures
}

// moveBudget implements spec §4.2.1 step 1.
func moveBudget(s *boardgraph.Store) int {
	if s.Header.PuntersSz == 0 {
		return 0
	}
	movesTotal := float64(s.Header.Edges) / float64(s.Header.PuntersSz)
	bufferFraction := 0.05
	if s.Header.HasFutures {
		bufferFraction = 0.10
	}
	return int(ceil((1 - bufferFraction) * movesTotal))
}

func ceil(f float64) float64 {
	i := int64(f)
	if f > float64(i) {
		i++
	}
	return float64(i)
}
