package selector

import "github.com/azybler/lambdapunter/pkg/boardgraph"

// followBreadcrumbs implements spec §4.3 step 1: iterate targets in
// stored order, skipping reached ones, and act on the first target that
// yields a move. Target indices only ever increase across turns
// (targets already marked reached stay reached).
func followBreadcrumbs(sel *Selector, s *boardgraph.Store) (Move, bool) {
	for i := range s.Targets {
		t := &s.Targets[i]
		if t.Reached {
			continue
		}

		outcome := shortestPath(sel, s, t.Source, t.Target, true)

		if !outcome.found {
			t.Reached = true
			continue
		}
		if outcome.alreadyOwned {
			t.Reached = true
			continue
		}

		e := outcome.edge
		if !e.Claimed() {
			return Move{Kind: ActionClaim, Source: e.Source, Target: e.Target}, true
		}
		if s.Header.OptionsAvail > 0 {
			return Move{Kind: ActionOption, Source: e.Source, Target: e.Target}, true
		}
		// Claimed by someone else and no options remain: this target
		// can't make progress this turn; move on to the next one
		// rather than emitting nothing (spec §4.3 enumerates only the
		// unclaimed/option/unreachable/already-connected outcomes, so
		// this is the one case left implicit — treated as "try the
		// next target" rather than a hard stop).
	}
	return Move{}, false
}
