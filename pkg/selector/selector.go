// Package selector implements the per-turn move decision: follow the
// planner's breadcrumb targets via restricted shortest-path search,
// falling back to the first unclaimed edge, falling back to Pass.
//
// The reusable search scratch state here (visited bitset, predecessor
// array, touched-node tracking) mirrors the teacher's
// pkg/routing.QueryState: allocate once, Reset() between searches,
// rather than allocating fresh scratch every call — except the search
// itself is unweighted BFS, not Dijkstra, since rivers carry no
// distance in this game.
package selector

import "github.com/azybler/lambdapunter/pkg/boardgraph"

// MoveKind is the action the selector decided on.
type MoveKind int

const (
	ActionClaim MoveKind = iota
	ActionOption
	ActionPass
)

// Move is the selector's decision for this turn.
type Move struct {
	Kind   MoveKind
	Source uint32
	Target uint32
}

// Selector holds reusable search scratch state for one Store's graph
// size, across repeated calls within a single turn (follow_breadcrumbs
// may run the search once per untried target before one resolves).
type Selector struct {
	visited      []bool
	cameFromRef  []uint32
	cameFromNode []uint32
	touched      []uint32
	queue        []uint32
}

// New creates a Selector sized for a graph with n nodes.
func New(numNodes uint32) *Selector {
	return &Selector{
		visited:      make([]bool, numNodes),
		cameFromRef:  make([]uint32, numNodes),
		cameFromNode: make([]uint32, numNodes),
		touched:      make([]uint32, 0, 64),
		queue:        make([]uint32, 0, 64),
	}
}

func (sel *Selector) reset() {
	for _, n := range sel.touched {
		sel.visited[n] = false
	}
	sel.touched = sel.touched[:0]
	sel.queue = sel.queue[:0]
}

// MakeMove runs the full selection chain from spec §4.3: follow
// breadcrumbs, else random_move, else Pass.
func MakeMove(sel *Selector, s *boardgraph.Store) Move {
	if m, ok := followBreadcrumbs(sel, s); ok {
		return m
	}
	if m, ok := randomMove(s); ok {
		return m
	}
	return Move{Kind: ActionPass}
}

// randomMove scans all edges in index order and claims the first
// unclaimed one. Despite the name (inherited from the source this
// spec is distilled from), it is entirely deterministic — spec §9
// "'Random move' is deterministic" — and is preserved that way.
func randomMove(s *boardgraph.Store) (Move, bool) {
	for _, e := range s.Edges {
		if !e.Claimed() {
			return Move{Kind: ActionClaim, Source: e.Source, Target: e.Target}, true
		}
	}
	return Move{}, false
}
