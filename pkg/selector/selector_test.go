package selector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
)

func triangleStore(punterID uint32) *boardgraph.Store {
	return boardgraph.New(boardgraph.SetupSpec{
		PuntersSz: 2, PunterID: punterID, MaxNodeID: 2,
		Rivers: []boardgraph.RiverSpec{
			{Source: 0, Target: 1}, {Source: 1, Target: 2}, {Source: 0, Target: 2},
		},
		Mines: []uint32{0},
	}, 0)
}

func TestMakeMoveFallsBackToRandomMove(t *testing.T) {
	// No targets planned (single mine, spec §8 scenario 3): selector
	// falls through to random_move, claiming the first unclaimed edge
	// by index.
	s := triangleStore(0)
	sel := New(s.Header.Nodes)
	m := MakeMove(sel, s)
	require.Equal(t, ActionClaim, m.Kind)
	require.Equal(t, s.Edges[0].Source, m.Source)
	require.Equal(t, s.Edges[0].Target, m.Target)
}

func TestMakeMovePassWhenFullyClaimed(t *testing.T) {
	s := triangleStore(0)
	for i := range s.Edges {
		s.Edges[i].Flags |= boardgraph.FlagClaimed
	}
	sel := New(s.Header.Nodes)
	m := MakeMove(sel, s)
	require.Equal(t, ActionPass, m.Kind)
}

func chainStore(options bool) *boardgraph.Store {
	return boardgraph.New(boardgraph.SetupSpec{
		PuntersSz: 2, PunterID: 0, MaxNodeID: 3,
		Rivers: []boardgraph.RiverSpec{
			{Source: 0, Target: 1}, {Source: 1, Target: 2}, {Source: 2, Target: 3},
		},
		Mines:    []uint32{0, 3},
		Settings: boardgraph.Settings{Options: options},
	}, 0)
}

func TestFollowBreadcrumbsClaimsFirstPathEdge(t *testing.T) {
	s := chainStore(true)
	plan(s) // mark breadcrumbs + target(0,3)

	sel := New(s.Header.Nodes)
	m := MakeMove(sel, s)
	require.Equal(t, ActionClaim, m.Kind)
	require.Equal(t, uint32(0), m.Source)
	require.Equal(t, uint32(1), m.Target)
}

func TestFollowBreadcrumbsOptionsWhenBlocked(t *testing.T) {
	s := chainStore(true)
	plan(s)

	// Opponent claims the middle edge (1,2) before our turn.
	s.Apply([]boardgraph.OpponentMove{{Kind: boardgraph.MoveClaim, Punter: 1, Source: 1, Target: 2}})
	// Claim our own first edge so the path's first unclaimed/blocked
	// edge the search returns is the opponent's.
	s.Apply([]boardgraph.OpponentMove{{Kind: boardgraph.MoveClaim, Punter: 0, Source: 0, Target: 1}})

	sel := New(s.Header.Nodes)
	m := MakeMove(sel, s)
	require.Equal(t, ActionOption, m.Kind)
	require.Equal(t, uint32(1), m.Source)
	require.Equal(t, uint32(2), m.Target)
}

func TestFollowBreadcrumbsMarksReachedWhenAlreadyConnected(t *testing.T) {
	s := chainStore(false)
	plan(s)

	s.Apply([]boardgraph.OpponentMove{{Kind: boardgraph.MoveClaim, Punter: 0, Source: 0, Target: 1}})
	s.Apply([]boardgraph.OpponentMove{{Kind: boardgraph.MoveClaim, Punter: 0, Source: 1, Target: 2}})
	s.Apply([]boardgraph.OpponentMove{{Kind: boardgraph.MoveClaim, Punter: 0, Source: 2, Target: 3}})

	sel := New(s.Header.Nodes)
	m := MakeMove(sel, s)
	require.True(t, s.Targets[0].Reached, "target should be marked reached once fully self-owned")
	// With the target satisfied and nothing else to do, falls through
	// to random_move over a fully-claimed graph: Pass.
	require.Equal(t, ActionPass, m.Kind)
}

// plan is a tiny stand-in for pkg/planner.Plan used only to avoid an
// import cycle in this package's tests: it marks the straight-line
// chain as one breadcrumb target end to end.
func plan(s *boardgraph.Store) {
	for i := range s.Edges {
		s.Edges[i].Flags |= boardgraph.FlagBreadcrumb
	}
	s.GrowTargets([]boardgraph.Target{{Source: s.Mines[0].Site, Target: s.Mines[1].Site}})
}
