package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
)

// chainSetup builds mines 0 and 3 connected by a four-node chain:
// 0-1-2-3, as in spec §8 scenario 4.
func chainSetup(options bool) boardgraph.SetupSpec {
	return boardgraph.SetupSpec{
		PuntersSz: 2, PunterID: 0, MaxNodeID: 3,
		Rivers: []boardgraph.RiverSpec{
			{Source: 0, Target: 1},
			{Source: 1, Target: 2},
			{Source: 2, Target: 3},
		},
		Mines:    []uint32{0, 3},
		Settings: boardgraph.Settings{Options: options},
	}
}

func TestPlanMarksBreadcrumbsAndTarget(t *testing.T) {
	s := boardgraph.New(chainSetup(true), 0)
	Plan(s)

	for i, e := range s.Edges {
		require.Truef(t, e.Breadcrumb(), "edge %d (%d,%d) should be a breadcrumb", i, e.Source, e.Target)
	}
	require.Len(t, s.Targets, 1)
	require.Equal(t, uint32(0), s.Targets[0].Source)
	require.Equal(t, uint32(3), s.Targets[0].Target)
}

func TestPlanSingleMineNoTargets(t *testing.T) {
	// A triangle with a single mine has no second mine to connect to,
	// so no breadcrumbs should be marked and no targets produced.
	s := boardgraph.New(boardgraph.SetupSpec{
		PuntersSz: 2, PunterID: 0, MaxNodeID: 2,
		Rivers: []boardgraph.RiverSpec{
			{Source: 0, Target: 1}, {Source: 1, Target: 2}, {Source: 0, Target: 2},
		},
		Mines: []uint32{0},
	}, 0)
	Plan(s)
	for i, e := range s.Edges {
		require.Falsef(t, e.Breadcrumb(), "edge %d (%d,%d) should not be a breadcrumb", i, e.Source, e.Target)
	}
	require.Empty(t, s.Targets, "expected no targets with a single mine")
}

func TestPlanWithFuturesEnabledProducesTargets(t *testing.T) {
	// Two mine pairs of different path lengths, plus futures enabled,
	// runs the double-reversal path; only the presence of targets is
	// checked here, not their order.
	s := boardgraph.New(boardgraph.SetupSpec{
		PuntersSz: 2, PunterID: 0, MaxNodeID: 5,
		Rivers: []boardgraph.RiverSpec{
			{Source: 0, Target: 1}, // short pair: mine 0 - mine 2 via node 1
			{Source: 1, Target: 2},
			{Source: 2, Target: 3}, // part of the longer mine 5 - mine 2 path
			{Source: 3, Target: 4},
			{Source: 4, Target: 5}, // mine 5 reachable too
		},
		Mines:    []uint32{0, 2, 5},
		Settings: boardgraph.Settings{Futures: true},
	}, 0)
	_ = Plan(s) // futures may be empty depending on far-node eligibility

	require.NotEmpty(t, s.Targets, "expected at least one target")
}
