package boardgraph

import "math/rand"

// RiverSpec is one undirected edge as given by the host's map.
type RiverSpec struct {
	Source uint32
	Target uint32
}

// Settings are the optional ruleset flags from the host's Setup message.
type Settings struct {
	Futures  bool
	Splurges bool
	Options  bool
}

// SetupSpec is everything the store needs to construct itself, decoupled
// from the JSON wire shape in pkg/protocol so this package has no
// dependency on the codec layer.
type SetupSpec struct {
	PuntersSz uint32
	PunterID  uint32
	MaxNodeID uint32 // largest site id present in Sites
	Rivers    []RiverSpec
	Mines     []uint32
	Settings  Settings
}

// New builds a Store from a host Setup message, per spec §4.1
// "Construction from Setup".
func New(setup SetupSpec, seed int64) *Store {
	s := &Store{Seed: seed}

	numNodes := setup.MaxNodeID + 2 // +1 real max id, +1 sentinel
	numEdges := uint32(len(setup.Rivers))
	numMines := uint32(len(setup.Mines))

	s.Header = Header{
		PuntersSz:  setup.PuntersSz,
		PunterID:   setup.PunterID,
		MoveSeq:    0,
		Nodes:      numNodes,
		Edges:      numEdges,
		Mines:      numMines,
		Targets:    0,
		HasFutures: setup.Settings.Futures,
		HasSplurges: setup.Settings.Splurges,
	}
	if setup.Settings.Options {
		s.Header.OptionsAvail = numMines
	}

	// Step 1: write Edge[] in input order.
	s.Edges = make([]Edge, numEdges)
	for i, r := range setup.Rivers {
		s.Edges[i] = Edge{Source: r.Source, Target: r.Target}
	}

	// Step 2: scratch incidence lists, in input order.
	incident := make([][]uint32, numNodes)
	for i, r := range setup.Rivers {
		incident[r.Source] = append(incident[r.Source], uint32(i))
		incident[r.Target] = append(incident[r.Target], uint32(i))
	}

	// Step 3: build Node[]/EdgeRef[] — ascending node id, running offset,
	// sentinel's FirstEdgeRef ends equal to 2*edges.
	s.Nodes = make([]Node, numNodes)
	s.EdgeRefs = make([]uint32, 0, 2*numEdges)
	for n := uint32(0); n < numNodes; n++ {
		s.Nodes[n].FirstEdgeRef = uint32(len(s.EdgeRefs))
		if n < numNodes-1 {
			s.EdgeRefs = append(s.EdgeRefs, incident[n]...)
		}
	}

	// Step 4: mines, possibly shuffled to diversify future selection.
	mines := make([]uint32, len(setup.Mines))
	copy(mines, setup.Mines)
	if seed != 0 {
		rand.New(rand.NewSource(seed)).Shuffle(len(mines), func(i, j int) {
			mines[i], mines[j] = mines[j], mines[i]
		})
	}
	s.Mines = make([]Mine, len(mines))
	for i, site := range mines {
		s.Mines[i] = Mine{Site: site}
		s.Nodes[site].IsMine = true
	}

	return s
}

// GrowTargets appends new targets and updates Header.Targets. Unlike the
// teacher's flat-buffer resize-and-recompute-pointers approach, this is
// an ordinary slice append: nothing here holds raw pointers into the
// buffer, so there is nothing to fix up (see design note in SPEC_FULL.md
// §9/§4.1).
func (s *Store) GrowTargets(newTargets []Target) {
	s.Targets = append(s.Targets, newTargets...)
	s.Header.Targets = uint32(len(s.Targets))
}
