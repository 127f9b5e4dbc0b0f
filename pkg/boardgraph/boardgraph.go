// Package boardgraph is the compact, serializable game-state store for a
// single Lambda Punter game: graph topology, per-edge claim flags, the
// mine list, and the planner's target list.
//
// The store is laid out the way it travels over the wire — fixed
// sections in a flat buffer — but internally it is kept as ordinary Go
// slices (see Store) rather than raw interior pointers into one
// allocation. Only Serialize/Deserialize touch the flat layout.
package boardgraph

// EdgeFlags are the per-river bit flags from spec §3.
type EdgeFlags uint8

const (
	// FlagClaimed means some punter has claimed the river.
	FlagClaimed EdgeFlags = 1 << iota
	// FlagOption means the second-owner "option" slot has been used.
	FlagOption
	// FlagMe means the agent owns the river, via claim or option.
	FlagMe
	// FlagBreadcrumb means the planner marked this river as part of a
	// target path.
	FlagBreadcrumb
)

func (f EdgeFlags) has(bit EdgeFlags) bool { return f&bit != 0 }

// Header mirrors spec §3's Header entity.
type Header struct {
	PuntersSz    uint32
	PunterID     uint32
	MoveSeq      uint32
	Nodes        uint32 // includes the sentinel node
	Edges        uint32
	Mines        uint32
	Targets      uint32
	OptionsAvail uint32
	HasFutures   bool
	HasSplurges  bool
}

// Node is a site plus its CSR offset into EdgeRefs and its mine bit.
type Node struct {
	FirstEdgeRef uint32
	IsMine       bool
}

// Edge is an undirected river between Source and Target, plus flags.
type Edge struct {
	Source uint32
	Target uint32
	Flags  EdgeFlags
}

func (e Edge) Claimed() bool    { return e.Flags.has(FlagClaimed) }
func (e Edge) Optioned() bool   { return e.Flags.has(FlagOption) }
func (e Edge) Mine() bool       { return e.Flags.has(FlagMe) }
func (e Edge) Breadcrumb() bool { return e.Flags.has(FlagBreadcrumb) }

// CanPass reports whether the agent may traverse this edge for free:
// it is either unclaimed or already owned by the agent.
func (e Edge) CanPass() bool {
	return !e.Claimed() || e.Mine()
}

// Mine is a distinguished site used for scoring.
type Mine struct {
	Site uint32
}

// Target is an ordered (source,target) pair the selector is trying to
// connect. Once written, Source/Target never change; only Reached
// flips false->true.
type Target struct {
	Source  uint32
	Target  uint32
	Reached bool
}

// Store is the non-owning-by-convention, owning-in-practice holder of
// one game's entire state: the CSR graph, mines, and targets. There is
// no continuity across turns in the host process — every Store is
// either built fresh from a Setup message or rematerialized from a
// base64 blob at the top of a turn.
type Store struct {
	Header Header

	Nodes    []Node // len == Header.Nodes (includes sentinel)
	EdgeRefs []uint32 // len == 2*Header.Edges; values are edge indices
	Edges    []Edge // len == Header.Edges
	Mines    []Mine // len == Header.Mines
	Targets  []Target // len == Header.Targets

	// Seed records the mine-shuffle seed New was given. It is not
	// serialized (a Deserialize'd Store has Seed 0) and nothing else
	// reads it; the planner runs exactly once, at setup.
	Seed int64
}

// EdgesIter returns the half-open range of EdgeRef indices for edges
// incident to node n. The sentinel node at Header.Nodes-1 guarantees
// this is valid even for the last real node.
func (s *Store) EdgesIter(n uint32) (first, last uint32) {
	return s.Nodes[n].FirstEdgeRef, s.Nodes[n+1].FirstEdgeRef
}

// GetEdgeByRef dereferences an EdgeRef index to the Edge it names.
func (s *Store) GetEdgeByRef(ref uint32) *Edge {
	return &s.Edges[s.EdgeRefs[ref]]
}

// FindEdge returns the edge between a and b, scanning a's incidence
// list in storage order. Returns nil if no such edge exists.
func (s *Store) FindEdge(a, b uint32) (*Edge, uint32) {
	first, last := s.EdgesIter(a)
	for ref := first; ref < last; ref++ {
		e := s.GetEdgeByRef(ref)
		if e.Source == b || e.Target == b {
			return e, s.EdgeRefs[ref]
		}
	}
	return nil, 0
}

// IsMine reports whether node n is a mine.
func (s *Store) IsMine(n uint32) bool {
	return s.Nodes[n].IsMine
}
