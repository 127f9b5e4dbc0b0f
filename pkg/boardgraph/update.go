package boardgraph

import "fmt"

// MoveKind distinguishes the four move subtypes a host can send.
type MoveKind int

const (
	MoveClaim MoveKind = iota
	MoveOption
	MovePass
	MoveSplurge
)

// OpponentMove is one decoded entry from the host's "move.moves" list,
// with Splurges already expanded into a sequence of claims by the
// protocol layer (per spec §4.1 "Pass and Splurge").
type OpponentMove struct {
	Kind    MoveKind
	Punter  uint32
	Source  uint32
	Target  uint32
}

// Apply resolves each opponent move against the store, per spec §4.1
// "Update via opponent moves", then increments MoveSeq exactly once.
//
// A Claim message on an already-claimed edge is treated identically to
// an Option message — the spec flags this as an open ambiguity the
// original source exhibits; this reimplementation reproduces it rather
// than rejecting the second claim, since the host is the one sending it
// and is assumed authoritative (see DESIGN.md).
func (s *Store) Apply(moves []OpponentMove) {
	for _, m := range moves {
		if m.Kind == MovePass {
			continue
		}
		e, _ := s.FindEdge(m.Source, m.Target)
		if e == nil {
			panic(fmt.Sprintf("boardgraph: update: no edge (%d,%d)", m.Source, m.Target))
		}
		mine := m.Punter == s.Header.PunterID
		if !e.Claimed() {
			e.Flags |= FlagClaimed
			if mine {
				e.Flags |= FlagMe
			}
		} else {
			if e.Optioned() {
				panic(fmt.Sprintf("boardgraph: update: edge (%d,%d) already optioned", m.Source, m.Target))
			}
			e.Flags |= FlagOption
			if s.Header.OptionsAvail > 0 {
				s.Header.OptionsAvail--
			}
			if !e.Mine() && mine {
				e.Flags |= FlagMe
			}
		}
	}
	s.Header.MoveSeq++
}
