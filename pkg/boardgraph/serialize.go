package boardgraph

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Wire layout, in order: magic, version, Header fields, Node[],
// EdgeRef[2*E], Edge[], Mine[], Target[], crc32 trailer. This mirrors
// the teacher's header-then-sections-then-checksum binary contract
// (pkg/graph/binary.go) but the whole thing is base64-wrapped for the
// "state" JSON field instead of written to a file.
const (
	magic   = uint32(0x50554e54) // "PUNT"
	version = uint32(1)
)

// Serialize returns the base64 encoding of the store's raw byte layout.
// Bit-exact round-trip is required: deserialize(serialize(s)) must equal
// s in every serialized field (Seed is not carried).
func (s *Store) Serialize() string {
	buf := make([]byte, 0, 64+len(s.Nodes)*5+len(s.EdgeRefs)*4+len(s.Edges)*9+len(s.Mines)*4+len(s.Targets)*9)

	buf = appendUint32(buf, magic)
	buf = appendUint32(buf, version)

	h := s.Header
	buf = appendUint32(buf, h.PuntersSz)
	buf = appendUint32(buf, h.PunterID)
	buf = appendUint32(buf, h.MoveSeq)
	buf = appendUint32(buf, h.Nodes)
	buf = appendUint32(buf, h.Edges)
	buf = appendUint32(buf, h.Mines)
	buf = appendUint32(buf, h.Targets)
	buf = appendUint32(buf, h.OptionsAvail)
	buf = appendBool(buf, h.HasFutures)
	buf = appendBool(buf, h.HasSplurges)

	for _, n := range s.Nodes {
		buf = appendUint32(buf, n.FirstEdgeRef)
		buf = appendBool(buf, n.IsMine)
	}
	for _, ref := range s.EdgeRefs {
		buf = appendUint32(buf, ref)
	}
	for _, e := range s.Edges {
		buf = appendUint32(buf, e.Source)
		buf = appendUint32(buf, e.Target)
		buf = append(buf, byte(e.Flags))
	}
	for _, m := range s.Mines {
		buf = appendUint32(buf, m.Site)
	}
	for _, t := range s.Targets {
		buf = appendUint32(buf, t.Source)
		buf = appendUint32(buf, t.Target)
		buf = appendBool(buf, t.Reached)
	}

	checksum := crc32.ChecksumIEEE(buf)
	buf = appendUint32(buf, checksum)

	return base64.StdEncoding.EncodeToString(buf)
}

// Deserialize rematerializes a Store from a base64 blob produced by
// Serialize, including its interior EdgeRef/Edge/Mine/Target slices.
func Deserialize(blob string) (*Store, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("boardgraph: decode base64: %w", err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("boardgraph: blob too short for checksum")
	}
	body, storedCRC := raw[:len(raw)-4], binary.LittleEndian.Uint32(raw[len(raw)-4:])
	if computed := crc32.ChecksumIEEE(body); computed != storedCRC {
		return nil, fmt.Errorf("boardgraph: checksum mismatch: stored=%08x computed=%08x", storedCRC, computed)
	}

	r := &reader{buf: body}
	gotMagic := r.u32()
	if gotMagic != magic {
		return nil, fmt.Errorf("boardgraph: bad magic %08x", gotMagic)
	}
	gotVersion := r.u32()
	if gotVersion != version {
		return nil, fmt.Errorf("boardgraph: unsupported version %d", gotVersion)
	}

	s := &Store{}
	s.Header = Header{
		PuntersSz:    r.u32(),
		PunterID:     r.u32(),
		MoveSeq:      r.u32(),
		Nodes:        r.u32(),
		Edges:        r.u32(),
		Mines:        r.u32(),
		Targets:      r.u32(),
		OptionsAvail: r.u32(),
		HasFutures:   r.boolean(),
		HasSplurges:  r.boolean(),
	}
	if r.err != nil {
		return nil, r.err
	}

	s.Nodes = make([]Node, s.Header.Nodes)
	for i := range s.Nodes {
		s.Nodes[i] = Node{FirstEdgeRef: r.u32(), IsMine: r.boolean()}
	}
	s.EdgeRefs = make([]uint32, 2*s.Header.Edges)
	for i := range s.EdgeRefs {
		s.EdgeRefs[i] = r.u32()
	}
	s.Edges = make([]Edge, s.Header.Edges)
	for i := range s.Edges {
		s.Edges[i] = Edge{Source: r.u32(), Target: r.u32(), Flags: EdgeFlags(r.byte())}
	}
	s.Mines = make([]Mine, s.Header.Mines)
	for i := range s.Mines {
		s.Mines[i] = Mine{Site: r.u32()}
	}
	s.Targets = make([]Target, s.Header.Targets)
	for i := range s.Targets {
		s.Targets[i] = Target{Source: r.u32(), Target: r.u32(), Reached: r.boolean()}
	}
	if r.err != nil {
		return nil, r.err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// validate checks the CSR invariants from spec §8, the way the
// teacher's validateCSR guards against a corrupted binary file before
// it causes an out-of-bounds panic at query time.
func (s *Store) validate() error {
	n := s.Header.Nodes
	if uint32(len(s.Nodes)) != n {
		return fmt.Errorf("boardgraph: node count mismatch")
	}
	for i := uint32(1); i < n; i++ {
		if s.Nodes[i].FirstEdgeRef < s.Nodes[i-1].FirstEdgeRef {
			return fmt.Errorf("boardgraph: FirstEdgeRef not monotonic at %d", i)
		}
	}
	if n > 0 && s.Nodes[n-1].FirstEdgeRef != 2*s.Header.Edges {
		return fmt.Errorf("boardgraph: sentinel FirstEdgeRef != 2*edges")
	}
	for _, ref := range s.EdgeRefs {
		if ref >= s.Header.Edges {
			return fmt.Errorf("boardgraph: EdgeRef %d out of range", ref)
		}
	}
	return nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.pos+n > len(r.buf) {
		r.err = fmt.Errorf("boardgraph: truncated blob")
		return false
	}
	return true
}

func (r *reader) u32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) byte() byte {
	if !r.need(1) {
		return 0
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *reader) boolean() bool {
	return r.byte() != 0
}
