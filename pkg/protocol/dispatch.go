package protocol

import "encoding/json"

// Kind identifies which of the host's message shapes a raw frame holds.
type Kind int

const (
	KindUnknown Kind = iota
	KindHandshakeEcho
	KindSetup
	KindMove
	KindStop
	KindTimeout
)

// Classify peeks at a raw frame's top-level keys to decide which
// message shape it holds, per spec §4.4 step 3 ("Dispatch by top-level
// key"). The handshake-echo case ("you") is handled the same way as
// the other four (map, move, stop, timeout) so a single process invocation can serve the
// "handshake only" scenario (spec §8 scenario 1) without special-casing
// it ahead of the generic read loop — see DESIGN.md for why the
// handshake and setup phases are split across separate invocations in
// this one-shot-per-turn reimplementation.
func Classify(raw []byte) Kind {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return KindUnknown
	}
	switch {
	case probe["you"] != nil:
		return KindHandshakeEcho
	case probe["map"] != nil:
		return KindSetup
	case probe["move"] != nil:
		return KindMove
	case probe["stop"] != nil:
		return KindStop
	case probe["timeout"] != nil:
		return KindTimeout
	default:
		return KindUnknown
	}
}
