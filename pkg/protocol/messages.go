// Package protocol declares the JSON wire shapes exchanged with the
// host (spec §6) and the decode/validate logic for turning them into
// the plain parameter types pkg/boardgraph and pkg/planner consume.
//
// Structs are plain exported fields with json tags and no validation
// tags — validation is explicit Go code, the way the teacher's
// pkg/api/handlers.go validates a decoded RouteRequest by hand rather
// than via struct-tag-driven validation.
package protocol

import "encoding/json"

// HandshakeEcho is the host's {"you":"<name>"} message.
type HandshakeEcho struct {
	You string `json:"you"`
}

// HandshakeReply is the agent's {"me":"<name>"} reply.
type HandshakeReply struct {
	Me string `json:"me"`
}

// Setup is the host's map+settings message.
type Setup struct {
	Punter   uint32       `json:"punter"`
	Punters  uint32       `json:"punters"`
	Map      SetupMap     `json:"map"`
	Settings *RuleSettings `json:"settings,omitempty"`
}

// SetupMap is the "map" field of a Setup message.
type SetupMap struct {
	Sites  []Site  `json:"sites"`
	Rivers []River `json:"rivers"`
	Mines  []uint32 `json:"mines"`
}

// Site is one graph node.
type Site struct {
	ID uint32 `json:"id"`
}

// River is one undirected edge.
type River struct {
	Source uint32 `json:"source"`
	Target uint32 `json:"target"`
}

// RuleSettings are the optional ruleset flags.
type RuleSettings struct {
	Futures  bool `json:"futures"`
	Splurges bool `json:"splurges"`
	Options  bool `json:"options"`
}

// ReadyReply is the agent's reply to Setup.
type ReadyReply struct {
	Ready   uint32   `json:"ready"`
	State   string   `json:"state"`
	Futures []River  `json:"futures,omitempty"`
}

// MoveMessage is the host's per-turn message.
type MoveMessage struct {
	Move  MoveList `json:"move"`
	State string   `json:"state"`
}

// MoveList is the "move" field of a MoveMessage.
type MoveList struct {
	Moves []json.RawMessage `json:"moves"`
}

// claimOrOptionJSON/splurgeJSON are two of the four move subtypes; claim
// and option share a shape, pass carries no body worth a struct, each
// keyed by its tag in the enclosing object.
type claimOrOptionJSON struct {
	Punter uint32 `json:"punter"`
	Source uint32 `json:"source"`
	Target uint32 `json:"target"`
}

type splurgeJSON struct {
	Punter uint32   `json:"punter"`
	Route  []uint32 `json:"route"`
}

// StopMessage is the host's final-scores message.
type StopMessage struct {
	Stop StopBody `json:"stop"`
}

// StopBody holds the final scores.
type StopBody struct {
	Scores []Score `json:"scores"`
}

// Score is one punter's final score.
type Score struct {
	Punter uint32 `json:"punter"`
	Score  int64  `json:"score"`
}

// MoveReplyClaim/Option/Pass are the agent's reply shapes, merged with
// the serialized state at the top level (spec §6 table).
type MoveReplyClaim struct {
	Claim MoveReplyClaimBody `json:"claim"`
	State string             `json:"state"`
}

type MoveReplyClaimBody struct {
	Punter uint32 `json:"punter"`
	Source uint32 `json:"source"`
	Target uint32 `json:"target"`
}

type MoveReplyOption struct {
	Option MoveReplyClaimBody `json:"option"`
	State  string             `json:"state"`
}

type MoveReplyPass struct {
	Pass  MoveReplyPassBody `json:"pass"`
	State string            `json:"state"`
}

type MoveReplyPassBody struct {
	Punter uint32 `json:"punter"`
}
