package main

import (
	"encoding/json"
	"io"
	"log"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
	"github.com/azybler/lambdapunter/pkg/protocol"
	"github.com/azybler/lambdapunter/pkg/selector"
)

func handleMove(w io.Writer, raw []byte) {
	var msg protocol.MoveMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Fatalf("punter: malformed move message: %v", err)
	}

	store, err := boardgraph.Deserialize(msg.State)
	if err != nil {
		log.Fatalf("punter: %v", err)
	}

	moves, err := protocol.DecodeMoves(msg.Move.Moves)
	if err != nil {
		log.Fatalf("punter: %v", err)
	}
	store.Apply(moves)

	sel := selector.New(store.Header.Nodes)
	move := selector.MakeMove(sel, store)

	state := store.Serialize()
	punter := store.Header.PunterID

	switch move.Kind {
	case selector.ActionClaim:
		writeReply(w, protocol.MoveReplyClaim{
			Claim: protocol.MoveReplyClaimBody{Punter: punter, Source: move.Source, Target: move.Target},
			State: state,
		})
	case selector.ActionOption:
		writeReply(w, protocol.MoveReplyOption{
			Option: protocol.MoveReplyClaimBody{Punter: punter, Source: move.Source, Target: move.Target},
			State:  state,
		})
	default:
		writeReply(w, protocol.MoveReplyPass{
			Pass:  protocol.MoveReplyPassBody{Punter: punter},
			State: state,
		})
	}
}
