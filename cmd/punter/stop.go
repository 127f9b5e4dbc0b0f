package main

import (
	"encoding/json"
	"log"

	"github.com/azybler/lambdapunter/pkg/protocol"
)

// handleStop logs the final scores to stderr. Per spec §6/§4.4 there is
// no reply to a stop message — the game is over and there is no more
// state to carry forward.
func handleStop(raw []byte) {
	var msg protocol.StopMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Fatalf("punter: malformed stop message: %v", err)
	}
	for _, sc := range msg.Stop.Scores {
		log.Printf("punter: final score: punter=%d score=%d", sc.Punter, sc.Score)
	}
}
