package main

import (
	"encoding/json"
	"io"
	"log"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
	"github.com/azybler/lambdapunter/pkg/planner"
	"github.com/azybler/lambdapunter/pkg/protocol"
)

func handleSetup(w io.Writer, raw []byte) {
	var setup protocol.Setup
	if err := json.Unmarshal(raw, &setup); err != nil {
		log.Fatalf("punter: malformed setup: %v", err)
	}

	seed := setupSeed(setup.Punter, setup.Punters)
	store := boardgraph.New(setup.ToSetupSpec(), seed)
	futures := planner.Plan(store)

	reply := protocol.ReadyReply{
		Ready: setup.Punter,
		State: store.Serialize(),
	}
	for _, f := range futures {
		reply.Futures = append(reply.Futures, protocol.River{Source: f.Mine, Target: f.Node})
	}
	writeReply(w, reply)
}

// setupSeed derives a deterministic, per-game, per-seat RNG seed from
// the setup message, per spec §9 ("must use a seeded RNG for
// testability, or expose the seed").
func setupSeed(punter, punters uint32) int64 {
	return int64(punter)*1000003 + int64(punters)
}
