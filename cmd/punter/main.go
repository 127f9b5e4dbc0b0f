// Command punter is the Lambda Punter turn driver: one invocation reads
// exactly one JSON message from stdin and writes exactly one JSON reply
// to stdout, per spec §4.4. The host retains no memory between turns;
// all durable state lives in the base64 "state" field this process
// reads and re-emits every time it runs.
//
// Mirrors the teacher's cmd/server/main.go in shape (flag-free here,
// since §6 names no CLI surface; log.Printf to stderr only on failure,
// timeout and final scores; explicit non-zero exit on failure) but drives one stdio
// request/reply cycle instead of an HTTP listener.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/azybler/lambdapunter/pkg/protocol"
	"github.com/azybler/lambdapunter/pkg/transport"
)

// agentName is this punter's fixed identity, echoed in every handshake.
const agentName = "lambdapunter"

func main() {
	reader := bufio.NewReader(os.Stdin)

	raw, err := transport.ReadFrame(reader)
	if err != nil {
		log.Printf("punter: %v", err)
		os.Exit(1)
	}

	switch protocol.Classify(raw) {
	case protocol.KindHandshakeEcho:
		handleHandshake(os.Stdout)
	case protocol.KindSetup:
		handleSetup(os.Stdout, raw)
	case protocol.KindMove:
		handleMove(os.Stdout, raw)
	case protocol.KindStop:
		handleStop(raw)
	case protocol.KindTimeout:
		log.Printf("punter: received timeout message, exiting")
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, string(raw))
		os.Exit(1)
	}
}

func handleHandshake(w io.Writer) {
	reply := protocol.HandshakeReply{Me: agentName}
	writeReply(w, reply)
}

func writeReply(w io.Writer, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("punter: marshal reply: %v", err)
	}
	if err := transport.WriteFrame(w, payload); err != nil {
		log.Fatalf("punter: write reply: %v", err)
	}
}
