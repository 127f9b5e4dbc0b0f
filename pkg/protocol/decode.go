package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/azybler/lambdapunter/pkg/boardgraph"
)

// ToSetupSpec converts a decoded Setup into the parameter type
// pkg/boardgraph.New consumes.
func (s Setup) ToSetupSpec() boardgraph.SetupSpec {
	var maxID uint32
	for _, site := range s.Map.Sites {
		if site.ID > maxID {
			maxID = site.ID
		}
	}
	rivers := make([]boardgraph.RiverSpec, len(s.Map.Rivers))
	for i, r := range s.Map.Rivers {
		rivers[i] = boardgraph.RiverSpec{Source: r.Source, Target: r.Target}
	}
	settings := boardgraph.Settings{}
	if s.Settings != nil {
		settings = boardgraph.Settings{
			Futures:  s.Settings.Futures,
			Splurges: s.Settings.Splurges,
			Options:  s.Settings.Options,
		}
	}
	return boardgraph.SetupSpec{
		PuntersSz: s.Punters,
		PunterID:  s.Punter,
		MaxNodeID: maxID,
		Rivers:    rivers,
		Mines:     s.Map.Mines,
		Settings:  settings,
	}
}

// DecodeMoves turns the host's "move.moves" list into boardgraph
// OpponentMove values, expanding each splurge into its sequence of
// claims (spec §4.1: "splurge is pre-expanded into a sequence of claims
// by the protocol layer").
func DecodeMoves(raw []json.RawMessage) ([]boardgraph.OpponentMove, error) {
	var out []boardgraph.OpponentMove
	for _, r := range raw {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(r, &probe); err != nil {
			return nil, fmt.Errorf("protocol: malformed move entry: %w", err)
		}
		switch {
		case probe["claim"] != nil:
			var body claimOrOptionJSON
			if err := json.Unmarshal(probe["claim"], &body); err != nil {
				return nil, fmt.Errorf("protocol: malformed claim: %w", err)
			}
			out = append(out, boardgraph.OpponentMove{
				Kind: boardgraph.MoveClaim, Punter: body.Punter, Source: body.Source, Target: body.Target,
			})
		case probe["option"] != nil:
			var body claimOrOptionJSON
			if err := json.Unmarshal(probe["option"], &body); err != nil {
				return nil, fmt.Errorf("protocol: malformed option: %w", err)
			}
			out = append(out, boardgraph.OpponentMove{
				Kind: boardgraph.MoveOption, Punter: body.Punter, Source: body.Source, Target: body.Target,
			})
		case probe["pass"] != nil:
			out = append(out, boardgraph.OpponentMove{Kind: boardgraph.MovePass})
		case probe["splurge"] != nil:
			var body splurgeJSON
			if err := json.Unmarshal(probe["splurge"], &body); err != nil {
				return nil, fmt.Errorf("protocol: malformed splurge: %w", err)
			}
			for i := 0; i+1 < len(body.Route); i++ {
				out = append(out, boardgraph.OpponentMove{
					Kind: boardgraph.MoveClaim, Punter: body.Punter,
					Source: body.Route[i], Target: body.Route[i+1],
				})
			}
		default:
			return nil, fmt.Errorf("protocol: unknown move subtype")
		}
	}
	return out, nil
}
