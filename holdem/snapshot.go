package holdem

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	snapshotVersion   = 1
	snapshotSchemaURL = "https://holdemcore.dev/schemas/snapshot.json"
)

//go:embed schemas/snapshot.json
var snapshotSchemaJSON []byte

var snapshotSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(snapshotSchemaURL, bytes.NewReader(snapshotSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add snapshot schema: %w", err)
	}
	schema, err := compiler.Compile(snapshotSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile snapshot schema: %w", err)
	}
	return schema, nil
})

type snapshot struct {
	Version int        `json:"version"`
	State   *GameState `json:"state"`
}

// Snapshot serialises s, without its undo ring, to JSON.
func Snapshot(s *GameState) ([]byte, error) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, State: s})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore parses a snapshot produced by Snapshot, checking it against the
// snapshot schema and the state invariants.
func Restore(data []byte) (*GameState, error) {
	schema, err := snapshotSchema()
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("snapshot does not match schema: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := Audit(snap.State); err != nil {
		return nil, err
	}
	return snap.State, nil
}
