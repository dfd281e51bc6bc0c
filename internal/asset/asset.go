// Package asset persists blueprints: the graph serializes to a JSON payload
// string wrapped in a small versioned envelope. Round-tripping through
// Encode and Decode reproduces an equal graph.
package asset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/blueprintgo/internal/model"
)

// Ext is the blueprint asset file extension.
const Ext = ".blueprint"

// CurrentVersion is the envelope format version written by Encode.
const CurrentVersion = 1

// Asset is the on-disk envelope: a format version for future migrations and
// the serialized graph payload.
type Asset struct {
	Version uint32 `json:"version"`
	Graph   string `json:"graph"`
}

// Encode wraps a graph into an envelope and serializes it.
func Encode(g *model.BlueprintGraph) ([]byte, error) {
	payload, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("asset: encoding graph payload: %w", err)
	}
	data, err := json.MarshalIndent(&Asset{Version: CurrentVersion, Graph: string(payload)}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("asset: encoding envelope: %w", err)
	}
	return data, nil
}

// Decode parses an envelope and its graph payload. On failure it returns
// the error together with an empty, valid default graph, so a host can
// report the problem and still operate on something consistent instead of a
// partially parsed structure.
func Decode(data []byte) (*model.BlueprintGraph, error) {
	fallback := model.NewBlueprintGraph("Blueprint")

	var env Asset
	if err := json.Unmarshal(data, &env); err != nil {
		return fallback, fmt.Errorf("asset: decoding envelope: %w", err)
	}

	var g model.BlueprintGraph
	if err := json.Unmarshal([]byte(env.Graph), &g); err != nil {
		return fallback, fmt.Errorf("asset: decoding graph payload: %w", err)
	}
	g.EnsureBuiltinGraphs()
	return &g, nil
}

// Save writes a graph to path as a blueprint asset.
func Save(path string, g *model.BlueprintGraph) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("asset: writing %s: %w", path, err)
	}
	return nil
}

// Load reads a blueprint asset from path. Decode's fallback contract
// applies: on a malformed payload the returned graph is the empty default.
func Load(path string) (*model.BlueprintGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.NewBlueprintGraph("Blueprint"), fmt.Errorf("asset: reading %s: %w", path, err)
	}
	return Decode(data)
}
