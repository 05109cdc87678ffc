package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout - Serialized Layout Result
// =============================================================================

// Layout is the serialization format for a computed radial layout.
//
// It records the canvas geometry, one entry per ring and the positioned
// nodes in layout order (grouped by tier, not input order). Consumers that
// need a particular node should look it up by id.
//
// The internal representation lives in pkg/layout; use its Export method to
// produce this type.
type Layout struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius"` // Base radius (tier 3)
	Rings   []Ring  `json:"rings"`
	Nodes   []Node  `json:"nodes"`
}

// Ring summarizes one tier group.
type Ring struct {
	Tier   float64 `json:"tier"`
	Radius float64 `json:"radius"`
	Count  int     `json:"count"`
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Every node must carry a position.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	for _, n := range l.Nodes {
		if _, _, ok := n.Position(); !ok {
			return Layout{}, fmt.Errorf("layout node %d has no position", n.ID)
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
