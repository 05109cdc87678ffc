package graph

import (
	"fmt"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// ShapeType selects the glyph drawn for a node.
type ShapeType string

// Node shapes.
const (
	ShapeCircle ShapeType = "circle"
	ShapeSquare ShapeType = "square"
)

// Valid reports whether s is a known shape. The empty shape is valid and
// means "inherit from defaults".
func (s ShapeType) Valid() bool {
	return s == "" || s == ShapeCircle || s == ShapeSquare
}

// =============================================================================
// Graph - Wire Format
// =============================================================================

// Graph is an ordered list of nodes plus an ordered list of edges.
// Nodes without X/Y are unpositioned; layout returns positioned copies.
type Graph struct {
	Nodes []Node `json:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" toml:"edges"`
}

// =============================================================================
// Node
// =============================================================================

// Node is a single vertex of the diagram.
//
// Every style attribute is optional on its own: an unset string or nil
// pointer falls through to the caller defaults and then the built-in ones.
type Node struct {
	ID    int      `json:"id" toml:"id"`
	Label string   `json:"label" toml:"label"`
	Title string   `json:"title,omitempty" toml:"title,omitempty"` // Tooltip text
	Tier  *float64 `json:"tier,omitempty" toml:"tier,omitempty"`   // Ring index (nil means DefaultTier)

	Shape     ShapeType `json:"shape_type,omitempty" toml:"shape_type,omitempty"`
	LineColor string    `json:"line_color,omitempty" toml:"line_color,omitempty"`
	LineWidth *float64  `json:"line_width,omitempty" toml:"line_width,omitempty"`
	FillColor string    `json:"fill_color,omitempty" toml:"fill_color,omitempty"`

	// OnClick is an opaque action handle resolved by the host's event layer.
	OnClick string `json:"on_click,omitempty" toml:"on_click,omitempty"`

	// Set by layout only.
	X *float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" toml:"y,omitempty"`
}

// Position returns the computed coordinates and whether they are set.
func (n *Node) Position() (x, y float64, ok bool) {
	if n.X == nil || n.Y == nil {
		return 0, 0, false
	}
	return *n.X, *n.Y, true
}

// TierOr returns the node's tier, or def when none is set.
func (n *Node) TierOr(def float64) float64 {
	if n.Tier == nil {
		return def
	}
	return *n.Tier
}

// Clickable reports whether the node carries an action handle.
func (n *Node) Clickable() bool { return n.OnClick != "" }

// =============================================================================
// Edge
// =============================================================================

// Edge is a straight connection between two node ids.
// Edges whose endpoints do not resolve are dropped when drawing.
type Edge struct {
	From      int      `json:"from" toml:"from"`
	To        int      `json:"to" toml:"to"`
	Label     string   `json:"label,omitempty" toml:"label,omitempty"`
	Title     string   `json:"title,omitempty" toml:"title,omitempty"`
	LineColor string   `json:"line_color,omitempty" toml:"line_color,omitempty"`
	LineWidth *float64 `json:"line_width,omitempty" toml:"line_width,omitempty"`
	OnClick   string   `json:"on_click,omitempty" toml:"on_click,omitempty"`
}

// Clickable reports whether the edge carries an action handle.
func (e *Edge) Clickable() bool { return e.OnClick != "" }

// =============================================================================
// Validation
// =============================================================================

// Validate checks the structural invariants a graph file must satisfy:
// unique node ids, known shapes, finite tiers, and attribute values that are
// safe to emit.
//
// Layout and drawing do not call Validate; they tolerate anything. It is
// applied at import boundaries (files, HTTP requests).
func (g *Graph) Validate() error {
	seen := make(map[int]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, dup := seen[n.ID]; dup {
			return errs.New(errs.ErrCodeInvalidGraph, "duplicate node id %d", n.ID)
		}
		seen[n.ID] = struct{}{}

		if !n.Shape.Valid() {
			return errs.New(errs.ErrCodeInvalidShape, "node %d: unknown shape_type %q (must be 'circle' or 'square')", n.ID, n.Shape)
		}
		if err := validateStroke(fmt.Sprintf("nodes[%d]", i), n.LineColor, n.LineWidth); err != nil {
			return err
		}
		if err := errs.ValidateColor(fmt.Sprintf("nodes[%d].fill_color", i), n.FillColor); err != nil {
			return err
		}
		if n.Tier != nil {
			if err := errs.ValidateTier(fmt.Sprintf("nodes[%d].tier", i), *n.Tier); err != nil {
				return err
			}
		}
	}
	for i, e := range g.Edges {
		if err := validateStroke(fmt.Sprintf("edges[%d]", i), e.LineColor, e.LineWidth); err != nil {
			return err
		}
	}
	return nil
}

func validateStroke(prefix, color string, width *float64) error {
	if err := errs.ValidateColor(prefix+".line_color", color); err != nil {
		return err
	}
	if width != nil {
		return errs.ValidateLineWidth(prefix+".line_width", *width)
	}
	return nil
}

// Float returns a pointer to v, for populating optional numeric fields.
func Float(v float64) *float64 { return &v }
