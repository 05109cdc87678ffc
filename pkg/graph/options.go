package graph

import (
	errs "github.com/matzehuels/ringgraph/pkg/errors"
)

// Options controls canvas size and per-kind style defaults.
//
// Height and Width are strings because hosts usually forward them from
// attributes or query parameters. Width defaults to Height, so a bare
// height yields a square canvas.
type Options struct {
	Height      string        `json:"height" toml:"height"`
	Width       string        `json:"width,omitempty" toml:"width,omitempty"`
	DefaultNode *NodeDefaults `json:"default_node,omitempty" toml:"default_node,omitempty"`
	DefaultEdge *EdgeDefaults `json:"default_edge,omitempty" toml:"default_edge,omitempty"`
}

// NodeDefaults overrides the built-in node style. Each field is applied on
// its own; unset fields keep the built-in value.
type NodeDefaults struct {
	Shape     ShapeType `json:"shape_type,omitempty" toml:"shape_type,omitempty"`
	LineColor string    `json:"line_color,omitempty" toml:"line_color,omitempty"`
	LineWidth *float64  `json:"line_width,omitempty" toml:"line_width,omitempty"`
	FillColor string    `json:"fill_color,omitempty" toml:"fill_color,omitempty"`
}

// EdgeDefaults overrides the built-in edge style, field by field.
type EdgeDefaults struct {
	LineColor string   `json:"line_color,omitempty" toml:"line_color,omitempty"`
	LineWidth *float64 `json:"line_width,omitempty" toml:"line_width,omitempty"`
}

// Size parses Height and Width into numbers.
// A missing Width takes the value of Height. Unparseable, non-finite or
// non-positive values are reported with ErrCodeInvalidDimension.
func (o Options) Size() (width, height float64, err error) {
	height, err = errs.ParseDimension("height", o.Height)
	if err != nil {
		return 0, 0, err
	}
	if o.Width == "" {
		return height, height, nil
	}
	width, err = errs.ParseDimension("width", o.Width)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// Validate checks dimensions and the default style records.
func (o Options) Validate() error {
	if _, _, err := o.Size(); err != nil {
		return err
	}
	if d := o.DefaultNode; d != nil {
		if !d.Shape.Valid() {
			return errs.New(errs.ErrCodeInvalidShape, "default_node: unknown shape_type %q (must be 'circle' or 'square')", d.Shape)
		}
		if err := validateStroke("default_node", d.LineColor, d.LineWidth); err != nil {
			return err
		}
		if err := errs.ValidateColor("default_node.fill_color", d.FillColor); err != nil {
			return err
		}
	}
	if d := o.DefaultEdge; d != nil {
		if err := validateStroke("default_edge", d.LineColor, d.LineWidth); err != nil {
			return err
		}
	}
	return nil
}
