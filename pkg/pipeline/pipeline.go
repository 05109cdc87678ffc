// Package pipeline provides the layout → draw → render pipeline for ringgraph.
//
// The CLI and the HTTP API both run renders through this package, so option
// defaults, validation and logging are identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: place nodes on tier rings ([layout.Build])
//  2. Render: build the draw tree and serialize it in each requested format
//
// Each stage can be run on its own or through [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Options: graph.Options{Height: "400"},
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [layout.Build]: github.com/matzehuels/ringgraph/pkg/layout.Build
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultHeight is the canvas height used by hosts when none is given.
	DefaultHeight = "600"

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"      // native SVG from the draw tree
	FormatJSON     = "json"     // draw tree plus layout
	FormatPDF      = "pdf"      // SVG converted by rsvg-convert
	FormatPNG      = "png"      // SVG converted by rsvg-convert
	FormatDOT      = "dot"      // Graphviz source with pinned positions
	FormatGraphviz = "graphviz" // SVG produced by Graphviz neato from the DOT
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatJSON:     true,
	FormatPDF:      true,
	FormatPNG:      true,
	FormatDOT:      true,
	FormatGraphviz: true,
}

// FormatNames returns the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// It embeds the canvas and style options, so it decodes from the same JSON
// object as [graph.Options] plus the render fields.
type Options struct {
	graph.Options

	// Layout options
	Margin    *float64 `json:"margin,omitempty"`     // Ring inset (default 50)
	TierScale float64  `json:"tier_scale,omitempty"` // Tier normalization (default 3)

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Scale        float64  `json:"scale,omitempty"`         // PNG scale factor
	ActionScript bool     `json:"action_script,omitempty"` // Embed the click dispatch script in SVG
	Detailed     bool     `json:"detailed,omitempty"`      // Detailed DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	width, height float64
	validated     bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed radial layout.
	Layout layout.Layout

	// Canvas is the draw tree built from Layout.
	Canvas draw.Canvas

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	DrawnEdges int // Edges whose endpoints resolved
	RingCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the canvas, styles and formats and applies
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout parses the canvas size.
func (o *Options) ValidateForLayout() error {
	w, h, err := o.Size()
	if err != nil {
		return err
	}
	if o.TierScale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "tier_scale must not be negative, got %v", o.TierScale)
	}
	o.width, o.height = w, h
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender validates style defaults and formats, and sets render defaults.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions translates the layout fields into [layout.Option] values.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	if o.Margin != nil {
		opts = append(opts, layout.WithMargin(*o.Margin))
	}
	if o.TierScale > 0 {
		opts = append(opts, layout.WithTierScale(o.TierScale))
	}
	return opts
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}
