package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/observability"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// Runner executes the pipeline with logging and observability hooks.
// Both CLI and API use it so every entry point reports stages the same way.
// Stage logs go to Options.Logger when set (e.g. a logger carrying a request
// id), else to the runner's Logger.
//
// A Runner holds no per-render state; multiple goroutines can share one.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs layout → render for g.
func (r *Runner) Execute(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)

	// Stage 1: Layout
	layoutStart := time.Now()
	l, err := r.Layout(ctx, g.Nodes, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RingCount = len(l.Rings)

	// Stage 2: Render
	renderStart := time.Now()
	c, artifacts, err := r.Render(ctx, l, g.Edges, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Canvas = c
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.DrawnEdges = countDrawnEdges(c)

	if dropped := result.Stats.EdgeCount - result.Stats.DrawnEdges; dropped > 0 {
		opts.Logger.Debug("skipped edges with unknown endpoints", "count", dropped)
	}

	return result, nil
}

// Layout computes the radial layout and reports it to the pipeline hooks.
func (r *Runner) Layout(ctx context.Context, nodes []graph.Node, opts Options) (layout.Layout, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(nodes))

	start := time.Now()
	l, err := GenerateLayout(nodes, opts)
	hooks.OnLayoutComplete(ctx, len(l.Rings), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	opts.Logger.Info("computed layout",
		"nodes", len(l.Nodes),
		"rings", len(l.Rings),
		"radius", l.Radius,
		"duration", time.Since(start))
	if l.Radius <= 0 {
		opts.Logger.Warn("canvas too small for rings, nodes will overlap",
			"width", l.FrameWidth,
			"height", l.FrameHeight)
	}
	return l, nil
}

// Render builds the draw tree and artifacts and reports them to the pipeline hooks.
func (r *Runner) Render(ctx context.Context, l layout.Layout, edges []graph.Edge, opts Options) (draw.Canvas, map[string][]byte, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	c, artifacts, err := Render(ctx, l, edges, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return draw.Canvas{}, nil, err
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"elements", len(c.Elements),
		"duration", time.Since(start))
	return c, artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
