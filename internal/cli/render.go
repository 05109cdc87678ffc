package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringgraph/pkg/pipeline"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// renderOpts holds the command-line flags for the render command that are
// not shared with layout.
type renderOpts struct {
	output     string   // output file (single format) or base path
	formats    []string // svg, json, pdf, png, dot, graphviz
	layoutFile string   // reuse positions from a saved layout
	scale      float64  // PNG scale factor
	script     bool     // embed the click dispatch script
	detailed   bool     // detailed DOT labels
}

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      graphFlags
		formatsStr string
		opts       = renderOpts{scale: pipeline.DefaultScale}
	)

	cmd := &cobra.Command{
		Use:   "render [graph]",
		Short: "Render a graph as a radial diagram",
		Long: `Render a graph as a radial diagram.

Nodes are placed on concentric rings by tier (1 innermost, 3 outermost by
default) and drawn as circles or squares with centered labels. Edges are
straight lines between node centers.

Outputs are written next to the input unless --output is given:

  svg       <base>.svg
  json      <base>.draw.json   (draw tree plus layout)
  pdf, png  <base>.pdf, <base>.png  (requires rsvg-convert)
  dot       <base>.dot         (Graphviz source with pinned positions)
  graphviz  <base>.neato.svg   (SVG produced by Graphviz neato)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			popts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], &flags, popts, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated, default svg)")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", "", "reuse node positions from a layout file written by 'layout'")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.script, "script", false, "embed the click dispatch script in SVG output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show ids and tiers in DOT labels")

	return cmd
}

// runRender loads the graph, runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, flags *graphFlags, popts pipeline.Options, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := flags.loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	popts.Formats = opts.formats
	popts.Scale = opts.scale
	popts.ActionScript = opts.script
	popts.Detailed = opts.detailed
	popts.Logger = logger

	runner := c.newRunner()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	var (
		artifacts map[string][]byte
		nodes     = len(g.Nodes)
		drawn     int
		rings     int
	)
	if opts.layoutFile != "" {
		data, err := os.ReadFile(opts.layoutFile)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("read layout %s: %w", opts.layoutFile, err)
		}
		l, err := pipeline.LayoutFromData(data)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("load layout %s: %w", opts.layoutFile, err)
		}
		if err := popts.ValidateAndSetDefaults(); err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		canvas, out, err := runner.Render(ctx, l, g.Edges, popts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render: %w", err)
		}
		artifacts, nodes, rings = out, len(l.Nodes), len(l.Rings)
		drawn = countLines(canvas.Elements)
	} else {
		result, err := runner.Execute(ctx, g, popts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		artifacts = result.Artifacts
		drawn, rings = result.Stats.DrawnEdges, result.Stats.RingCount
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	single := len(opts.formats) == 1
	var written []string
	for _, format := range opts.formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(opts.output, input, format, single)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(data))
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(written)))
	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(nodes, drawn, rings)
	if skipped := len(g.Edges) - drawn; skipped > 0 {
		printWarning("%d edge(s) skipped: endpoint not found", skipped)
	}
	return nil
}

// countLines counts the line elements at the top level of a draw tree.
func countLines(elements []draw.Element) int {
	n := 0
	for _, e := range elements {
		if e.Kind == draw.KindLine {
			n++
		}
	}
	return n
}
