package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringgraph/pkg/graph"
	pkgio "github.com/matzehuels/ringgraph/pkg/io"
	"github.com/matzehuels/ringgraph/pkg/pipeline"
)

// graphFlags holds the flags shared by commands that read a graph and lay
// it out: canvas size, style defaults and the options file.
type graphFlags struct {
	height      string
	width       string
	optionsFile string
	repair      bool

	nodeShape     string
	nodeLineColor string
	nodeLineWidth float64
	nodeFill      string
	edgeLineColor string
	edgeLineWidth float64

	margin    float64
	tierScale float64
}

// register adds the shared flags to cmd.
func (f *graphFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.height, "height", "", "canvas height (default "+pipeline.DefaultHeight+")")
	fs.StringVar(&f.width, "width", "", "canvas width (default: same as height)")
	fs.StringVar(&f.optionsFile, "options", "", "TOML or JSON file with canvas and style defaults")
	fs.BoolVar(&f.repair, "repair", false, "repair malformed JSON input before decoding")

	fs.StringVar(&f.nodeShape, "node-shape", "", "default node shape: circle, square")
	fs.StringVar(&f.nodeLineColor, "node-line-color", "", "default node outline color")
	fs.Float64Var(&f.nodeLineWidth, "node-line-width", 0, "default node outline width")
	fs.StringVar(&f.nodeFill, "node-fill", "", "default node fill color")
	fs.StringVar(&f.edgeLineColor, "edge-line-color", "", "default edge color")
	fs.Float64Var(&f.edgeLineWidth, "edge-line-width", 0, "default edge width")

	fs.Float64Var(&f.margin, "margin", 50, "inset between the canvas edge and the outermost ring")
	fs.Float64Var(&f.tierScale, "tier-scale", 0, "tier that maps to the full radius (default 3)")
}

// loadGraph imports the graph file named by path.
func (f *graphFlags) loadGraph(path string) (graph.Graph, error) {
	var opts []pkgio.ReadOption
	if f.repair {
		opts = append(opts, pkgio.WithRepair())
	}
	return pkgio.ImportFile(path, opts...)
}

// options builds pipeline options. The options file is applied first, then
// any flag set on the command line, then the default height.
func (f *graphFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var base graph.Options
	if f.optionsFile != "" {
		var err error
		if base, err = pkgio.ReadOptions(f.optionsFile); err != nil {
			return pipeline.Options{}, fmt.Errorf("load options %s: %w", f.optionsFile, err)
		}
	}

	changed := cmd.Flags().Changed
	if f.height != "" {
		base.Height = f.height
	}
	if f.width != "" {
		base.Width = f.width
	}
	if base.Height == "" {
		base.Height = pipeline.DefaultHeight
	}

	if f.nodeShape != "" || f.nodeLineColor != "" || f.nodeFill != "" || changed("node-line-width") {
		if base.DefaultNode == nil {
			base.DefaultNode = &graph.NodeDefaults{}
		}
		d := base.DefaultNode
		if f.nodeShape != "" {
			d.Shape = graph.ShapeType(f.nodeShape)
		}
		if f.nodeLineColor != "" {
			d.LineColor = f.nodeLineColor
		}
		if f.nodeFill != "" {
			d.FillColor = f.nodeFill
		}
		if changed("node-line-width") {
			d.LineWidth = graph.Float(f.nodeLineWidth)
		}
	}
	if f.edgeLineColor != "" || changed("edge-line-width") {
		if base.DefaultEdge == nil {
			base.DefaultEdge = &graph.EdgeDefaults{}
		}
		if f.edgeLineColor != "" {
			base.DefaultEdge.LineColor = f.edgeLineColor
		}
		if changed("edge-line-width") {
			base.DefaultEdge.LineWidth = graph.Float(f.edgeLineWidth)
		}
	}

	opts := pipeline.Options{Options: base, TierScale: f.tierScale}
	if changed("margin") {
		opts.Margin = &f.margin
	}
	return opts, nil
}

// basePath derives the base output path from the output and input paths.
// A known output extension is stripped so multiple formats can share it.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// formatExt is the file suffix written for each format. The draw tree and
// Graphviz outputs get compound suffixes so they never overwrite the input
// graph or the native SVG.
var formatExt = map[string]string{
	pipeline.FormatSVG:      ".svg",
	pipeline.FormatJSON:     ".draw.json",
	pipeline.FormatPDF:      ".pdf",
	pipeline.FormatPNG:      ".png",
	pipeline.FormatDOT:      ".dot",
	pipeline.FormatGraphviz: ".neato.svg",
}

// outputPath returns where format is written. A single requested format with
// an explicit output path is written there verbatim.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + formatExt[format]
}
