package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
	"github.com/matzehuels/ringgraph/pkg/render/nodelink"
	"github.com/matzehuels/ringgraph/pkg/render/sink"
)

// Render builds the draw tree for a computed layout and serializes it in
// every requested format.
func Render(ctx context.Context, l layout.Layout, edges []graph.Edge, opts Options) (draw.Canvas, map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return draw.Canvas{}, nil, err
	}

	c := draw.Build(l, edges, opts.Options)
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	if opts.Wants(FormatDOT) || opts.Wants(FormatGraphviz) {
		dot = nodelink.ToDOT(l, edges, opts.Options, nodelink.Options{Detailed: opts.Detailed})
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(c, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(c, sink.WithJSONLayout(l))
		case FormatPDF:
			data, err = sink.RenderPDF(c, sink.WithPDFSVGOptions(svgOpts...))
		case FormatPNG:
			data, err = sink.RenderPNG(c, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatDOT:
			data = []byte(dot)
		case FormatGraphviz:
			data, err = nodelink.RenderSVG(ctx, dot)
		default:
			return draw.Canvas{}, nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return draw.Canvas{}, nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return c, artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.ActionScript {
		svgOpts = append(svgOpts, sink.WithActionScript())
	}
	return svgOpts
}

// countDrawnEdges counts line elements, i.e. edges whose endpoints resolved.
func countDrawnEdges(c draw.Canvas) int {
	n := 0
	for _, e := range c.Elements {
		if e.Kind == draw.KindLine {
			n++
		}
	}
	return n
}
