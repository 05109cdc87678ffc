// Package render turns a graph into pictures.
//
// # Overview
//
// Rendering happens in two steps. [draw] builds a serializable draw tree
// from a computed layout, resolving styles attribute by attribute through
// [style]. A sink then serializes the tree:
//
//   - [sink]: SVG, JSON, PDF and PNG output
//   - [nodelink]: Graphviz DOT export with pinned ring positions
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both sinks use them.
//
//	canvas, _, err := draw.Render(g, opts)
//	svg := sink.RenderSVG(canvas)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// When rsvg-convert is missing they fail with ErrCodeUnsupported; check
// [Available] first to degrade gracefully.
//
// [draw]: github.com/matzehuels/ringgraph/pkg/render/draw
// [style]: github.com/matzehuels/ringgraph/pkg/render/style
// [sink]: github.com/matzehuels/ringgraph/pkg/render/sink
// [nodelink]: github.com/matzehuels/ringgraph/pkg/render/nodelink
package render
