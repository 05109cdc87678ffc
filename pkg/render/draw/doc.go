// Package draw builds a surface-independent draw tree from a radial layout.
//
// # Overview
//
// The draw tree is a plain, serializable value: a [Canvas] holding an
// ordered list of [Element] instructions. Sinks in pkg/render/sink turn it
// into SVG, JSON, PDF or PNG; pkg/interact hit-tests it. Keeping the tree
// free of any rendering surface lets the whole pipeline run headless.
//
// # Contents
//
//   - One line per edge whose endpoints resolve, in edge order, carrying the
//     resolved stroke, the edge title as tooltip and the click handle.
//   - One group per node, in layout order, carrying the click handle and
//     holding a glyph (circle of radius 20 or centered 40x40 square) plus a
//     centered label. Glyph and label both carry the node title as tooltip.
//
// Edges come first so node glyphs cover the line ends.
//
// # Usage
//
//	canvas, l, err := draw.Render(g, graph.Options{Height: "400"})
//	svg := sink.RenderSVG(canvas)
//
// Or, with a layout already in hand:
//
//	canvas := draw.Build(l, g.Edges, opts)
package draw
