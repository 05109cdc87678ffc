// Package nodelink exports radial layouts to Graphviz.
//
// # Overview
//
// [ToDOT] writes an undirected DOT graph whose nodes are pinned to their
// computed ring positions. The DOT can be saved for external tools or
// rendered in-process with [RenderSVG], which runs Graphviz neato so the
// pinned positions are kept:
//
//	canvas, l, err := draw.Render(g, opts)
//	dot := nodelink.ToDOT(l, g.Edges, opts, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Node and edge styles resolve through pkg/render/style exactly like the
// native draw tree. Tooltips map to the Graphviz tooltip attribute and click
// targets get class "action".
//
// # Options
//
//   - Detailed: adds the node id and tier to each label
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
