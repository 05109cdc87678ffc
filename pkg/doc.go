// Package pkg provides the core libraries for ringgraph radial graph diagrams.
//
// # Overview
//
// Ringgraph draws a node-link graph inside a fixed canvas by placing every
// node on a concentric ring chosen by its tier: tier 1 is the innermost ring,
// tier 3 (the default) the outermost. Edges are straight lines between node
// centers. The pkg directory is organized into these areas:
//
//  1. [graph] - Data model and wire format (graphs, options, layouts)
//  2. [layout] - The tier-based radial layout
//  3. [render] - Draw tree, style resolution and output sinks
//  4. [pipeline] - Orchestration (layout → draw → sinks)
//  5. [interact] - Host-side click handling (registry, hit testing)
//
// # Architecture
//
// Data flows one way through a render:
//
//	graph.Graph + graph.Options
//	         ↓
//	    [layout] package (positions on tier rings + id index)
//	         ↓
//	    [render/draw] package (edges first, then node groups)
//	         ↓
//	    [render/sink], [render/nodelink] (SVG, JSON, PDF, PNG, DOT)
//
// Everything is rebuilt from scratch on every render; nothing is cached or
// persisted between calls.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/ringgraph/pkg/graph"
//	    "github.com/matzehuels/ringgraph/pkg/render/draw"
//	    "github.com/matzehuels/ringgraph/pkg/render/sink"
//	)
//
//	g := graph.Graph{
//	    Nodes: []graph.Node{
//	        {ID: 1, Label: "core", Tier: graph.Float(1)},
//	        {ID: 2, Label: "api", OnClick: "open-api"},
//	    },
//	    Edges: []graph.Edge{{From: 1, To: 2}},
//	}
//	canvas, _, err := draw.Render(g, graph.Options{Height: "400"})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(canvas)
//
// # Main Packages
//
// [graph] - Node, Edge, Options and the serialized Layout. Style fields are
// individually optional and resolved through element → defaults → built-in.
//
// [layout] - [layout.Build] computes positions: radius = min(w, h)/2 - 50,
// ring radius = radius·tier/3, angle = -π/2 + 2πi/n within each tier group.
//
// [render/style] - Attribute-wise style resolution.
//
// [render/draw] - The draw tree: a plain, JSON-serializable value.
//
// [render/sink] - SVG, JSON, PDF and PNG serialization of the draw tree.
//
// [render/nodelink] - Graphviz DOT export with pinned positions.
//
// [render] - SVG to PDF/PNG conversion via rsvg-convert.
//
// [io] - JSON and TOML graph files with validation.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Hooks for metrics and tracing, no-op by default.
//
// # Testing
//
//	go test ./...                   # All tests
//	go test ./pkg/layout/...        # Specific package
//	go test -run Example ./pkg/...  # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/graph
// [layout]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/layout
// [layout.Build]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/layout#Build
// [render]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/render
// [render/style]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/render/style
// [render/draw]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/render/draw
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/pipeline
// [interact]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/interact
// [io]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ringgraph/pkg/observability
package pkg
