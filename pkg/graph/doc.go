// Package graph provides the data model and wire format for ringgraph.
//
// This package defines the types every other package consumes: the input
// [Graph] of [Node] and [Edge] values, the render [Options], and the
// serialized [Layout] produced after positioning.
//
// # Graph Format
//
// Graphs use a simple node-link JSON (or TOML) format:
//
//	{
//	  "nodes": [
//	    {"id": 1, "label": "core", "tier": 1},
//	    {"id": 2, "label": "api", "title": "public API", "shape_type": "square"}
//	  ],
//	  "edges": [{"from": 1, "to": 2, "title": "calls"}]
//	}
//
// A node without a tier sits on tier 3, the outermost default ring.
//
// # Optional Attributes
//
// Style attributes are individually optional. An empty string or nil pointer
// means "not set" and the value is resolved later through the override chain
// (element, then [Options] defaults, then built-in defaults). Click handlers
// are opaque action handles (OnClick) so the data model stays serializable;
// a host resolves them with pkg/interact.
//
// # Options
//
//	opts := graph.Options{Height: "400"}          // 400x400 canvas
//	opts := graph.Options{Height: "300", Width: "600"}
//	w, h, err := opts.Size()
//
// # Concurrency
//
// Values in this package are plain data. Nothing here mutates its inputs.
package graph
