// Package io reads and writes graph files in JSON and TOML.
//
// # Overview
//
// Both encodings carry the same model as pkg/graph: an ordered node list and
// an ordered edge list. JSON:
//
//	{
//	  "nodes": [
//	    {"id": 1, "label": "core", "tier": 1},
//	    {"id": 2, "label": "api", "shape_type": "square", "on_click": "open-api"}
//	  ],
//	  "edges": [{"from": 1, "to": 2, "title": "calls"}]
//	}
//
// TOML uses arrays of tables:
//
//	[[nodes]]
//	id = 1
//	label = "core"
//	tier = 1.0
//
//	[[edges]]
//	from = 1
//	to = 2
//
// # Import
//
// [ImportFile] picks the decoder from the file extension. [ReadGraph] works
// on any io.Reader. Both validate the result: ids must be unique, shapes must
// be "circle" or "square", colors and widths must be safe to emit. Edges that
// point at unknown ids are kept; the renderer drops them.
//
//	g, err := io.ImportFile("services.toml")
//
// Hand-written JSON can be fixed up on the way in with [WithRepair]:
//
//	g, err := io.ReadGraph(r, io.FormatJSON, io.WithRepair())
//
// # Export
//
//	err := io.ExportFile(g, "out.json")
//
// Export writes the graph only. Positions come from the json render format,
// which includes the layout.
package io
