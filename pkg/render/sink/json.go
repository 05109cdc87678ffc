package sink

import (
	"encoding/json"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	layout *layout.Layout
}

// WithJSONLayout includes the ring geometry and positioned nodes next to
// the draw tree.
func WithJSONLayout(l layout.Layout) JSONOption {
	return func(r *jsonRenderer) { r.layout = &l }
}

type jsonOutput struct {
	Canvas draw.Canvas   `json:"canvas"`
	Layout *graph.Layout `json:"layout,omitempty"`
}

// RenderJSON exports the draw tree (and optionally its layout) as a
// pretty-printed JSON document. Action handles and tooltips are kept so a
// client can rebuild the interactive diagram without re-running layout.
func RenderJSON(c draw.Canvas, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Canvas: c}
	if r.layout != nil {
		exported := r.layout.Export()
		out.Layout = &exported
	}
	return json.MarshalIndent(out, "", "  ")
}
