package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

func TestRenderJSON(t *testing.T) {
	c := testCanvas(t)

	data, err := RenderJSON(c)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Canvas.Width != 300 || out.Canvas.Height != 200 {
		t.Errorf("canvas = %vx%v, want 300x200", out.Canvas.Width, out.Canvas.Height)
	}
	if len(out.Canvas.Elements) != len(c.Elements) {
		t.Errorf("elements = %d, want %d", len(out.Canvas.Elements), len(c.Elements))
	}
	if out.Layout != nil {
		t.Error("layout included without WithJSONLayout")
	}
}

func TestRenderJSONWithLayout(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: 1, Label: "a"}, {ID: 2, Label: "b", Tier: graph.Float(1)}}}
	c, l, err := draw.Render(g, graph.Options{Height: "200"})
	if err != nil {
		t.Fatalf("draw.Render() error: %v", err)
	}

	data, err := RenderJSON(c, WithJSONLayout(l))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Layout == nil {
		t.Fatal("layout missing")
	}
	if out.Layout.Radius != 50 || len(out.Layout.Rings) != 2 || len(out.Layout.Nodes) != 2 {
		t.Errorf("layout = %+v", out.Layout)
	}
	if _, _, ok := out.Layout.Nodes[0].Position(); !ok {
		t.Error("exported node lost its position")
	}
}
