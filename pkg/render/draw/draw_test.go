package draw

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
)

func sampleGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: 1, Label: "core", Tier: graph.Float(1), Title: "the core"},
			{ID: 2, Label: "api", Tier: graph.Float(2), Shape: graph.ShapeSquare, OnClick: "open-api"},
			{ID: 3, Label: "web"},
		},
		Edges: []graph.Edge{
			{From: 1, To: 2, Title: "calls", OnClick: "edge-1-2"},
			{From: 2, To: 99},
			{From: 2, To: 3, LineColor: "red"},
		},
	}
}

func mustRender(t *testing.T, g graph.Graph, opts graph.Options) (Canvas, layout.Layout) {
	t.Helper()
	c, l, err := Render(g, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return c, l
}

func TestRenderCanvasSize(t *testing.T) {
	c, _ := mustRender(t, graph.Graph{}, graph.Options{Height: "200"})
	if c.Width != 200 || c.Height != 200 {
		t.Errorf("canvas = %vx%v, want 200x200", c.Width, c.Height)
	}
	if c.Border != CanvasBorder {
		t.Errorf("border = %q, want %q", c.Border, CanvasBorder)
	}

	c, _ = mustRender(t, graph.Graph{}, graph.Options{Height: "200", Width: "300"})
	if c.Width != 300 || c.Height != 200 {
		t.Errorf("canvas = %vx%v, want 300x200", c.Width, c.Height)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, _, err := Render(sampleGraph(), graph.Options{Height: "tall"}); err == nil {
		t.Error("Render() should fail for a non-numeric height")
	}
}

func TestBuildEdgesBeforeNodes(t *testing.T) {
	c, _ := mustRender(t, sampleGraph(), graph.Options{Height: "400"})

	var kinds []Kind
	for _, e := range c.Elements {
		kinds = append(kinds, e.Kind)
	}
	want := []Kind{KindLine, KindLine, KindGroup, KindGroup, KindGroup}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("element kinds = %v, want %v", kinds, want)
	}
}

func TestBuildDropsDanglingEdges(t *testing.T) {
	c, _ := mustRender(t, sampleGraph(), graph.Options{Height: "400"})

	var ids []string
	for _, e := range c.Elements {
		if e.Kind == KindLine {
			ids = append(ids, e.ID)
		}
	}
	// edge-1 (2 -> 99) is dropped; the others keep their input index.
	if want := []string{"edge-0", "edge-2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("edge ids = %v, want %v", ids, want)
	}
}

func TestBuildEdgeGeometryAndStyle(t *testing.T) {
	c, l := mustRender(t, sampleGraph(), graph.Options{
		Height:      "400",
		DefaultEdge: &graph.EdgeDefaults{LineWidth: graph.Float(2)},
	})

	from, _ := l.Index.Lookup(1)
	to, _ := l.Index.Lookup(2)
	fx, fy, _ := from.Position()
	tx, ty, _ := to.Position()

	line := c.Elements[0]
	if line.X1 != fx || line.Y1 != fy || line.X2 != tx || line.Y2 != ty {
		t.Errorf("line = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)", line.X1, line.Y1, line.X2, line.Y2, fx, fy, tx, ty)
	}
	if line.Stroke != "#000" || line.StrokeWidth != 2 {
		t.Errorf("line style = %q/%v, want #000/2", line.Stroke, line.StrokeWidth)
	}
	if line.Tooltip != "calls" || !line.Interactive() {
		t.Errorf("line tooltip/action = %q/%q", line.Tooltip, line.Action)
	}

	red := c.Elements[1]
	if red.Stroke != "red" || red.StrokeWidth != 2 || red.Interactive() {
		t.Errorf("second line = %+v", red)
	}
}

func TestBuildNodeGlyphs(t *testing.T) {
	c, l := mustRender(t, sampleGraph(), graph.Options{Height: "400"})

	groups := c.Elements[2:]
	for i, g := range groups {
		n := l.Nodes[i]
		x, y, _ := n.Position()
		if len(g.Children) != 2 {
			t.Fatalf("group %s has %d children, want 2", g.ID, len(g.Children))
		}
		glyph, label := g.Children[0], g.Children[1]

		switch glyph.Kind {
		case KindCircle:
			if glyph.CX != x || glyph.CY != y || glyph.R != NodeRadius {
				t.Errorf("%s circle = (%v,%v) r=%v", g.ID, glyph.CX, glyph.CY, glyph.R)
			}
		case KindRect:
			if glyph.X != x-20 || glyph.Y != y-20 || glyph.W != NodeSide || glyph.H != NodeSide {
				t.Errorf("%s rect = (%v,%v) %vx%v", g.ID, glyph.X, glyph.Y, glyph.W, glyph.H)
			}
		default:
			t.Errorf("%s glyph kind = %s", g.ID, glyph.Kind)
		}

		if label.Kind != KindText || label.Text != n.Label || label.X != x || label.Y != y {
			t.Errorf("%s label = %+v", g.ID, label)
		}
		if label.Anchor != "middle" || label.DY != LabelDY || label.FontSize != LabelFontSize {
			t.Errorf("%s label not centered: %+v", g.ID, label)
		}
		if glyph.Tooltip != n.Title || label.Tooltip != n.Title {
			t.Errorf("%s tooltips = %q/%q, want %q", g.ID, glyph.Tooltip, label.Tooltip, n.Title)
		}
		if g.Action != n.OnClick {
			t.Errorf("%s action = %q, want %q", g.ID, g.Action, n.OnClick)
		}
	}

	if groups[1].Children[0].Kind != KindRect {
		t.Errorf("api glyph = %s, want rect", groups[1].Children[0].Kind)
	}
}

func TestBuildNodeStyleChain(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: 1, Label: "x", FillColor: "gold"}}}
	opts := graph.Options{
		Height:      "200",
		DefaultNode: &graph.NodeDefaults{Shape: graph.ShapeSquare, LineColor: "navy", LineWidth: graph.Float(3)},
	}
	c, _ := mustRender(t, g, opts)

	glyph := c.Elements[0].Children[0]
	if glyph.Kind != KindRect || glyph.Stroke != "navy" || glyph.StrokeWidth != 3 || glyph.Fill != "gold" {
		t.Errorf("glyph = %+v, want navy/3 square filled gold", glyph)
	}
}

func TestRenderScenarioHeight200(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: 1, Label: "solo"}}}
	c, l := mustRender(t, g, graph.Options{Height: "200"})

	if l.CenterX != 100 || l.CenterY != 100 || l.Radius != 50 {
		t.Errorf("geometry = center (%v,%v) radius %v, want (100,100) 50", l.CenterX, l.CenterY, l.Radius)
	}
	circle := c.Elements[0].Children[0]
	if math.Abs(circle.CX-100) > 1e-9 || math.Abs(circle.CY-50) > 1e-9 {
		t.Errorf("solo node at (%v, %v), want (100, 50)", circle.CX, circle.CY)
	}
}

func TestRenderIdempotent(t *testing.T) {
	opts := graph.Options{Height: "300", Width: "500"}
	a, _ := mustRender(t, sampleGraph(), opts)
	b, _ := mustRender(t, sampleGraph(), opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different draw trees")
	}
}

func TestRenderDoesNotMutateGraph(t *testing.T) {
	g := sampleGraph()
	before, _ := json.Marshal(g)
	mustRender(t, g, graph.Options{Height: "300"})
	after, _ := json.Marshal(g)
	if string(before) != string(after) {
		t.Error("Render mutated the input graph")
	}
}

func TestCanvasJSONRoundTrip(t *testing.T) {
	c, _ := mustRender(t, sampleGraph(), graph.Options{Height: "300"})
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back Canvas
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(c, back) {
		t.Error("draw tree did not survive a JSON round trip")
	}
}

func TestWalk(t *testing.T) {
	c, _ := mustRender(t, sampleGraph(), graph.Options{Height: "300"})

	var total, nested int
	c.Walk(func(e Element, parent *Element) {
		total++
		if parent != nil {
			nested++
			if parent.Kind != KindGroup {
				t.Errorf("parent kind = %s, want group", parent.Kind)
			}
		}
	})
	// 2 lines + 3 groups + 6 children
	if total != 11 || nested != 6 {
		t.Errorf("Walk visited %d elements (%d nested), want 11 (6)", total, nested)
	}
}
