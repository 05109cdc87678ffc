package graph

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
)

func TestReadGraph(t *testing.T) {
	input := `{
	  "nodes": [
	    {"id": 1, "label": "core", "tier": 1, "fill_color": "#eef"},
	    {"id": 2, "label": "api", "title": "public", "shape_type": "square", "on_click": "open-api"}
	  ],
	  "edges": [{"from": 1, "to": 2, "line_width": 2.5}]
	}`

	g, err := ReadGraph(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGraph() error: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 2, 1", len(g.Nodes), len(g.Edges))
	}

	core := g.Nodes[0]
	if core.TierOr(3) != 1 {
		t.Errorf("core tier = %v, want 1", core.TierOr(3))
	}
	if core.FillColor != "#eef" {
		t.Errorf("core fill = %q, want #eef", core.FillColor)
	}
	if core.Clickable() {
		t.Error("core should not be clickable")
	}

	api := g.Nodes[1]
	if api.Tier != nil {
		t.Errorf("api tier = %v, want nil", *api.Tier)
	}
	if api.TierOr(3) != 3 {
		t.Errorf("api TierOr(3) = %v, want 3", api.TierOr(3))
	}
	if api.Shape != ShapeSquare {
		t.Errorf("api shape = %q, want square", api.Shape)
	}
	if !api.Clickable() || api.OnClick != "open-api" {
		t.Errorf("api on_click = %q, want open-api", api.OnClick)
	}
	if _, _, ok := api.Position(); ok {
		t.Error("unpositioned node reports a position")
	}

	if w := g.Edges[0].LineWidth; w == nil || *w != 2.5 {
		t.Errorf("edge line_width = %v, want 2.5", w)
	}
}

func TestReadGraphMalformed(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader(`{"nodes": [`)); err == nil {
		t.Error("ReadGraph() should fail on truncated JSON")
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: 1, Label: "a", Tier: Float(2)},
			{ID: 2, Label: "b", LineWidth: Float(3)},
		},
		Edges: []Edge{{From: 1, To: 2, Title: "a to b"}},
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile() error: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error: %v", err)
	}
	if got.Nodes[0].TierOr(0) != 2 || *got.Nodes[1].LineWidth != 3 || got.Edges[0].Title != "a to b" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadGraphFile() error = %v, want not-exist", err)
	}
}

func TestMarshalGraphOmitsUnsetFields(t *testing.T) {
	data, err := MarshalGraph(Graph{Nodes: []Node{{ID: 7, Label: "x"}}})
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}
	for _, field := range []string{"tier", "shape_type", "line_width", "on_click", `"x":`} {
		if bytes.Contains(data, []byte(field)) {
			t.Errorf("output contains unset field %q:\n%s", field, data)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		graph    Graph
		wantCode errs.Code
	}{
		{
			name:  "valid",
			graph: Graph{Nodes: []Node{{ID: 1}, {ID: 2, Shape: ShapeCircle}}, Edges: []Edge{{From: 1, To: 99}}},
		},
		{
			name:     "duplicate id",
			graph:    Graph{Nodes: []Node{{ID: 1}, {ID: 1}}},
			wantCode: errs.ErrCodeInvalidGraph,
		},
		{
			name:     "unknown shape",
			graph:    Graph{Nodes: []Node{{ID: 1, Shape: "hexagon"}}},
			wantCode: errs.ErrCodeInvalidShape,
		},
		{
			name:     "unsafe color",
			graph:    Graph{Nodes: []Node{{ID: 1, FillColor: `red"/><script>`}}},
			wantCode: errs.ErrCodeInvalidInput,
		},
		{
			name:     "negative edge width",
			graph:    Graph{Edges: []Edge{{From: 1, To: 2, LineWidth: Float(-1)}}},
			wantCode: errs.ErrCodeInvalidInput,
		},
		{
			name:     "NaN tier",
			graph:    Graph{Nodes: []Node{{ID: 1, Tier: Float(math.NaN())}}},
			wantCode: errs.ErrCodeInvalidInput,
		},
		{
			name:     "infinite tier",
			graph:    Graph{Nodes: []Node{{ID: 1, Tier: Float(math.Inf(-1))}}},
			wantCode: errs.ErrCodeInvalidInput,
		},
		{
			name:  "negative and fractional tiers are allowed",
			graph: Graph{Nodes: []Node{{ID: 1, Tier: Float(-1)}, {ID: 2, Tier: Float(1.5)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.Validate()
			if got := errs.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestOptionsSize(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		wantW, wantH float64
		wantErr      bool
	}{
		{name: "height only is square", opts: Options{Height: "200"}, wantW: 200, wantH: 200},
		{name: "explicit width", opts: Options{Height: "300", Width: "600"}, wantW: 600, wantH: 300},
		{name: "px suffix", opts: Options{Height: "120px"}, wantW: 120, wantH: 120},
		{name: "missing height", opts: Options{Width: "100"}, wantErr: true},
		{name: "bad width", opts: Options{Height: "100", Width: "wide"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := tt.opts.Size()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Size() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errs.Is(err, errs.ErrCodeInvalidDimension) {
					t.Errorf("Size() code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidDimension)
				}
				return
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	ok := Options{
		Height:      "200",
		DefaultNode: &NodeDefaults{Shape: ShapeSquare, FillColor: "#ffd"},
		DefaultEdge: &EdgeDefaults{LineWidth: Float(2)},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := Options{Height: "200", DefaultNode: &NodeDefaults{Shape: "triangle"}}
	if err := bad.Validate(); !errs.Is(err, errs.ErrCodeInvalidShape) {
		t.Errorf("Validate() = %v, want %s", err, errs.ErrCodeInvalidShape)
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := Layout{
		Width: 200, Height: 200, CenterX: 100, CenterY: 100, Radius: 50,
		Rings: []Ring{{Tier: 3, Radius: 50, Count: 1}},
		Nodes: []Node{{ID: 1, Label: "a", X: Float(100), Y: Float(50)}},
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	x, y, ok := got.Nodes[0].Position()
	if !ok || x != 100 || y != 50 {
		t.Errorf("node position = (%v, %v, %v), want (100, 50, true)", x, y, ok)
	}
}

func TestUnmarshalLayoutRequiresPositions(t *testing.T) {
	_, err := UnmarshalLayout([]byte(`{"nodes": [{"id": 1, "label": "a"}]}`))
	if err == nil {
		t.Error("UnmarshalLayout() should reject unpositioned nodes")
	}
}
