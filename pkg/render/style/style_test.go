package style

import (
	"testing"

	"github.com/matzehuels/ringgraph/pkg/graph"
)

func TestNodeDefaults(t *testing.T) {
	if got := NodeDefaults(nil); got != BuiltinNode {
		t.Errorf("NodeDefaults(nil) = %+v, want %+v", got, BuiltinNode)
	}

	got := NodeDefaults(&graph.NodeDefaults{FillColor: "#eee"})
	want := Node{Shape: graph.ShapeCircle, LineColor: "#000", LineWidth: 1, FillColor: "#eee"}
	if got != want {
		t.Errorf("partial defaults = %+v, want %+v", got, want)
	}
}

func TestEdgeDefaults(t *testing.T) {
	if got := EdgeDefaults(nil); got != BuiltinEdge {
		t.Errorf("EdgeDefaults(nil) = %+v, want %+v", got, BuiltinEdge)
	}
	got := EdgeDefaults(&graph.EdgeDefaults{LineWidth: graph.Float(3)})
	if got.LineWidth != 3 || got.LineColor != "#000" {
		t.Errorf("EdgeDefaults() = %+v", got)
	}
}

func TestResolveNodeChain(t *testing.T) {
	defaults := &graph.NodeDefaults{Shape: graph.ShapeSquare, LineColor: "navy"}

	tests := []struct {
		name string
		node graph.Node
		opts *graph.NodeDefaults
		want Node
	}{
		{
			name: "all built-in",
			node: graph.Node{ID: 1},
			want: BuiltinNode,
		},
		{
			name: "fill only inherits built-in rest",
			node: graph.Node{ID: 1, FillColor: "gold"},
			want: Node{Shape: graph.ShapeCircle, LineColor: "#000", LineWidth: 1, FillColor: "gold"},
		},
		{
			name: "fill only inherits caller defaults",
			node: graph.Node{ID: 1, FillColor: "gold"},
			opts: defaults,
			want: Node{Shape: graph.ShapeSquare, LineColor: "navy", LineWidth: 1, FillColor: "gold"},
		},
		{
			name: "element wins over caller default",
			node: graph.Node{ID: 1, Shape: graph.ShapeCircle, LineWidth: graph.Float(4)},
			opts: defaults,
			want: Node{Shape: graph.ShapeCircle, LineColor: "navy", LineWidth: 4, FillColor: "#fff"},
		},
		{
			name: "explicit zero width is kept",
			node: graph.Node{ID: 1, LineWidth: graph.Float(0)},
			want: Node{Shape: graph.ShapeCircle, LineColor: "#000", LineWidth: 0, FillColor: "#fff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(graph.Options{Height: "100", DefaultNode: tt.opts})
			if got := r.Node(tt.node); got != tt.want {
				t.Errorf("Node() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveEdgeChain(t *testing.T) {
	r := NewResolver(graph.Options{DefaultEdge: &graph.EdgeDefaults{LineColor: "#999"}})

	if got := r.Edge(graph.Edge{}); got != (Edge{LineColor: "#999", LineWidth: 1}) {
		t.Errorf("Edge() = %+v", got)
	}
	if got := r.Edge(graph.Edge{LineColor: "red", LineWidth: graph.Float(2)}); got != (Edge{LineColor: "red", LineWidth: 2}) {
		t.Errorf("Edge() = %+v", got)
	}
}
