// Package style resolves the visual attributes of nodes and edges.
//
// Every attribute is resolved on its own through a three-level chain:
// the element's own value, then the caller-supplied default for that
// element kind, then the built-in default. A node that only sets
// FillColor keeps the default shape, outline color and outline width.
package style

import "github.com/matzehuels/ringgraph/pkg/graph"

// Node is a fully resolved node style.
type Node struct {
	Shape     graph.ShapeType
	LineColor string
	LineWidth float64
	FillColor string
}

// Edge is a fully resolved edge style.
type Edge struct {
	LineColor string
	LineWidth float64
}

// Built-in fallbacks, used when neither the element nor the caller sets a value.
var (
	BuiltinNode = Node{Shape: graph.ShapeCircle, LineColor: "#000", LineWidth: 1, FillColor: "#fff"}
	BuiltinEdge = Edge{LineColor: "#000", LineWidth: 1}
)

// NodeDefaults merges caller defaults over the built-in node style.
// A nil d yields BuiltinNode.
func NodeDefaults(d *graph.NodeDefaults) Node {
	s := BuiltinNode
	if d == nil {
		return s
	}
	s.Shape = pick(d.Shape, s.Shape)
	s.LineColor = pick(d.LineColor, s.LineColor)
	s.LineWidth = pickFloat(d.LineWidth, s.LineWidth)
	s.FillColor = pick(d.FillColor, s.FillColor)
	return s
}

// EdgeDefaults merges caller defaults over the built-in edge style.
func EdgeDefaults(d *graph.EdgeDefaults) Edge {
	s := BuiltinEdge
	if d == nil {
		return s
	}
	s.LineColor = pick(d.LineColor, s.LineColor)
	s.LineWidth = pickFloat(d.LineWidth, s.LineWidth)
	return s
}

// ResolveNode applies n's own attributes over base.
// base is normally the result of [NodeDefaults].
func ResolveNode(n graph.Node, base Node) Node {
	return Node{
		Shape:     pick(n.Shape, base.Shape),
		LineColor: pick(n.LineColor, base.LineColor),
		LineWidth: pickFloat(n.LineWidth, base.LineWidth),
		FillColor: pick(n.FillColor, base.FillColor),
	}
}

// ResolveEdge applies e's own attributes over base.
func ResolveEdge(e graph.Edge, base Edge) Edge {
	return Edge{
		LineColor: pick(e.LineColor, base.LineColor),
		LineWidth: pickFloat(e.LineWidth, base.LineWidth),
	}
}

// Resolver caches the merged defaults for one render.
type Resolver struct {
	node Node
	edge Edge
}

// NewResolver builds a resolver from render options.
func NewResolver(opts graph.Options) Resolver {
	return Resolver{node: NodeDefaults(opts.DefaultNode), edge: EdgeDefaults(opts.DefaultEdge)}
}

// Node resolves the style for n.
func (r Resolver) Node(n graph.Node) Node { return ResolveNode(n, r.node) }

// Edge resolves the style for e.
func (r Resolver) Edge(e graph.Edge) Edge { return ResolveEdge(e, r.edge) }

func pick[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func pickFloat(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
