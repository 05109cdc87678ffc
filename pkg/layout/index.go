package layout

import "github.com/matzehuels/ringgraph/pkg/graph"

// Index maps node ids to positioned nodes.
// It is built once per layout and only read afterwards.
type Index map[int]graph.Node

// NewIndex indexes nodes by id. When ids repeat, the last node wins.
func NewIndex(nodes []graph.Node) Index {
	ix := make(Index, len(nodes))
	for _, n := range nodes {
		ix[n.ID] = n
	}
	return ix
}

// Lookup returns the positioned node for id.
func (ix Index) Lookup(id int) (graph.Node, bool) {
	n, ok := ix[id]
	return n, ok
}

// Endpoints resolves both ends of an edge. ok is false when either id is
// unknown, in which case the edge must not be drawn.
func (ix Index) Endpoints(e graph.Edge) (from, to graph.Node, ok bool) {
	from, okFrom := ix[e.From]
	to, okTo := ix[e.To]
	return from, to, okFrom && okTo
}
