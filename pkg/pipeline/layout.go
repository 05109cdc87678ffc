package pipeline

import (
	"math"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
)

// GenerateLayout places nodes on tier rings inside the canvas described by
// opts. It fails on an invalid canvas size, or when a tier is so large that
// a position overflows to infinity and could not be drawn or serialized.
func GenerateLayout(nodes []graph.Node, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	l := layout.Build(nodes, opts.width, opts.height, opts.LayoutOptions()...)
	if err := checkFinite(l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

// checkFinite reports the first node whose position is NaN or infinite.
func checkFinite(l layout.Layout) error {
	for _, n := range l.Nodes {
		x, y, _ := n.Position()
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return errs.New(errs.ErrCodeInvalidInput,
				"node %d: tier %v places it outside the drawable plane", n.ID, n.TierOr(layout.DefaultTier))
		}
	}
	return nil
}

// LayoutFromData converts a serialized layout (as written by the json
// format or [graph.WriteLayoutFile]) back into a computed layout, so it can
// be rendered again without recomputing positions.
func LayoutFromData(data []byte) (layout.Layout, error) {
	exported, err := graph.UnmarshalLayout(data)
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Parse(exported)
}
