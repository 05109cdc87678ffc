package layout

import (
	"fmt"

	"github.com/matzehuels/ringgraph/pkg/graph"
)

// Export converts a layout to its serialization format.
//
// Use this for JSON file output (via graph.WriteLayoutFile) and API
// responses. Node order is preserved, so the export is grouped by tier.
func (l Layout) Export() graph.Layout {
	out := graph.Layout{
		Width:   l.FrameWidth,
		Height:  l.FrameHeight,
		CenterX: l.CenterX,
		CenterY: l.CenterY,
		Radius:  l.Radius,
		Rings:   make([]graph.Ring, len(l.Rings)),
		Nodes:   make([]graph.Node, len(l.Nodes)),
	}
	for i, r := range l.Rings {
		out.Rings[i] = graph.Ring{Tier: r.Tier, Radius: r.Radius, Count: r.Count}
	}
	copy(out.Nodes, l.Nodes)
	return out
}

// Parse converts a serialized layout back into a Layout.
// Positions are taken as-is; nothing is recomputed.
func Parse(sl graph.Layout) (Layout, error) {
	l := Layout{
		FrameWidth:  sl.Width,
		FrameHeight: sl.Height,
		CenterX:     sl.CenterX,
		CenterY:     sl.CenterY,
		Radius:      sl.Radius,
		Margin:      DefaultMargin,
		TierScale:   DefaultTierScale,
		Nodes:       make([]graph.Node, len(sl.Nodes)),
		Rings:       make([]Ring, len(sl.Rings)),
	}
	for i, n := range sl.Nodes {
		if _, _, ok := n.Position(); !ok {
			return Layout{}, fmt.Errorf("node %d has no position", n.ID)
		}
		l.Nodes[i] = n
	}
	for i, r := range sl.Rings {
		l.Rings[i] = Ring{Tier: r.Tier, Radius: r.Radius, Count: r.Count}
	}
	l.Index = NewIndex(l.Nodes)
	return l, nil
}
