package layout

import (
	"math"

	"github.com/matzehuels/ringgraph/pkg/graph"
)

// Layout geometry defaults.
const (
	// DefaultTier is the ring used for nodes that carry no tier.
	DefaultTier = 3.0

	// DefaultTierScale normalizes tiers so that DefaultTier sits on the
	// base radius: tier 1 at 1/3, tier 2 at 2/3, tier 3 at 3/3.
	DefaultTierScale = 3.0

	// DefaultMargin is the inset between the outer ring and the canvas edge,
	// leaving room for glyphs and labels.
	DefaultMargin = 50.0
)

// Layout is a computed radial layout.
//
// Nodes holds positioned copies of the input nodes, grouped by tier in the
// order tiers were first seen. Within a group the input order is kept.
// Index resolves ids to positioned nodes for edge drawing.
type Layout struct {
	FrameWidth  float64
	FrameHeight float64
	CenterX     float64
	CenterY     float64
	Radius      float64 // Base radius; may be <= 0 on tiny canvases
	Margin      float64
	TierScale   float64

	Nodes []graph.Node
	Index Index
	Rings []Ring
}

// Ring describes one tier group.
type Ring struct {
	Tier   float64
	Radius float64
	Count  int
}

// Option configures layout computation.
type Option func(*config)

type config struct {
	margin      float64
	tierScale   float64
	defaultTier float64
}

// WithMargin overrides the inset between the outer ring and the canvas edge.
func WithMargin(m float64) Option { return func(c *config) { c.margin = m } }

// WithTierScale overrides the tier normalization constant.
// Non-positive values are ignored.
func WithTierScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.tierScale = s
		}
	}
}

// WithDefaultTier overrides the tier assumed for nodes without one.
func WithDefaultTier(t float64) Option { return func(c *config) { c.defaultTier = t } }

// Build positions nodes on concentric rings inside a width x height frame.
//
// The base radius is min(width, height)/2 - margin. A node on tier t lies on
// a ring of radius base*t/tierScale; the i-th of n nodes on a ring is placed
// at angle -pi/2 + 2*pi*i/n, so every ring starts at 12 o'clock and proceeds
// clockwise in screen coordinates.
//
// Tiers are not validated or clamped: negative, fractional and large tiers
// all go through the same formula. A non-positive base radius produces
// overlapping but finite positions. Build never modifies nodes; it returns
// copies with X and Y set.
func Build(nodes []graph.Node, width, height float64, opts ...Option) Layout {
	cfg := config{
		margin:      DefaultMargin,
		tierScale:   DefaultTierScale,
		defaultTier: DefaultTier,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := Layout{
		FrameWidth:  width,
		FrameHeight: height,
		CenterX:     width / 2,
		CenterY:     height / 2,
		Radius:      math.Min(width, height)/2 - cfg.margin,
		Margin:      cfg.margin,
		TierScale:   cfg.tierScale,
	}

	groups := groupByTier(nodes, cfg.defaultTier)

	l.Nodes = make([]graph.Node, 0, len(nodes))
	l.Rings = make([]Ring, 0, len(groups))
	for _, grp := range groups {
		ringRadius := l.Radius * (grp.tier / cfg.tierScale)
		l.Rings = append(l.Rings, Ring{Tier: grp.tier, Radius: ringRadius, Count: len(grp.members)})

		for i, idx := range grp.members {
			angle := Angle(i, len(grp.members))
			x := l.CenterX + ringRadius*math.Cos(angle)
			y := l.CenterY + ringRadius*math.Sin(angle)

			positioned := nodes[idx]
			positioned.X = &x
			positioned.Y = &y
			l.Nodes = append(l.Nodes, positioned)
		}
	}

	l.Index = NewIndex(l.Nodes)
	return l
}

// Angle returns the angle in radians of the i-th of n slots on a ring.
func Angle(i, n int) float64 {
	return -math.Pi/2 + (float64(i)/float64(n))*2*math.Pi
}

type tierGroup struct {
	tier    float64
	members []int // indices into the input slice, in input order
}

// groupByTier is a stable partition keyed by tier, with groups ordered by
// first appearance.
func groupByTier(nodes []graph.Node, defaultTier float64) []tierGroup {
	var groups []tierGroup
	pos := make(map[float64]int)
	for i := range nodes {
		t := nodes[i].TierOr(defaultTier)
		g, ok := pos[t]
		if !ok {
			g = len(groups)
			pos[t] = g
			groups = append(groups, tierGroup{tier: t})
		}
		groups[g].members = append(groups[g].members, i)
	}
	return groups
}
