// Package layout computes the tier-based radial layout.
//
// # Overview
//
// Nodes are placed on concentric rings around the frame center. The ring is
// chosen by the node's tier and the slot on the ring by the node's position
// among the other nodes of the same tier:
//
//	radius = min(width, height)/2 - margin           (margin = 50)
//	ring   = radius * tier / 3                       (tier defaults to 3)
//	angle  = -pi/2 + 2*pi * i/n                      (i-th of n on the ring)
//	x, y   = cx + ring*cos(angle), cy + ring*sin(angle)
//
// The first node of every ring sits at 12 o'clock and the rest follow
// clockwise at equal spacing. Layout is deterministic and has no memory:
// the same input always yields the same positions.
//
// # Usage
//
//	l := layout.Build(g.Nodes, 400, 400)
//	for _, n := range l.Nodes {
//	    x, y, _ := n.Position()
//	    fmt.Println(n.ID, x, y)
//	}
//	from, to, ok := l.Index.Endpoints(edge)
//
// # Ordering
//
// [Layout.Nodes] is grouped by tier, groups in order of first appearance.
// It is not the input order. Use [Layout.Index] to find a node by id.
//
// # Boundary Conditions
//
// Tiers are not validated. Tier 6 lands at twice the base radius, negative
// tiers mirror through the center, and nodes on different rings may
// coincide. Frames smaller than twice the margin give a non-positive base
// radius; the result is degenerate but finite.
package layout
