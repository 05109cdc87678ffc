package draw

import (
	"fmt"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/render/style"
)

// Render lays out g and builds its draw tree in one call.
// The only possible error is an invalid canvas size in opts.
func Render(g graph.Graph, opts graph.Options, layoutOpts ...layout.Option) (Canvas, layout.Layout, error) {
	w, h, err := opts.Size()
	if err != nil {
		return Canvas{}, layout.Layout{}, err
	}
	l := layout.Build(g.Nodes, w, h, layoutOpts...)
	return Build(l, g.Edges, opts), l, nil
}

// Build turns a computed layout and an edge list into a draw tree.
//
// Edges are emitted before nodes so glyphs sit on top of the lines. Edges
// keep their input order and nodes keep layout order. An edge whose from or
// to id is not in the layout is skipped without error.
func Build(l layout.Layout, edges []graph.Edge, opts graph.Options) Canvas {
	r := style.NewResolver(opts)

	c := Canvas{
		Width:    l.FrameWidth,
		Height:   l.FrameHeight,
		Border:   CanvasBorder,
		Elements: make([]Element, 0, len(edges)+len(l.Nodes)),
	}

	for i, e := range edges {
		if el, ok := edgeElement(i, e, l.Index, r.Edge(e)); ok {
			c.Elements = append(c.Elements, el)
		}
	}
	for _, n := range l.Nodes {
		c.Elements = append(c.Elements, nodeElement(n, r.Node(n)))
	}
	return c
}

func edgeElement(i int, e graph.Edge, ix layout.Index, s style.Edge) (Element, bool) {
	from, to, ok := ix.Endpoints(e)
	if !ok {
		return Element{}, false
	}
	x1, y1, _ := from.Position()
	x2, y2, _ := to.Position()
	return Element{
		Kind:        KindLine,
		ID:          fmt.Sprintf("edge-%d", i),
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
		Stroke:      s.LineColor,
		StrokeWidth: s.LineWidth,
		Tooltip:     e.Title,
		Action:      e.OnClick,
	}, true
}

func nodeElement(n graph.Node, s style.Node) Element {
	x, y, _ := n.Position()

	glyph := Element{
		Fill:        s.FillColor,
		Stroke:      s.LineColor,
		StrokeWidth: s.LineWidth,
		Tooltip:     n.Title,
	}
	if s.Shape == graph.ShapeSquare {
		glyph.Kind = KindRect
		glyph.X, glyph.Y = x-NodeSide/2, y-NodeSide/2
		glyph.W, glyph.H = NodeSide, NodeSide
	} else {
		glyph.Kind = KindCircle
		glyph.CX, glyph.CY, glyph.R = x, y, NodeRadius
	}

	label := Element{
		Kind:     KindText,
		X:        x,
		Y:        y,
		Text:     n.Label,
		Anchor:   "middle",
		DY:       LabelDY,
		FontSize: LabelFontSize,
		Tooltip:  n.Title,
	}

	return Element{
		Kind:     KindGroup,
		ID:       fmt.Sprintf("node-%d", n.ID),
		Action:   n.OnClick,
		Children: []Element{glyph, label},
	}
}
