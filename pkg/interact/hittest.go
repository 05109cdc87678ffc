package interact

import (
	"math"

	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// Line hits are widened to this many units on each side so thin edges
// stay clickable.
const lineTolerance = 3.0

// Approximate glyph box of a label character, relative to font size.
const (
	charWidthRatio  = 0.6
	charHeightRatio = 1.0
)

// Target is an interactive element of a draw tree.
type Target struct {
	ID      string    // Element id ("node-3", "edge-0")
	Kind    draw.Kind // Kind of the element carrying the action
	Action  string    // Click handle
	Tooltip string
}

// Targets lists the click targets of c in draw order.
func Targets(c draw.Canvas) []Target {
	var out []Target
	c.Walk(func(e draw.Element, _ *draw.Element) {
		if e.Interactive() {
			out = append(out, Target{ID: e.ID, Kind: e.Kind, Action: e.Action, Tooltip: tooltipOf(e)})
		}
	})
	return out
}

// HitTest returns the click target under (x, y).
//
// Only the topmost element at the point counts, as in a browser: a node
// drawn over an edge captures the click even when the node itself has no
// action. ok is false when nothing interactive is on top.
func HitTest(c draw.Canvas, x, y float64) (Target, bool) {
	for i := len(c.Elements) - 1; i >= 0; i-- {
		e := c.Elements[i]
		hit, ok := hitElement(e, x, y)
		if !ok {
			continue
		}
		if hit.Interactive() {
			return Target{ID: hit.ID, Kind: hit.Kind, Action: hit.Action, Tooltip: tooltipOf(hit)}, true
		}
		return Target{}, false
	}
	return Target{}, false
}

// hitElement returns the element that owns a hit at (x, y). For groups
// that is an interactive child if one was hit, else the group itself, which
// carries the action for its glyph and label.
func hitElement(e draw.Element, x, y float64) (draw.Element, bool) {
	if e.Kind != draw.KindGroup {
		return e, contains(e, x, y)
	}
	for i := len(e.Children) - 1; i >= 0; i-- {
		child, ok := hitElement(e.Children[i], x, y)
		if !ok {
			continue
		}
		if child.Interactive() {
			return child, true
		}
		return e, true
	}
	return draw.Element{}, false
}

func contains(e draw.Element, x, y float64) bool {
	switch e.Kind {
	case draw.KindCircle:
		return math.Hypot(x-e.CX, y-e.CY) <= e.R+e.StrokeWidth/2
	case draw.KindRect:
		pad := e.StrokeWidth / 2
		return x >= e.X-pad && x <= e.X+e.W+pad && y >= e.Y-pad && y <= e.Y+e.H+pad
	case draw.KindLine:
		return segmentDistance(x, y, e.X1, e.Y1, e.X2, e.Y2) <= math.Max(e.StrokeWidth/2, lineTolerance)
	case draw.KindText:
		w := float64(len([]rune(e.Text))) * e.FontSize * charWidthRatio
		h := e.FontSize * charHeightRatio
		return math.Abs(x-e.X) <= w/2 && math.Abs(y-e.Y) <= h/2
	}
	return false
}

func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

func tooltipOf(e draw.Element) string {
	if e.Tooltip != "" {
		return e.Tooltip
	}
	for _, c := range e.Children {
		if c.Tooltip != "" {
			return c.Tooltip
		}
	}
	return ""
}
