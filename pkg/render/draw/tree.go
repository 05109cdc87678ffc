package draw

// Kind identifies a drawing primitive.
type Kind string

// Primitive kinds.
const (
	KindLine   Kind = "line"
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindText   Kind = "text"
	KindGroup  Kind = "group"
)

// Glyph and label constants.
const (
	NodeRadius    = 20.0 // circle glyph radius
	NodeSide      = 40.0 // square glyph side
	LabelFontSize = 12.0
	LabelDY       = ".3em" // vertical centering offset for labels
	CanvasBorder  = "1px solid #ddd"
)

// Canvas is the root of a draw tree: a fixed-size surface holding edges
// first and node groups after them.
type Canvas struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Border   string    `json:"border"`
	Elements []Element `json:"elements"`
}

// Element is one drawing instruction. Kind selects which geometry fields
// apply; the others stay zero and are omitted from JSON.
//
//	line:   X1, Y1, X2, Y2
//	circle: CX, CY, R
//	rect:   X, Y, W, H
//	text:   X, Y, Text, Anchor, DY, FontSize
//	group:  Children
type Element struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	W float64 `json:"width,omitempty"`
	H float64 `json:"height,omitempty"`

	Text     string  `json:"text,omitempty"`
	Anchor   string  `json:"anchor,omitempty"`
	DY       string  `json:"dy,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`

	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width"`

	// Tooltip is shown on hover; empty means none.
	Tooltip string `json:"tooltip,omitempty"`
	// Action is the click handle. A non-empty Action marks a click target
	// that should show a pointer affordance.
	Action string `json:"action,omitempty"`

	Children []Element `json:"children,omitempty"`
}

// Interactive reports whether the element is a click target.
func (e Element) Interactive() bool { return e.Action != "" }

// Walk visits elements depth-first in draw order.
func (c Canvas) Walk(fn func(e Element, parent *Element)) {
	for i := range c.Elements {
		walk(c.Elements[i], nil, fn)
	}
}

func walk(e Element, parent *Element, fn func(Element, *Element)) {
	fn(e, parent)
	for _, child := range e.Children {
		walk(child, &e, fn)
	}
}
