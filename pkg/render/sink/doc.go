// Package sink serializes draw trees into output formats.
//
// A "sink" takes a [draw.Canvas] and produces bytes:
//
//   - SVG: standalone document with tooltips and click targets
//   - JSON: the draw tree itself, optionally with the layout
//   - PDF and PNG: SVG converted by rsvg-convert
//
// # SVG Output
//
// [RenderSVG] writes elements in draw-tree order. The canvas border becomes
// an inline style on the root element. Tooltips become <title> children.
// Click targets get class="action", a pointer cursor and a data-action
// attribute holding the handle:
//
//	svg := sink.RenderSVG(canvas, sink.WithActionScript())
//
// With [WithActionScript] an embedded script re-dispatches clicks as a
// bubbling "ringgraph:action" CustomEvent with detail {action, id}, so an
// embedding page can route handles without knowing the markup.
//
// # PDF and PNG Output
//
//	pdf, err := sink.RenderPDF(canvas)
//	png, err := sink.RenderPNG(canvas, sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [draw.Canvas]: github.com/matzehuels/ringgraph/pkg/render/draw.Canvas
package sink
