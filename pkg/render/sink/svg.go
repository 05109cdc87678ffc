package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

const actionCSS = `
    .action { cursor: pointer; }
    .action:hover circle, .action:hover rect, line.action:hover { stroke-opacity: 0.7; }`

// actionJS re-dispatches clicks on click targets as a bubbling
// "ringgraph:action" event whose detail carries the action handle.
const actionJS = `
    document.querySelectorAll('[data-action]').forEach(el => {
      el.addEventListener('click', ev => {
        ev.stopPropagation();
        el.dispatchEvent(new CustomEvent('ringgraph:action', {
          bubbles: true,
          detail: { action: el.dataset.action, id: el.id }
        }));
      });
    });`

// SVGOption configures SVG output.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	script     bool
	fontFamily string
}

// WithActionScript embeds a script that turns clicks on click targets into
// "ringgraph:action" DOM events. Without it, click targets are marked with
// data-action attributes and a pointer cursor only.
func WithActionScript() SVGOption { return func(r *svgRenderer) { r.script = true } }

// WithFontFamily sets the label font family.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// RenderSVG serializes a draw tree as a standalone SVG document.
// Elements are written in draw-tree order, so edges end up below nodes.
func RenderSVG(c draw.Canvas, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" style="border: %s">`+"\n",
		num(c.Width), num(c.Height), num(c.Width), num(c.Height), escape(c.Border))
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", actionCSS)

	for _, e := range c.Elements {
		r.element(&buf, e, "  ")
	}

	if r.script {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", actionJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) element(buf *bytes.Buffer, e draw.Element, indent string) {
	switch e.Kind {
	case draw.KindLine:
		fmt.Fprintf(buf, `%s<line%s x1="%s" y1="%s" x2="%s" y2="%s"%s%s`,
			indent, idAttr(e), num(e.X1), num(e.Y1), num(e.X2), num(e.Y2), paint(e), actionAttrs(e))
		closeWithTitle(buf, "line", e.Tooltip)
	case draw.KindCircle:
		fmt.Fprintf(buf, `%s<circle%s cx="%s" cy="%s" r="%s"%s%s`,
			indent, idAttr(e), num(e.CX), num(e.CY), num(e.R), paint(e), actionAttrs(e))
		closeWithTitle(buf, "circle", e.Tooltip)
	case draw.KindRect:
		fmt.Fprintf(buf, `%s<rect%s x="%s" y="%s" width="%s" height="%s"%s%s`,
			indent, idAttr(e), num(e.X), num(e.Y), num(e.W), num(e.H), paint(e), actionAttrs(e))
		closeWithTitle(buf, "rect", e.Tooltip)
	case draw.KindText:
		fmt.Fprintf(buf, `%s<text%s x="%s" y="%s" text-anchor="%s" dy="%s" font-size="%s" font-family="%s"%s>`,
			indent, idAttr(e), num(e.X), num(e.Y), escape(e.Anchor), escape(e.DY), num(e.FontSize), escape(r.fontFamily), actionAttrs(e))
		if e.Tooltip != "" {
			fmt.Fprintf(buf, "<title>%s</title>", escape(e.Tooltip))
		}
		fmt.Fprintf(buf, "%s</text>\n", escape(e.Text))
	case draw.KindGroup:
		fmt.Fprintf(buf, "%s<g%s%s>\n", indent, idAttr(e), actionAttrs(e))
		if e.Tooltip != "" {
			fmt.Fprintf(buf, "%s  <title>%s</title>\n", indent, escape(e.Tooltip))
		}
		for _, child := range e.Children {
			r.element(buf, child, indent+"  ")
		}
		fmt.Fprintf(buf, "%s</g>\n", indent)
	}
}

func closeWithTitle(buf *bytes.Buffer, tag, tooltip string) {
	if tooltip == "" {
		buf.WriteString("/>\n")
		return
	}
	fmt.Fprintf(buf, "><title>%s</title></%s>\n", escape(tooltip), tag)
}

func idAttr(e draw.Element) string {
	if e.ID == "" {
		return ""
	}
	return fmt.Sprintf(` id="%s"`, escape(e.ID))
}

func paint(e draw.Element) string {
	fill := e.Fill
	if fill == "" {
		fill = "none"
	}
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`, escape(fill), escape(e.Stroke), num(e.StrokeWidth))
}

func actionAttrs(e draw.Element) string {
	if !e.Interactive() {
		return ""
	}
	return fmt.Sprintf(` class="action" data-action="%s" style="cursor: pointer"`, escape(e.Action))
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
