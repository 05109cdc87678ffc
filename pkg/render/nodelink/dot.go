package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/layout"
	"github.com/matzehuels/ringgraph/pkg/render"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
	"github.com/matzehuels/ringgraph/pkg/render/style"
)

// pointsPerInch converts canvas units to Graphviz inches.
const pointsPerInch = 72.0

// Options configures DOT export.
type Options struct {
	// Detailed adds the node id and tier below each label.
	Detailed bool
}

// ToDOT converts a computed radial layout to Graphviz DOT.
//
// Every node is pinned to its ring position (pos="x,y!") with the y axis
// flipped, since Graphviz measures y upward. Rendering with neato therefore
// reproduces the radial picture instead of recomputing a layout. Styles go
// through the same override chain as the draw tree, and edges with unknown
// endpoints are skipped.
func ToDOT(l layout.Layout, edges []graph.Edge, gopts graph.Options, opts Options) string {
	r := style.NewResolver(gopts)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", num(l.FrameWidth), num(l.FrameHeight))
	fmt.Fprintf(&buf, "  node [fixedsize=true, style=filled, fontsize=%s];\n", num(draw.LabelFontSize))
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(n.ID), strings.Join(nodeAttrs(n, r.Node(n), l.FrameHeight, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for i, e := range edges {
		if _, _, ok := l.Index.Endpoints(e); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", nodeName(e.From), nodeName(e.To), strings.Join(edgeAttrs(i, e, r.Edge(e)), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id int) string { return strconv.Quote("n" + strconv.Itoa(id)) }

func nodeAttrs(n graph.Node, s style.Node, height float64, detailed bool) []string {
	x, y, _ := n.Position()

	shape, size := "circle", 2*draw.NodeRadius
	if s.Shape == graph.ShapeSquare {
		shape, size = "square", draw.NodeSide
	}

	attrs := []string{
		fmt.Sprintf("id=%q", fmt.Sprintf("node-%d", n.ID)),
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("pos=\"%s,%s!\"", num(x), num(height-y)),
		"shape=" + shape,
		fmt.Sprintf("width=%s", num(size/pointsPerInch)),
		fmt.Sprintf("color=%q", s.LineColor),
		fmt.Sprintf("penwidth=%s", num(s.LineWidth)),
		fmt.Sprintf("fillcolor=%q", s.FillColor),
	}
	if n.Title != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", n.Title))
	}
	if n.Clickable() {
		attrs = append(attrs, fmt.Sprintf("class=%q", "action"))
	}
	return attrs
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nid: %d\ntier: %s", n.Label, n.ID, num(n.TierOr(layout.DefaultTier)))
}

func edgeAttrs(i int, e graph.Edge, s style.Edge) []string {
	attrs := []string{
		fmt.Sprintf("id=%q", fmt.Sprintf("edge-%d", i)),
		fmt.Sprintf("color=%q", s.LineColor),
		fmt.Sprintf("penwidth=%s", num(s.LineWidth)),
	}
	if e.Title != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", e.Title))
	}
	if e.Clickable() {
		attrs = append(attrs, fmt.Sprintf("class=%q", "action"))
	}
	return attrs
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// RenderSVG renders DOT produced by [ToDOT] to SVG using Graphviz neato,
// which honors the pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders DOT as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders DOT as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
