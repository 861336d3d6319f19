package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// SVG canvas padding around the diagram's bounding box.
const svgPadding = 40.0

// SVG renders a laid-out diagram as a standalone SVG document.
// Node positions and edge handles must already be assigned; nodes
// without explicit sizes get nothing drawn for their box interior but
// still anchor their edges.
func SVG(d diagram.Diagram) []byte {
	minX, minY, maxX, maxY := bounds(d.Nodes)

	width := maxX - minX + 2*svgPadding
	height := maxY - minY + 2*svgPadding
	// Shift everything so the top-left node lands at the padding offset.
	dx := svgPadding - minX
	dy := svgPadding - minY

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(svgDefs)

	for _, e := range d.Edges {
		writeEdge(&buf, d, e, dx, dy)
	}
	for _, n := range d.Nodes {
		writeNode(&buf, n, dx, dy)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// svgDefs declares the arrowhead marker shared by all connectors.
const svgDefs = `  <defs>
    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="#444"/>
    </marker>
  </defs>
`

func bounds(nodes []diagram.Node) (minX, minY, maxX, maxY float64) {
	if len(nodes) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = nodes[0].X, nodes[0].Y
	maxX, maxY = nodes[0].X+nodes[0].Width, nodes[0].Y+nodes[0].Height
	for _, n := range nodes[1:] {
		minX = min(minX, n.X)
		minY = min(minY, n.Y)
		maxX = max(maxX, n.X+n.Width)
		maxY = max(maxY, n.Y+n.Height)
	}
	return minX, minY, maxX, maxY
}

func writeNode(buf *bytes.Buffer, n diagram.Node, dx, dy float64) {
	x, y := n.X+dx, n.Y+dy
	fill, stroke := nodeColors(n.Type)

	switch n.Type {
	case diagram.TypeDecision:
		// Diamond spanning the node box.
		cx, cy := x+n.Width/2, y+n.Height/2
		fmt.Fprintf(buf,
			`  <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			cx, y, x+n.Width, cy, cx, y+n.Height, x, cy, fill, stroke)
	case diagram.TypeStart, diagram.TypeEnd:
		fmt.Fprintf(buf,
			`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			x, y, n.Width, n.Height, n.Height/2, fill, stroke)
	default:
		fmt.Fprintf(buf,
			`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			x, y, n.Width, n.Height, fill, stroke)
	}

	if n.Label != "" {
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="14">%s</text>`+"\n",
			x+n.Width/2, y+n.Height/2, escapeXML(n.Label))
	}
}

func nodeColors(typ string) (fill, stroke string) {
	switch typ {
	case diagram.TypeStart:
		return "#e8f5e9", "#2e7d32"
	case diagram.TypeEnd:
		return "#ffebee", "#c62828"
	case diagram.TypeDecision:
		return "#fff8e1", "#f9a825"
	case diagram.TypeIO:
		return "#e3f2fd", "#1565c0"
	default:
		return "#ffffff", "#555555"
	}
}

func writeEdge(buf *bytes.Buffer, d diagram.Diagram, e diagram.Edge, dx, dy float64) {
	src := d.Node(e.Source)
	dst := d.Node(e.Target)
	if src == nil || dst == nil {
		return
	}

	var pts []point
	if e.Loop {
		pts = loopPath(*src, e, dx, dy)
	} else {
		pts = connectorPath(*src, *dst, e, dx, dy)
	}
	if len(pts) < 2 {
		return
	}

	var path bytes.Buffer
	fmt.Fprintf(&path, "M %.1f %.1f", pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		fmt.Fprintf(&path, " L %.1f %.1f", p.x, p.y)
	}
	fmt.Fprintf(buf,
		`  <path d="%s" fill="none" stroke="#444" stroke-width="1.5" marker-end="url(#arrow)"/>`+"\n",
		path.String())

	if e.Label != "" {
		mid := pts[len(pts)/2]
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#666">%s</text>`+"\n",
			mid.x, mid.y-4, escapeXML(e.Label))
	}
}

type point struct{ x, y float64 }

// handlePoint resolves an edge anchor to canvas coordinates.
func handlePoint(n diagram.Node, h diagram.Handle, dx, dy float64) point {
	x, y := h.Offset(n.X+dx, n.Y+dy, n.Width, n.Height)
	return point{x, y}
}

// connectorPath routes an orthogonal polyline between two handles.
// Same-axis handle pairs (right to left, bottom to top) bend once at the
// midpoint; same-side pairs (bottom to bottom) detour outside the nodes.
func connectorPath(src, dst diagram.Node, e diagram.Edge, dx, dy float64) []point {
	const detour = 30.0

	a := handlePoint(src, e.SourceHandle, dx, dy)
	b := handlePoint(dst, e.TargetHandle, dx, dy)

	switch {
	case e.SourceHandle == diagram.HandleRight && e.TargetHandle == diagram.HandleLeft,
		e.SourceHandle == diagram.HandleLeft && e.TargetHandle == diagram.HandleRight:
		midX := (a.x + b.x) / 2
		return []point{a, {midX, a.y}, {midX, b.y}, b}

	case e.SourceHandle == diagram.HandleBottom && e.TargetHandle == diagram.HandleTop,
		e.SourceHandle == diagram.HandleTop && e.TargetHandle == diagram.HandleBottom:
		midY := (a.y + b.y) / 2
		return []point{a, {a.x, midY}, {b.x, midY}, b}

	case e.SourceHandle == diagram.HandleBottom && e.TargetHandle == diagram.HandleBottom:
		lane := max(a.y, b.y) + detour
		return []point{a, {a.x, lane}, {b.x, lane}, b}

	case e.SourceHandle == diagram.HandleRight && e.TargetHandle == diagram.HandleRight:
		lane := max(a.x, b.x) + detour
		return []point{a, {lane, a.y}, {lane, b.y}, b}

	default:
		// Mixed-axis pair: single bend at the corner.
		if e.SourceHandle == diagram.HandleRight || e.SourceHandle == diagram.HandleLeft {
			return []point{a, {b.x, a.y}, b}
		}
		return []point{a, {a.x, b.y}, b}
	}
}

// loopPath draws a self-loop leaving the right side and re-entering the top.
func loopPath(n diagram.Node, e diagram.Edge, dx, dy float64) []point {
	const stub = 24.0

	a := handlePoint(n, e.SourceHandle, dx, dy)
	b := handlePoint(n, e.TargetHandle, dx, dy)
	return []point{
		a,
		{a.x + stub, a.y},
		{a.x + stub, b.y - stub},
		{b.x, b.y - stub},
		b,
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
