package layout

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"trisolve/internal/triangle"
)

// Options controls SVG output.
type Options struct {
	Viewport  Viewport
	Precision int // decimals for side labels; angles always get one
	Title     string
}

const (
	arcRadius   = 22.0
	labelOffset = 14.0
)

// WriteSVG draws sol into w: the filled triangle, angle arcs, and a label for
// every side and angle.
func WriteSVG(w io.Writer, sol triangle.Solution, opts Options) error {
	vp := opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DefaultViewport()
	}
	v := vp.Fit(Place(sol.A, sol.B, sol.C))
	center := v.Centroid()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(vp.Width), num(vp.Height), num(vp.Width), num(vp.Height))
	if opts.Title != "" {
		fmt.Fprintf(&sb, "  <title>%s</title>\n", html.EscapeString(opts.Title))
	}
	sb.WriteString(`  <defs><linearGradient id="fill" x1="0" y1="1" x2="1" y2="0">` +
		`<stop offset="0" stop-color="#6c63ff" stop-opacity="0.12"/>` +
		`<stop offset="1" stop-color="#764ba2" stop-opacity="0.18"/></linearGradient></defs>` + "\n")
	fmt.Fprintf(&sb, `  <polygon points="%s,%s %s,%s %s,%s" fill="url(#fill)" stroke="#5a54d6" stroke-width="2.4" stroke-linejoin="round"/>`+"\n",
		num(v.A.X), num(v.A.Y), num(v.B.X), num(v.B.Y), num(v.C.X), num(v.C.Y))

	corners := []struct {
		at, p1, p2 Point
		name       string
		deg        float64
	}{
		{v.A, v.B, v.C, "α", sol.Alpha},
		{v.B, v.C, v.A, "β", sol.Beta},
		{v.C, v.A, v.B, "γ", sol.Gamma},
	}
	for _, c := range corners {
		sb.WriteString(arc(c.at, c.p1, c.p2))
		pos := toward(c.at, center, arcRadius+labelOffset)
		sb.WriteString(label(pos, fmt.Sprintf("%s = %s°", c.name, strconv.FormatFloat(c.deg, 'f', 1, 64))))
		fmt.Fprintf(&sb, `  <circle cx="%s" cy="%s" r="3.4" fill="#5a54d6"/>`+"\n", num(c.at.X), num(c.at.Y))
	}

	sides := []struct {
		p1, p2 Point
		name   string
		length float64
	}{
		{v.B, v.C, "a", sol.A},
		{v.A, v.C, "b", sol.B},
		{v.A, v.B, "c", sol.C},
	}
	for _, s := range sides {
		mid := Point{(s.p1.X + s.p2.X) / 2, (s.p1.Y + s.p2.Y) / 2}
		pos := toward(mid, center, -labelOffset)
		sb.WriteString(label(pos, fmt.Sprintf("%s = %s", s.name, strconv.FormatFloat(s.length, 'f', opts.Precision, 64))))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// toward moves from p a distance d in the direction of q; negative d moves away.
func toward(p, q Point, d float64) Point {
	dir := q.Sub(p)
	n := dir.Len()
	if n == 0 {
		return p
	}
	return Point{p.X + dir.X/n*d, p.Y + dir.Y/n*d}
}

// arc draws the interior angle at vertex between the rays to p1 and p2.
func arc(vertex, p1, p2 Point) string {
	s := toward(vertex, p1, arcRadius)
	e := toward(vertex, p2, arcRadius)
	u, w := p1.Sub(vertex), p2.Sub(vertex)
	sweep := 0
	if u.X*w.Y-u.Y*w.X > 0 {
		sweep = 1
	}
	return fmt.Sprintf(`  <path d="M %s %s A %s %s 0 0 %d %s %s" fill="none" stroke="#6c63ff" stroke-opacity="0.5" stroke-width="1.6"/>`+"\n",
		num(s.X), num(s.Y), num(arcRadius), num(arcRadius), sweep, num(e.X), num(e.Y))
}

func label(p Point, text string) string {
	return fmt.Sprintf(`  <text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-family="IBM Plex Sans, Segoe UI, sans-serif" font-size="14" fill="#2f3440">%s</text>`+"\n",
		num(p.X), num(p.Y), html.EscapeString(text))
}

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
