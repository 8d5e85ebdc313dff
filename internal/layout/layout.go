// Package layout turns the three side lengths of a solved triangle back into
// plane coordinates and fits them into a drawing area. The engine only ever
// deals in magnitudes; positions are this package's business.
package layout

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Len returns the distance of p from the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Vertices holds the corners: A faces side a, B faces b, C faces c.
type Vertices struct {
	A, B, C Point
}

// Place puts A at the origin and B at (c, 0), with C above the x axis.
func Place(a, b, c float64) Vertices {
	x := (b*b + c*c - a*a) / (2 * c)
	y := math.Sqrt(math.Max(0, b*b-x*x))
	return Vertices{
		A: Point{0, 0},
		B: Point{c, 0},
		C: Point{x, y},
	}
}

// Centroid returns the mean of the three vertices.
func (v Vertices) Centroid() Point {
	return Point{(v.A.X + v.B.X + v.C.X) / 3, (v.A.Y + v.B.Y + v.C.Y) / 3}
}

// Viewport is a drawing area with a uniform margin.
type Viewport struct {
	Width, Height float64
	Padding       float64
}

// DefaultViewport matches the canvas size the calculator UI used.
func DefaultViewport() Viewport {
	return Viewport{Width: 480, Height: 360, Padding: 24}
}

// Fit scales v uniformly into vp and flips the y axis so that side c runs
// along the bottom edge, as screen coordinates grow downwards.
func (vp Viewport) Fit(v Vertices) Vertices {
	minX := min(v.A.X, v.B.X, v.C.X)
	maxX := max(v.A.X, v.B.X, v.C.X)
	minY := min(v.A.Y, v.B.Y, v.C.Y)
	maxY := max(v.A.Y, v.B.Y, v.C.Y)

	spanX := maxX - minX
	if spanX == 0 {
		spanX = 1
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}

	scale := math.Min((vp.Width-2*vp.Padding)/spanX, (vp.Height-2*vp.Padding)/spanY)
	offX := vp.Padding - minX*scale
	offY := vp.Padding - minY*scale

	tr := func(p Point) Point {
		return Point{
			X: p.X*scale + offX,
			Y: vp.Height - (p.Y*scale + offY),
		}
	}
	return Vertices{A: tr(v.A), B: tr(v.B), C: tr(v.C)}
}
