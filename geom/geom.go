// Package geom provides the 2-D primitives shared by the spatial index,
// the selection model, and label placement: points, axis-aligned
// rectangles, and the world-to-screen view transform.
package geom

import "math"

// Point is a 2-D point or vector in world or screen space.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns p scaled by 1/s.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Length returns the euclidean norm of p.
func (p Point) Length() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	return p.Sub(q).Length()
}

// DistSqr returns the squared euclidean distance between p and q.
func (p Point) DistSqr(q Point) float32 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Normalized returns p scaled to unit length. The zero vector is
// returned unchanged.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Div(l)
}

// Perp returns p rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rect is an axis-aligned rectangle. The zero Rect is the empty
// rectangle at the origin.
type Rect struct {
	min Point
	max Point
}

// NewRect builds the rectangle spanned by two opposite corners, in any
// order.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		min: Point{X: min(p0.X, p1.X), Y: min(p0.Y, p1.Y)},
		max: Point{X: max(p0.X, p1.X), Y: max(p0.Y, p1.Y)},
	}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point { return r.min }

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point { return r.max }

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 { return r.max.X - r.min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float32 { return r.max.Y - r.min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{
		X: r.min.X + r.Width()/2,
		Y: r.min.Y + r.Height()/2,
	}
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool {
	return r.min.X <= p.X && p.X <= r.max.X &&
		r.min.Y <= p.Y && p.Y <= r.max.Y
}

// Intersects reports whether r and other share at least one point.
func (r Rect) Intersects(other Rect) bool {
	return r.min.X <= other.max.X && other.min.X <= r.max.X &&
		r.min.Y <= other.max.Y && other.min.Y <= r.max.Y
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		min: Point{X: min(r.min.X, other.min.X), Y: min(r.min.Y, other.min.Y)},
		max: Point{X: max(r.max.X, other.max.X), Y: max(r.max.Y, other.max.Y)},
	}
}

// Intersection returns the overlap of r and other, normalized. When the
// rectangles are disjoint the result is degenerate.
func (r Rect) Intersection(other Rect) Rect {
	return NewRect(
		Point{X: max(r.min.X, other.min.X), Y: max(r.min.Y, other.min.Y)},
		Point{X: min(r.max.X, other.max.X), Y: min(r.max.Y, other.max.Y)},
	)
}

// Resize returns r scaled by factor around its center.
func (r Rect) Resize(factor float32) Rect {
	c := r.Center()
	hw := r.Width() * factor / 2
	hh := r.Height() * factor / 2
	return Rect{
		min: Point{X: c.X - hw, Y: c.Y - hh},
		max: Point{X: c.X + hw, Y: c.Y + hh},
	}
}

// NodePos is the world-space placement of a graph node: the two
// endpoints of its rendered line segment. Layout engines produce one
// NodePos per node, indexed by node ID minus one.
type NodePos struct {
	P0 Point
	P1 Point
}

// Center returns the midpoint of the node segment.
func (n NodePos) Center() Point {
	return n.P0.Add(n.P1).Div(2)
}

// Rect returns the bounding rectangle of the node segment.
func (n NodePos) Rect() Rect {
	return NewRect(n.P0, n.P1)
}

// View is the camera: a world-space center and a zoom scale. It maps
// world coordinates to screen coordinates with the center at the
// screen origin.
type View struct {
	Center Point
	Scale  float32
}

// DefaultView returns the identity view.
func DefaultView() View {
	return View{Scale: 1}
}

// Apply projects a world-space point into screen space.
func (v View) Apply(p Point) Point {
	return p.Sub(v.Center).Mul(v.Scale)
}
