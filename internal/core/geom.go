// Package core provides fundamental types and utilities for the asteroids
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Polar returns the vector of the given length pointing along angle (radians).
func Polar(length, angle float64) Vec2 {
	return Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Rotate rotates v about the origin by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Polygon is an ordered list of vertices. A closed polygon has an implicit
// edge from the last vertex back to the first; an open one is a polyline.
type Polygon struct {
	Points []Vec2
	Closed bool
}

// ClosedPoly builds a closed polygon from the given vertices.
func ClosedPoly(pts ...Vec2) Polygon {
	return Polygon{Points: pts, Closed: true}
}

// Polyline builds an open polyline from the given vertices.
func Polyline(pts ...Vec2) Polygon {
	return Polygon{Points: pts}
}

// Transform scales, rotates and then translates every vertex.
func (p Polygon) Transform(scale, rotation float64, at Vec2) Polygon {
	out := Polygon{Points: make([]Vec2, len(p.Points)), Closed: p.Closed}
	for i, pt := range p.Points {
		out.Points[i] = pt.Scale(scale).Rotate(rotation).Add(at)
	}
	return out
}

// EdgeCount returns the number of edges.
func (p Polygon) EdgeCount() int {
	n := len(p.Points)
	switch {
	case n < 2:
		return 0
	case p.Closed && n > 2:
		return n
	default:
		return n - 1
	}
}

// Edge returns the endpoints of edge i.
func (p Polygon) Edge(i int) (Vec2, Vec2) {
	return p.Points[i], p.Points[(i+1)%len(p.Points)]
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	b := Box{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b = b.extend(pt)
	}
	return b
}

// Contains reports whether pt lies inside a closed polygon (even-odd rule).
// Open polylines contain nothing.
func (p Polygon) Contains(pt Vec2) bool {
	if !p.Closed || len(p.Points) < 3 {
		return false
	}
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Intersects reports whether two polygons overlap: any pair of edges cross,
// or one closed polygon contains a vertex of the other.
func (p Polygon) Intersects(o Polygon) bool {
	if len(p.Points) == 0 || len(o.Points) == 0 {
		return false
	}
	if !p.Bounds().Overlaps(o.Bounds()) {
		return false
	}
	for i := range p.EdgeCount() {
		a1, a2 := p.Edge(i)
		for j := range o.EdgeCount() {
			b1, b2 := o.Edge(j)
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return p.Contains(o.Points[0]) || o.Contains(p.Points[0])
}

// Shape is a set of polygons treated as one body for collision and drawing.
type Shape []Polygon

// Transform applies the same transform to every part.
func (s Shape) Transform(scale, rotation float64, at Vec2) Shape {
	out := make(Shape, len(s))
	for i, p := range s {
		out[i] = p.Transform(scale, rotation, at)
	}
	return out
}

// Intersects reports whether any part of s overlaps any part of o.
func (s Shape) Intersects(o Shape) bool {
	for _, a := range s {
		for _, b := range o {
			if a.Intersects(b) {
				return true
			}
		}
	}
	return false
}

// Bounds returns the bounding box of all parts.
func (s Shape) Bounds() Box {
	var b Box
	for i, p := range s {
		if i == 0 {
			b = p.Bounds()
			continue
		}
		pb := p.Bounds()
		b = b.extend(pb.Min).extend(pb.Max)
	}
	return b
}

// Box is a floating-point axis-aligned bounding box.
type Box struct {
	Min, Max Vec2
}

func (b Box) extend(pt Vec2) Box {
	b.Min.X = math.Min(b.Min.X, pt.X)
	b.Min.Y = math.Min(b.Min.Y, pt.Y)
	b.Max.X = math.Max(b.Max.X, pt.X)
	b.Max.Y = math.Max(b.Max.Y, pt.Y)
	return b
}

// Overlaps reports whether two boxes share any point (edges inclusive).
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// SegmentsIntersect reports whether segment a1-a2 touches segment b1-b2.
// Collinear overlapping segments count as touching.
func SegmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}
	return false
}

func orient(a, b, c Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, p Vec2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Wrap maps v into [0, size) on a torus of the given circumference.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// math.Mod of a tiny negative can round back up to size.
	if v >= size {
		v = 0
	}
	return v
}

// WrapDelta returns the shortest signed displacement from a to b on a torus.
func WrapDelta(a, b, size float64) float64 {
	d := b - a
	if size <= 0 {
		return d
	}
	d = math.Mod(d, size)
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// NormalizeAngle maps an angle into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside an area of the given size.
func Centered(areaW, areaH, w, h int) Rect {
	return NewRect((areaW-w)/2, (areaH-h)/2, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
