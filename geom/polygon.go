// Package geom provides the small set of planar geometry primitives the
// map generator needs: points, polygons, and a pluggable polygon merger.
package geom

import "math"

// Point is a point on the map canvas.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance to the given point.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Polygon is an ordered vertex loop. A polygon with fewer than three
// vertices is degenerate and is skipped by consumers.
type Polygon []Point

// Valid returns true if the polygon has enough vertices to enclose area.
func (p Polygon) Valid() bool {
	return len(p) >= 3
}

// Area returns the unsigned area of the polygon via the shoelace formula.
func (p Polygon) Area() float64 {
	if !p.Valid() {
		return 0
	}
	var sum float64
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		sum += pt.X*next.Y - next.X*pt.Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the area centroid of the polygon. For degenerate
// polygons it falls back to the vertex average.
func (p Polygon) Centroid() Point {
	if !p.Valid() {
		var c Point
		for _, pt := range p {
			c.X += pt.X
			c.Y += pt.Y
		}
		if len(p) > 0 {
			c.X /= float64(len(p))
			c.Y /= float64(len(p))
		}
		return c
	}
	var cx, cy, a float64
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		cross := pt.X*next.Y - next.X*pt.Y
		cx += (pt.X + next.X) * cross
		cy += (pt.Y + next.Y) * cross
		a += cross
	}
	if a == 0 {
		// Collinear loop, average the vertices instead.
		var c Point
		for _, pt := range p {
			c.X += pt.X
			c.Y += pt.Y
		}
		c.X /= float64(len(p))
		c.Y /= float64(len(p))
		return c
	}
	a *= 3
	return Point{X: cx / a, Y: cy / a}
}

// Contains returns true if the point lies inside the polygon
// (even-odd rule).
func (p Polygon) Contains(pt Point) bool {
	if !p.Valid() {
		return false
	}
	inside := false
	j := len(p) - 1
	for i := 0; i < len(p); i++ {
		if (p[i].Y > pt.Y) != (p[j].Y > pt.Y) &&
			pt.X < (p[j].X-p[i].X)*(pt.Y-p[i].Y)/(p[j].Y-p[i].Y)+p[i].X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// BoundingBox returns the min and max corners of the polygon.
func (p Polygon) BoundingBox() (min, max Point) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return
}
