package maclane

import (
	"fmt"
	"strings"
)

// Point is a vertex or input point of a Newton polygon: expansion index on
// the x-axis, term valuation on the y-axis.
type Point struct {
	X int
	Y Value
}

// NewtonPolygon is the lower convex hull of the points (i, v_i) for a
// term-valuation sequence v. Points with infinite valuation are retained in
// the input set but never participate in finite hull edges.
type NewtonPolygon struct {
	points   []Point
	vertices []Point
}

// NewNewtonPolygon builds the polygon of a term-valuation sequence, indexed
// from zero in order.
func NewNewtonPolygon(vals []Value) *NewtonPolygon {
	points := make([]Point, len(vals))
	finite := make([]Point, 0, len(vals))

	for i, v := range vals {
		points[i] = Point{X: i, Y: v}
		if !v.IsInf() {
			finite = append(finite, points[i])
		}
	}

	return &NewtonPolygon{
		points:   points,
		vertices: lowerHull(finite),
	}
}

// lowerHull runs the monotone chain on points already sorted by strictly
// increasing x.
func lowerHull(pts []Point) []Point {
	if len(pts) <= 1 {
		return append([]Point(nil), pts...)
	}

	hull := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && !belowChord(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}

		hull = append(hull, p)
	}

	return hull
}

// belowChord reports whether b lies strictly below the segment from a to c.
// Collinear points are dropped from the hull.
func belowChord(a, b, c Point) bool {
	// cross = (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x), evaluated exactly
	// in the value group.
	left := c.Y.Sub(a.Y).MulInt(int64(b.X - a.X))
	right := b.Y.Sub(a.Y).MulInt(int64(c.X - a.X))

	return left.Cmp(right) > 0
}

// Points returns the input points, infinite valuations included.
func (np *NewtonPolygon) Points() []Point {
	return append([]Point(nil), np.points...)
}

// Vertices returns the finite hull vertices by increasing x.
func (np *NewtonPolygon) Vertices() []Point {
	return append([]Point(nil), np.vertices...)
}

// Slopes returns the slope of each hull edge, non-decreasing by convexity.
func (np *NewtonPolygon) Slopes() []Value {
	if len(np.vertices) < 2 {
		return nil
	}

	slopes := make([]Value, len(np.vertices)-1)
	for i := 1; i < len(np.vertices); i++ {
		a, b := np.vertices[i-1], np.vertices[i]
		slopes[i-1] = b.Y.Sub(a.Y).DivInt(int64(b.X - a.X))
	}

	return slopes
}

func (np *NewtonPolygon) String() string {
	bldr := strings.Builder{}
	bldr.WriteString("Newton Polygon with vertices [")

	for i, p := range np.vertices {
		if i > 0 {
			bldr.WriteString(", ")
		}

		fmt.Fprintf(&bldr, "(%d, %v)", p.X, p.Y)
	}

	bldr.WriteString("]")

	return bldr.String()
}
