package geom

import "math"

// Edge is a line segment between two distinct points.
type Edge struct {
	Start, End Point
}

// NewEdge builds an Edge, failing with ErrDegenerateEdge if start == end.
func NewEdge(start, end Point) (Edge, error) {
	if start == end {
		return Edge{}, ErrDegenerateEdge
	}
	return Edge{Start: start, End: end}, nil
}

// Length returns the Euclidean length of e.
func (e Edge) Length() float64 {
	return e.Start.Distance(e.End)
}

// Centroid returns the midpoint of e.
func (e Edge) Centroid() Point {
	return Point{
		X: (e.Start.X + e.End.X) / 2,
		Y: (e.Start.Y + e.End.Y) / 2,
	}
}

// XMin, XMax, YMin, YMax return e's axis-aligned bbox extents.
func (e Edge) XMin() float64 { return math.Min(e.Start.X, e.End.X) }
func (e Edge) XMax() float64 { return math.Max(e.Start.X, e.End.X) }
func (e Edge) YMin() float64 { return math.Min(e.Start.Y, e.End.Y) }
func (e Edge) YMax() float64 { return math.Max(e.Start.Y, e.End.Y) }

// ExtendAtFront returns e with its start point moved back by distance d
// along the line from end to start.
func (e Edge) ExtendAtFront(d float64) Edge {
	dx, dy := e.End.X-e.Start.X, e.End.Y-e.Start.Y
	l := e.Length()
	e.Start.X -= dx * (d / l)
	e.Start.Y -= dy * (d / l)
	return e
}

// ExtendAtBack returns e with its end point moved forward by distance d
// along the line from start to end.
func (e Edge) ExtendAtBack(d float64) Edge {
	dx, dy := e.End.X-e.Start.X, e.End.Y-e.Start.Y
	l := e.Length()
	e.End.X += dx * (d / l)
	e.End.Y += dy * (d / l)
	return e
}

// Scale returns e scaled about its midpoint by factor.
func (e Edge) Scale(factor float64) Edge {
	dx, dy := e.End.X-e.Start.X, e.End.Y-e.Start.Y
	e.Start.X -= dx * (factor - 1) / 2
	e.Start.Y -= dy * (factor - 1) / 2
	e.End.X += dx * (factor - 1) / 2
	e.End.Y += dy * (factor - 1) / 2
	return e
}

// Reverse returns e with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// Transform returns e with both endpoints transformed by t.
func (e Edge) Transform(t Transformation) Edge {
	return Edge{Start: e.Start.Transform(t), End: e.End.Transform(t)}
}

// ClosestPointOnEdge returns the point of e closest to p.
func (e Edge) ClosestPointOnEdge(p Point) Point {
	x1, y1 := e.Start.X, e.Start.Y
	x2, y2 := e.End.X, e.End.Y

	a := p.X - x1
	b := p.Y - y1
	c := x2 - x1
	d := y2 - y1

	dot := a*c + b*d
	lenSq := c*c + d*d

	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	switch {
	case param < 0:
		return Point{x1, y1}
	case param > 1:
		return Point{x2, y2}
	default:
		return Point{x1 + param*c, y1 + param*d}
	}
}

// DistanceTo returns the non-negative Euclidean distance from e to p.
func (e Edge) DistanceTo(p Point) float64 {
	return math.Sqrt(e.SqDistanceTo(p))
}

// SqDistanceTo returns the squared Euclidean distance from e to p.
func (e Edge) SqDistanceTo(p Point) float64 {
	closest := e.ClosestPointOnEdge(p)
	return p.SqDistance(closest)
}

// CollidesWithEdge reports whether e and other intersect (touching counts).
func (e Edge) CollidesWithEdge(other Edge) bool {
	_, _, hit := edgeIntersection(e, other, false)
	return hit
}

// IntersectEdge returns whether e and other intersect, and if so the
// intersection point.
func (e Edge) IntersectEdge(other Edge) (Point, bool) {
	p, _, hit := edgeIntersection(e, other, true)
	return p, hit
}

// edgeIntersection implements the parameterized line-line intersection.
// Parallel edges (zero denominators) are reported as non-intersecting.
func edgeIntersection(e1, e2 Edge, wantPoint bool) (Point, [2]float64, bool) {
	if math.Max(e1.XMin(), e2.XMin()) > math.Min(e1.XMax(), e2.XMax()) ||
		math.Max(e1.YMin(), e2.YMin()) > math.Min(e1.YMax(), e2.YMax()) {
		return Point{}, [2]float64{}, false
	}

	x1, y1 := e1.Start.X, e1.Start.Y
	x2, y2 := e1.End.X, e1.End.Y
	x3, y3 := e2.Start.X, e2.Start.Y
	x4, y4 := e2.End.X, e2.End.Y

	tNom := (x2-x4)*(y4-y3) - (y2-y4)*(x4-x3)
	tDenom := (x2-x1)*(y4-y3) - (y2-y1)*(x4-x3)
	uNom := (x2-x4)*(y2-y1) - (y2-y4)*(x2-x1)
	uDenom := tDenom

	if tDenom == 0 || uDenom == 0 {
		return Point{}, [2]float64{}, false
	}

	t := tNom / tDenom
	u := uNom / uDenom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, [2]float64{}, false
	}

	if !wantPoint {
		return Point{}, [2]float64{t, u}, true
	}
	return Point{X: x2 + t*(x1-x2), Y: y2 + t*(y1-y2)}, [2]float64{t, u}, true
}
