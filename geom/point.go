package geom

import "math"

// Point is an ordered pair of finite floating-point coordinates.
//
// Equality (==) is exact on the coordinate values, not within some epsilon;
// callers wanting tolerant comparisons should go through FPA. Point.Hash is
// derived from the coordinates' bit patterns, so unlike == it tells 0 and
// -0 apart.
type Point struct {
	X, Y float64
}

// NewPoint returns Point{x, y}.
func NewPoint(x, y float64) Point {
	return Point{x, y}
}

// IsFinite reports whether both coordinates of p are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Hash returns a bit-pattern based hash of p, suitable for use as (part of)
// a map key or a hash-set element.
func (p Point) Hash() uint64 {
	return math.Float64bits(p.X)*31 + math.Float64bits(p.Y)
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.SqDistance(other))
}

// SqDistance returns the squared Euclidean distance between p and other.
func (p Point) SqDistance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Transform returns p transformed by t.
func (p Point) Transform(t Transformation) Point {
	m := t.m
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}
