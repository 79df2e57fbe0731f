package geom

import "math"

// Rect is an axis-aligned rectangle with x_min < x_max and y_min < y_max.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// NewRect builds a Rect, failing with ErrInvalidRect if the bounds are not
// well formed.
func NewRect(xMin, yMin, xMax, yMax float64) (Rect, error) {
	if !(xMin < xMax) || !(yMin < yMax) {
		return Rect{}, ErrInvalidRect
	}
	return Rect{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}, nil
}

// Width returns x_max - x_min.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns y_max - y_min.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Area returns width * height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Diameter returns the length of r's diagonal.
func (r Rect) Diameter() float64 {
	dx, dy := r.Width(), r.Height()
	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid returns the center point of r.
func (r Rect) Centroid() Point {
	return Point{(r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2}
}

// Quadrant identifies one of the four quadrants of a Rect, in the fixed
// cyclic order used throughout the quadtree: NE, NW, SW, SE.
type Quadrant int

const (
	QuadNE Quadrant = iota
	QuadNW
	QuadSW
	QuadSE
)

// QuadrantNeighborLayout maps quadrant i to the indices of its two
// edge-adjacent neighbors, in NE/NW/SW/SE cyclic order. It is a fixed
// contract shared by Rect.Quadrants and quadtree constriction.
var QuadrantNeighborLayout = [4][2]int{
	{int(QuadNW), int(QuadSE)}, // NE's neighbors: NW, SE
	{int(QuadNE), int(QuadSW)}, // NW's neighbors: NE, SW
	{int(QuadNW), int(QuadSE)}, // SW's neighbors: NW, SE
	{int(QuadNE), int(QuadSW)}, // SE's neighbors: NE, SW
}

// Corners returns r's four corners in (NE, NW, SW, SE) order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.XMax, r.YMax}, // NE
		{r.XMin, r.YMax}, // NW
		{r.XMin, r.YMin}, // SW
		{r.XMax, r.YMin}, // SE
	}
}

// Edges returns r's four edges in the same cyclic order as Corners: the
// edge connecting corner i to corner (i+1)%4.
func (r Rect) Edges() [4]Edge {
	c := r.Corners()
	return [4]Edge{
		{c[0], c[1]}, // NE -> NW
		{c[1], c[2]}, // NW -> SW
		{c[2], c[3]}, // SW -> SE
		{c[3], c[0]}, // SE -> NE
	}
}

// Quadrants returns r's four quadrants, ordered NE, NW, SW, SE to match
// QuadrantNeighborLayout.
func (r Rect) Quadrants() [4]Rect {
	mid := r.Centroid()
	ne, _ := NewRect(mid.X, mid.Y, r.XMax, r.YMax)
	nw, _ := NewRect(r.XMin, mid.Y, mid.X, r.YMax)
	sw, _ := NewRect(r.XMin, r.YMin, mid.X, mid.Y)
	se, _ := NewRect(mid.X, r.YMin, r.XMax, mid.Y)
	return [4]Rect{ne, nw, sw, se}
}

// InflateToSquare centers r and expands the shorter dimension so the result
// is a square.
func (r Rect) InflateToSquare() Rect {
	w, h := r.Width(), r.Height()
	var dx, dy float64
	if h < w {
		dy = (w - h) / 2
	} else if w < h {
		dx = (h - w) / 2
	}
	out, _ := NewRect(r.XMin-dx, r.YMin-dy, r.XMax+dx, r.YMax+dy)
	return out
}

// Scale returns r scaled about its center by factor.
func (r Rect) Scale(factor float64) Rect {
	dx := r.Width() * (factor - 1) / 2
	dy := r.Height() * (factor - 1) / 2
	out, _ := NewRect(r.XMin-dx, r.YMin-dy, r.XMax+dx, r.YMax+dy)
	return out
}

// RectIntersection returns the rectangle that is the intersection of a and
// b, or false if they don't overlap on a positive area.
func RectIntersection(a, b Rect) (Rect, bool) {
	xMin := math.Max(a.XMin, b.XMin)
	yMin := math.Max(a.YMin, b.YMin)
	xMax := math.Min(a.XMax, b.XMax)
	yMax := math.Min(a.YMax, b.YMax)
	if xMin < xMax && yMin < yMax {
		r, _ := NewRect(xMin, yMin, xMax, yMax)
		return r, true
	}
	return Rect{}, false
}

// RectUnion returns the smallest rectangle containing both a and b.
func RectUnion(a, b Rect) Rect {
	r, _ := NewRect(
		math.Min(a.XMin, b.XMin),
		math.Min(a.YMin, b.YMin),
		math.Max(a.XMax, b.XMax),
		math.Max(a.YMax, b.YMax),
	)
	return r
}

// CollidesWithRect reports whether r and other overlap (touching counts).
func (r Rect) CollidesWithRect(other Rect) bool {
	return math.Max(r.XMin, other.XMin) <= math.Min(r.XMax, other.XMax) &&
		math.Max(r.YMin, other.YMin) <= math.Min(r.YMax, other.YMax)
}

// almostCollidesWithRect is the fixed-tolerance variant of CollidesWithRect.
func (r Rect) almostCollidesWithRect(other Rect) bool {
	return FPA(math.Max(r.XMin, other.XMin)).Le(FPA(math.Min(r.XMax, other.XMax))) &&
		FPA(math.Max(r.YMin, other.YMin)).Le(FPA(math.Min(r.YMax, other.YMax)))
}

// CollidesWithPoint reports whether p lies within or on the border of r.
func (r Rect) CollidesWithPoint(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// CollidesWithEdge reports whether edge e intersects r (or lies within it).
func (r Rect) CollidesWithEdge(e Edge) bool {
	// inspired by: https://stackoverflow.com/questions/99353
	if r.CollidesWithPoint(e.Start) || r.CollidesWithPoint(e.End) {
		return true
	}

	x1, y1 := e.Start.X, e.Start.Y
	x2, y2 := e.End.X, e.End.Y

	if x1 < r.XMin && x2 < r.XMin {
		return false
	}
	if x1 > r.XMax && x2 > r.XMax {
		return false
	}
	if y1 < r.YMin && y2 < r.YMin {
		return false
	}
	if y1 > r.YMax && y2 > r.YMax {
		return false
	}

	pointEdgeRelation := func(p Point, e Edge) float64 {
		return (p.X-e.Start.X)*(e.End.Y-e.Start.Y) - (p.Y-e.Start.Y)*(e.End.X-e.Start.X)
	}

	sign := 0
	allSameSide := true
	for _, corner := range r.Corners() {
		rel := pointEdgeRelation(corner, e)
		switch {
		case rel == 0:
			allSameSide = false
		case rel > 0:
			if sign == 0 {
				sign = 1
			} else if sign != 1 {
				allSameSide = false
			}
		case rel < 0:
			if sign == 0 {
				sign = -1
			} else if sign != -1 {
				allSameSide = false
			}
		}
		if !allSameSide {
			break
		}
	}
	if allSameSide {
		// all corners on the same side of the line through e: no crossing
		return false
	}

	edges := r.Edges()
	return e.CollidesWithEdge(edges[0]) || e.CollidesWithEdge(edges[1]) ||
		e.CollidesWithEdge(edges[2]) || e.CollidesWithEdge(edges[3])
}

// RelationTo returns how r relates to other: Disjoint, Intersecting,
// Enclosed (r is inside other) or Surrounding (r contains other).
func (r Rect) RelationTo(other Rect) GeoRelation {
	if !r.CollidesWithRect(other) {
		return Disjoint
	}
	switch {
	case r.XMin <= other.XMin && r.YMin <= other.YMin && r.XMax >= other.XMax && r.YMax >= other.YMax:
		return Surrounding
	case r.XMin >= other.XMin && r.YMin >= other.YMin && r.XMax <= other.XMax && r.YMax <= other.YMax:
		return Enclosed
	default:
		return Intersecting
	}
}

// AlmostRelationTo is the fixed-tolerance variant of RelationTo, leaning
// towards Enclosed/Surrounding in near-equal cases.
func (r Rect) AlmostRelationTo(other Rect) GeoRelation {
	if !r.almostCollidesWithRect(other) {
		return Disjoint
	}
	switch {
	case FPA(r.XMin).Le(FPA(other.XMin)) && FPA(r.YMin).Le(FPA(other.YMin)) &&
		FPA(r.XMax).Ge(FPA(other.XMax)) && FPA(r.YMax).Ge(FPA(other.YMax)):
		return Surrounding
	case FPA(r.XMin).Ge(FPA(other.XMin)) && FPA(r.YMin).Ge(FPA(other.YMin)) &&
		FPA(r.XMax).Le(FPA(other.XMax)) && FPA(r.YMax).Le(FPA(other.YMax)):
		return Enclosed
	default:
		return Intersecting
	}
}

// SqDistanceToPoint returns the squared distance from r to p (0 if p is
// inside r).
func (r Rect) SqDistanceToPoint(p Point) float64 {
	var d float64
	if p.X < r.XMin {
		d += (p.X - r.XMin) * (p.X - r.XMin)
	} else if p.X > r.XMax {
		d += (p.X - r.XMax) * (p.X - r.XMax)
	}
	if p.Y < r.YMin {
		d += (p.Y - r.YMin) * (p.Y - r.YMin)
	} else if p.Y > r.YMax {
		d += (p.Y - r.YMax) * (p.Y - r.YMax)
	}
	return d
}

// DistanceToPoint returns the non-negative distance from r to p.
func (r Rect) DistanceToPoint(p Point) float64 {
	return math.Sqrt(r.SqDistanceToPoint(p))
}
