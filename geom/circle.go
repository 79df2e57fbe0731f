package geom

import "math"

// Circle is a center point and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle builds a Circle. The radius is not validated (a negative or
// non-finite radius is accepted as is), since poles are frequently
// constructed in tight loops.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Area returns the circle's area.
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Diameter returns 2*radius.
func (c Circle) Diameter() float64 { return 2 * c.Radius }

// Bbox returns the axis-aligned bounding box of c.
func (c Circle) Bbox() Rect {
	r, _ := NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius, c.Center.Y+c.Radius)
	return r
}

// Transform returns c with its center transformed by t (radius is
// unaffected since t is a proper rigid transform).
func (c Circle) Transform(t Transformation) Circle {
	return Circle{Center: c.Center.Transform(t), Radius: c.Radius}
}

// CollidesWithCircle reports whether c and other overlap.
func (c Circle) CollidesWithCircle(other Circle) bool {
	sqD := c.Center.SqDistance(other.Center)
	r := c.Radius + other.Radius
	return sqD <= r*r
}

// CollidesWithPoint reports whether p lies within or on the border of c.
func (c Circle) CollidesWithPoint(p Point) bool {
	return p.SqDistance(c.Center) <= c.Radius*c.Radius
}

// CollidesWithEdge reports whether e passes through c.
func (c Circle) CollidesWithEdge(e Edge) bool {
	return e.SqDistanceTo(c.Center) <= c.Radius*c.Radius
}

// CollidesWithRect reports whether c overlaps rectangle r.
// Based on: https://yal.cc/rectangle-circle-intersection-test/
func (c Circle) CollidesWithRect(r Rect) bool {
	nearestX := math.Max(r.XMin, math.Min(c.Center.X, r.XMax))
	nearestY := math.Max(r.YMin, math.Min(c.Center.Y, r.YMax))
	dx, dy := nearestX-c.Center.X, nearestY-c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// DistanceTo returns the non-negative distance from c's boundary to p,
// 0 if p is inside c (collision implies 0, per the distance contract).
func (c Circle) DistanceTo(p Point) float64 {
	sqD := p.SqDistance(c.Center)
	if sqD < c.Radius*c.Radius {
		return 0
	}
	return math.Sqrt(sqD) - c.Radius
}

// SeparationDistance reports whether p lies inside or outside c, along with
// the (non-negative) distance to the boundary.
func (c Circle) SeparationDistance(p Point) (GeoPosition, float64) {
	dCenter := p.Distance(c.Center)
	if dCenter <= c.Radius {
		return Interior, c.Radius - dCenter
	}
	return Exterior, dCenter - c.Radius
}

// BoundingCircle returns a circle that fully contains every circle in
// circles, grown incrementally: whenever the next circle is not contained,
// the bounding circle is widened along the segment joining the two centers.
// The result depends on input order and is not necessarily the smallest
// enclosing circle. Panics if circles is empty.
func BoundingCircle(circles []Circle) Circle {
	if len(circles) == 0 {
		panic("geom: BoundingCircle requires at least one circle")
	}
	bounding := circles[0]
	for _, c := range circles[1:] {
		d := bounding.Center.Distance(c.Center)
		if bounding.Radius < d+c.Radius {
			// c is not contained in bounding: grow along the connecting segment
			diameter, err := NewEdge(bounding.Center, c.Center)
			if err != nil {
				// centers coincide; just take the larger radius
				if c.Radius > bounding.Radius {
					bounding = Circle{Center: bounding.Center, Radius: c.Radius}
				}
				continue
			}
			diameter = diameter.ExtendAtFront(bounding.Radius).ExtendAtBack(c.Radius)
			newRadius := diameter.Length() / 2
			newCenter := diameter.Centroid()
			bounding = Circle{Center: newCenter, Radius: newRadius}
		}
	}
	return bounding
}
