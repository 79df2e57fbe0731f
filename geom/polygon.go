package geom

import "math"

// SPolygon is a simple polygon: a counter-clockwise ring of at least three
// unique vertices, with no self-intersections and no holes.
//
// Construction computes and caches the bounding box, area and diameter, and
// the pole of inaccessibility when NewSPolygon is given a poiFunc; these
// never change for the lifetime of the value (Transform produces a new
// SPolygon).
type SPolygon struct {
	Vertices []Point
	Bbox     Rect
	Area     float64
	Diameter float64
	// POI is the pole of inaccessibility: the largest disk inscribed in the
	// polygon's interior.
	POI Circle
	// Surrogate is the optional fail-fast surrogate. It is nil until
	// attached by the surrogate package's Generate function.
	Surrogate *SPSurrogate
}

// NewSPolygon builds a simple polygon from points, computing its cached
// derived fields. Clockwise input is reversed to the canonical
// counter-clockwise orientation. The pole of inaccessibility is located by
// poiFunc, which the surrogate package wires in (kept as a parameter here to
// avoid an import cycle between geom and surrogate).
func NewSPolygon(points []Point, poiFunc func(*SPolygon) Circle) (*SPolygon, error) {
	if len(points) < 3 {
		return nil, ErrDegeneratePolygon
	}
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if !p.IsFinite() {
			return nil, ErrNonFinite
		}
		if _, dup := seen[p]; dup {
			return nil, ErrDegeneratePolygon
		}
		seen[p] = struct{}{}
	}

	area := signedArea(points)
	switch {
	case area == 0:
		return nil, ErrDegeneratePolygon
	case area < 0:
		reverse(points)
		area = -area
	}

	bbox := boundingBox(points)
	diameter := polygonDiameter(points)

	sp := &SPolygon{
		Vertices: points,
		Bbox:     bbox,
		Area:     area,
		Diameter: diameter,
	}
	if poiFunc != nil {
		sp.POI = poiFunc(sp)
	}
	return sp, nil
}

func reverse(points []Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// signedArea computes the shoelace-formula signed area: positive for
// counter-clockwise orientation, negative for clockwise.
func signedArea(points []Point) float64 {
	var sigma float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sigma += (points[i].Y + points[j].Y) * (points[i].X - points[j].X)
	}
	return 0.5 * sigma
}

func boundingBox(points []Point) Rect {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		xMin = math.Min(xMin, p.X)
		yMin = math.Min(yMin, p.Y)
		xMax = math.Max(xMax, p.X)
		yMax = math.Max(yMax, p.Y)
	}
	r, _ := NewRect(xMin, yMin, xMax, yMax)
	return r
}

// polygonDiameter returns the largest pairwise distance among the convex
// hull of points.
func polygonDiameter(points []Point) float64 {
	hull := ConvexHull(points)
	best := 0.0
	for i := 0; i < len(hull); i++ {
		for j := i + 1; j < len(hull); j++ {
			if d := hull[i].SqDistance(hull[j]); d > best {
				best = d
			}
		}
	}
	return math.Sqrt(best)
}

// NVertices returns the number of vertices (and edges) of p.
func (p *SPolygon) NVertices() int { return len(p.Vertices) }

// Vertex returns vertex i.
func (p *SPolygon) Vertex(i int) Point { return p.Vertices[i] }

// Edge returns the edge connecting vertex i to vertex (i+1)%n.
func (p *SPolygon) Edge(i int) Edge {
	j := (i + 1) % p.NVertices()
	e, _ := NewEdge(p.Vertices[i], p.Vertices[j])
	return e
}

// Edges returns all edges of p, in order.
func (p *SPolygon) Edges() []Edge {
	out := make([]Edge, p.NVertices())
	for i := range out {
		out[i] = p.Edge(i)
	}
	return out
}

// Centroid returns the area-weighted centroid of p (distinct from the
// bounding box center and from the pole of inaccessibility).
func (p *SPolygon) Centroid() Point {
	var cx, cy float64
	n := p.NVertices()
	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			j = 0
		}
		xi, yi := p.Vertices[i].X, p.Vertices[i].Y
		xj, yj := p.Vertices[j].X, p.Vertices[j].Y
		cross := xi*yj - xj*yi
		cx += (xi + xj) * cross
		cy += (yi + yj) * cross
	}
	cx /= 6 * p.Area
	cy /= 6 * p.Area
	return Point{cx, cy}
}

// CollidesWithPoint reports whether p contains point q, using a horizontal
// ray cast to the right. An edge vertex whose y coincides with q's y counts
// as a crossing only when the edge lies below the ray, avoiding double
// counting at vertices.
func (p *SPolygon) CollidesWithPoint(q Point) bool {
	if !p.Bbox.CollidesWithPoint(q) {
		return false
	}

	pointOutside := Point{p.Bbox.XMax + p.Bbox.Width() + 1, q.Y}
	ray, _ := NewEdge(q, pointOutside)

	nIntersections := 0
	for i := 0; i < p.NVertices(); i++ {
		edge := p.Edge(i)
		sx, sy := FPA(edge.Start.X), FPA(edge.Start.Y)
		ex, ey := FPA(edge.End.X), FPA(edge.End.Y)
		px, py := FPA(q.X), FPA(q.Y)

		if (sy.Eq(py) && sx.Cmp(px) > 0) || (ey.Eq(py) && ex.Cmp(px) > 0) {
			// the ray passes through (or dangerously close to) a vertex;
			// only count an intersection if the edge lies below the ray
			if edge.Start.Y < q.Y || edge.End.Y < q.Y {
				nIntersections++
			}
		} else if ray.CollidesWithEdge(edge) {
			nIntersections++
		}
	}
	return nIntersections%2 == 1
}

// SqSeparationDistance reports whether q lies inside or outside p, along
// with the squared distance to the nearest edge.
func (p *SPolygon) SqSeparationDistance(q Point) (GeoPosition, float64) {
	best := math.Inf(1)
	for i := 0; i < p.NVertices(); i++ {
		if d := p.Edge(i).SqDistanceTo(q); d < best {
			best = d
		}
	}
	if p.CollidesWithPoint(q) {
		return Interior, best
	}
	return Exterior, best
}

// SeparationDistance is the square-root variant of SqSeparationDistance.
func (p *SPolygon) SeparationDistance(q Point) (GeoPosition, float64) {
	pos, sq := p.SqSeparationDistance(q)
	return pos, math.Sqrt(sq)
}

// SqDistanceTo returns the squared distance from p's boundary to q (0 if q
// is inside p).
func (p *SPolygon) SqDistanceTo(q Point) float64 {
	if p.CollidesWithPoint(q) {
		return 0
	}
	best := math.Inf(1)
	for i := 0; i < p.NVertices(); i++ {
		if d := p.Edge(i).SqDistanceTo(q); d < best {
			best = d
		}
	}
	return best
}

// DistanceTo is the square-root variant of SqDistanceTo.
func (p *SPolygon) DistanceTo(q Point) float64 {
	return math.Sqrt(p.SqDistanceTo(q))
}

// Transform returns a freshly computed SPolygon with every vertex, the POI
// and the surrogate (if any) transformed by t.
func (p *SPolygon) Transform(t Transformation) *SPolygon {
	out := &SPolygon{
		Vertices: make([]Point, len(p.Vertices)),
		Area:     p.Area,
		Diameter: p.Diameter,
	}
	for i, v := range p.Vertices {
		out.Vertices[i] = v.Transform(t)
	}
	out.Bbox = boundingBox(out.Vertices)
	out.POI = p.POI.Transform(t)
	if p.Surrogate != nil {
		out.Surrogate = p.Surrogate.TransformClone(t)
	}
	return out
}

// FromRect returns the simple polygon coinciding with rectangle r.
func FromRect(r Rect) *SPolygon {
	poly, err := NewSPolygon([]Point{
		{r.XMin, r.YMin},
		{r.XMax, r.YMin},
		{r.XMax, r.YMax},
		{r.XMin, r.YMax},
	}, nil)
	if err != nil {
		panic(err) // a well-formed Rect always yields a valid polygon
	}
	return poly
}
