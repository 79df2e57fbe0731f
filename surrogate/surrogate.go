package surrogate

import "github.com/arl/cde/geom"

// NewPolygon builds a simple polygon from points, computing its pole of
// inaccessibility via FindPoleOfInaccessibility. This is the entry point
// callers should use instead of geom.NewSPolygon directly, since it wires
// the one piece geom cannot compute for itself without importing this
// package back.
func NewPolygon(points []geom.Point) (*geom.SPolygon, error) {
	return geom.NewSPolygon(points, FindPoleOfInaccessibility)
}

// Generate builds a fail-fast surrogate for poly under config, attaches it
// to poly.Surrogate and returns it.
func Generate(poly *geom.SPolygon, config geom.SPSurrogateConfig) *geom.SPSurrogate {
	poles := GeneratePoles(poly, config)

	ffPoleCount := config.NFFPoles
	if ffPoleCount > len(poles) {
		ffPoleCount = len(poles)
	}
	piers := GeneratePiers(poly, poles[:ffPoleCount], config.NFFPiers)
	hull := geom.ConvexHull(poly.Vertices)

	hullIdx := make([]int, 0, len(hull))
	byVertex := make(map[geom.Point]int, len(poly.Vertices))
	for i, v := range poly.Vertices {
		byVertex[v] = i
	}
	for _, hv := range hull {
		if i, ok := byVertex[hv]; ok {
			hullIdx = append(hullIdx, i)
		}
	}

	surrogate := &geom.SPSurrogate{
		Poles:             poles,
		Piers:             piers,
		Config:            config,
		ConvexHullIndices: hullIdx,
		ConvexHullArea:    polygonArea(hull),
	}
	poly.Surrogate = surrogate
	return surrogate
}

func polygonArea(points []geom.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sigma float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sigma += (points[i].Y + points[j].Y) * (points[i].X - points[j].X)
	}
	area := 0.5 * sigma
	if area < 0 {
		area = -area
	}
	return area
}
