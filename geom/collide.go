package geom

// PolygonsCollide reports whether a and b overlap: either contains a vertex
// of the other, or their boundaries cross. It is the authoritative,
// full-geometry collision test; SurrogatesCollide is the cheaper, partial
// test run first wherever a surrogate is available.
func PolygonsCollide(a, b *SPolygon) bool {
	if !a.Bbox.CollidesWithRect(b.Bbox) {
		return false
	}
	if a.Surrogate != nil && b.Surrogate != nil && SurrogatesCollide(a.Surrogate, b.Surrogate) {
		return true
	}

	for i := 0; i < a.NVertices(); i++ {
		if b.CollidesWithPoint(a.Vertex(i)) {
			return true
		}
	}
	for i := 0; i < b.NVertices(); i++ {
		if a.CollidesWithPoint(b.Vertex(i)) {
			return true
		}
	}
	for i := 0; i < a.NVertices(); i++ {
		ea := a.Edge(i)
		for j := 0; j < b.NVertices(); j++ {
			if ea.CollidesWithEdge(b.Edge(j)) {
				return true
			}
		}
	}
	return false
}

// SurrogatesCollide runs the fail-fast partial collision test between two
// surrogates: it can confirm a collision cheaply (a fail-fast pole or pier
// from a overlaps one from b) but cannot prove the absence of one, since it
// never looks at the full vertex ring.
func SurrogatesCollide(a, b *SPSurrogate) bool {
	for _, pa := range a.FFPoles() {
		for _, pb := range b.FFPoles() {
			if pa.CollidesWithCircle(pb) {
				return true
			}
		}
	}
	for _, pa := range a.FFPiers() {
		for _, pb := range b.FFPiers() {
			if pa.CollidesWithEdge(pb) {
				return true
			}
		}
	}
	for _, pole := range a.FFPoles() {
		for _, pier := range b.FFPiers() {
			if pole.CollidesWithEdge(pier) {
				return true
			}
		}
	}
	for _, pole := range b.FFPoles() {
		for _, pier := range a.FFPiers() {
			if pole.CollidesWithEdge(pier) {
				return true
			}
		}
	}
	return false
}
