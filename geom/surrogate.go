package geom

// PoleLimit pairs a pole-count ceiling with the coverage fraction that must
// already be reached before the ceiling applies. Pole generation stops once
// some limit's Threshold is exceeded by the poles' combined area fraction
// and at least that limit's N poles have been produced.
type PoleLimit struct {
	N         int
	Threshold float64
}

// SPSurrogateConfig controls how a fail-fast surrogate is generated and how
// much of it actually participates in fail-fast rejection.
type SPSurrogateConfig struct {
	// NPoleLimits bounds additional-pole generation (beyond the pole of
	// inaccessibility, which is always produced first).
	NPoleLimits [3]PoleLimit
	// NFFPoles is how many of the generated poles FFPoles returns.
	NFFPoles int
	// NFFPiers is how many piers are generated; FFPiers returns all of them.
	NFFPiers int
}

// DefaultSPSurrogateConfig mirrors the values used throughout the original
// packing engine this surrogate model is drawn from.
var DefaultSPSurrogateConfig = SPSurrogateConfig{
	NPoleLimits: [3]PoleLimit{
		{N: 4, Threshold: 0.9},
		{N: 6, Threshold: 0.95},
		{N: 10, Threshold: 0.99},
	},
	NFFPoles: 4,
	NFFPiers: 2,
}

// SPSurrogate is the fail-fast approximation of a polygon: a handful of
// inscribed circles ("poles") and interior line segments ("piers"), both
// cheaper to collision-test than the full vertex ring. It is attached to an
// SPolygon after construction by the surrogate package's Generate function,
// never constructed directly.
type SPSurrogate struct {
	Poles             []Circle
	Piers             []Edge
	Config            SPSurrogateConfig
	ConvexHullIndices []int
	ConvexHullArea    float64
}

// FFPoles returns the first Config.NFFPoles poles, in fail-fast rejection
// order. A zero NFFPoles (or a surrogate with no generated poles) yields an
// empty slice: no pole-level fail-fast rejection is performed.
func (s *SPSurrogate) FFPoles() []Circle {
	n := s.Config.NFFPoles
	if n > len(s.Poles) {
		n = len(s.Poles)
	}
	if n <= 0 {
		return nil
	}
	return s.Poles[:n]
}

// FFPiers returns the piers in fail-fast rejection order.
func (s *SPSurrogate) FFPiers() []Edge { return s.Piers }

// TransformClone returns a copy of s with every pole and pier transformed by
// t. The convex hull indices are unaffected since t is a rigid transform.
func (s *SPSurrogate) TransformClone(t Transformation) *SPSurrogate {
	out := &SPSurrogate{
		Poles:             make([]Circle, len(s.Poles)),
		Piers:             make([]Edge, len(s.Piers)),
		Config:            s.Config,
		ConvexHullIndices: s.ConvexHullIndices,
		ConvexHullArea:    s.ConvexHullArea,
	}
	for i, p := range s.Poles {
		out.Poles[i] = p.Transform(t)
	}
	for i, p := range s.Piers {
		out.Piers[i] = p.Transform(t)
	}
	return out
}
