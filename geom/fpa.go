package geom

import "math"

// fpaEpsilon is the fixed tolerance used by the "almost" family of
// comparators. It plays the role of a ULP-threshold compare: two floats
// within fpaEpsilon of one another are considered equal.
const fpaEpsilon = 1e-6

// FPA ("floating point almost") wraps a float64 to provide a fixed-tolerance
// total order, used by the almost-relation-to / almost-collides-with family
// of comparisons. It deliberately leans towards equality in near-equal
// cases, which in turn leans Rect.AlmostRelationTo towards Enclosed
// and Surrounding instead of Intersecting.
type FPA float64

// Cmp returns -1, 0 or 1 comparing a and b within fpaEpsilon.
func (a FPA) Cmp(b FPA) int {
	d := float64(a) - float64(b)
	if math.Abs(d) < fpaEpsilon {
		return 0
	}
	if d < 0 {
		return -1
	}
	return 1
}

func (a FPA) Le(b FPA) bool { return a.Cmp(b) <= 0 }
func (a FPA) Ge(b FPA) bool { return a.Cmp(b) >= 0 }
func (a FPA) Eq(b FPA) bool { return a.Cmp(b) == 0 }
