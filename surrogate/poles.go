package surrogate

import "github.com/arl/cde/geom"

// GeneratePoles searches for a sequence of inscribed circles covering poly:
// the pole of inaccessibility first, then additional poles, each the
// largest circle that fits in the interior left uncovered by every prior
// pole. Generation stops once, for one of config.NPoleLimits, the running
// covered-area fraction exceeds its threshold and at least its pole count
// has been produced.
//
// The poles after the first are then reordered to maximize the chance of
// an early fail-fast rejection: each is placed so it maximizes
// radius²×(distance to the nearest pole already ahead of it in the
// sequence), the heuristic the original packing engine's pole generator
// uses for the same purpose.
func GeneratePoles(poly *geom.SPolygon, config geom.SPSurrogateConfig) []geom.Circle {
	poi := FindPoleOfInaccessibility(poly)
	all := []geom.Circle{poi}
	coveredArea := poi.Area()

	for len(all) < 1000 {
		center, radius := searchNextPole(poly, all, poiMaxProbes)
		if radius <= 0 {
			break
		}
		next := geom.NewCircle(center, radius)
		all = append(all, next)
		coveredArea += next.Area()

		if poleLimitReached(config.NPoleLimits, len(all), coveredArea/poly.Area) {
			break
		}
	}

	poles := make([]geom.Circle, 0, len(all))
	poles = append(poles, poi)
	poles = append(poles, failFastOrder(poi, all[1:])...)
	return poles
}

// poleLimitReached reports whether any of limits applies: its coverage
// threshold has been exceeded and at least its pole count has already been
// produced.
func poleLimitReached(limits [3]geom.PoleLimit, nPoles int, coverage float64) bool {
	active := -1
	for _, lim := range limits {
		if lim.N <= 0 {
			continue
		}
		if coverage > lim.Threshold && (active < 0 || lim.N < active) {
			active = lim.N
		}
	}
	return active >= 0 && nPoles >= active
}

// failFastOrder greedily reorders poles so each one maximizes
// radius²×(distance from its center to the boundary of the closest pole
// ahead of it: the polygon's pole of inaccessibility or one already
// selected).
func failFastOrder(poi geom.Circle, poles []geom.Circle) []geom.Circle {
	remaining := append([]geom.Circle(nil), poles...)
	sorted := make([]geom.Circle, 0, len(poles))

	for len(remaining) > 0 {
		bestIdx := -1
		bestScore := -1.0
		for i, p := range remaining {
			minDist := poi.Center.Distance(p.Center) - poi.Radius
			for _, prior := range sorted {
				if d := prior.Center.Distance(p.Center) - prior.Radius; d < minDist {
					minDist = d
				}
			}
			score := p.Radius * p.Radius * minDist
			if score > bestScore {
				bestScore, bestIdx = score, i
			}
		}
		sorted = append(sorted, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return sorted
}

// searchNextPole finds the largest circle that fits inside poly without
// overlapping any pole already found, penalizing candidate centers close to
// or inside an existing pole so successive poles spread out to cover fresh
// area rather than clustering on the first (largest) pole.
func searchNextPole(poly *geom.SPolygon, found []geom.Circle, maxTries int) (geom.Point, float64) {
	score := func(p geom.Point) float64 {
		d := signedDistance(poly, p)
		for _, pole := range found {
			if clearance := p.Distance(pole.Center) - pole.Radius; clearance < d {
				d = clearance
			}
		}
		return d
	}
	center, d := bestFirstSearch(poly.Bbox, score, maxTries)
	if d < 0 {
		d = 0
	}
	return center, d
}
