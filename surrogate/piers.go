package surrogate

import (
	"math"
	"sort"

	"github.com/arl/cde/geom"
)

// clippingTrim shortens each clipped ray slightly so its endpoints don't
// land exactly on the polygon boundary.
const clippingTrim = 0.999

// actionRadiusRatio is the fraction of the inflated bbox width within which
// a candidate ray is allowed to claim a grid point away from its nearest
// pole.
const actionRadiusRatio = 0.10

// GeneratePiers chooses n edges through poly's interior, in addition to
// poles, to cover interior points not already near a pole:
//
//  1. a family of candidate rays is built by translating a base vertical
//     ray (centered on poly's centroid, spanning twice the inflated bbox
//     height) across raysPerAngle positions and rotating each by nAngles
//     evenly spaced angles over [0, π);
//  2. each ray is clipped to poly's interior, producing zero or more
//     segments;
//  3. an nPointsPerDimension × nPointsPerDimension grid of interior points
//     not already covered by a pole is laid over the inflated bbox;
//  4. n piers are picked greedily: at each step, the clipped segment
//     minimizing a loss summed over every grid point is selected. The loss
//     at a point is the squared distance to whichever of its nearest pole
//     or nearest ray (already-selected piers plus the candidate) is
//     closer, a ray only counting within actionRadiusRatio of the inflated
//     bbox width.
func GeneratePiers(poly *geom.SPolygon, poles []geom.Circle, n int) []geom.Edge {
	if n <= 0 {
		return nil
	}

	bbox := poly.Bbox
	expandedBbox := bbox.InflateToSquare()
	centroid := poly.Centroid()

	baseRay := geom.Edge{
		Start: geom.NewPoint(centroid.X, centroid.Y-2*expandedBbox.Height()),
		End:   geom.NewPoint(centroid.X, centroid.Y+2*expandedBbox.Height()),
	}

	var clipped []geom.Edge
	for _, t := range rayTransformations(expandedBbox, raysPerAngle, nAngles) {
		clipped = append(clipped, clipToPolygon(poly, baseRay.Transform(t))...)
	}
	if len(clipped) == 0 {
		return nil
	}

	grid := unrepresentedPointGrid(expandedBbox, poly, poles, nPointsPerDimension)

	radiusOfRayInfluence := actionRadiusRatio * expandedBbox.Width()
	forfeitDistance := math.Sqrt(bbox.Width()*bbox.Width()*bbox.Height()*bbox.Height())

	selected := make([]geom.Edge, 0, n)
	for i := 0; i < n && i < len(clipped); i++ {
		minDistRays := minDistancesToEdges(grid, selected, forfeitDistance)
		minDistPoles := minDistancesToCircles(grid, poles, forfeitDistance)

		bestIdx, bestLoss := -1, math.Inf(1)
		for idx, candidate := range clipped {
			loss := pierLoss(candidate, grid, minDistRays, minDistPoles, radiusOfRayInfluence)
			if loss < bestLoss {
				bestLoss, bestIdx = loss, idx
			}
		}
		selected = append(selected, clipped[bestIdx])
	}
	return selected
}

// rayTransformations builds raysPerAngle parallel translations of the base
// ray across bbox, each then rotated by nAngles evenly spaced angles over
// [0, π).
func rayTransformations(bbox geom.Rect, raysPerAngle, nAngles int) []geom.Transformation {
	dx := bbox.Width() / float64(raysPerAngle)
	translations := make([]geom.Transformation, raysPerAngle)
	for i := range translations {
		x := bbox.XMin + dx*float64(i)
		translations[i] = geom.FromTranslation(x, 0)
	}

	out := make([]geom.Transformation, 0, raysPerAngle*nAngles)
	for a := 0; a < nAngles; a++ {
		angle := math.Pi * float64(a) / float64(nAngles)
		for _, tr := range translations {
			out = append(out, tr.Rotate(angle))
		}
	}
	return out
}

// clipToPolygon clips ray against poly's boundary, returning the segments
// that lie inside the polygon (pairing up ordered ray/edge intersections
// entry-exit), each trimmed by clippingTrim.
func clipToPolygon(poly *geom.SPolygon, ray geom.Edge) []geom.Edge {
	var hits []geom.Point
	for _, edge := range poly.Edges() {
		if p, ok := edge.IntersectEdge(ray); ok {
			hits = append(hits, p)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return ray.Start.Distance(hits[i]) < ray.Start.Distance(hits[j])
	})

	var out []geom.Edge
	for i := 0; i+1 < len(hits); i += 2 {
		start, end := hits[i], hits[i+1]
		if start == end {
			continue
		}
		e, err := geom.NewEdge(start, end)
		if err != nil {
			continue
		}
		out = append(out, e.Scale(clippingTrim))
	}
	return out
}

// unrepresentedPointGrid lays an n×n lattice over bbox, keeping only the
// points that fall inside poly and outside every pole.
func unrepresentedPointGrid(bbox geom.Rect, poly *geom.SPolygon, poles []geom.Circle, n int) []geom.Point {
	xs := linspace(bbox.XMin, bbox.XMax, n)
	ys := linspace(bbox.YMin, bbox.YMax, n)

	var grid []geom.Point
	for _, x := range xs {
		for _, y := range ys {
			p := geom.NewPoint(x, y)
			if !poly.CollidesWithPoint(p) {
				continue
			}
			coveredByPole := false
			for _, pole := range poles {
				if pole.CollidesWithPoint(p) {
					coveredByPole = true
					break
				}
			}
			if !coveredByPole {
				grid = append(grid, p)
			}
		}
	}
	return grid
}

func linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

func minDistancesToEdges(points []geom.Point, edges []geom.Edge, forfeit float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		d := forfeit
		for _, e := range edges {
			if dd := e.DistanceTo(p); dd < d {
				d = dd
			}
		}
		out[i] = d
	}
	return out
}

func minDistancesToCircles(points []geom.Point, circles []geom.Circle, forfeit float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		d := forfeit
		for _, c := range circles {
			if dd := c.DistanceTo(p); dd < d {
				d = dd
			}
		}
		out[i] = d
	}
	return out
}

// pierLoss sums, over every grid point, the squared distance to whichever
// of the nearest pole or nearest ray (existing selections plus candidate)
// is closer, counting the ray only when it comes within radiusOfInfluence.
func pierLoss(candidate geom.Edge, points []geom.Point, minDistRays, minDistPoles []float64, radiusOfInfluence float64) float64 {
	var loss float64
	for i, p := range points {
		minDistRay := math.Min(minDistRays[i], candidate.DistanceTo(p))

		var d float64
		if minDistRay < radiusOfInfluence {
			d = math.Min(minDistPoles[i], minDistRay)
		} else {
			d = minDistPoles[i]
		}
		loss += d * d
	}
	return loss
}
