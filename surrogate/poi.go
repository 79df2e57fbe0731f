// Package surrogate generates fail-fast collision-rejection geometry for
// polygons: the pole of inaccessibility, additional interior poles, and
// interior piers covering what the poles leave uncovered.
package surrogate

import (
	"container/heap"
	"math"

	"github.com/arl/assertgo"

	"github.com/arl/cde/geom"
)

const (
	// poiPrecision is the smallest cell size (as a fraction of the starting
	// bbox's shorter side) worth subdividing further.
	poiPrecision = 1e-3
	// poiMaxProbes bounds the best-first search regardless of precision, so
	// a pathological polygon can't spin the search forever.
	poiMaxProbes = 2000
)

// poiCell is one candidate square probed by the best-first search. distance
// is the value of scoreFn at the cell's center; maxDistance is an upper
// bound on the score any point in the cell could achieve, used to
// prioritize and prune the search.
type poiCell struct {
	bbox        geom.Rect
	distance    float64
	maxDistance float64
}

type poiQueue []poiCell

func (q poiQueue) Len() int            { return len(q) }
func (q poiQueue) Less(i, j int) bool  { return q[i].maxDistance > q[j].maxDistance }
func (q poiQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *poiQueue) Push(x interface{}) { *q = append(*q, x.(poiCell)) }
func (q *poiQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// scoreFn scores a candidate pole center: how good a pole would be if
// centered there. Larger is better. It must be 1-Lipschitz-ish so that
// adding a cell's half-diagonal to its center score yields a valid upper
// bound for every point inside the cell.
type scoreFn func(p geom.Point) float64

func newPoiCell(score scoreFn, bbox geom.Rect) poiCell {
	center := bbox.Centroid()
	d := score(center)
	radius := math.Hypot(bbox.Width(), bbox.Height()) / 2
	return poiCell{bbox: bbox, distance: d, maxDistance: d + radius}
}

// bestFirstSearch runs a Polylabel-style best-first quadtree search over
// bbox, returning the center and score of the best point found according to
// score.
func bestFirstSearch(bbox geom.Rect, score scoreFn, maxTries int) (geom.Point, float64) {
	cellSize := math.Min(bbox.Width(), bbox.Height())
	minSize := cellSize * poiPrecision

	queue := &poiQueue{newPoiCell(score, bbox)}
	heap.Init(queue)

	assert.True(queue.Len() > 0, "surrogate: search queue seeded empty")
	bestCell := (*queue)[0]

	probes := 0
	for queue.Len() > 0 && probes < maxTries {
		cell := heap.Pop(queue).(poiCell)
		probes++

		if cell.distance > bestCell.distance {
			bestCell = cell
		}

		if cell.maxDistance-bestCell.distance <= poiPrecision*cellSize {
			continue
		}

		half := math.Max(cell.bbox.Width(), cell.bbox.Height()) / 2
		if half < minSize {
			continue
		}

		for _, quad := range cell.bbox.Quadrants() {
			heap.Push(queue, newPoiCell(score, quad))
		}
	}

	return bestCell.bbox.Centroid(), bestCell.distance
}

// signedDistance returns the distance from p to the polygon boundary,
// positive when p is inside the polygon.
func signedDistance(poly *geom.SPolygon, p geom.Point) float64 {
	d := poly.DistanceTo(p)
	if poly.CollidesWithPoint(p) {
		return d
	}
	return -d
}

// FindPoleOfInaccessibility runs a best-first quadtree search for the
// largest disk that fits entirely within poly, seeded from poly's bounding
// box. It is used both as the polygon's cached POI field and as the first
// pole generated by GeneratePoles.
func FindPoleOfInaccessibility(poly *geom.SPolygon) geom.Circle {
	center, d := bestFirstSearch(poly.Bbox, func(p geom.Point) float64 {
		return signedDistance(poly, p)
	}, poiMaxProbes)
	if d < 0 {
		d = 0
	}
	return geom.NewCircle(center, d)
}
