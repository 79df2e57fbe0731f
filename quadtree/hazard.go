// Package quadtree implements the region quadtree used to accelerate
// collision queries: each node caches, for every registered hazard, whether
// that hazard is Absent, Entire or only Partial over the node's bounding
// box, so that deep queries can be pruned the moment a hazard is known to
// be fully absent or fully present.
package quadtree

import (
	"weak"

	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
)

// Presence describes how much of a hazard's shape intersects a quadtree
// node's bounding box.
type Presence int

const (
	// Absent means no part of the node's bbox lies in the hazard's
	// dangerous region.
	Absent Presence = iota
	// Partial means the hazard's boundary crosses the node's bbox: some of
	// the bbox is inside the hazard, some outside.
	Partial
	// Entire means the node's bbox lies completely in the hazard's
	// dangerous region: inside the shape for an Interior-scoped hazard,
	// outside it for an Exterior-scoped one.
	Entire
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "Absent"
	case Partial:
		return "Partial"
	case Entire:
		return "Entire"
	default:
		return "Unknown"
	}
}

// partialEdgesThreshold is the number of crossing edges above which a node
// stops tracking an explicit edge-index list and records "every edge of
// the shape" as its candidate set instead.
const partialEdgesThreshold = 10

// partialEdges is the set of a hazard shape's edges that are candidates for
// intersecting a given node's bbox.
type partialEdges struct {
	// all is true when more than partialEdgesThreshold edges crossed the
	// node's bbox; the candidate set is then every edge of the shape rather
	// than an explicit index list.
	all     bool
	indices []int
}

func fullEdgeSet(shape *geom.SPolygon) partialEdges {
	idx := make([]int, shape.NVertices())
	for i := range idx {
		idx[i] = i
	}
	return narrowEdgeSet(shape, idx, shape.Bbox)
}

// narrowEdgeSet filters candidate edge indices down to those that actually
// collide with bbox, switching to the "all" fallback if more than
// partialEdgesThreshold of them remain.
func narrowEdgeSet(shape *geom.SPolygon, candidates []int, bbox geom.Rect) partialEdges {
	kept := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if bbox.CollidesWithEdge(shape.Edge(idx)) {
			kept = append(kept, idx)
		}
	}
	if len(kept) > partialEdgesThreshold {
		return partialEdges{all: true}
	}
	return partialEdges{indices: kept}
}

// Hazard is a hazard's manifestation within one quadtree node. Shape is held
// weakly, so the node itself never keeps the polygon alive. A manifestation
// whose shape is no longer reachable was dropped without being deregistered;
// Constrict and CollidesWithPoint panic when they meet one.
type Hazard struct {
	Entity   hazard.Entity
	Scope    geom.GeoPosition
	Shape    weak.Pointer[geom.SPolygon]
	Presence Presence
	edges    partialEdges // meaningful only when Presence == Partial
	active   bool
}

// NewRootHazard builds the hazard manifestation for the quadtree's root
// node, whose bbox is assumed to fully contain the hazard's shape's bbox
// unless told otherwise by relation.
func NewRootHazard(h *hazard.Hazard, rootBbox geom.Rect) *Hazard {
	shapeBbox := h.Shape.Bbox
	qh := &Hazard{Entity: h.Entity, Scope: h.Scope, Shape: weak.Make(h.Shape), active: true}

	switch rootBbox.RelationTo(shapeBbox) {
	case geom.Disjoint:
		qh.Presence = Absent
	case geom.Surrounding:
		// the shape's bbox fits inside the root, but the shape itself may
		// still not cover every corner of the root; fall through to a
		// boundary probe via the full edge set like any other partial case.
		qh.Presence = Partial
		qh.edges = fullEdgeSet(h.Shape)
	default:
		qh.Presence = Partial
		qh.edges = fullEdgeSet(h.Shape)
	}
	return qh
}

// Constrict derives this hazard's manifestation within each of the four
// quadrants childBboxes was subdivided into, in QuadrantNeighborLayout
// (NE/NW/SW/SE) order. Because every childBbox is a subset of the parent's
// bbox, any edge that didn't already appear in the parent's candidate set
// cannot intersect a child either, so a Partial parent narrows its existing
// edge set instead of re-scanning the whole shape. An Entire parent yields
// four Entire children.
//
// A quadrant with no crossing edge is classified jointly with its siblings
// instead of by a single corner probe: if an edge-adjacent neighbor
// (QuadrantNeighborLayout) is already known Entire, this quadrant is Entire
// too; if a neighbor is known Absent (or has no manifestation at all), this
// quadrant is Absent; otherwise the quadrant's centroid is tested against
// the shape, with the outcome depending on h.Scope (for an Exterior-scoped
// hazard, a point outside the shape means Entire, not Absent).
//
// Returns nil in a slot the hazard is Absent in (that child's manifestation
// should simply be dropped).
func (h *Hazard) Constrict(childBboxes [4]geom.Rect) [4]*Hazard {
	shape := h.Shape.Value()
	if shape == nil {
		panic("quadtree: hazard shape is gone but its manifestation was never deregistered")
	}

	switch h.Presence {
	case Absent:
		return [4]*Hazard{}
	case Entire:
		var out [4]*Hazard
		for i := range out {
			out[i] = &Hazard{Entity: h.Entity, Scope: h.Scope, Shape: h.Shape, Presence: Entire, active: true}
		}
		return out
	}

	var candidates []int
	if h.edges.all {
		candidates = allIndices(shape.NVertices())
	} else {
		candidates = h.edges.indices
	}

	var determined [4]bool
	var presences [4]Presence
	var edgeSets [4]partialEdges

	for i, childBbox := range childBboxes {
		edges := narrowEdgeSet(shape, candidates, childBbox)
		if len(edges.indices) > 0 || edges.all {
			determined[i] = true
			presences[i] = Partial
			edgeSets[i] = edges
		}
	}

	for i, childBbox := range childBboxes {
		if determined[i] {
			continue
		}
		presences[i] = h.classifyByNeighbors(shape, childBbox, i, determined, presences)
		determined[i] = true
	}

	var out [4]*Hazard
	for i := range out {
		switch presences[i] {
		case Absent:
			out[i] = nil
		case Entire:
			out[i] = &Hazard{Entity: h.Entity, Scope: h.Scope, Shape: h.Shape, Presence: Entire, active: true}
		case Partial:
			out[i] = &Hazard{Entity: h.Entity, Scope: h.Scope, Shape: h.Shape, Presence: Partial, edges: edgeSets[i], active: true}
		}
	}
	return out
}

// classifyByNeighbors decides the presence of a no-crossing-edge quadrant
// at index i: Entire if an edge-adjacent neighbor is already Entire,
// Absent if a neighbor is already known Absent, otherwise a scope-aware
// point test against the quadrant's centroid.
func (h *Hazard) classifyByNeighbors(shape *geom.SPolygon, childBbox geom.Rect, i int, determined [4]bool, presences [4]Presence) Presence {
	for _, n := range geom.QuadrantNeighborLayout[i] {
		if !determined[n] {
			continue
		}
		if presences[n] == Entire {
			return Entire
		}
		if presences[n] == Absent {
			return Absent
		}
	}

	inside := shape.CollidesWithPoint(childBbox.Centroid())
	switch h.Scope {
	case geom.Exterior:
		if !inside {
			return Entire
		}
	default: // Interior
		if inside {
			return Entire
		}
	}
	return Absent
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// CollidesWithPoint reports whether p collides with this hazard's
// manifestation, given that p is known to lie within the node's bbox this
// manifestation belongs to.
func (h *Hazard) CollidesWithPoint(p geom.Point) bool {
	switch h.Presence {
	case Entire:
		return true
	case Absent:
		return false
	default:
		shape := h.Shape.Value()
		if shape == nil {
			panic("quadtree: hazard shape is gone but its manifestation was never deregistered")
		}
		return shape.CollidesWithPoint(p)
	}
}
