package cde

import (
	"log"

	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
	"github.com/arl/cde/quadtree"
)

// Engine is the collision detection engine: a region quadtree indexing
// every registered hazard, answering point, polygon and surrogate collision
// queries against the active subset of them.
type Engine struct {
	config   Config
	root     *quadtree.Node
	registry map[hazard.Entity]*hazard.Hazard
	pending  []hazard.Entity
}

// New builds an empty Engine over config.Bbox.
func New(config Config) *Engine {
	return &Engine{
		config:   config,
		root:     quadtree.NewRoot(config.Bbox, config.QuadtreeDepth),
		registry: make(map[hazard.Entity]*hazard.Hazard),
	}
}

// RegisterHazard adds h to the engine, failing with ErrAlreadyRegistered if
// its entity is already tracked.
func (e *Engine) RegisterHazard(h *hazard.Hazard) error {
	if _, exists := e.registry[h.Entity]; exists {
		return ErrAlreadyRegistered
	}
	e.registry[h.Entity] = h
	e.root.RegisterHazard(quadtree.NewRootHazard(h, e.config.Bbox))
	return nil
}

// SurrogateConfig returns the surrogate generation budget this engine was
// configured with.
func (e *Engine) SurrogateConfig() geom.SPSurrogateConfig { return e.config.SurrogateConfig }

// RegisterItem is a convenience wrapper generating and attaching a
// fail-fast surrogate to shape (per the engine's SurrogateConfig) before
// registering it as a PlacedItem hazard.
func (e *Engine) RegisterItem(itemID int, placement geom.DTransformation, shape *geom.SPolygon, generate func(*geom.SPolygon, geom.SPSurrogateConfig) *geom.SPSurrogate) error {
	if shape.Surrogate == nil && generate != nil {
		generate(shape, e.config.SurrogateConfig)
	}
	entity := hazard.NewPlacedItemEntity(itemID, placement)
	return e.RegisterHazard(hazard.NewHazard(entity, shape, geom.Interior))
}

// DeregisterHazard removes entity from the engine. If deferred is true, the
// hazard is deactivated immediately (queries stop seeing it right away) but
// the quadtree structure isn't pruned until the next CommitDeregisters,
// batching what would otherwise be a lot of tree restructuring during, say,
// an optimizer's hot removal/insertion loop.
func (e *Engine) DeregisterHazard(entity hazard.Entity, deferred bool) error {
	if _, ok := e.registry[entity]; !ok {
		return ErrUnknownHazard
	}
	if deferred {
		e.root.SetActive(entity, false)
		e.pending = append(e.pending, entity)
		return nil
	}
	delete(e.registry, entity)
	e.root.DeregisterHazard(entity)
	return nil
}

// CommitDeregisters flushes every hazard deregistered with deferred=true,
// pruning them out of both the registry and the quadtree.
func (e *Engine) CommitDeregisters() {
	for _, entity := range e.pending {
		delete(e.registry, entity)
		e.root.DeregisterHazard(entity)
	}
	if len(e.pending) > 0 {
		log.Printf("cde: committed %d deferred deregisters", len(e.pending))
	}
	e.pending = nil
}

// ActivateHazard re-enables a previously deactivated hazard.
func (e *Engine) ActivateHazard(entity hazard.Entity) error {
	h, ok := e.registry[entity]
	if !ok {
		return ErrUnknownHazard
	}
	h.Active = true
	e.root.SetActive(entity, true)
	return nil
}

// DeactivateHazard disables a hazard without removing it, so it can be
// cheaply reactivated; used while speculatively testing whether removing
// one item unblocks a placement elsewhere.
func (e *Engine) DeactivateHazard(entity hazard.Entity) error {
	h, ok := e.registry[entity]
	if !ok {
		return ErrUnknownHazard
	}
	h.Active = false
	e.root.SetActive(entity, false)
	return nil
}

func (e *Engine) includeFn(filter hazard.Filter) quadtree.Include {
	return func(entity hazard.Entity, scope geom.GeoPosition) bool {
		h, ok := e.registry[entity]
		if !ok {
			return false
		}
		return h.Relevant(filter)
	}
}

// virtualRoot returns the smallest quadtree node that still fully contains
// bbox, so area-bounded queries skip re-descending from the true root
// every time.
func (e *Engine) virtualRoot(bbox geom.Rect) *quadtree.Node {
	node := e.root
	for node.HasChildren() {
		next := (*quadtree.Node)(nil)
		for _, c := range node.Children() {
			if c != nil && c.Bbox().RelationTo(bbox) == geom.Surrounding {
				next = c
				break
			}
		}
		if next == nil {
			break
		}
		node = next
	}
	return node
}

// DetectPointCollision reports whether point p collides with any hazard
// admitted by filter.
func (e *Engine) DetectPointCollision(p geom.Point, filter hazard.Filter) bool {
	return e.root.CollidesWithPoint(p, e.includeFn(filter))
}

// DetectSurrCollision runs the cheap, partial fail-fast test: it can
// confirm a collision between shape's surrogate and a registered hazard's
// surrogate, but a false result doesn't prove there's no collision (use
// DetectPolyCollision for that).
func (e *Engine) DetectSurrCollision(shape *geom.SPolygon, filter hazard.Filter) bool {
	if shape.Surrogate == nil {
		return false
	}
	include := e.includeFn(filter)
	candidates := make(map[hazard.Entity]struct{})
	e.virtualRoot(shape.Bbox).QueryArea(shape.Bbox, include, candidates)

	for entity := range candidates {
		h := e.registry[entity]
		if h.Shape.Surrogate == nil {
			continue
		}
		if geom.SurrogatesCollide(shape.Surrogate, h.Shape.Surrogate) {
			return true
		}
	}
	return false
}

// DetectPolyCollision is the authoritative collision test: it reports
// whether shape overlaps any hazard admitted by filter.
func (e *Engine) DetectPolyCollision(shape *geom.SPolygon, filter hazard.Filter) bool {
	if e.root.Bbox().RelationTo(shape.Bbox) != geom.Surrounding {
		return true
	}

	include := e.includeFn(filter)
	candidates := make(map[hazard.Entity]struct{})
	e.virtualRoot(shape.Bbox).QueryArea(shape.Bbox, include, candidates)

	for entity := range candidates {
		h := e.registry[entity]
		if geom.PolygonsCollide(shape, h.Shape) {
			return true
		}
		if PolyOrHazardContained(shape, h) {
			return true
		}
	}
	return false
}

// CollectPolyCollisions returns every hazard (admitted by filter) that
// overlaps shape, deduplicated by entity.
func (e *Engine) CollectPolyCollisions(shape *geom.SPolygon, filter hazard.Filter) []*hazard.Hazard {
	include := e.includeFn(filter)
	candidates := make(map[hazard.Entity]struct{})
	e.virtualRoot(shape.Bbox).QueryArea(shape.Bbox, include, candidates)

	collector := hazard.NewCollector()
	for entity := range candidates {
		h := e.registry[entity]
		if geom.PolygonsCollide(shape, h.Shape) {
			collector.Add(h, filter)
		}
	}
	return collector.Hazards()
}

// CollectSurrCollisions is the CollectPolyCollisions analog running only
// the cheap surrogate-level test; results are a subset of what
// CollectPolyCollisions would return.
func (e *Engine) CollectSurrCollisions(shape *geom.SPolygon, filter hazard.Filter) []*hazard.Hazard {
	if shape.Surrogate == nil {
		return nil
	}
	include := e.includeFn(filter)
	candidates := make(map[hazard.Entity]struct{})
	e.virtualRoot(shape.Bbox).QueryArea(shape.Bbox, include, candidates)

	collector := hazard.NewCollector()
	for entity := range candidates {
		h := e.registry[entity]
		if h.Shape.Surrogate != nil && geom.SurrogatesCollide(shape.Surrogate, h.Shape.Surrogate) {
			collector.Add(h, filter)
		}
	}
	return collector.Hazards()
}

// PolyOrHazardContained reports whether shape is entirely contained within
// hazard h's shape, or h's shape entirely within shape — the two ways a
// containment-scoped hazard (the bin exterior, a hole) can still register
// as "no free-floating overlap" despite a raw edge/vertex test disagreeing.
func PolyOrHazardContained(shape *geom.SPolygon, h *hazard.Hazard) bool {
	switch shape.Bbox.RelationTo(h.Shape.Bbox) {
	case geom.Enclosed, geom.Surrounding:
	default:
		return false
	}

	allAin := true
	for i := 0; i < shape.NVertices(); i++ {
		if !h.Shape.CollidesWithPoint(shape.Vertex(i)) {
			allAin = false
			break
		}
	}
	if allAin {
		return true
	}

	allBin := true
	for i := 0; i < h.Shape.NVertices(); i++ {
		if !shape.CollidesWithPoint(h.Shape.Vertex(i)) {
			allBin = false
			break
		}
	}
	return allBin
}
