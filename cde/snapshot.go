package cde

import (
	"github.com/arl/cde/hazard"
	"github.com/arl/cde/quadtree"
)

// Snapshot is a point-in-time copy of an Engine's hazard registry, cheap
// enough to take before a speculative placement attempt and restore after,
// without having to undo every individual register/deregister call made in
// between.
type Snapshot struct {
	registry map[hazard.Entity]*hazard.Hazard
	active   map[hazard.Entity]bool
}

// Save commits any deferred deregisters, then captures the current state of
// e.
func (e *Engine) Save() *Snapshot {
	e.CommitDeregisters()
	snap := &Snapshot{
		registry: make(map[hazard.Entity]*hazard.Hazard, len(e.registry)),
		active:   make(map[hazard.Entity]bool, len(e.registry)),
	}
	for entity, h := range e.registry {
		snap.registry[entity] = h
		snap.active[entity] = h.Active
	}
	return snap
}

// Restore replaces e's current hazard set with the one captured in snap,
// rebuilding the quadtree from scratch. Rebuilding is O(n) in the number of
// registered hazards rather than an incremental undo, trading a little
// restore-time cost for a much simpler, proven-correct implementation.
func (e *Engine) Restore(snap *Snapshot) {
	e.registry = make(map[hazard.Entity]*hazard.Hazard, len(snap.registry))
	e.pending = nil
	e.root = quadtree.NewRoot(e.config.Bbox, e.config.QuadtreeDepth)

	for entity, h := range snap.registry {
		e.registry[entity] = h
		e.root.RegisterHazard(quadtree.NewRootHazard(h, e.config.Bbox))
		if !snap.active[entity] {
			e.root.SetActive(entity, false)
		}
	}
}
