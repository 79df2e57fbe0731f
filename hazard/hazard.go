package hazard

import "github.com/arl/cde/geom"

// Hazard pairs a hazard-causing Entity with the shape it occupies and
// whether it currently counts towards collision queries.
//
// Scope distinguishes which side of Shape is dangerous: Interior for a
// placed item, a hole or a quality zone (you must not overlap it), Exterior
// for the bin's exterior (you must not leave it).
type Hazard struct {
	Entity Entity
	Shape  *geom.SPolygon
	Scope  geom.GeoPosition
	Active bool
}

// NewHazard builds an active hazard.
func NewHazard(entity Entity, shape *geom.SPolygon, scope geom.GeoPosition) *Hazard {
	return &Hazard{Entity: entity, Shape: shape, Scope: scope, Active: true}
}

// Relevant reports whether h should be taken into account by a collision
// query with the given filter. A nil filter means every hazard is relevant.
func (h *Hazard) Relevant(filter Filter) bool {
	if !h.Active {
		return false
	}
	if filter == nil {
		return true
	}
	return !filter.IsIrrelevant(h)
}
