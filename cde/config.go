// Package cde implements the collision detection engine: the facade tying
// together the hazard model and the region quadtree to answer whether a
// candidate placement collides with anything already in the layout.
package cde

import "github.com/arl/cde/geom"

// Config configures a new Engine.
type Config struct {
	// Bbox is the containment bin's bounding box; the quadtree root covers
	// exactly this area, squared to its InflateToSquare so every subdivided
	// quadrant stays square too.
	Bbox geom.Rect
	// QuadtreeDepth is how many levels the quadtree may subdivide below the
	// root, from 1 to 10.
	QuadtreeDepth int
	// SurrogateConfig configures fail-fast surrogate generation for items
	// registered through RegisterItem.
	SurrogateConfig geom.SPSurrogateConfig
}

// DefaultConfig returns sensible defaults for bin.
func DefaultConfig(bbox geom.Rect) Config {
	return Config{
		Bbox:            bbox.InflateToSquare(),
		QuadtreeDepth:   6,
		SurrogateConfig: geom.DefaultSPSurrogateConfig,
	}
}
