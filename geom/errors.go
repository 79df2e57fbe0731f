package geom

import "errors"

// ErrDegenerateEdge is returned when an edge's start and end point coincide.
var ErrDegenerateEdge = errors.New("geom: degenerate edge, start == end")

// ErrDegeneratePolygon is returned when a simple polygon cannot be built
// from the given vertices.
var ErrDegeneratePolygon = errors.New("geom: degenerate polygon")

// ErrInvalidRect is returned when a rectangle's bounds are not well formed
// (x_min >= x_max or y_min >= y_max).
var ErrInvalidRect = errors.New("geom: invalid rectangle bounds")

// ErrNonFinite is returned when a coordinate is NaN or infinite where a
// finite value is required.
var ErrNonFinite = errors.New("geom: non-finite coordinate")
