package cde

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
	"github.com/arl/cde/surrogate"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	bbox, err := geom.NewRect(0, 0, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	return New(DefaultConfig(bbox))
}

func rectPolygon(t *testing.T, xMin, yMin, xMax, yMax float64) *geom.SPolygon {
	t.Helper()
	r, err := geom.NewRect(xMin, yMin, xMax, yMax)
	if err != nil {
		t.Fatal(err)
	}
	poly := geom.FromRect(r)
	surrogate.Generate(poly, geom.DefaultSPSurrogateConfig)
	return poly
}

func TestDetectPointCollision(t *testing.T) {
	e := newTestEngine(t)
	shape := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, shape, geom.Interior)))

	assert.True(t, e.DetectPointCollision(geom.NewPoint(15, 15), nil))
	assert.False(t, e.DetectPointCollision(geom.NewPoint(50, 50), nil))
}

func TestDetectPolyCollisionDisjoint(t *testing.T) {
	e := newTestEngine(t)
	placed := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, placed, geom.Interior)))

	candidate := rectPolygon(t, 50, 50, 60, 60)
	assert.False(t, e.DetectPolyCollision(candidate, nil))
}

func TestDetectPolyCollisionOverlapping(t *testing.T) {
	e := newTestEngine(t)
	placed := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, placed, geom.Interior)))

	candidate := rectPolygon(t, 15, 15, 25, 25)
	assert.True(t, e.DetectPolyCollision(candidate, nil))
}

func TestDetectPolyCollisionOutsideBounds(t *testing.T) {
	e := newTestEngine(t)
	bin, _ := geom.NewRect(0, 0, 100, 100)
	binShape := geom.FromRect(bin)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(hazard.NewBinExteriorEntity(), binShape, geom.Exterior)))

	// the candidate pokes out past the engine's root bbox: the engine bbox
	// no longer surrounds it, so this is reported as a collision regardless
	// of what's actually registered.
	straddling := rectPolygon(t, 90, 90, 110, 110)
	assert.True(t, e.DetectPolyCollision(straddling, nil))

	// zero overlap with the root bbox entirely.
	disjoint := rectPolygon(t, 200, 200, 210, 210)
	assert.True(t, e.DetectPolyCollision(disjoint, nil))
}

func TestItemVsItemCollision(t *testing.T) {
	e := newTestEngine(t)

	item1 := rectPolygon(t, 0, 0, 10, 10)
	entity1 := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity1, item1, geom.Interior)))

	item2 := rectPolygon(t, 5, 5, 15, 15)
	assert.True(t, e.DetectPolyCollision(item2, nil))

	item3 := rectPolygon(t, 20, 20, 30, 30)
	assert.False(t, e.DetectPolyCollision(item3, nil))
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	item1 := rectPolygon(t, 0, 0, 10, 10)
	entity1 := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity1, item1, geom.Interior)))

	snap := e.Save()

	item2 := rectPolygon(t, 50, 50, 60, 60)
	entity2 := hazard.NewPlacedItemEntity(2, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity2, item2, geom.Interior)))
	assert.True(t, e.DetectPointCollision(geom.NewPoint(55, 55), nil))

	e.Restore(snap)

	assert.False(t, e.DetectPointCollision(geom.NewPoint(55, 55), nil))
	assert.True(t, e.DetectPointCollision(geom.NewPoint(5, 5), nil))
}

func TestDeferredDeregisterRequiresCommit(t *testing.T) {
	e := newTestEngine(t)
	item := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, item, geom.Interior)))

	assert.NoError(t, e.DeregisterHazard(entity, true))
	assert.False(t, e.DetectPointCollision(geom.NewPoint(15, 15), nil))

	e.CommitDeregisters()
	assert.Error(t, e.DeregisterHazard(entity, false))
}

func TestActivateDeactivateHazard(t *testing.T) {
	e := newTestEngine(t)
	item := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, item, geom.Interior)))

	assert.NoError(t, e.DeactivateHazard(entity))
	assert.False(t, e.DetectPointCollision(geom.NewPoint(15, 15), nil))

	assert.NoError(t, e.ActivateHazard(entity))
	assert.True(t, e.DetectPointCollision(geom.NewPoint(15, 15), nil))
}

func TestDetectSurrCollisionIsConservativeSubset(t *testing.T) {
	e := newTestEngine(t)
	item := rectPolygon(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	assert.NoError(t, e.RegisterHazard(hazard.NewHazard(entity, item, geom.Interior)))

	candidate := rectPolygon(t, 15, 15, 25, 25)
	if e.DetectSurrCollision(candidate, nil) {
		assert.True(t, e.DetectPolyCollision(candidate, nil), "any surrogate-confirmed collision must also be a real collision")
	}
}
