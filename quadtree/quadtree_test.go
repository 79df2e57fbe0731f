package quadtree

import (
	"testing"

	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
)

func rect(t *testing.T, xMin, yMin, xMax, yMax float64) *geom.SPolygon {
	t.Helper()
	r, err := geom.NewRect(xMin, yMin, xMax, yMax)
	if err != nil {
		t.Fatal(err)
	}
	return geom.FromRect(r)
}

func TestRegisterAndQueryPoint(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	root := NewRoot(bbox, 5)

	shape := rect(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := hazard.NewHazard(entity, shape, geom.Interior)

	root.RegisterHazard(NewRootHazard(h, bbox))

	if !root.CollidesWithPoint(geom.NewPoint(15, 15), AcceptAll) {
		t.Error("point inside hazard shape should collide")
	}
	if root.CollidesWithPoint(geom.NewPoint(50, 50), AcceptAll) {
		t.Error("point far from hazard shape should not collide")
	}
}

func TestDeregisterHazardRemovesIt(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	root := NewRoot(bbox, 5)

	shape := rect(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := hazard.NewHazard(entity, shape, geom.Interior)
	root.RegisterHazard(NewRootHazard(h, bbox))

	root.DeregisterHazard(entity)
	if root.CollidesWithPoint(geom.NewPoint(15, 15), AcceptAll) {
		t.Error("deregistered hazard should no longer collide")
	}
}

func TestSetActiveSuppressesQueries(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	root := NewRoot(bbox, 5)

	shape := rect(t, 10, 10, 20, 20)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := hazard.NewHazard(entity, shape, geom.Interior)
	root.RegisterHazard(NewRootHazard(h, bbox))

	root.SetActive(entity, false)
	if root.CollidesWithPoint(geom.NewPoint(15, 15), AcceptAll) {
		t.Error("deactivated hazard should not collide")
	}

	root.SetActive(entity, true)
	if !root.CollidesWithPoint(geom.NewPoint(15, 15), AcceptAll) {
		t.Error("reactivated hazard should collide again")
	}
}

func TestDefinitelyCollidesWithPointEntireVsUnknown(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	root := NewRoot(bbox, 1)

	shape := rect(t, -10, -10, 110, 110) // extends past the root bbox on every side: always Entire
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := hazard.NewHazard(entity, shape, geom.Interior)
	root.RegisterHazard(NewRootHazard(h, bbox))

	if got := root.DefinitelyCollidesWithPoint(geom.NewPoint(50, 50), AcceptAll); got != True {
		t.Errorf("DefinitelyCollidesWithPoint() = %v, want True", got)
	}
	if got := root.DefinitelyCollidesWithPoint(geom.NewPoint(500, 500), AcceptAll); got != False {
		t.Errorf("DefinitelyCollidesWithPoint() outside bbox = %v, want False", got)
	}
}

func TestQueryAreaFindsOverlappingHazards(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	root := NewRoot(bbox, 5)

	shapeA := rect(t, 10, 10, 20, 20)
	entityA := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	root.RegisterHazard(NewRootHazard(hazard.NewHazard(entityA, shapeA, geom.Interior), bbox))

	shapeB := rect(t, 80, 80, 90, 90)
	entityB := hazard.NewPlacedItemEntity(2, geom.EmptyDTransformation)
	root.RegisterHazard(NewRootHazard(hazard.NewHazard(entityB, shapeB, geom.Interior), bbox))

	query, _ := geom.NewRect(5, 5, 25, 25)
	found := make(map[hazard.Entity]struct{})
	root.QueryArea(query, AcceptAll, found)

	if _, ok := found[entityA]; !ok {
		t.Error("expected to find entityA")
	}
	if _, ok := found[entityB]; ok {
		t.Error("did not expect to find entityB")
	}
}

func TestConstrictIsDeterministic(t *testing.T) {
	bbox, _ := geom.NewRect(0, 0, 100, 100)
	shape := rect(t, 10, 10, 60, 60)
	entity := hazard.NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := hazard.NewHazard(entity, shape, geom.Interior)

	root := NewRootHazard(h, bbox)
	childBboxes := bbox.Quadrants()

	a := root.Constrict(childBboxes)
	b := root.Constrict(childBboxes)
	for i := range a {
		var pa, pb Presence
		if a[i] != nil {
			pa = a[i].Presence
		}
		if b[i] != nil {
			pb = b[i].Presence
		}
		if (a[i] == nil) != (b[i] == nil) || pa != pb {
			t.Errorf("Constrict() quadrant %d not deterministic: %v != %v", i, a[i], b[i])
		}
	}
}
