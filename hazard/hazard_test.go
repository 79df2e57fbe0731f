package hazard

import (
	"testing"

	"github.com/arl/cde/geom"
)

func square(t *testing.T) *geom.SPolygon {
	t.Helper()
	poly, err := geom.NewSPolygon([]geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return poly
}

func TestEntityEqualityIsByValue(t *testing.T) {
	a := NewPlacedItemEntity(1, geom.NewDTransformation(0, 0, 0))
	b := NewPlacedItemEntity(1, geom.NewDTransformation(0, 0, 0))
	c := NewPlacedItemEntity(1, geom.NewDTransformation(0, 1, 0))

	if a != b {
		t.Error("identical placed-item entities should compare equal")
	}
	if a == c {
		t.Error("entities with different placements should compare unequal")
	}
}

func TestHazardRelevantRespectsActiveAndFilter(t *testing.T) {
	h := NewHazard(NewPlacedItemEntity(1, geom.EmptyDTransformation), square(t), geom.Interior)

	if !h.Relevant(nil) {
		t.Error("active hazard with no filter should be relevant")
	}

	h.Active = false
	if h.Relevant(nil) {
		t.Error("inactive hazard should never be relevant")
	}
	h.Active = true

	filter := NewEntityFilter(h.Entity)
	if h.Relevant(filter) {
		t.Error("hazard excluded by filter should not be relevant")
	}
}

func TestCompositeFilterIsAndOfOrs(t *testing.T) {
	item1 := NewPlacedItemEntity(1, geom.EmptyDTransformation)
	item2 := NewPlacedItemEntity(2, geom.EmptyDTransformation)

	h1 := NewHazard(item1, square(t), geom.Interior)
	h2 := NewHazard(item2, square(t), geom.Interior)

	excludeItem1 := NewEntityFilter(item1)
	qualityFilter := &QualityZoneFilter{MinAcceptedQuality: 5}

	// AND of two groups: a hazard is irrelevant only if it matches BOTH
	// groups' conditions. Neither h1 nor h2 is a quality zone, so the
	// quality group never matches and nothing should ever be irrelevant.
	composite := NewCompositeFilter(
		[]Filter{excludeItem1},
		[]Filter{qualityFilter},
	)
	if composite.IsIrrelevant(h1) {
		t.Error("AND-of-ORs: h1 shouldn't be irrelevant when the quality group never matches")
	}
	if composite.IsIrrelevant(h2) {
		t.Error("h2 matches neither group")
	}

	// single-group composite degenerates to plain OR.
	orOnly := NewCompositeFilter([]Filter{excludeItem1})
	if !orOnly.IsIrrelevant(h1) {
		t.Error("single-group composite should behave as the group's OR")
	}
	if orOnly.IsIrrelevant(h2) {
		t.Error("h2 doesn't match the only group")
	}
}

func TestQualityZoneFilterDirection(t *testing.T) {
	filter := &QualityZoneFilter{MinAcceptedQuality: 5}

	sufficient := NewHazard(NewInferiorQualityZoneEntity(5), square(t), geom.Interior)
	if !filter.IsIrrelevant(sufficient) {
		t.Error("a zone whose quality equals the minimum accepted quality should be ignored")
	}

	better := NewHazard(NewInferiorQualityZoneEntity(9), square(t), geom.Interior)
	if !filter.IsIrrelevant(better) {
		t.Error("a zone with quality above the minimum accepted quality should be ignored")
	}

	worse := NewHazard(NewInferiorQualityZoneEntity(2), square(t), geom.Interior)
	if filter.IsIrrelevant(worse) {
		t.Error("a zone with quality below the minimum accepted quality must still be a hazard")
	}
}

func TestCollectorDeduplicatesByEntity(t *testing.T) {
	entity := NewPlacedItemEntity(1, geom.EmptyDTransformation)
	h := NewHazard(entity, square(t), geom.Interior)

	c := NewCollector()
	c.Add(h, nil)
	c.Add(h, nil)

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
