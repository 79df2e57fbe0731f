package hazard

// Filter decides whether a hazard should be excluded ("is irrelevant") from
// a particular collision query. The common use is excluding an item's own
// hazard from a query that's testing whether that same item fits.
type Filter interface {
	IsIrrelevant(h *Hazard) bool
}

// EntityFilter marks hazards irrelevant when their entity is one of a fixed
// set, typically used to exclude an item's own previously-registered hazard
// while re-evaluating its own placement.
type EntityFilter struct {
	Entities map[Entity]struct{}
}

// NewEntityFilter builds an EntityFilter excluding exactly the given entities.
func NewEntityFilter(entities ...Entity) *EntityFilter {
	set := make(map[Entity]struct{}, len(entities))
	for _, e := range entities {
		set[e] = struct{}{}
	}
	return &EntityFilter{Entities: set}
}

func (f *EntityFilter) IsIrrelevant(h *Hazard) bool {
	_, excluded := f.Entities[h.Entity]
	return excluded
}

// QualityZoneFilter marks an InferiorQualityZone hazard irrelevant whenever
// its quality is at least the caller's minimum acceptable quality: an item
// that tolerates quality q ignores zones whose quality is q or better.
type QualityZoneFilter struct {
	MinAcceptedQuality int
}

func (f *QualityZoneFilter) IsIrrelevant(h *Hazard) bool {
	return h.Entity.Kind == InferiorQualityZone && h.Entity.Quality >= f.MinAcceptedQuality
}

// CompositeFilter is the conjunction ("AND") of one or more alternative
// groups ("OR"): a hazard is irrelevant overall only if every group
// contains at least one filter that marks it irrelevant. With a single
// group this degenerates to a plain OR; with singleton groups it degenerates
// to a plain AND.
type CompositeFilter struct {
	Groups [][]Filter
}

// NewCompositeFilter builds a CompositeFilter from its OR-groups.
func NewCompositeFilter(groups ...[]Filter) *CompositeFilter {
	return &CompositeFilter{Groups: groups}
}

func (f *CompositeFilter) IsIrrelevant(h *Hazard) bool {
	if len(f.Groups) == 0 {
		return false
	}
	for _, group := range f.Groups {
		matched := false
		for _, sub := range group {
			if sub.IsIrrelevant(h) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
