package hazard

// Collector accumulates hazards discovered while walking the quadtree,
// deduplicating by entity since the same hazard can be reachable through
// more than one node during a broad query.
type Collector struct {
	seen   map[Entity]struct{}
	result []*Hazard
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[Entity]struct{})}
}

// Add records h if it hasn't already been collected and filter allows it.
func (c *Collector) Add(h *Hazard, filter Filter) {
	if !h.Relevant(filter) {
		return
	}
	if _, dup := c.seen[h.Entity]; dup {
		return
	}
	c.seen[h.Entity] = struct{}{}
	c.result = append(c.result, h)
}

// Hazards returns every hazard collected so far.
func (c *Collector) Hazards() []*Hazard { return c.result }

// Len returns the number of hazards collected so far.
func (c *Collector) Len() int { return len(c.result) }
