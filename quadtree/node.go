package quadtree

import (
	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
)

// Tribool is a three-valued collision answer: True and False are authoritative,
// Unknown means the quadtree ran out of cheap structure and the caller must
// fall back to a real geometric test (typically against a surrogate or the
// full polygon).
type Tribool int

const (
	Unknown Tribool = iota
	True
	False
)

func (t Tribool) String() string {
	switch t {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Unknown"
	}
}

// Include reports whether a hazard should be taken into account by a query,
// given its entity and scope. CDEngine wires this to its active-hazard
// filter chain; the quadtree itself stays ignorant of filters.
type Include func(entity hazard.Entity, scope geom.GeoPosition) bool

// AcceptAll is the Include that admits every hazard.
func AcceptAll(hazard.Entity, geom.GeoPosition) bool { return true }

// Node is one cell of the region quadtree: a bounding box, the hazard
// manifestations known at this level, and (once subdivided) four children
// covering its NE/NW/SW/SE quadrants.
type Node struct {
	bbox     geom.Rect
	level    int
	hazards  map[hazard.Entity]*Hazard
	children [4]*Node
}

// NewRoot builds the root node of a quadtree covering bbox. depth is the
// number of levels the tree may still subdivide below this root; a node at
// level 0 never subdivides regardless of what it holds.
func NewRoot(bbox geom.Rect, depth int) *Node {
	return newNode(bbox, depth)
}

func newNode(bbox geom.Rect, level int) *Node {
	return &Node{bbox: bbox, level: level, hazards: make(map[hazard.Entity]*Hazard)}
}

// Bbox returns the node's bounding box.
func (n *Node) Bbox() geom.Rect { return n.bbox }

// HasChildren reports whether n has been subdivided.
func (n *Node) HasChildren() bool { return n.hasChildren() }

// Children returns n's four children in NE/NW/SW/SE order; all nil if n is
// a leaf.
func (n *Node) Children() [4]*Node { return n.children }

func (n *Node) hasChildren() bool { return n.children[0] != nil }

func (n *Node) shouldSubdivide() bool {
	return n.level > 0
}

func (n *Node) subdivide() {
	quads := n.bbox.Quadrants()
	for i, q := range quads {
		n.children[i] = newNode(q, n.level-1)
	}
	for _, existing := range n.hazards {
		n.propagateToChildren(existing)
	}
}

func (n *Node) propagateToChildren(qh *Hazard) {
	var bboxes [4]geom.Rect
	for i, c := range n.children {
		if c != nil {
			bboxes[i] = c.bbox
		}
	}
	constricted := qh.Constrict(bboxes)
	for i, c := range n.children {
		if c != nil && constricted[i] != nil {
			c.RegisterHazard(constricted[i])
		}
	}
}

// RegisterHazard inserts qh's manifestation into this node and, adaptively,
// into whatever subdivision is needed to keep Partial manifestations precise
// down to the configured quadtree depth.
func (n *Node) RegisterHazard(qh *Hazard) {
	if qh.Presence == Absent {
		return
	}
	n.hazards[qh.Entity] = qh

	if !n.hasChildren() {
		if qh.Presence == Partial && n.shouldSubdivide() {
			n.subdivide()
		}
		return
	}
	n.propagateToChildren(qh)
}

// DeregisterHazard removes every manifestation of entity from this subtree,
// then collapses any children left holding no hazards at all.
func (n *Node) DeregisterHazard(entity hazard.Entity) {
	delete(n.hazards, entity)
	if !n.hasChildren() {
		return
	}
	for _, c := range n.children {
		if c != nil {
			c.DeregisterHazard(entity)
		}
	}
	n.collapseIfEmpty()
}

func (n *Node) collapseIfEmpty() {
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if len(c.hazards) > 0 || c.hasChildren() {
			return
		}
	}
	n.children = [4]*Node{}
}

// SetActive flips the active flag on every manifestation of entity found in
// this subtree, leaving tree structure untouched. Inactive manifestations
// are skipped by every query regardless of the Include predicate passed in.
func (n *Node) SetActive(entity hazard.Entity, active bool) {
	if qh, ok := n.hazards[entity]; ok {
		qh.active = active
	}
	if !n.hasChildren() {
		return
	}
	for _, c := range n.children {
		if c != nil {
			c.SetActive(entity, active)
		}
	}
}

// CollidesWithPoint reports whether any relevant, active hazard collides
// with p.
func (n *Node) CollidesWithPoint(p geom.Point, include Include) bool {
	if !n.bbox.CollidesWithPoint(p) {
		return false
	}
	if n.hasChildren() {
		for _, c := range n.children {
			if c != nil && c.bbox.CollidesWithPoint(p) && c.CollidesWithPoint(p, include) {
				return true
			}
		}
		return false
	}
	for _, qh := range n.hazards {
		if !qh.active || !include(qh.Entity, qh.Scope) {
			continue
		}
		if qh.CollidesWithPoint(p) {
			return true
		}
	}
	return false
}

// DefinitelyCollidesWithPoint answers, without ever dereferencing a
// polygon, whether p collides with a relevant hazard: True if an Entire
// manifestation is found along the way, False if the point lies in no
// node carrying any relevant hazard, Unknown if only Partial
// manifestations were found and a real geometric test is needed.
func (n *Node) DefinitelyCollidesWithPoint(p geom.Point, include Include) Tribool {
	if !n.bbox.CollidesWithPoint(p) {
		return False
	}

	result := False
	if n.hasChildren() {
		for _, c := range n.children {
			if c == nil || !c.bbox.CollidesWithPoint(p) {
				continue
			}
			switch c.DefinitelyCollidesWithPoint(p, include) {
			case True:
				return True
			case Unknown:
				result = Unknown
			}
		}
		return result
	}

	for _, qh := range n.hazards {
		if !qh.active || !include(qh.Entity, qh.Scope) {
			continue
		}
		switch qh.Presence {
		case Entire:
			return True
		case Partial:
			result = Unknown
		}
	}
	return result
}

// QueryArea collects, into dst, every entity whose manifestation might
// intersect bbox (Entire or Partial) anywhere this subtree overlaps bbox.
// It is a broad pass: callers still need to confirm Partial candidates
// against real geometry.
func (n *Node) QueryArea(bbox geom.Rect, include Include, dst map[hazard.Entity]struct{}) {
	if !n.bbox.CollidesWithRect(bbox) {
		return
	}
	if n.hasChildren() {
		for _, c := range n.children {
			if c != nil {
				c.QueryArea(bbox, include, dst)
			}
		}
		return
	}
	for _, qh := range n.hazards {
		if !qh.active || !include(qh.Entity, qh.Scope) {
			continue
		}
		dst[qh.Entity] = struct{}{}
	}
}
