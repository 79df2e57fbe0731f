// Package hazard defines the things that can make a location of the
// containment bin dangerous to place an item on: already-placed items, the
// bin's own exterior, holes in the bin, and inferior-quality zones.
package hazard

import (
	"fmt"

	"github.com/arl/cde/geom"
)

// EntityKind discriminates the four kinds of hazard-causing entity.
type EntityKind int

const (
	// PlacedItem is an item already committed to the layout.
	PlacedItem EntityKind = iota
	// BinExterior is the region outside the containment bin.
	BinExterior
	// BinHole is a hole cut out of the containment bin.
	BinHole
	// InferiorQualityZone is a region of the bin that is usable but
	// penalized, identified by an integer quality level (lower is worse).
	InferiorQualityZone
)

func (k EntityKind) String() string {
	switch k {
	case PlacedItem:
		return "PlacedItem"
	case BinExterior:
		return "BinExterior"
	case BinHole:
		return "BinHole"
	case InferiorQualityZone:
		return "InferiorQualityZone"
	default:
		return "Unknown"
	}
}

// Entity identifies, uniquely and comparably, the source of a hazard. It is
// a flat struct rather than Rust's tagged enum-with-payload so that it
// remains a plain comparable value usable directly as a map key; only the
// fields relevant to Kind are meaningful.
type Entity struct {
	Kind EntityKind
	// ItemID identifies a PlacedItem; unused for other kinds.
	ItemID int
	// Placement is the PlacedItem's committed transform; unused for other
	// kinds. Two PlacedItem entities are distinct if either ItemID or
	// Placement differs, matching the "re-registering the same item at a
	// new placement is a new hazard" semantics.
	Placement geom.DTransformation
	// HoleID identifies a BinHole; unused for other kinds.
	HoleID int
	// Quality is the quality level of an InferiorQualityZone; unused for
	// other kinds.
	Quality int
}

// NewPlacedItemEntity builds the entity identifying a placed item.
func NewPlacedItemEntity(itemID int, placement geom.DTransformation) Entity {
	return Entity{Kind: PlacedItem, ItemID: itemID, Placement: placement}
}

// NewBinExteriorEntity builds the entity identifying the bin's exterior.
func NewBinExteriorEntity() Entity {
	return Entity{Kind: BinExterior}
}

// NewBinHoleEntity builds the entity identifying one of the bin's holes.
func NewBinHoleEntity(holeID int) Entity {
	return Entity{Kind: BinHole, HoleID: holeID}
}

// NewInferiorQualityZoneEntity builds the entity identifying a quality zone.
func NewInferiorQualityZoneEntity(quality int) Entity {
	return Entity{Kind: InferiorQualityZone, Quality: quality}
}

func (e Entity) String() string {
	switch e.Kind {
	case PlacedItem:
		return fmt.Sprintf("PlacedItem(%d)", e.ItemID)
	case BinExterior:
		return "BinExterior"
	case BinHole:
		return fmt.Sprintf("BinHole(%d)", e.HoleID)
	case InferiorQualityZone:
		return fmt.Sprintf("InferiorQualityZone(%d)", e.Quality)
	default:
		return "Unknown"
	}
}
