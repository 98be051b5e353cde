// Package world implements the spatial world model of the push-and-shove
// router: a branchable revision tree of routing items, a spatial index
// mirroring the checked-out revision, a joint graph binding items that meet
// at a position, and the Node façade tying the three together.
package world

import (
	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Kind identifies the type of a routing item. Kinds are bit flags so query
// masks can combine them.
type Kind int

const (
	// KindSolid is an immovable obstacle (pad, keepout).
	KindSolid Kind = 1 << iota
	// KindLine is a transient connected run of segments. Lines are never
	// stored in the index or a revision.
	KindLine
	// KindSegment is a single wire segment.
	KindSegment
	// KindVia is a through or buried via pad.
	KindVia

	// KindAny matches every item kind.
	KindAny = KindSolid | KindLine | KindSegment | KindVia
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindLine:
		return "line"
	case KindSegment:
		return "segment"
	case KindVia:
		return "via"
	default:
		return "unknown"
	}
}

// Item is a routing entity managed by the world model. Persistent items
// (solids, segments, vias) are owned by exactly one revision; lines are
// transient views over segments.
type Item interface {
	// Kind returns the item's kind flag.
	Kind() Kind
	// OfKind returns true if the item's kind is set in the mask.
	OfKind(mask Kind) bool

	// Net returns the electrical net code.
	Net() int
	// SetNet assigns the electrical net code.
	SetNet(net int)

	// Layers returns the copper layer range the item occupies.
	Layers() geometry.LayerRange
	// SetLayers assigns the copper layer range.
	SetLayers(layers geometry.LayerRange)

	// Shape returns the item's collision shape.
	Shape() geometry.Shape
	// Hull returns a closed chain surrounding the item expanded by
	// clearance plus half of walkaroundThickness.
	Hull(clearance, walkaroundThickness int) geometry.LineChain

	// Collide returns true if the two items are no farther apart than
	// clearance.
	// With differentNetsOnly set, items of the same net never collide.
	Collide(other Item, clearance int, differentNetsOnly bool) bool

	// Marker returns the mutable marker bits used by external algorithms.
	Marker() int
	// Mark sets the marker bits.
	Mark(marker int)
	// Rank returns the shove rank used by external algorithms.
	Rank() int
	// SetRank sets the shove rank.
	SetRank(rank int)

	// Parent returns the board-side item this routing item derives from,
	// or nil for items created during routing.
	Parent() *board.Connected
	// Owner returns the revision owning this item, or nil.
	Owner() *Revision
	// SetOwner assigns the owning revision.
	SetOwner(rev *Revision)
}

// itemBase carries the state shared by all item kinds.
type itemBase struct {
	kind   Kind
	net    int
	layers geometry.LayerRange
	marker int
	rank   int
	parent *board.Connected
	owner  *Revision
}

func (b *itemBase) Kind() Kind                            { return b.kind }
func (b *itemBase) OfKind(mask Kind) bool                 { return b.kind&mask != 0 }
func (b *itemBase) Net() int                              { return b.net }
func (b *itemBase) SetNet(net int)                        { b.net = net }
func (b *itemBase) Layers() geometry.LayerRange           { return b.layers }
func (b *itemBase) SetLayers(layers geometry.LayerRange)  { b.layers = layers }
func (b *itemBase) Marker() int                           { return b.marker }
func (b *itemBase) Mark(marker int)                       { b.marker = marker }
func (b *itemBase) Rank() int                             { return b.rank }
func (b *itemBase) SetRank(rank int)                      { b.rank = rank }
func (b *itemBase) Parent() *board.Connected              { return b.parent }
func (b *itemBase) SetParent(parent *board.Connected)     { b.parent = parent }
func (b *itemBase) Owner() *Revision                      { return b.owner }
func (b *itemBase) SetOwner(rev *Revision)                { b.owner = rev }

// collideSimple is the shared collision path: a net filter followed by the
// geometric shape test.
func collideSimple(a, b Item, clearance int, differentNetsOnly bool) bool {
	if differentNetsOnly && a.Net() == b.Net() && a.Net() >= 0 && b.Net() >= 0 {
		return false
	}
	return geometry.ShapesCollide(a.Shape(), b.Shape(), clearance)
}
