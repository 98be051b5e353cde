package world

import (
	"github.com/tidwall/btree"
	"github.com/tidwall/rtree"

	"pcb-router/pkg/geometry"
)

// SpatialIndex maps bounding regions to the items currently present in the
// checked-out revision. Items are keyed by identity; inserting the same
// item twice is a caller error. Lines are transient and are never indexed.
type SpatialIndex struct {
	tree  rtree.RTreeG[Item]
	byNet btree.Map[int, []Item]
}

// NewSpatialIndex creates an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{}
}

func itemBounds(item Item) (min, max [2]float64) {
	bb := item.Shape().BBox(0)
	return [2]float64{float64(bb.MinX), float64(bb.MinY)},
		[2]float64{float64(bb.MaxX), float64(bb.MaxY)}
}

// Add inserts an item into the index and its net list.
func (x *SpatialIndex) Add(item Item) {
	if item.OfKind(KindLine) {
		panic("world: lines are never indexed")
	}
	min, max := itemBounds(item)
	x.tree.Insert(min, max, item)

	list, _ := x.byNet.Get(item.Net())
	x.byNet.Set(item.Net(), append(list, item))
}

// Remove deletes an item from the index and its net list.
func (x *SpatialIndex) Remove(item Item) {
	min, max := itemBounds(item)
	x.tree.Delete(min, max, item)

	list, _ := x.byNet.Get(item.Net())
	for i, it := range list {
		if it == item {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		x.byNet.Delete(item.Net())
	} else {
		x.byNet.Set(item.Net(), list)
	}
}

// Query visits every indexed item whose bounding region intersects shape's
// bounding region inflated by clearance. The visitor may be called with
// false positives; returning false halts the traversal.
func (x *SpatialIndex) Query(shape geometry.Shape, clearance int, visitor func(Item) bool) {
	bb := shape.BBox(clearance)
	min := [2]float64{float64(bb.MinX), float64(bb.MinY)}
	max := [2]float64{float64(bb.MaxX), float64(bb.MaxY)}
	x.tree.Search(min, max, func(_, _ [2]float64, item Item) bool {
		return visitor(item)
	})
}

// ItemsForNet returns the items of the given net, or nil.
func (x *SpatialIndex) ItemsForNet(net int) []Item {
	list, _ := x.byNet.Get(net)
	return list
}

// Each visits every indexed item; returning false halts the traversal.
func (x *SpatialIndex) Each(visitor func(Item) bool) {
	x.tree.Scan(func(_, _ [2]float64, item Item) bool {
		return visitor(item)
	})
}

// Len returns the number of indexed items.
func (x *SpatialIndex) Len() int {
	return x.tree.Len()
}

// Clear empties the index.
func (x *SpatialIndex) Clear() {
	x.tree = rtree.RTreeG[Item]{}
	x.byNet = btree.Map[int, []Item]{}
}
