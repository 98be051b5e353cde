package world

import (
	"math"

	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Obstacle describes one collision found by a query: the indexed item that
// collides and the querying item (the head). Nearest-obstacle queries also
// fill in the first and last intersection of the head's path with the
// obstacle's clearance hull.
type Obstacle struct {
	Item      Item // colliding item in the index
	Head      Item // item we were looking for collisions of
	IPFirst   geometry.VecI
	IPLast    geometry.VecI
	DistFirst int // distance along the head's path to IPFirst
	DistLast  int
	Hull      geometry.LineChain // clearance hull of Item that was hit
}

// QueryColliding returns the items colliding with item, filtered by kind
// mask. Clearance comes from the rule resolver unless forceClearance >= 0.
// With differentNetsOnly set, same-net items never collide. A positive
// limit stops the query after that many obstacles.
func (n *Node) QueryColliding(item Item, kindMask Kind, limit int, differentNetsOnly bool, forceClearance int) []Obstacle {
	return n.queryColliding(nil, item, kindMask, limit, differentNetsOnly, forceClearance)
}

func (n *Node) queryColliding(obstacles []Obstacle, item Item, kindMask Kind, limit int, differentNetsOnly bool, forceClearance int) []Obstacle {
	// Lines collide through their centerline; widen by half the width.
	extraClearance := 0
	if line, ok := item.(*Line); ok {
		extraClearance = line.Width() / 2
	}

	matches := 0
	n.index.Query(item.Shape(), n.maxClearance, func(candidate Item) bool {
		if !candidate.OfKind(kindMask) {
			return true
		}

		clearance := extraClearance + n.GetClearance(candidate, item)
		if forceClearance >= 0 {
			clearance = forceClearance
		}

		if !candidate.Collide(item, clearance, differentNetsOnly) {
			return true
		}

		obstacles = append(obstacles, Obstacle{Item: candidate, Head: item})
		matches++
		return limit <= 0 || matches < limit
	})

	return obstacles
}

// NearestObstacle returns the obstacle whose clearance hull the line hits
// first along its path, or nil if nothing collides. With a non-nil
// restricted set, only obstacles in the set are considered. If candidates
// collide but no hull intersection exists (the hull swallows the line
// whole), the first candidate is returned without intersection geometry.
func (n *Node) NearestObstacle(line *Line, kindMask Kind, restricted map[Item]bool) *Obstacle {
	var obstacles []Obstacle

	chain := line.CLine()
	for i := 0; i < chain.SegmentCount(); i++ {
		s := NewSegmentFromLine(line, chain.CSegment(i))
		obstacles = n.queryColliding(obstacles, s, kindMask, 0, false, -1)
	}
	if line.EndsWithVia() {
		obstacles = n.queryColliding(obstacles, line.Via(), kindMask, 0, false, -1)
	}

	if len(obstacles) == 0 {
		return nil
	}

	nearest := Obstacle{Head: line, DistFirst: math.MaxInt}
	foundIsects := false

	for _, obs := range obstacles {
		if restricted != nil && !restricted[obs.Item] {
			continue
		}

		distMax := math.MinInt
		var ipLast geometry.VecI

		clearance := n.GetClearance(obs.Item, line)
		hull := obs.Item.Hull(clearance, line.Width())

		var isects []geometry.Intersection

		if line.EndsWithVia() {
			viaClearance := n.GetClearance(obs.Item, line.Via())
			viaHull := line.Via().Hull(viaClearance, line.Width())
			isects = viaHull.Intersect(&hull, isects)

			for _, isect := range isects {
				dist := chain.Length() + isect.P.Sub(line.Via().Pos()).EuclideanNorm()
				if dist < nearest.DistFirst {
					foundIsects = true
					nearest.DistFirst = dist
					nearest.IPFirst = isect.P
					nearest.Item = obs.Item
					nearest.Hull = hull
				}
				if dist > distMax {
					distMax = dist
					ipLast = isect.P
				}
			}
			isects = isects[:0]
		}

		isects = hull.Intersect(chain, isects)

		for _, isect := range isects {
			dist := chain.PathLength(isect.P)
			if dist < nearest.DistFirst {
				foundIsects = true
				nearest.DistFirst = dist
				nearest.IPFirst = isect.P
				nearest.Item = obs.Item
				nearest.Hull = hull
			}
			if dist > distMax {
				distMax = dist
				ipLast = isect.P
			}
		}

		if nearest.Item == obs.Item {
			nearest.IPLast = ipLast
			nearest.DistLast = distMax
		}
	}

	if !foundIsects {
		first := -1
		for i, obs := range obstacles {
			if restricted == nil || restricted[obs.Item] {
				first = i
				break
			}
		}
		if first < 0 {
			return nil
		}
		nearest.Item = obstacles[first].Item
		nearest.DistFirst = 0
	}
	return &nearest
}

// CheckCollidingItem returns the first obstacle colliding with item, or
// nil. For a line, each of its segments and the terminating via are tested
// in order.
func (n *Node) CheckCollidingItem(item Item, kindMask Kind) *Obstacle {
	if line, ok := item.(*Line); ok {
		chain := line.CLine()
		for i := 0; i < chain.SegmentCount(); i++ {
			s := NewSegmentFromLine(line, chain.CSegment(i))
			if obs := n.queryColliding(nil, s, kindMask, 1, false, -1); len(obs) > 0 {
				return &obs[0]
			}
		}
		if line.EndsWithVia() {
			if obs := n.queryColliding(nil, line.Via(), kindMask, 1, false, -1); len(obs) > 0 {
				return &obs[0]
			}
		}
		return nil
	}

	if obs := n.queryColliding(nil, item, kindMask, 1, false, -1); len(obs) > 0 {
		return &obs[0]
	}
	return nil
}

// CheckCollidingSet returns the first obstacle colliding with any item of
// the set, or nil.
func (n *Node) CheckCollidingSet(items []Item, kindMask Kind) *Obstacle {
	for _, item := range items {
		if obs := n.CheckCollidingItem(item, kindMask); obs != nil {
			return obs
		}
	}
	return nil
}

// CheckColliding tests a single pair of items. Clearance comes from the
// rule resolver unless forceClearance >= 0, widened by the half-width of
// line endpoints.
func (n *Node) CheckColliding(a, b Item, kindMask Kind, forceClearance int) bool {
	if !b.OfKind(kindMask) {
		return false
	}

	clearance := forceClearance
	if clearance < 0 {
		clearance = n.GetClearance(a, b)
	}
	if line, ok := a.(*Line); ok {
		clearance += line.Width() / 2
	}
	if line, ok := b.(*Line); ok {
		clearance += line.Width() / 2
	}

	return a.Collide(b, clearance, false)
}

// HitTest returns the indexed items whose shape contains the point.
func (n *Node) HitTest(p geometry.VecI) []Item {
	var items []Item
	probe := geometry.Circle{Center: p, Radius: 0}
	n.index.Query(probe, n.maxClearance, func(item Item) bool {
		if item.Shape().ContainsPoint(p) {
			items = append(items, item)
		}
		return true
	})
	return items
}

// FindItemByParent returns the routing item derived from the given
// board-side item, or nil.
func (n *Node) FindItemByParent(parent *board.Connected) Item {
	for _, item := range n.index.ItemsForNet(parent.GetNetCode()) {
		if item.Parent() == parent {
			return item
		}
	}
	return nil
}

// AllItemsInNet returns all indexed items of the net.
func (n *Node) AllItemsInNet(net int) []Item {
	return append([]Item(nil), n.index.ItemsForNet(net)...)
}

// ClearRanks resets every indexed item's rank to -1 and clears the masked
// marker bits.
func (n *Node) ClearRanks(markerMask int) {
	n.index.Each(func(item Item) bool {
		item.SetRank(-1)
		item.Mark(item.Marker() &^ markerMask)
		return true
	})
}

// FindByMarker returns the indexed items with any of the marker bits set.
func (n *Node) FindByMarker(marker int) []Item {
	var items []Item
	n.index.Each(func(item Item) bool {
		if item.Marker()&marker != 0 {
			items = append(items, item)
		}
		return true
	})
	return items
}

// RemoveByMarker removes every indexed item with any of the marker bits
// set.
func (n *Node) RemoveByMarker(marker int) {
	var garbage []Item
	n.index.Each(func(item Item) bool {
		if item.Marker()&marker != 0 {
			garbage = append(garbage, item)
		}
		return true
	})
	for _, item := range garbage {
		n.Remove(item)
	}
}
