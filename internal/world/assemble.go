package world

import (
	"pcb-router/pkg/geometry"
)

// maxAssemblyVerts bounds the total number of corners a single assembled
// line can collect; the walk starts in the middle, so each direction gets
// half of it.
const maxAssemblyVerts = 4096

// followLine walks the joint graph from cur in one direction, recording
// the joint corners and segments encountered. The walk stops at a joint
// that is not a line corner, at a locked joint when stopAtLocked is set,
// or when it loops back to the seed's far end (the guard), which sets
// guardHit.
func (n *Node) followLine(cur *Segment, scanDirection bool, pos *int,
	corners []geometry.VecI, segments []*Segment, guardHit *bool, stopAtLocked bool) {

	prevReversed := false

	guard := cur.Seg().A
	if scanDirection {
		guard = cur.Seg().B
	}

	for count := 0; ; count++ {
		p := cur.Seg().A
		if scanDirection != prevReversed {
			p = cur.Seg().B
		}

		jt := n.FindJointForItem(p, cur)
		if jt == nil {
			panic("world: segment without a joint at " + p.String())
		}

		corners[*pos] = jt.Pos()
		segments[*pos] = cur
		if scanDirection {
			*pos++
		} else {
			*pos--
		}

		if count > 0 && guard == p {
			segments[*pos] = nil
			*guardHit = true
			break
		}

		locked := stopAtLocked && jt.IsLocked()
		if locked || !jt.IsLineCorner() || *pos <= 0 || *pos >= maxAssemblyVerts {
			break
		}

		cur = jt.NextSegment(cur)

		next := cur.Seg().A
		if scanDirection {
			next = cur.Seg().B
		}
		prevReversed = jt.Pos() == next
	}
}

// AssembleLine walks the joint graph outward from seed in both directions
// and returns the maximal line through it: the connected run of segments
// joined by line-corner joints. With stopAtLocked set, locked joints end
// the walk. If originIndex is non-nil it receives the index of the seed
// within the assembled line's segments.
func (n *Node) AssembleLine(seed *Segment, originIndex *int, stopAtLocked bool) *Line {
	corners := make([]geometry.VecI, maxAssemblyVerts+1)
	segments := make([]*Segment, maxAssemblyVerts+1)

	iStart := maxAssemblyVerts / 2
	iEnd := iStart + 1
	guardHit := false

	line := NewLine(geometry.LineChain{}, seed.Width(), seed.Layers().Start, seed.Net())
	line.SetLayers(seed.Layers())
	line.SetOwner(n.revision)

	n.followLine(seed, false, &iStart, corners, segments, &guardHit, stopAtLocked)
	if !guardHit {
		n.followLine(seed, true, &iEnd, corners, segments, &guardHit, stopAtLocked)
	}

	prev := (*Segment)(nil)
	count := 0
	originSet := false

	for i := iStart + 1; i < iEnd; i++ {
		line.Line().Append(corners[i])

		if segments[i] != nil && segments[i] != prev {
			line.LinkSegment(segments[i])

			// The last condition guards against loops revisiting the seed.
			if segments[i] == seed && originIndex != nil && !originSet {
				*originIndex = count
				originSet = true
			}
			count++
		}
		prev = segments[i]
	}

	if len(line.LinkedSegments()) == 0 {
		panic("world: assembled line without segments")
	}
	return line
}

// FindLineEnds returns the joints at the line's first and last corners.
func (n *Node) FindLineEnds(line *Line) (a, b *Joint) {
	a = n.FindJointForItem(line.CPoint(0), line)
	b = n.FindJointForItem(line.CPoint(-1), line)
	return a, b
}

// FindLinesBetweenJoints assembles every line that runs between the two
// joints, clipped to the joint-to-joint range. Only lines whose layers
// overlap both joints are returned.
func (n *Node) FindLinesBetweenJoints(a, b *Joint) []*Line {
	var lines []*Line

	for _, item := range a.LinkList() {
		seg, ok := item.(*Segment)
		if !ok {
			continue
		}

		line := n.AssembleLine(seg, nil, false)
		if !line.Layers().Overlaps(b.Layers()) {
			continue
		}

		idStart := line.CLine().Find(a.Pos())
		idEnd := line.CLine().Find(b.Pos())
		if idEnd < idStart {
			idStart, idEnd = idEnd, idStart
		}

		if idStart >= 0 && idEnd >= 0 {
			line.ClipVertexRange(idStart, idEnd)
			lines = append(lines, line)
		}
	}

	return lines
}
