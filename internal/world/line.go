package world

import (
	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Line is a transient view over a connected run of segments of one net on
// one layer range. A line references segments owned by revisions; it never
// owns them and is never stored in the index or a revision.
type Line struct {
	itemBase
	chain  geometry.LineChain
	width  int
	via    *Via
	linked []*Segment
}

// NewLine creates a line from a chain of corners.
func NewLine(chain geometry.LineChain, width, layer, net int) *Line {
	l := &Line{chain: chain, width: width}
	l.kind = KindLine
	l.net = net
	l.layers = geometry.SingleLayer(layer)
	return l
}

// WithParent attaches the board-side source item and returns the line.
func (l *Line) WithParent(parent *board.Connected) *Line {
	l.parent = parent
	return l
}

// Line returns the mutable corner chain.
func (l *Line) Line() *geometry.LineChain {
	return &l.chain
}

// CLine returns the corner chain for reading.
func (l *Line) CLine() *geometry.LineChain {
	return &l.chain
}

// Width returns the trace width.
func (l *Line) Width() int {
	return l.width
}

// SetWidth assigns the trace width.
func (l *Line) SetWidth(width int) {
	l.width = width
}

// SegmentCount returns the number of corner-to-corner segments.
func (l *Line) SegmentCount() int {
	return l.chain.SegmentCount()
}

// CSegment returns the i-th corner-to-corner segment.
func (l *Line) CSegment(i int) geometry.Seg {
	return l.chain.CSegment(i)
}

// CPoint returns the i-th corner; negative indices count from the end.
func (l *Line) CPoint(i int) geometry.VecI {
	return l.chain.CPoint(i)
}

// EndsWithVia returns true if the line terminates in a via.
func (l *Line) EndsWithVia() bool {
	return l.via != nil
}

// Via returns the terminating via. Only valid if EndsWithVia.
func (l *Line) Via() *Via {
	return l.via
}

// AppendVia terminates the line with a via.
func (l *Line) AppendVia(via *Via) {
	l.via = via
}

// LinkSegment records a reference to a world segment backing this line.
func (l *Line) LinkSegment(seg *Segment) {
	l.linked = append(l.linked, seg)
}

// LinkedSegments returns the world segments backing this line.
func (l *Line) LinkedSegments() []*Segment {
	return l.linked
}

// IsLinked returns true if the line references any world segments.
func (l *Line) IsLinked() bool {
	return len(l.linked) > 0
}

// ContainsSegment returns true if the line links the given segment.
func (l *Line) ContainsSegment(seg *Segment) bool {
	for _, s := range l.linked {
		if s == seg {
			return true
		}
	}
	return false
}

// ClearSegmentLinks drops all segment references.
func (l *Line) ClearSegmentLinks() {
	l.linked = nil
}

// ClipVertexRange trims the line to the corner range [start, end] and drops
// segment links outside of it.
func (l *Line) ClipVertexRange(start, end int) {
	l.chain.ClipVertexRange(start, end)
	if len(l.linked) > 0 {
		clipped := make([]*Segment, 0, end-start)
		for i := start; i < end && i < len(l.linked); i++ {
			clipped = append(clipped, l.linked[i])
		}
		l.linked = clipped
	}
}

// Shape implements Item. A line's shape is its centerline chain; callers
// widen clearances by half the line width.
func (l *Line) Shape() geometry.Shape {
	return geometry.ChainShape{Chain: &l.chain}
}

// Hull implements Item.
func (l *Line) Hull(clearance, walkaroundThickness int) geometry.LineChain {
	return geometry.RectHull(l.chain.BBox(), clearance+(l.width+walkaroundThickness)/2)
}

// Collide implements Item.
func (l *Line) Collide(other Item, clearance int, differentNetsOnly bool) bool {
	return collideSimple(l, other, clearance, differentNetsOnly)
}
