package world

import (
	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Segment is a single straight wire segment on one copper layer. Its
// anchors are its two endpoints.
type Segment struct {
	itemBase
	seg   geometry.Seg
	width int
}

// NewSegment creates a segment on the given layer.
func NewSegment(seg geometry.Seg, width, layer, net int) *Segment {
	s := &Segment{seg: seg, width: width}
	s.kind = KindSegment
	s.net = net
	s.layers = geometry.SingleLayer(layer)
	return s
}

// NewSegmentFromLine creates a segment inheriting width, layers and net
// from a line, as done when a line is committed into the world.
func NewSegmentFromLine(line *Line, seg geometry.Seg) *Segment {
	s := &Segment{seg: seg, width: line.Width()}
	s.kind = KindSegment
	s.net = line.Net()
	s.layers = line.Layers()
	s.parent = line.Parent()
	return s
}

// WithParent attaches the board-side source item and returns the segment.
func (s *Segment) WithParent(parent *board.Connected) *Segment {
	s.parent = parent
	return s
}

// Seg returns the segment's endpoints.
func (s *Segment) Seg() geometry.Seg {
	return s.seg
}

// Width returns the trace width.
func (s *Segment) Width() int {
	return s.width
}

// Shape implements Item.
func (s *Segment) Shape() geometry.Shape {
	return geometry.SegShape{Seg: s.seg, Width: s.width}
}

// Hull implements Item.
func (s *Segment) Hull(clearance, walkaroundThickness int) geometry.LineChain {
	return geometry.SegmentHull(s.seg, s.width+walkaroundThickness, clearance)
}

// Collide implements Item.
func (s *Segment) Collide(other Item, clearance int, differentNetsOnly bool) bool {
	return collideSimple(s, other, clearance, differentNetsOnly)
}
