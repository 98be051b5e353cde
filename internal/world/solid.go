package world

import (
	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Solid is an immovable obstacle: a pad, a mounting hole or a keepout
// region. Its anchor is its position.
type Solid struct {
	itemBase
	pos   geometry.VecI
	shape geometry.Shape
}

// NewSolid creates a solid at pos with the given shape and layer range.
func NewSolid(pos geometry.VecI, shape geometry.Shape, layers geometry.LayerRange, net int) *Solid {
	s := &Solid{pos: pos, shape: shape}
	s.kind = KindSolid
	s.net = net
	s.layers = layers
	return s
}

// WithParent attaches the board-side source item and returns the solid.
func (s *Solid) WithParent(parent *board.Connected) *Solid {
	s.parent = parent
	return s
}

// Pos returns the solid's anchor position.
func (s *Solid) Pos() geometry.VecI {
	return s.pos
}

// Shape implements Item.
func (s *Solid) Shape() geometry.Shape {
	return s.shape
}

// Hull implements Item.
func (s *Solid) Hull(clearance, walkaroundThickness int) geometry.LineChain {
	d := clearance + walkaroundThickness/2
	switch sh := s.shape.(type) {
	case geometry.Circle:
		return geometry.OctagonalHull(sh.Center, sh.Radius+d)
	case geometry.RectShape:
		return geometry.RectHull(sh.Rect, d)
	default:
		return geometry.RectHull(s.shape.BBox(0), d)
	}
}

// Collide implements Item.
func (s *Solid) Collide(other Item, clearance int, differentNetsOnly bool) bool {
	return collideSimple(s, other, clearance, differentNetsOnly)
}
