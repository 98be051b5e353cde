package world

import (
	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

// Via is a drilled pad connecting a span of copper layers at one position.
type Via struct {
	itemBase
	pos      geometry.VecI
	diameter int
	drill    int
}

// NewVia creates a via at pos spanning the given layer range.
func NewVia(pos geometry.VecI, diameter, drill int, layers geometry.LayerRange, net int) *Via {
	v := &Via{pos: pos, diameter: diameter, drill: drill}
	v.kind = KindVia
	v.net = net
	v.layers = layers
	return v
}

// WithParent attaches the board-side source item and returns the via.
func (v *Via) WithParent(parent *board.Connected) *Via {
	v.parent = parent
	return v
}

// Pos returns the via's position.
func (v *Via) Pos() geometry.VecI {
	return v.pos
}

// Diameter returns the pad diameter.
func (v *Via) Diameter() int {
	return v.diameter
}

// Drill returns the drill diameter.
func (v *Via) Drill() int {
	return v.drill
}

// LayersOverlap returns true if the via's layer span overlaps the joint's.
func (v *Via) LayersOverlap(jt *Joint) bool {
	return v.layers.Overlaps(jt.Layers())
}

// Shape implements Item.
func (v *Via) Shape() geometry.Shape {
	return geometry.Circle{Center: v.pos, Radius: v.diameter / 2}
}

// Hull implements Item.
func (v *Via) Hull(clearance, walkaroundThickness int) geometry.LineChain {
	return geometry.OctagonalHull(v.pos, v.diameter/2+clearance+walkaroundThickness/2)
}

// Collide implements Item.
func (v *Via) Collide(other Item, clearance int, differentNetsOnly bool) bool {
	return collideSimple(v, other, clearance, differentNetsOnly)
}
