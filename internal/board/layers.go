// Package board provides board stackup definitions and references to
// board-side connected items.
package board

import (
	"fmt"

	"pcb-router/pkg/geometry"
)

// Copper layer indices. Layer 0 is the front copper layer; inner layers
// follow in stacking order and the last layer of a stackup is the back
// copper layer.
const (
	FCu = 0 // front copper layer
)

// Stackup describes the copper layer structure of a board.
type Stackup struct {
	Name         string `json:"name"`
	CopperLayers int    `json:"copper_layers"`
}

// TwoLayer returns a standard two-layer stackup.
func TwoLayer() Stackup {
	return Stackup{Name: "two-layer", CopperLayers: 2}
}

// FourLayer returns a standard four-layer stackup.
func FourLayer() Stackup {
	return Stackup{Name: "four-layer", CopperLayers: 4}
}

// SixLayer returns a six-layer stackup.
func SixLayer() Stackup {
	return Stackup{Name: "six-layer", CopperLayers: 6}
}

// BCu returns the index of the back copper layer.
func (s Stackup) BCu() int {
	return s.CopperLayers - 1
}

// AllLayers returns the layer range spanning the whole stackup, as used by
// through-hole vias and pads.
func (s Stackup) AllLayers() geometry.LayerRange {
	return geometry.NewLayerRange(FCu, s.BCu())
}

// LayerName returns the conventional name of a copper layer: "F.Cu" for the
// front, "B.Cu" for the back, "InN.Cu" for inner layers.
func (s Stackup) LayerName(layer int) string {
	switch {
	case layer == FCu:
		return "F.Cu"
	case layer == s.BCu():
		return "B.Cu"
	default:
		return fmt.Sprintf("In%d.Cu", layer)
	}
}
