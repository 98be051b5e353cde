// Package colorutil provides shared color utilities for rendering routed
// boards.
package colorutil

import (
	"image/color"
)

// Common render colors.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Silver  = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// layerPalette assigns colors by layer index: red for the front copper
// layer, then yellow, green, cyan, magenta and blue, repeating for deeper
// layers. The back copper color depends on the stackup's layer count.
var layerPalette = []color.RGBA{
	Red, Yellow, Green, Cyan, Magenta, Blue,
}

// LayerColor returns the display color of a copper layer.
func LayerColor(layer int) color.RGBA {
	if layer < 0 {
		return White
	}
	return layerPalette[layer%len(layerPalette)]
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
