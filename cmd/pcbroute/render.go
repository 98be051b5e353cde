package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/vector"

	"pcb-router/internal/world"
	"pcb-router/pkg/colorutil"
	"pcb-router/pkg/geometry"
)

func newRenderCmd() *cobra.Command {
	var out string
	var scale float64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the sample world to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNode()
			if err != nil {
				return err
			}
			buildSampleWorld(n)
			return renderWorld(n, out, scale)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "world.png", "output PNG path")
	cmd.Flags().Float64Var(&scale, "scale", 20, "pixels per millimetre")
	return cmd
}

// renderWorld draws every indexed item into a PNG, back layers first so
// front copper stays visible.
func renderWorld(n *world.Node, path string, scale float64) error {
	bounds := worldBounds(n)
	px := func(v int) float32 {
		return float32(float64(v) * scale / 1e6)
	}

	w := int(px(bounds.Width())) + 40
	h := int(px(bounds.Height())) + 40
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, colorutil.Black)

	offX := px(bounds.MinX) - 20
	offY := px(bounds.MinY) - 20

	for layer := maxLayer(n); layer >= 0; layer-- {
		n.Index().Each(func(item world.Item) bool {
			drawItem(img, item, layer, px, offX, offY)
			return true
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating render output")
	}
	defer f.Close()
	return errors.Wrap(png.Encode(f, img), "encoding render output")
}

func drawItem(img *image.RGBA, item world.Item, layer int, px func(int) float32, offX, offY float32) {
	col := colorutil.LayerColor(layer)
	if item.OfKind(world.KindVia) {
		col = colorutil.Silver
	}

	switch it := item.(type) {
	case *world.Segment:
		if it.Layers().Start != layer {
			return
		}
		drawCapsule(img, it.Seg(), it.Width(), px, offX, offY, col)
	case *world.Via:
		if layer != it.Layers().Start {
			return
		}
		drawDisc(img, it.Pos(), it.Diameter()/2, px, offX, offY, col)
	case *world.Solid:
		if layer != it.Layers().Start {
			return
		}
		switch sh := it.Shape().(type) {
		case geometry.Circle:
			drawDisc(img, sh.Center, sh.Radius, px, offX, offY, colorutil.WithAlpha(col, 160))
		default:
			bb := it.Shape().BBox(0)
			drawCapsule(img, geometry.NewSeg(
				geometry.NewVecI(bb.MinX, bb.Center().Y),
				geometry.NewVecI(bb.MaxX, bb.Center().Y),
			), bb.Height(), px, offX, offY, colorutil.WithAlpha(col, 160))
		}
	}
}

// drawCapsule rasterizes a wire segment as its rectangular hull, which
// extends half the width past each endpoint. The caps are drawn square,
// not round.
func drawCapsule(img *image.RGBA, seg geometry.Seg, width int, px func(int) float32, offX, offY float32, c color.Color) {
	hull := geometry.SegmentHull(seg, width, 0)

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	pts := hull.Points()
	z.MoveTo(px(pts[0].X)-offX, px(pts[0].Y)-offY)
	for _, p := range pts[1:] {
		z.LineTo(px(p.X)-offX, px(p.Y)-offY)
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// drawDisc rasterizes a filled disc as its octagonal hull.
func drawDisc(img *image.RGBA, center geometry.VecI, radius int, px func(int) float32, offX, offY float32, c color.Color) {
	hull := geometry.OctagonalHull(center, radius)

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	pts := hull.Points()
	z.MoveTo(px(pts[0].X)-offX, px(pts[0].Y)-offY)
	for _, p := range pts[1:] {
		z.LineTo(px(p.X)-offX, px(p.Y)-offY)
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func worldBounds(n *world.Node) geometry.RectI {
	var bounds geometry.RectI
	first := true
	n.Index().Each(func(item world.Item) bool {
		bb := item.Shape().BBox(0)
		if first {
			bounds = bb
			first = false
		} else {
			bounds = bounds.Union(bb)
		}
		return true
	})
	return bounds
}

func maxLayer(n *world.Node) int {
	max := 0
	n.Index().Each(func(item world.Item) bool {
		if item.Layers().End > max {
			max = item.Layers().End
		}
		return true
	})
	return max
}

func fill(img *image.RGBA, c color.Color) {
	r, g, b, _ := c.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(r >> 8)
		img.Pix[i+1] = uint8(g >> 8)
		img.Pix[i+2] = uint8(b >> 8)
		img.Pix[i+3] = 255
	}
}
