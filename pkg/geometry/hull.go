package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// OctagonalHull returns a closed eight-sided chain surrounding a disc of the
// given radius around center. The octagon circumscribes the disc, so every
// point of the disc lies inside the hull.
func OctagonalHull(center VecI, radius int) LineChain {
	// Circumscribed octagon: edge midpoints touch the circle.
	r := float64(radius)
	t := r * math.Tan(math.Pi/8)
	pts := []VecI{
		{center.X - int(math.Ceil(t)), center.Y - radius},
		{center.X + int(math.Ceil(t)), center.Y - radius},
		{center.X + radius, center.Y - int(math.Ceil(t))},
		{center.X + radius, center.Y + int(math.Ceil(t))},
		{center.X + int(math.Ceil(t)), center.Y + radius},
		{center.X - int(math.Ceil(t)), center.Y + radius},
		{center.X - radius, center.Y + int(math.Ceil(t))},
		{center.X - radius, center.Y - int(math.Ceil(t))},
	}
	return NewClosedChain(pts...)
}

// SegmentHull returns a closed four-sided chain surrounding a capsule
// segment of the given width, expanded by clearance on all sides. A
// zero-length segment degenerates to an octagonal hull.
func SegmentHull(seg Seg, width, clearance int) LineChain {
	e := width/2 + clearance
	if seg.A == seg.B {
		return OctagonalHull(seg.A, e)
	}

	d := r2.Unit(seg.B.Sub(seg.A).R2())
	p := r2.Vec{X: -d.Y, Y: d.X}
	ext := r2.Scale(float64(e), d)
	side := r2.Scale(float64(e), p)

	a := seg.A.R2()
	b := seg.B.R2()
	pts := []VecI{
		RoundVec(r2.Add(r2.Sub(a, ext), side)),
		RoundVec(r2.Sub(r2.Sub(a, ext), side)),
		RoundVec(r2.Sub(r2.Add(b, ext), side)),
		RoundVec(r2.Add(r2.Add(b, ext), side)),
	}
	return NewClosedChain(pts...)
}

// RectHull returns a closed chain around the rectangle inflated by
// clearance.
func RectHull(rect RectI, clearance int) LineChain {
	r := rect.Inflate(clearance)
	return NewClosedChain(
		VecI{X: r.MinX, Y: r.MinY},
		VecI{X: r.MaxX, Y: r.MinY},
		VecI{X: r.MaxX, Y: r.MaxY},
		VecI{X: r.MinX, Y: r.MaxY},
	)
}
