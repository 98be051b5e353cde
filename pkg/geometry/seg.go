package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Seg is a line segment between two integer points.
type Seg struct {
	A VecI `json:"a"`
	B VecI `json:"b"`
}

// NewSeg creates a new segment.
func NewSeg(a, b VecI) Seg {
	return Seg{A: a, B: b}
}

// Length returns the segment length rounded to the nearest nanometre.
func (s Seg) Length() int {
	return s.B.Sub(s.A).EuclideanNorm()
}

// BBox returns the axis-aligned bounding box of the segment.
func (s Seg) BBox() RectI {
	return NewRectI(s.A, s.B)
}

// NearestPoint returns the point on the segment closest to p.
func (s Seg) NearestPoint(p VecI) VecI {
	d := s.B.Sub(s.A)
	l2 := d.SquaredNorm()
	if l2 == 0 {
		return s.A
	}
	t := float64(p.Sub(s.A).Dot(d)) / float64(l2)
	if t < 0 {
		return s.A
	}
	if t > 1 {
		return s.B
	}
	return RoundVec(r2.Add(s.A.R2(), r2.Scale(t, d.R2())))
}

// Distance returns the distance from the segment to the point, rounded to
// the nearest nanometre.
func (s Seg) Distance(p VecI) int {
	return s.NearestPoint(p).Sub(p).EuclideanNorm()
}

// SegDistance returns the minimum distance between two segments.
func (s Seg) SegDistance(other Seg) int {
	if _, ok := s.Intersect(other); ok {
		return 0
	}
	d := s.Distance(other.A)
	if t := s.Distance(other.B); t < d {
		d = t
	}
	if t := other.Distance(s.A); t < d {
		d = t
	}
	if t := other.Distance(s.B); t < d {
		d = t
	}
	return d
}

// Contains returns true if p lies on the segment (within one nanometre).
func (s Seg) Contains(p VecI) bool {
	return s.Distance(p) <= 1
}

// Intersect computes the intersection point of two segments. For collinear
// overlapping segments the point nearest to s.A within the overlap is
// returned. The second return value is false if the segments do not meet.
func (s Seg) Intersect(other Seg) (VecI, bool) {
	d1 := s.B.Sub(s.A)
	d2 := other.B.Sub(other.A)
	denom := d1.Cross(d2)
	diff := other.A.Sub(s.A)

	if denom == 0 {
		if diff.Cross(d1) != 0 {
			return VecI{}, false // parallel, not collinear
		}
		// Collinear: project other's endpoints onto s.
		l2 := d1.SquaredNorm()
		if l2 == 0 {
			if other.Contains(s.A) {
				return s.A, true
			}
			return VecI{}, false
		}
		t0 := float64(other.A.Sub(s.A).Dot(d1)) / float64(l2)
		t1 := float64(other.B.Sub(s.A).Dot(d1)) / float64(l2)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t1 < 0 || t0 > 1 {
			return VecI{}, false
		}
		t := math.Max(t0, 0)
		return RoundVec(r2.Add(s.A.R2(), r2.Scale(t, d1.R2()))), true
	}

	t := float64(diff.Cross(d2)) / float64(denom)
	u := float64(diff.Cross(d1)) / float64(denom)
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return VecI{}, false
	}
	return RoundVec(r2.Add(s.A.R2(), r2.Scale(t, d1.R2()))), true
}
