package geometry

// Shape is a solid 2D region used for collision testing. Coordinates and
// distances are in nanometres.
type Shape interface {
	// BBox returns the bounding box of the shape inflated by clearance.
	BBox(clearance int) RectI
	// Distance returns the separation between the shape's boundary region
	// and the point. Points inside the shape have distance 0.
	Distance(p VecI) int
	// ContainsPoint returns true if the point lies inside or on the shape.
	ContainsPoint(p VecI) bool
}

// Circle is a filled disc, used for via pads and round solids.
type Circle struct {
	Center VecI
	Radius int
}

// BBox implements Shape.
func (c Circle) BBox(clearance int) RectI {
	return NewRectI(c.Center, c.Center).Inflate(c.Radius + clearance)
}

// Distance implements Shape.
func (c Circle) Distance(p VecI) int {
	d := p.Sub(c.Center).EuclideanNorm() - c.Radius
	if d < 0 {
		return 0
	}
	return d
}

// ContainsPoint implements Shape.
func (c Circle) ContainsPoint(p VecI) bool {
	return p.Sub(c.Center).EuclideanNorm() <= c.Radius
}

// SegShape is a segment with round caps ("capsule"), used for wire segments.
type SegShape struct {
	Seg   Seg
	Width int
}

// BBox implements Shape.
func (s SegShape) BBox(clearance int) RectI {
	return s.Seg.BBox().Inflate(s.Width/2 + clearance)
}

// Distance implements Shape.
func (s SegShape) Distance(p VecI) int {
	d := s.Seg.Distance(p) - s.Width/2
	if d < 0 {
		return 0
	}
	return d
}

// ContainsPoint implements Shape.
func (s SegShape) ContainsPoint(p VecI) bool {
	return s.Seg.Distance(p) <= s.Width/2
}

// RectShape is a filled axis-aligned rectangle, used for rectangular pads
// and keepout solids.
type RectShape struct {
	Rect RectI
}

// BBox implements Shape.
func (r RectShape) BBox(clearance int) RectI {
	return r.Rect.Inflate(clearance)
}

// Distance implements Shape.
func (r RectShape) Distance(p VecI) int {
	dx, dy := 0, 0
	if p.X < r.Rect.MinX {
		dx = r.Rect.MinX - p.X
	} else if p.X > r.Rect.MaxX {
		dx = p.X - r.Rect.MaxX
	}
	if p.Y < r.Rect.MinY {
		dy = r.Rect.MinY - p.Y
	} else if p.Y > r.Rect.MaxY {
		dy = p.Y - r.Rect.MaxY
	}
	return VecI{X: dx, Y: dy}.EuclideanNorm()
}

// ContainsPoint implements Shape.
func (r RectShape) ContainsPoint(p VecI) bool {
	return r.Rect.Contains(p)
}

// edges returns the four boundary segments of the rectangle.
func (r RectShape) edges() [4]Seg {
	tl := VecI{X: r.Rect.MinX, Y: r.Rect.MinY}
	tr := VecI{X: r.Rect.MaxX, Y: r.Rect.MinY}
	br := VecI{X: r.Rect.MaxX, Y: r.Rect.MaxY}
	bl := VecI{X: r.Rect.MinX, Y: r.Rect.MaxY}
	return [4]Seg{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// ShapeDistance returns the minimum separation between two shapes, 0 if
// they touch or overlap.
func ShapeDistance(a, b Shape) int {
	if ca, ok := a.(ChainShape); ok {
		return chainShapeDistance(ca, b)
	}
	if cb, ok := b.(ChainShape); ok {
		return chainShapeDistance(cb, a)
	}
	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			return clampDist(sa.Center.Sub(sb.Center).EuclideanNorm() - sa.Radius - sb.Radius)
		case SegShape:
			return clampDist(sb.Seg.Distance(sa.Center) - sa.Radius - sb.Width/2)
		case RectShape:
			return clampDist(sb.Distance(sa.Center) - sa.Radius)
		}
	case SegShape:
		switch sb := b.(type) {
		case Circle:
			return ShapeDistance(sb, sa)
		case SegShape:
			return clampDist(sa.Seg.SegDistance(sb.Seg) - sa.Width/2 - sb.Width/2)
		case RectShape:
			if sb.ContainsPoint(sa.Seg.A) || sb.ContainsPoint(sa.Seg.B) {
				return 0
			}
			best := -1
			for _, e := range sb.edges() {
				d := sa.Seg.SegDistance(e)
				if best < 0 || d < best {
					best = d
				}
			}
			return clampDist(best - sa.Width/2)
		}
	case RectShape:
		switch sb := b.(type) {
		case Circle, SegShape:
			return ShapeDistance(sb, sa)
		case RectShape:
			dx := 0
			if sa.Rect.MinX > sb.Rect.MaxX {
				dx = sa.Rect.MinX - sb.Rect.MaxX
			} else if sb.Rect.MinX > sa.Rect.MaxX {
				dx = sb.Rect.MinX - sa.Rect.MaxX
			}
			dy := 0
			if sa.Rect.MinY > sb.Rect.MaxY {
				dy = sa.Rect.MinY - sb.Rect.MaxY
			} else if sb.Rect.MinY > sa.Rect.MaxY {
				dy = sb.Rect.MinY - sa.Rect.MaxY
			}
			return VecI{X: dx, Y: dy}.EuclideanNorm()
		}
	}
	panic("geometry: unknown shape combination")
}

// ShapesCollide returns true if the two shapes are no farther apart than
// the given clearance; a separation exactly equal to it counts.
func ShapesCollide(a, b Shape, clearance int) bool {
	return ShapeDistance(a, b) <= clearance
}

func clampDist(d int) int {
	if d < 0 {
		return 0
	}
	return d
}
