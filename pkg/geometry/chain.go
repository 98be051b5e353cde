package geometry

// LineChain is an open polyline of integer points. A closed chain (hull)
// additionally treats the last→first edge as a segment.
type LineChain struct {
	points []VecI
	closed bool
}

// NewLineChain creates a chain from the given points.
func NewLineChain(points ...VecI) LineChain {
	return LineChain{points: append([]VecI(nil), points...)}
}

// NewClosedChain creates a closed chain (polygon outline) from the points.
func NewClosedChain(points ...VecI) LineChain {
	return LineChain{points: append([]VecI(nil), points...), closed: true}
}

// Append adds a point to the end of the chain. Consecutive duplicates are
// collapsed.
func (c *LineChain) Append(p VecI) {
	if n := len(c.points); n > 0 && c.points[n-1] == p {
		return
	}
	c.points = append(c.points, p)
}

// PointCount returns the number of vertices.
func (c *LineChain) PointCount() int {
	return len(c.points)
}

// SegmentCount returns the number of segments.
func (c *LineChain) SegmentCount() int {
	n := len(c.points)
	if n < 2 {
		return 0
	}
	if c.closed {
		return n
	}
	return n - 1
}

// CPoint returns the i-th vertex. Negative indices count from the end, so
// CPoint(-1) is the last vertex.
func (c *LineChain) CPoint(i int) VecI {
	if i < 0 {
		i += len(c.points)
	}
	return c.points[i]
}

// CSegment returns the i-th segment.
func (c *LineChain) CSegment(i int) Seg {
	if c.closed && i == len(c.points)-1 {
		return Seg{A: c.points[i], B: c.points[0]}
	}
	return Seg{A: c.points[i], B: c.points[i+1]}
}

// Points returns the vertices of the chain.
func (c *LineChain) Points() []VecI {
	return c.points
}

// IsClosed returns true for closed chains.
func (c *LineChain) IsClosed() bool {
	return c.closed
}

// Length returns the total path length of the chain.
func (c *LineChain) Length() int {
	total := 0
	for i := 0; i < c.SegmentCount(); i++ {
		total += c.CSegment(i).Length()
	}
	return total
}

// BBox returns the bounding box of all vertices.
func (c *LineChain) BBox() RectI {
	if len(c.points) == 0 {
		return RectI{}
	}
	r := NewRectI(c.points[0], c.points[0])
	for _, p := range c.points[1:] {
		r = r.Union(NewRectI(p, p))
	}
	return r
}

// Find returns the index of the vertex equal to p, or -1 if p is not a
// vertex of the chain.
func (c *LineChain) Find(p VecI) int {
	for i, pt := range c.points {
		if pt == p {
			return i
		}
	}
	return -1
}

// PathLength returns the distance along the chain from its start to p,
// or -1 if p does not lie on the chain. p must lie on the chain within one
// nanometre of rounding error.
func (c *LineChain) PathLength(p VecI) int {
	acc := 0
	for i := 0; i < c.SegmentCount(); i++ {
		s := c.CSegment(i)
		if s.Distance(p) <= 1 {
			return acc + p.Sub(s.A).EuclideanNorm()
		}
		acc += s.Length()
	}
	return -1
}

// Intersection describes one crossing point between two chains.
type Intersection struct {
	P     VecI // intersection point
	Our   int  // segment index in the receiver chain
	Their int  // segment index in the other chain
}

// Intersect appends all intersections between the two chains to the given
// list and returns it.
func (c *LineChain) Intersect(other *LineChain, isects []Intersection) []Intersection {
	for i := 0; i < c.SegmentCount(); i++ {
		si := c.CSegment(i)
		for j := 0; j < other.SegmentCount(); j++ {
			if p, ok := si.Intersect(other.CSegment(j)); ok {
				isects = append(isects, Intersection{P: p, Our: i, Their: j})
			}
		}
	}
	return isects
}

// ClipVertexRange trims the chain to the vertex range [start, end]
// inclusive.
func (c *LineChain) ClipVertexRange(start, end int) {
	c.points = c.points[start : end+1]
	c.closed = false
}

// PointInside returns true if p lies strictly inside a closed chain, using
// even-odd ray casting.
func (c *LineChain) PointInside(p VecI) bool {
	if !c.closed || len(c.points) < 3 {
		return false
	}
	inside := false
	n := len(c.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := c.points[i], c.points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < x {
				inside = !inside
			}
		}
	}
	return inside
}
