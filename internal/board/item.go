package board

// Connected is a board-side item carrying a net assignment: a pad, a track
// or a zone as stored by the host application. The routing core only reads
// the net code and never mutates board items; routing items derived from
// board items keep a Connected pointer so results can be mapped back to the
// board.
type Connected struct {
	Net int    // electrical net code
	Ref string // designator or description, e.g. "U3.12"
}

// GetNetCode returns the electrical net code of the item.
func (c *Connected) GetNetCode() int {
	return c.Net
}

func (c *Connected) String() string {
	return c.Ref
}
