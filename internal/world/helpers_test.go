package world

import (
	"log/slog"

	"pcb-router/pkg/geometry"
)

// Test scale: plain integer coordinates with a narrow clearance so tests
// control collisions explicitly.
const (
	testWidth     = 10
	testClearance = 5
)

type fixedRules struct {
	clearance int
}

func (f fixedRules) Clearance(a, b Item) int {
	return f.clearance
}

func newTestNode() *Node {
	opts := DefaultNodeOptions()
	opts.Rules = fixedRules{clearance: testClearance}
	opts.Logger = slog.New(slog.DiscardHandler)
	return NewNode(opts)
}

func seg(ax, ay, bx, by, layer, net int) *Segment {
	return NewSegment(
		geometry.NewSeg(geometry.NewVecI(ax, ay), geometry.NewVecI(bx, by)),
		testWidth, layer, net,
	)
}

func via(x, y, from, to, net int) *Via {
	return NewVia(geometry.NewVecI(x, y), 2*testWidth, testWidth,
		geometry.NewLayerRange(from, to), net)
}

func solid(x, y, radius, layer, net int) *Solid {
	pos := geometry.NewVecI(x, y)
	return NewSolid(pos, geometry.Circle{Center: pos, Radius: radius},
		geometry.SingleLayer(layer), net)
}

// indexedItems collects the full index contents.
func indexedItems(n *Node) map[Item]bool {
	items := make(map[Item]bool)
	n.index.Each(func(item Item) bool {
		items[item] = true
		return true
	})
	return items
}
