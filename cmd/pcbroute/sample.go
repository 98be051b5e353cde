package main

import (
	"pcb-router/internal/board"
	"pcb-router/internal/world"
	"pcb-router/pkg/geometry"
)

// mm converts millimetres to integer nanometres.
func mm(v float64) int {
	return int(v * 1e6)
}

// buildSampleWorld populates a node with a small two-layer board: two rows
// of pads, a routed bus between them and a layer change through a via.
func buildSampleWorld(n *world.Node) board.Stackup {
	stackup := board.TwoLayer()
	nets := board.NewNetRegistry()

	// Pad rows at y=10mm and y=30mm, one net per column.
	for i := 0; i < 4; i++ {
		x := mm(10 + float64(i)*5)
		net := nets.Code("D" + string(rune('0'+i)))

		top := world.NewSolid(
			geometry.NewVecI(x, mm(10)),
			geometry.Circle{Center: geometry.NewVecI(x, mm(10)), Radius: mm(0.8)},
			stackup.AllLayers(), net,
		).WithParent(&board.Connected{Net: net, Ref: "J1." + string(rune('1'+i))})
		n.Add(top)

		bottom := world.NewSolid(
			geometry.NewVecI(x, mm(30)),
			geometry.Circle{Center: geometry.NewVecI(x, mm(30)), Radius: mm(0.8)},
			stackup.AllLayers(), net,
		).WithParent(&board.Connected{Net: net, Ref: "J2." + string(rune('1'+i))})
		n.Add(bottom)
	}

	// Straight front-copper traces for nets 1..3.
	for i := 0; i < 3; i++ {
		x := mm(10 + float64(i)*5)
		net := i + 1
		n.AddSegment(world.NewSegment(
			geometry.NewSeg(geometry.NewVecI(x, mm(10)), geometry.NewVecI(x, mm(30))),
			mm(0.25), board.FCu, net,
		), false)
	}

	// Net 4 changes layers half way: front copper down, via, back copper on.
	x := mm(25)
	n.AddSegment(world.NewSegment(
		geometry.NewSeg(geometry.NewVecI(x, mm(10)), geometry.NewVecI(x, mm(20))),
		mm(0.25), board.FCu, 4,
	), false)
	n.Add(world.NewVia(
		geometry.NewVecI(x, mm(20)), mm(0.6), mm(0.3), stackup.AllLayers(), 4,
	))
	n.AddSegment(world.NewSegment(
		geometry.NewSeg(geometry.NewVecI(x, mm(20)), geometry.NewVecI(x, mm(30))),
		mm(0.25), stackup.BCu(), 4,
	), false)

	return stackup
}
