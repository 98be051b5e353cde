package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcb-router/internal/board"
	"pcb-router/internal/world"
	"pcb-router/pkg/geometry"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a sample board and walk through a speculative routing attempt",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNode()
			if err != nil {
				return err
			}
			runDemo(cmd, n)
			return nil
		},
	}
}

func runDemo(cmd *cobra.Command, n *world.Node) {
	buildSampleWorld(n)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "baseline: %d items, %d joints\n", n.Index().Len(), n.JointCount())

	// Speculative attempt: branch, drop a conflicting trace through net 1's
	// corridor, measure the damage.
	baseline := n.BranchMove()

	probe := world.NewSegment(
		geometry.NewSeg(geometry.NewVecI(mm(8), mm(20)), geometry.NewVecI(mm(27), mm(20))),
		mm(0.25), board.FCu, 9,
	)
	n.AddSegment(probe, false)

	obstacles := n.QueryColliding(probe, world.KindAny, 0, true, -1)
	fmt.Fprintf(out, "speculative trace collides with %d items\n", len(obstacles))
	for _, obs := range obstacles {
		fmt.Fprintf(out, "  obstacle: %v net %d\n", obs.Item.Kind(), obs.Item.Net())
	}

	if len(obstacles) > 0 {
		n.Revert()
		fmt.Fprintf(out, "reverted: %d items (baseline restored: %v)\n",
			n.Index().Len(), n.Revision() == baseline)
	} else {
		n.Squash()
		fmt.Fprintf(out, "committed: %d items\n", n.Index().Len())
	}

	// Assemble the net-4 run on the front layer.
	joint := n.FindJoint(geometry.NewVecI(mm(25), mm(10)), board.FCu, 4)
	if joint != nil {
		for _, item := range joint.LinkList() {
			if seg, ok := item.(*world.Segment); ok {
				line := n.AssembleLine(seg, nil, false)
				fmt.Fprintf(out, "net 4 front run: %d segments, length %.2f mm\n",
					line.SegmentCount(), float64(line.CLine().Length())/1e6)
			}
		}
	}
}
