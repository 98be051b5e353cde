package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcb-router/internal/board"
	"pcb-router/pkg/geometry"
)

func TestAddSegmentUpdatesRevisionIndexJoints(t *testing.T) {
	n := newTestNode()
	s := seg(0, 0, 100, 0, 0, 1)

	n.AddSegment(s, false)

	assert.True(t, n.Revision().Owns(s))
	assert.Equal(t, 1, n.Index().Len())
	assert.NotNil(t, n.FindJoint(geometry.NewVecI(0, 0), 0, 1))
	assert.NotNil(t, n.FindJoint(geometry.NewVecI(100, 0), 0, 1))
}

func TestAddZeroLengthSegmentIsDropped(t *testing.T) {
	n := newTestNode()

	n.AddSegment(seg(50, 50, 50, 50, 0, 1), false)

	assert.Equal(t, 0, n.Index().Len())
	assert.Equal(t, 0, n.Revision().NumChanges())
	assert.Equal(t, 0, n.JointCount())
}

func TestAddRedundantSegmentIsDropped(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	// Same endpoints reversed, same layer and net: redundant.
	n.AddSegment(seg(100, 0, 0, 0, 0, 1), false)
	assert.Equal(t, 1, n.Index().Len())

	// Different net is not redundant.
	other := seg(0, 0, 100, 0, 0, 2)
	n.AddSegment(other, false)
	assert.Equal(t, 2, n.Index().Len())

	// allowRedundant forces the insertion.
	dup := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(dup, true)
	assert.Equal(t, 3, n.Index().Len())
}

func TestAddLineSharesRedundantSegment(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	line := NewLine(geometry.NewLineChain(
		geometry.NewVecI(0, 0), geometry.NewVecI(100, 0)), testWidth, 0, 1)
	n.AddLine(line, false)

	// The index still contains exactly one segment; the line links s1.
	assert.Equal(t, 1, n.Index().Len())
	require.Len(t, line.LinkedSegments(), 1)
	assert.Same(t, s1, line.LinkedSegments()[0])
	assert.Equal(t, n.Revision(), line.Owner())
}

func TestAddLineSplitsIntoSegments(t *testing.T) {
	n := newTestNode()

	line := NewLine(geometry.NewLineChain(
		geometry.NewVecI(0, 0), geometry.NewVecI(100, 0), geometry.NewVecI(100, 100)),
		testWidth, 0, 1)
	n.AddLine(line, false)

	assert.Equal(t, 2, n.Index().Len())
	assert.Len(t, line.LinkedSegments(), 2)

	jt := n.FindJoint(geometry.NewVecI(100, 0), 0, 1)
	require.NotNil(t, jt)
	assert.True(t, jt.IsLineCorner())
}

func TestRemoveLineUnwindsSegments(t *testing.T) {
	n := newTestNode()

	line := NewLine(geometry.NewLineChain(
		geometry.NewVecI(0, 0), geometry.NewVecI(100, 0), geometry.NewVecI(100, 100)),
		testWidth, 0, 1)
	n.AddLine(line, false)
	require.Equal(t, 2, n.Index().Len())

	n.RemoveLine(line)

	assert.Equal(t, 0, n.Index().Len())
	assert.Empty(t, line.LinkedSegments())
	assert.Nil(t, line.Owner())
	assert.Equal(t, 0, n.Revision().NumChanges())
}

func TestRedundantSegmentRemovalUnwindsJointLinks(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	line := NewLine(geometry.NewLineChain(
		geometry.NewVecI(0, 0), geometry.NewVecI(100, 0)), testWidth, 0, 1)
	n.AddLine(line, false)

	// The line shares s1; removing the line removes the original segment
	// and unwinds its joint links.
	n.RemoveLine(line)

	assert.Equal(t, 0, n.Index().Len())
	jt := n.FindJoint(geometry.NewVecI(0, 0), 0, 1)
	if jt != nil {
		assert.Zero(t, jt.LinkCount())
	}
}

func TestReplace(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	s2 := seg(0, 0, 100, 100, 0, 1)
	n.Replace(s1, s2)

	items := indexedItems(n)
	assert.False(t, items[s1])
	assert.True(t, items[s2])
	assert.Equal(t, 1, n.Index().Len())
}

func TestBranchRevertParity(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	baseline := n.BranchMove()

	s2 := seg(0, 100, 100, 100, 0, 1)
	n.AddSegment(s2, false)
	n.Remove(s1)
	require.Equal(t, 1, n.Index().Len())

	n.Revert()

	assert.Equal(t, baseline, n.Revision())
	assert.Equal(t, 1, n.Index().Len())
	items := indexedItems(n)
	assert.True(t, items[s1])
	assert.False(t, items[s2])

	jt := n.FindJoint(geometry.NewVecI(0, 0), 0, 1)
	require.NotNil(t, jt)
	assert.Equal(t, []Item{s1}, jt.LinkList())
}

func TestBranchMoveRevertIsIdentity(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	prev := n.BranchMove()
	n.Revert()

	assert.Equal(t, prev, n.Revision())
	assert.Equal(t, 1, n.Index().Len())
	assert.True(t, n.Revision().IsLeaf())
}

func TestSquashCancellation(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	parent := n.BranchMove()

	n.Remove(s1)
	s2 := seg(0, 100, 100, 100, 0, 1)
	n.AddSegment(s2, false)

	n.Squash()

	assert.Equal(t, parent, n.Revision())
	assert.ElementsMatch(t, []Item{s2}, n.Revision().AddedItems())
	assert.Empty(t, n.Revision().RemovedItems())
	assert.False(t, n.Revision().Owns(s1))

	// Index state is untouched by a squash: the merged state is the same.
	items := indexedItems(n)
	assert.False(t, items[s1])
	assert.True(t, items[s2])
}

func TestBranchAddRemoveSquashIsNoop(t *testing.T) {
	n := newTestNode()
	s0 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s0, false)

	parent := n.BranchMove()
	s := seg(0, 100, 100, 100, 0, 1)
	n.AddSegment(s, false)
	n.Remove(s)
	n.Squash()

	assert.Equal(t, parent, n.Revision())
	assert.Equal(t, 1, n.Revision().NumChanges()) // just s0
	assert.Equal(t, 1, n.Index().Len())
}

func TestSquashToRevision(t *testing.T) {
	n := newTestNode()
	root := n.Revision()

	n.BranchMove()
	n.AddSegment(seg(0, 0, 100, 0, 0, 1), false)
	n.BranchMove()
	n.AddSegment(seg(100, 0, 200, 0, 0, 1), false)

	n.SquashToRevision(root)
	assert.Equal(t, root, n.Revision())
	assert.Equal(t, 2, len(root.AddedItems()))

	n.BranchMove()
	mid := n.BranchMove()
	n.BranchMove()
	n.SquashToParentRevision(mid)
	assert.Equal(t, mid, n.Revision().Parent())
}

func TestRevertToRevision(t *testing.T) {
	n := newTestNode()
	root := n.Revision()
	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	n.BranchMove()
	n.AddSegment(seg(0, 100, 100, 100, 0, 1), false)
	n.BranchMove()
	n.AddSegment(seg(0, 200, 100, 200, 0, 1), false)

	n.RevertToRevision(root)

	assert.Equal(t, root, n.Revision())
	assert.Equal(t, 1, n.Index().Len())
	assert.True(t, indexedItems(n)[s1])
	assert.True(t, root.IsLeaf())
}

func TestCheckoutRevisionAcrossBranches(t *testing.T) {
	n := newTestNode()
	s0 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s0, false)
	root := n.Revision()

	// Branch A: remove s0, add sA.
	n.BranchMove()
	revA := n.Revision()
	sA := seg(0, 100, 100, 100, 0, 1)
	n.Remove(s0)
	n.AddSegment(sA, false)
	itemsA := indexedItems(n)

	// Back to root, then branch B: add sB.
	n.CheckoutRevision(root)
	n.BranchMove()
	revB := n.Revision()
	sB := seg(0, 200, 100, 200, 0, 1)
	n.AddSegment(sB, false)
	itemsB := indexedItems(n)

	// Cross-branch checkout B -> A.
	n.CheckoutRevision(revA)
	assert.Equal(t, revA, n.Revision())
	assert.Equal(t, itemsA, indexedItems(n))
	assert.False(t, indexedItems(n)[s0], "s0 is shadowed in A")

	// And back again.
	n.CheckoutRevision(revB)
	assert.Equal(t, revB, n.Revision())
	assert.Equal(t, itemsB, indexedItems(n))
	assert.True(t, indexedItems(n)[s0])
}

func TestWalkPathRequiresCurrentRevision(t *testing.T) {
	n := newTestNode()
	root := n.Revision()
	a := root.Branch()
	b := a.Branch()

	// A revert sequence starting below the checked-out revision is a
	// programmer error.
	assert.Panics(t, func() {
		n.WalkPath(RevisionPath{revert: []*Revision{b, a}})
	})
}

func TestClearBranches(t *testing.T) {
	n := newTestNode()
	prev := n.BranchMove()
	n.CheckoutRevision(prev)
	require.False(t, n.Revision().IsLeaf())

	n.ClearBranches()
	assert.True(t, n.Revision().IsLeaf())
}

func TestNodeClear(t *testing.T) {
	n := newTestNode()
	n.AddSegment(seg(0, 0, 100, 0, 0, 1), false)
	n.Add(via(0, 0, 0, 1, 1))

	n.Clear()

	assert.Equal(t, 0, n.Index().Len())
	assert.Equal(t, 0, n.JointCount())
	assert.Equal(t, 0, n.Revision().NumChanges())
}

func TestGetClearanceDefault(t *testing.T) {
	n := NewNode(DefaultNodeOptions())
	a := seg(0, 0, 100, 0, 0, 1)
	b := seg(0, 100, 100, 100, 0, 2)

	assert.Equal(t, DefaultClearance, n.GetClearance(a, b))
	assert.Equal(t, DefaultMaxClearance, n.MaxClearance())
}

func TestFindItemByParentAndNets(t *testing.T) {
	n := newTestNode()
	parent := &board.Connected{Net: 7, Ref: "U1.3"}

	s := seg(0, 0, 100, 0, 0, 7)
	s.SetParent(parent)
	n.AddSegment(s, false)
	n.AddSegment(seg(0, 100, 100, 100, 0, 8), false)

	assert.Equal(t, Item(s), n.FindItemByParent(parent))
	assert.Nil(t, n.FindItemByParent(&board.Connected{Net: 7, Ref: "U1.4"}))

	inNet := n.AllItemsInNet(7)
	require.Len(t, inNet, 1)
	assert.Equal(t, Item(s), inNet[0])
	assert.Empty(t, n.AllItemsInNet(99))
}

func TestMarkersAndRanks(t *testing.T) {
	n := newTestNode()
	s1 := seg(0, 0, 100, 0, 0, 1)
	s2 := seg(0, 100, 100, 100, 0, 1)
	n.AddSegment(s1, false)
	n.AddSegment(s2, false)

	const markerCollision = 1 << 0

	s1.Mark(markerCollision)
	s1.SetRank(3)

	found := n.FindByMarker(markerCollision)
	require.Len(t, found, 1)
	assert.Equal(t, Item(s1), found[0])

	n.ClearRanks(markerCollision)
	assert.Equal(t, -1, s1.Rank())
	assert.Zero(t, s1.Marker())
	assert.Empty(t, n.FindByMarker(markerCollision))

	s2.Mark(markerCollision)
	n.RemoveByMarker(markerCollision)
	assert.False(t, indexedItems(n)[s2])
	assert.Equal(t, 1, n.Index().Len())
}
