package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcb-router/pkg/geometry"
)

func TestJointLinksAndCorners(t *testing.T) {
	n := newTestNode()

	s1 := seg(0, 0, 100, 0, 0, 1)
	s2 := seg(100, 0, 200, 0, 0, 1)
	n.AddSegment(s1, false)
	n.AddSegment(s2, false)

	jt := n.FindJoint(geometry.NewVecI(100, 0), 0, 1)
	require.NotNil(t, jt)
	assert.Equal(t, 2, jt.LinkCount())
	assert.True(t, jt.IsLineCorner())
	assert.Equal(t, s2, jt.NextSegment(s1))
	assert.Equal(t, s1, jt.NextSegment(s2))

	end := n.FindJoint(geometry.NewVecI(0, 0), 0, 1)
	require.NotNil(t, end)
	assert.Equal(t, 1, end.LinkCount())
	assert.False(t, end.IsLineCorner())
	assert.Nil(t, end.NextSegment(s1))
}

func TestJointNetSeparation(t *testing.T) {
	n := newTestNode()

	n.AddSegment(seg(0, 0, 100, 0, 0, 1), false)
	n.AddSegment(seg(100, 0, 200, 0, 0, 2), false)

	jt1 := n.FindJoint(geometry.NewVecI(100, 0), 0, 1)
	jt2 := n.FindJoint(geometry.NewVecI(100, 0), 0, 2)
	require.NotNil(t, jt1)
	require.NotNil(t, jt2)
	assert.NotSame(t, jt1, jt2)
	assert.Equal(t, 1, jt1.LinkCount())
	assert.Equal(t, 1, jt2.LinkCount())
}

func TestViaMergesLayerJoints(t *testing.T) {
	n := newTestNode()

	sTop := seg(0, 50, 50, 50, 0, 1)
	sBot := seg(50, 50, 100, 50, 1, 1)
	n.AddSegment(sTop, false)
	n.AddSegment(sBot, false)

	// Before the via, the per-layer joints at (50,50) are distinct.
	pre0 := n.FindJoint(geometry.NewVecI(50, 50), 0, 1)
	pre1 := n.FindJoint(geometry.NewVecI(50, 50), 1, 1)
	require.NotNil(t, pre0)
	require.NotNil(t, pre1)
	require.NotSame(t, pre0, pre1)

	v := via(50, 50, 0, 1, 1)
	n.Add(v)

	// The via binds both layers into one joint.
	jt0 := n.FindJoint(geometry.NewVecI(50, 50), 0, 1)
	jt1 := n.FindJoint(geometry.NewVecI(50, 50), 1, 1)
	require.NotNil(t, jt0)
	assert.Same(t, jt0, jt1)
	assert.Equal(t, 3, jt0.LinkCount())
	assert.Equal(t, geometry.NewLayerRange(0, 1), jt0.Layers())
}

func TestViaRemovalSplitsJoint(t *testing.T) {
	n := newTestNode()

	sTop := seg(0, 50, 50, 50, 0, 1)
	sBot := seg(50, 50, 100, 50, 1, 1)
	v := via(50, 50, 0, 1, 1)
	n.AddSegment(sTop, false)
	n.AddSegment(sBot, false)
	n.Add(v)

	n.Remove(v)

	jt0 := n.FindJoint(geometry.NewVecI(50, 50), 0, 1)
	jt1 := n.FindJoint(geometry.NewVecI(50, 50), 1, 1)
	require.NotNil(t, jt0)
	require.NotNil(t, jt1)
	assert.NotSame(t, jt0, jt1, "removal splits the merged joint per layer")

	assert.Equal(t, []Item{sTop}, jt0.LinkList())
	assert.Equal(t, []Item{sBot}, jt1.LinkList())
}

func TestJointDisjointLayersInvariant(t *testing.T) {
	n := newTestNode()

	v := via(0, 0, 0, 3, 1)
	n.AddSegment(seg(0, 0, 50, 0, 0, 1), false)
	n.AddSegment(seg(0, 0, 50, 0, 2, 1), false)
	n.Add(v)
	n.Remove(v)

	for tag, joints := range n.joints {
		for i := 0; i < len(joints); i++ {
			for j := i + 1; j < len(joints); j++ {
				assert.False(t, joints[i].Overlaps(joints[j]),
					"joints at %v must have disjoint layers", tag)
			}
		}
	}
}

func TestLockJoint(t *testing.T) {
	n := newTestNode()

	s1 := seg(0, 0, 100, 0, 0, 1)
	n.AddSegment(s1, false)

	pos := geometry.NewVecI(100, 0)
	n.LockJoint(pos, s1, true)
	jt := n.FindJoint(pos, 0, 1)
	require.NotNil(t, jt)
	assert.True(t, jt.IsLocked())

	n.LockJoint(pos, s1, false)
	assert.False(t, n.FindJoint(pos, 0, 1).IsLocked())
}

func TestJointMergeKeepsLock(t *testing.T) {
	n := newTestNode()

	sTop := seg(0, 50, 50, 50, 0, 1)
	n.AddSegment(sTop, false)
	n.LockJoint(geometry.NewVecI(50, 50), sTop, true)

	// The via merge at (50,50) must carry the locked flag over.
	n.Add(via(50, 50, 0, 1, 1))
	jt := n.FindJoint(geometry.NewVecI(50, 50), 1, 1)
	require.NotNil(t, jt)
	assert.True(t, jt.IsLocked())
}
