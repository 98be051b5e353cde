package world

import (
	"log/slog"

	"pcb-router/pkg/geometry"
)

// Default clearance tunables in nanometres.
const (
	// DefaultMaxClearance is the bounding-region expansion radius used to
	// widen index queries. It must be an upper bound on any clearance the
	// rule resolver can return.
	DefaultMaxClearance = 800000
	// DefaultClearance is the pairwise clearance assumed when no rule
	// resolver is configured.
	DefaultClearance = 100000
)

// RuleResolver supplies the pairwise clearance between two items in
// nanometres. It is an external collaborator; the world model never
// inspects design rules itself.
type RuleResolver interface {
	Clearance(a, b Item) int
}

// NodeOptions configures a Node.
type NodeOptions struct {
	MaxClearance int          // index query expansion radius
	Rules        RuleResolver // nil falls back to DefaultClearance
	Logger       *slog.Logger // nil falls back to slog.Default
}

// DefaultNodeOptions returns the standard Node configuration.
func DefaultNodeOptions() NodeOptions {
	return NodeOptions{MaxClearance: DefaultMaxClearance}
}

// Node is the façade over the revision tree, the spatial index and the
// joint graph. Mutations record deltas in the checked-out revision and
// update the index and joints; revision navigation replays recorded deltas
// so that index and joints always mirror the checked-out revision.
//
// A Node is single-agent: all methods must be called from one goroutine.
type Node struct {
	revision     *Revision
	index        *SpatialIndex
	joints       map[JointTag][]*Joint
	maxClearance int
	rules        RuleResolver
	log          *slog.Logger
}

// NewNode creates an empty world with a fresh root revision.
func NewNode(opts NodeOptions) *Node {
	if opts.MaxClearance <= 0 {
		opts.MaxClearance = DefaultMaxClearance
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Node{
		revision:     NewRevision(),
		index:        NewSpatialIndex(),
		joints:       make(map[JointTag][]*Joint),
		maxClearance: opts.MaxClearance,
		rules:        opts.Rules,
		log:          opts.Logger,
	}
}

// Revision returns the checked-out revision.
func (n *Node) Revision() *Revision {
	return n.revision
}

// Index returns the spatial index. The index is read-only for callers;
// mutate the world through the Node.
func (n *Node) Index() *SpatialIndex {
	return n.index
}

// MaxClearance returns the index query expansion radius.
func (n *Node) MaxClearance() int {
	return n.maxClearance
}

// GetClearance returns the required clearance between two items, falling
// back to DefaultClearance when no rule resolver is configured.
func (n *Node) GetClearance(a, b Item) int {
	if n.rules == nil {
		return DefaultClearance
	}
	return n.rules.Clearance(a, b)
}

// Clear wipes the whole world: index, joints and the checked-out
// revision's recorded changes and branches.
func (n *Node) Clear() {
	n.index.Clear()
	n.joints = make(map[JointTag][]*Joint)
	n.revision.Clear()
}

// ================
// Revision methods
// ================

// Path returns the revision path from the checked-out revision up to
// ancestor.
func (n *Node) Path(ancestor *Revision) RevisionPath {
	return n.revision.PathToAncestor(ancestor)
}

// GetRevisionChanges returns the change set of the checked-out revision.
func (n *Node) GetRevisionChanges() ChangeSet {
	return n.revision.Changes()
}

// BranchMove branches the checked-out revision, checks out the new branch
// and returns the previous revision.
func (n *Node) BranchMove() *Revision {
	prev := n.revision
	n.revision = n.revision.Branch()
	return prev
}

// Squash folds the checked-out revision into its parent and checks out the
// parent. Index and joints are unaffected: the merged state is the same
// state.
func (n *Node) Squash() {
	n.revision = n.revision.Squash()
}

// SquashToRevision squashes until ancestor is checked out.
func (n *Node) SquashToRevision(ancestor *Revision) {
	for n.revision != ancestor {
		n.Squash()
	}
}

// SquashToParentRevision squashes until the checked-out revision is a
// direct child of ancestor.
func (n *Node) SquashToParentRevision(ancestor *Revision) {
	for n.revision.Parent() != ancestor {
		n.Squash()
	}
}

// Revert undoes the checked-out revision's delta against index and joints,
// removes the revision from the tree and checks out its parent.
func (n *Node) Revert() {
	n.revertRevision(n.revision)
	n.revision = n.revision.Revert()
}

// RevertToRevision reverts until ancestor is checked out.
func (n *Node) RevertToRevision(ancestor *Revision) {
	for n.revision != ancestor {
		n.Revert()
	}
}

// RevertToParentRevision reverts until the checked-out revision is a
// direct child of ancestor.
func (n *Node) RevertToParentRevision(ancestor *Revision) {
	for n.revision.Parent() != ancestor {
		n.Revert()
	}
}

// CheckoutRevision navigates to an arbitrary revision of the same tree,
// replaying deltas on index and joints along the way. Unlike Revert, no
// revision is discarded.
func (n *Node) CheckoutRevision(target *Revision) {
	n.WalkPath(PathBetween(n.revision, target))
}

// WalkPath travels a revision path: the revert sequence is undone child to
// parent, then the apply sequence is replayed parent to child. The path
// must start at the checked-out revision.
func (n *Node) WalkPath(path RevisionPath) {
	for _, rev := range path.RevertSequence() {
		if rev != n.revision {
			panic("world: WalkPath revert sequence does not start at the checked-out revision")
		}
		n.revertRevision(rev)
		n.revision = rev.Parent()
	}

	for _, rev := range path.ApplySequence() {
		if rev.Parent() != n.revision {
			panic("world: WalkPath apply sequence does not descend from the checked-out revision")
		}
		n.applyRevision(rev)
		n.revision = rev
	}
}

// ClearBranches drops all branches of the checked-out revision.
func (n *Node) ClearBranches() {
	n.revision.ClearBranches()
}

// applyRevision replays a revision's delta onto index and joints.
func (n *Node) applyRevision(rev *Revision) {
	for _, item := range rev.RemovedItems() {
		n.removeItemIndex(item)
	}
	for _, item := range rev.AddedItems() {
		n.addItemIndex(item)
	}
}

// revertRevision replays the inverse of a revision's delta onto index and
// joints.
func (n *Node) revertRevision(rev *Revision) {
	for _, item := range rev.AddedItems() {
		n.removeItemIndex(item)
	}
	for _, item := range rev.RemovedItems() {
		n.addItemIndex(item)
	}
}

// =========
// Mutations
// =========

// Add inserts an item into the world: the delta is recorded in the
// checked-out revision and index and joints are updated. Segments and
// lines are inserted with redundancy checking; use AddSegment or AddLine
// to allow redundant insertions.
func (n *Node) Add(item Item) {
	switch it := item.(type) {
	case *Solid:
		n.addSolidIndex(it)
		n.revision.AddItem(it)
	case *Via:
		n.addViaIndex(it)
		n.revision.AddItem(it)
	case *Segment:
		n.AddSegment(it, false)
	case *Line:
		n.AddLine(it, false)
	default:
		panic("world: Add on unknown item kind")
	}
}

// AddSegment inserts a wire segment. Zero-length segments are dropped. A
// segment duplicating an existing one (same endpoints, start layer and
// net) is dropped unless allowRedundant is set.
func (n *Node) AddSegment(seg *Segment, allowRedundant bool) {
	if seg.Seg().A == seg.Seg().B {
		n.log.Debug("dropping zero-length segment", "pos", seg.Seg().A)
		return
	}
	if !allowRedundant && n.findRedundantSegment(seg) != nil {
		n.log.Debug("dropping redundant segment", "a", seg.Seg().A, "b", seg.Seg().B)
		return
	}
	n.addSegmentIndex(seg)
	n.revision.AddItem(seg)
}

// AddLine inserts a line by splitting it into world segments. Where a
// segment of the line duplicates an existing segment and allowRedundant is
// unset, the line links the existing segment instead of inserting a new
// one. The line itself is transient; only its segments enter the world.
func (n *Node) AddLine(line *Line, allowRedundant bool) {
	if line.IsLinked() {
		panic("world: AddLine on an already linked line")
	}

	chain := line.CLine()
	for i := 0; i < chain.SegmentCount(); i++ {
		s := chain.CSegment(i)
		if s.A == s.B {
			continue
		}
		if !allowRedundant {
			if rseg := n.findRedundantSegmentAt(s.A, s.B, line.Layers(), line.Net()); rseg != nil {
				// Another line may reference this segment too.
				line.LinkSegment(rseg)
				continue
			}
		}
		seg := NewSegmentFromLine(line, s)
		line.LinkSegment(seg)
		n.AddSegment(seg, true)
	}
	line.SetOwner(n.revision)
}

// Remove deletes an item from the world: index and joints are updated and
// the removal is recorded in the checked-out revision. Removing a line
// removes its linked segments and detaches the line.
func (n *Node) Remove(item Item) {
	if line, ok := item.(*Line); ok {
		n.RemoveLine(line)
		return
	}
	n.removeItemIndex(item)
	n.revision.RemoveItem(item)
}

// RemoveLine removes every segment linked by the line, then clears the
// line's links and owner. Lines are views: there is nothing else to
// remove.
func (n *Node) RemoveLine(line *Line) {
	for _, seg := range line.LinkedSegments() {
		n.Remove(seg)
	}
	line.SetOwner(nil)
	line.ClearSegmentLinks()
}

// Replace removes oldItem and inserts newItem in one step.
func (n *Node) Replace(oldItem, newItem Item) {
	n.Remove(oldItem)
	n.Add(newItem)
}

// ReplaceLine removes the old line's segments and inserts the new line.
func (n *Node) ReplaceLine(oldLine, newLine *Line) {
	n.RemoveLine(oldLine)
	n.AddLine(newLine, false)
}

// ==============================
// Index and joint graph plumbing
// ==============================

func (n *Node) addSolidIndex(solid *Solid) {
	n.linkJoint(solid.Pos(), solid.Layers(), solid.Net(), solid)
	n.index.Add(solid)
}

func (n *Node) addViaIndex(via *Via) {
	n.linkJoint(via.Pos(), via.Layers(), via.Net(), via)
	n.index.Add(via)
}

func (n *Node) addSegmentIndex(seg *Segment) {
	n.linkJoint(seg.Seg().A, seg.Layers(), seg.Net(), seg)
	n.linkJoint(seg.Seg().B, seg.Layers(), seg.Net(), seg)
	n.index.Add(seg)
}

func (n *Node) addItemIndex(item Item) {
	switch it := item.(type) {
	case *Solid:
		n.addSolidIndex(it)
	case *Via:
		n.addViaIndex(it)
	case *Segment:
		n.addSegmentIndex(it)
	default:
		panic("world: lines are never indexed")
	}
}

func (n *Node) removeSolidIndex(solid *Solid) {
	n.unlinkJoint(solid.Pos(), solid.Layers(), solid.Net(), solid)
	n.index.Remove(solid)
}

func (n *Node) removeSegmentIndex(seg *Segment) {
	n.unlinkJoint(seg.Seg().A, seg.Layers(), seg.Net(), seg)
	n.unlinkJoint(seg.Seg().B, seg.Layers(), seg.Net(), seg)
	n.index.Remove(seg)
}

// removeViaIndex splits the merged joint a via held together. The joint's
// links are captured, every joint overlapping the via's layer span at the
// via's tag is erased, and the surviving links are re-linked under their
// own layer ranges, which re-creates the per-layer joints.
func (n *Node) removeViaIndex(via *Via) {
	jt := n.FindJoint(via.Pos(), via.Layers().Start, via.Net())
	if jt == nil {
		panic("world: removing a via without a joint")
	}
	links := append([]Item(nil), jt.LinkList()...)

	tag := JointTag{Pos: via.Pos(), Net: via.Net()}
	for split := true; split; {
		split = false
		for i, j := range n.joints[tag] {
			if via.LayersOverlap(j) {
				n.joints[tag] = append(n.joints[tag][:i], n.joints[tag][i+1:]...)
				split = true
				break
			}
		}
	}
	if len(n.joints[tag]) == 0 {
		delete(n.joints, tag)
	}

	for _, item := range links {
		if item != Item(via) {
			n.linkJoint(via.Pos(), item.Layers(), via.Net(), item)
		}
	}

	n.index.Remove(via)
}

func (n *Node) removeItemIndex(item Item) {
	switch it := item.(type) {
	case *Solid:
		n.removeSolidIndex(it)
	case *Via:
		n.removeViaIndex(it)
	case *Segment:
		n.removeSegmentIndex(it)
	default:
		panic("world: lines are never indexed")
	}
}

// touchJoint finds or creates the joint at (pos, net) covering layers,
// merging every existing joint of the same tag whose layer range overlaps.
// The merge loop maintains the invariant that joints sharing a tag have
// pairwise disjoint layer ranges.
func (n *Node) touchJoint(pos geometry.VecI, layers geometry.LayerRange, net int) *Joint {
	tag := JointTag{Pos: pos, Net: net}
	jt := NewJoint(pos, layers, net)

	for merged := true; merged; {
		merged = false
		for i, existing := range n.joints[tag] {
			// Test against the candidate's merged range, not the original
			// layers: a previous merge may have widened it.
			if jt.Overlaps(existing) {
				jt.Merge(existing)
				n.joints[tag] = append(n.joints[tag][:i], n.joints[tag][i+1:]...)
				merged = true
				break
			}
		}
	}

	n.joints[tag] = append(n.joints[tag], jt)
	return jt
}

func (n *Node) linkJoint(pos geometry.VecI, layers geometry.LayerRange, net int, item Item) {
	n.touchJoint(pos, layers, net).Link(item)
}

func (n *Node) unlinkJoint(pos geometry.VecI, layers geometry.LayerRange, net int, item Item) {
	// Dangling empty joints are tolerated; they are merged away or reused
	// by the next touch of the same tag.
	n.touchJoint(pos, layers, net).Unlink(item)
}

// FindJoint returns the joint at (pos, net) whose layer range contains
// layer, or nil.
func (n *Node) FindJoint(pos geometry.VecI, layer, net int) *Joint {
	for _, jt := range n.joints[JointTag{Pos: pos, Net: net}] {
		if jt.Layers().OverlapsLayer(layer) {
			return jt
		}
	}
	return nil
}

// FindJointForItem returns the joint binding item at pos.
func (n *Node) FindJointForItem(pos geometry.VecI, item Item) *Joint {
	return n.FindJoint(pos, item.Layers().Start, item.Net())
}

// LockJoint sets the locked flag of the joint at pos covering the item's
// layers, creating the joint if it does not exist yet.
func (n *Node) LockJoint(pos geometry.VecI, item Item, locked bool) {
	n.touchJoint(pos, item.Layers(), item.Net()).Lock(locked)
}

// JointCount returns the total number of joints in the map, including
// empty ones.
func (n *Node) JointCount() int {
	count := 0
	for _, list := range n.joints {
		count += len(list)
	}
	return count
}

// findRedundantSegmentAt returns a segment between a and b on the given
// start layer and net, or nil. Endpoint comparison is exact and unordered.
func (n *Node) findRedundantSegmentAt(a, b geometry.VecI, layers geometry.LayerRange, net int) *Segment {
	jtStart := n.FindJoint(a, layers.Start, net)
	if jtStart == nil {
		return nil
	}
	for _, item := range jtStart.LinkList() {
		seg, ok := item.(*Segment)
		if !ok {
			continue
		}
		a2, b2 := seg.Seg().A, seg.Seg().B
		if seg.Layers().Start == layers.Start &&
			((a == a2 && b == b2) || (a == b2 && b == a2)) {
			return seg
		}
	}
	return nil
}

func (n *Node) findRedundantSegment(seg *Segment) *Segment {
	return n.findRedundantSegmentAt(seg.Seg().A, seg.Seg().B, seg.Layers(), seg.Net())
}
