package world

// Revision is one node of the revision tree. It records the delta against
// its parent as a list of added items (owned by this revision) and removed
// items (references into some ancestor), and owns its child branches.
//
// Only leaf revisions may be mutated; AddItem and RemoveItem panic
// otherwise. Squash and Revert keep item ownership consistent: an item dies
// with the revision owning it, or is transferred to the parent when the
// revision is squashed.
type Revision struct {
	parent   *Revision
	branches []*Revision
	added    []Item
	removed  []Item
}

// NewRevision creates a root revision.
func NewRevision() *Revision {
	return &Revision{}
}

// Parent returns the parent revision, or nil for a root.
func (r *Revision) Parent() *Revision {
	return r.parent
}

// Branches returns the child revisions.
func (r *Revision) Branches() []*Revision {
	return r.branches
}

// AddedItems returns the items added (and owned) by this revision.
func (r *Revision) AddedItems() []Item {
	return r.added
}

// RemovedItems returns the items removed (shadowed) by this revision.
func (r *Revision) RemovedItems() []Item {
	return r.removed
}

// IsLeaf returns true if the revision has no branches.
func (r *Revision) IsLeaf() bool {
	return len(r.branches) == 0
}

// AddItem takes ownership of item and records it as added in this
// revision. Panics if the revision is not a leaf.
func (r *Revision) AddItem(item Item) {
	if !r.IsLeaf() {
		panic("world: AddItem on a non-leaf revision")
	}
	r.addItem(item)
}

// RemoveItem records the removal of item. If this revision added the item,
// the addition is cancelled instead and the item's lifetime ends. Panics if
// the revision is not a leaf.
func (r *Revision) RemoveItem(item Item) {
	if !r.IsLeaf() {
		panic("world: RemoveItem on a non-leaf revision")
	}
	r.removeItem(item)
}

func (r *Revision) addItem(item Item) {
	item.SetOwner(r)
	r.added = append(r.added, item)
}

func (r *Revision) removeItem(item Item) {
	for i, it := range r.added {
		if it == item {
			r.added = append(r.added[:i], r.added[i+1:]...)
			item.SetOwner(nil)
			return
		}
	}
	r.removed = append(r.removed, item)
}

// IsShadowed returns true if item is recorded as removed in this revision
// or any of its ancestors.
func (r *Revision) IsShadowed(item Item) bool {
	for _, it := range r.removed {
		if it == item {
			return true
		}
	}
	return r.parent != nil && r.parent.IsShadowed(item)
}

// Owns returns true if item is in this revision's added list.
func (r *Revision) Owns(item Item) bool {
	for _, it := range r.added {
		if it == item {
			return true
		}
	}
	return false
}

// NumChanges returns the number of non-cancelling changes recorded in this
// revision.
func (r *Revision) NumChanges() int {
	return len(r.added) + len(r.removed)
}

// Depth returns the distance to the root revision; a root has depth 0.
func (r *Revision) Depth() int {
	// Could be cached on the node, but then Squash and Revert would have to
	// keep it consistent for all surviving descendants.
	depth := 0
	for rev := r.parent; rev != nil; rev = rev.parent {
		depth++
	}
	return depth
}

// Clear drops all recorded changes and branches.
func (r *Revision) Clear() {
	r.added = nil
	r.removed = nil
	r.branches = nil
}

// Branch creates a new child revision and returns it.
func (r *Revision) Branch() *Revision {
	child := &Revision{parent: r}
	r.branches = append(r.branches, child)
	return child
}

// ReleaseBranch detaches branch from this revision and returns it as a
// free-standing root, or nil if branch is not a child of this revision.
func (r *Revision) ReleaseBranch(branch *Revision) *Revision {
	for i, b := range r.branches {
		if b == branch {
			r.branches = append(r.branches[:i], r.branches[i+1:]...)
			b.parent = nil
			return b
		}
	}
	return nil
}

// RemoveBranch detaches branch from this revision, ending the lifetime of
// the branch, its items and its descendants.
func (r *Revision) RemoveBranch(branch *Revision) {
	r.ReleaseBranch(branch)
}

// ClearBranches drops all branches of this revision, ending the lifetime of
// every item introduced below it.
func (r *Revision) ClearBranches() {
	r.branches = nil
}

// Revert removes this revision from its parent and returns the parent.
// Panics on a root revision.
func (r *Revision) Revert() *Revision {
	if r.parent == nil {
		panic("world: Revert on a root revision")
	}
	parent := r.parent
	parent.RemoveBranch(r)
	return parent
}

// Squash merges this revision's delta into its parent and returns the
// parent. The parent absorbs the delta with cancellation, adopts this
// revision's branches and drops all of this revision's siblings, which
// reference a parent state that no longer exists. Panics on a root
// revision.
func (r *Revision) Squash() *Revision {
	if r.parent == nil {
		panic("world: Squash on a root revision")
	}
	parent := r.parent
	parent.absorb(r)
	parent.ReleaseBranch(r)
	parent.ClearBranches()

	for _, b := range r.branches {
		b.parent = parent
	}
	parent.branches = append(parent.branches, r.branches...)
	r.branches = nil

	return parent
}

// absorb folds other's delta into this revision, cancelling removals
// against this revision's additions, and leaves other empty.
func (r *Revision) absorb(other *Revision) {
	for _, item := range other.removed {
		r.removeItem(item)
	}
	other.removed = nil

	for _, item := range other.added {
		r.addItem(item)
	}
	other.added = nil
}

// PathToAncestor returns the revision path from this revision up to (but
// not including) ancestor, child-first, with an empty apply list.
func (r *Revision) PathToAncestor(ancestor *Revision) RevisionPath {
	var revert []*Revision
	for rev := r; rev != ancestor; rev = rev.parent {
		revert = append(revert, rev)
	}
	return RevisionPath{revert: revert}
}

// Changes returns the cancellation-normalised change set of this revision.
func (r *Revision) Changes() ChangeSet {
	var cs ChangeSet
	cs.Apply(r)
	return cs
}
