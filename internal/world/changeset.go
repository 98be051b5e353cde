package world

// ChangeSet aggregates the deltas of one or more revisions into a single
// cancellation-normalised (added, removed) pair. It never owns items.
type ChangeSet struct {
	added   []Item
	removed []Item
}

// AddedItems returns the aggregated additions.
func (c *ChangeSet) AddedItems() []Item {
	return c.added
}

// RemovedItems returns the aggregated removals.
func (c *ChangeSet) RemovedItems() []Item {
	return c.removed
}

// Clear empties the change set.
func (c *ChangeSet) Clear() {
	c.added = nil
	c.removed = nil
}

// Add records an addition, cancelling a matching recorded removal.
func (c *ChangeSet) Add(item Item) {
	for i, it := range c.removed {
		if it == item {
			c.removed = append(c.removed[:i], c.removed[i+1:]...)
			return
		}
	}
	c.added = append(c.added, item)
}

// Remove records a removal, cancelling a matching recorded addition.
func (c *ChangeSet) Remove(item Item) {
	for i, it := range c.added {
		if it == item {
			c.added = append(c.added[:i], c.added[i+1:]...)
			return
		}
	}
	c.removed = append(c.removed, item)
}

// Apply folds a revision's delta into the set.
func (c *ChangeSet) Apply(rev *Revision) {
	for _, item := range rev.AddedItems() {
		c.Add(item)
	}
	for _, item := range rev.RemovedItems() {
		c.Remove(item)
	}
}

// Revert folds the inverse of a revision's delta into the set.
func (c *ChangeSet) Revert(rev *Revision) {
	for _, item := range rev.AddedItems() {
		c.Remove(item)
	}
	for _, item := range rev.RemovedItems() {
		c.Add(item)
	}
}

// ChangeSetFromPath aggregates a change set over a revision path, reverting
// the revert sequence and then applying the apply sequence. Walking the two
// sequences separately matters: folding the unsplit path is wrong for paths
// that cross branches.
func ChangeSetFromPath(path RevisionPath) ChangeSet {
	var cs ChangeSet
	for _, rev := range path.RevertSequence() {
		cs.Revert(rev)
	}
	for _, rev := range path.ApplySequence() {
		cs.Apply(rev)
	}
	return cs
}
