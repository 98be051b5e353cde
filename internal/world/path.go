package world

// RevisionPath describes how to travel between two revisions of the same
// tree: first the revert list is undone in order (child to parent), then
// the apply list is replayed towards the target (parent to child).
type RevisionPath struct {
	revert []*Revision // from-side, child-first
	apply  []*Revision // to-side, child-first; applied in reverse
}

// RevertSequence returns the revisions to revert, in revert order.
func (p RevisionPath) RevertSequence() []*Revision {
	return p.revert
}

// ApplySequence returns the revisions to apply, in apply order (parent to
// child).
func (p RevisionPath) ApplySequence() []*Revision {
	seq := make([]*Revision, len(p.apply))
	for i, rev := range p.apply {
		seq[len(p.apply)-1-i] = rev
	}
	return seq
}

// Invert swaps the travel direction of the path.
func (p *RevisionPath) Invert() {
	p.revert, p.apply = p.apply, p.revert
}

// Size returns the total number of revisions on the path.
func (p RevisionPath) Size() int {
	return len(p.revert) + len(p.apply)
}

// PathBetween computes the revision path from one revision to another.
// Both must belong to the same tree; the walk equalizes depths first, then
// ascends both sides in lockstep until they meet at the lowest common
// ancestor. Panics if the revisions share no root.
func PathBetween(from, to *Revision) RevisionPath {
	fromDepth := from.Depth()
	toDepth := to.Depth()

	var revert, apply []*Revision

	for fromDepth > toDepth {
		revert = append(revert, from)
		from = from.Parent()
		fromDepth--
	}

	for toDepth > fromDepth {
		apply = append(apply, to)
		to = to.Parent()
		toDepth--
	}

	for from != nil && to != nil && from != to {
		revert = append(revert, from)
		apply = append(apply, to)
		from = from.Parent()
		to = to.Parent()
	}

	if from != to || from == nil {
		panic("world: PathBetween on revisions of different trees")
	}

	return RevisionPath{revert: revert, apply: apply}
}
