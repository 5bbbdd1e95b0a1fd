package patricia

// locate returns the slot holding the unique attachment point for key: the
// leaf where key must reside if it is present at all, or the first branch
// whose recorded prefix proves key cannot be in its subtree. Returns nil
// only for an empty tree.
//
// The read and write paths share this one routine. Get merely dereferences
// the returned slot; Insert rewrites the slot content in place, so no
// second walk is ever needed.
func (m *Map[V]) locate(key uint64) **node[V] {
	if m.root == nil {
		return nil
	}

	slot := &m.root
	for {
		n := *slot
		switch n.kind {
		case kindLeaf:
			return slot
		case kindBranch:
			if keyPrefix(key, n.bit) != n.prefix {
				// The key disagrees with this subtree somewhere below the
				// routing bit, so it cannot be anywhere underneath.
				return slot
			}
			if goesLeft(key, n.bit) {
				slot = &n.left
			} else {
				slot = &n.right
			}
		default:
			panic("patricia: unused node reached outside a splice")
		}
	}
}
