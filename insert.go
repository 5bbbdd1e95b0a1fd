package patricia

// Insert stores value under key. If key was already present its previous
// value is returned with ok=true, the leaf is updated in place, and the
// size is unchanged. Otherwise the zero V is returned with ok=false and the
// size grows by one. Insert always succeeds.
func (m *Map[V]) Insert(key uint64, value V) (prev V, ok bool) {
	if m.root == nil {
		m.root = newLeaf(key, value)
		m.size++
		return prev, false
	}

	slot := m.locate(key)
	n := *slot

	var diff uint64
	switch n.kind {
	case kindLeaf:
		if n.key == key {
			prev, n.value = n.value, value
			return prev, true
		}
		diff = n.key ^ key
	case kindBranch:
		// locate stopped here because the prefix mismatched, so the key
		// already differs from the whole subtree below n.bit.
		diff = n.prefix ^ key
	default:
		panic("patricia: unused node reached outside a splice")
	}

	splice(slot, diff, key, value)
	m.size++
	return prev, false
}

// splice replaces the content of slot with a new branch whose two children
// are the previous content (relocated wholesale) and a fresh leaf for key.
// The branch bit is the lowest bit at which key diverges from every key
// already below slot, and the side is chosen by that bit of key.
func splice[V any](slot **node[V], diff uint64, key uint64, value V) {
	bit := branchingBit(diff)

	leaf := newLeaf(key, value)
	old := *slot

	b := &node[V]{
		kind:   kindBranch,
		prefix: keyPrefix(key, bit),
		bit:    bit,
	}
	if goesLeft(key, bit) {
		b.left, b.right = leaf, old
	} else {
		b.left, b.right = old, leaf
	}
	*slot = b
}
