package patricia

// nodeKind discriminates the live node kinds. The zero value marks a node
// that is not (or no longer) part of a well-formed tree; it is observable
// only while a splice is rewriting a slot, never from a public operation.
type nodeKind uint8

const (
	kindUnused nodeKind = iota
	kindLeaf
	kindBranch
)

// node is a single trie node.
//
// A leaf (kindLeaf) stores one key/value pair and owns nothing. A branch
// (kindBranch) stores the routing bit, the prefix shared by every key in
// its subtree (the key bits strictly below bit), and exactly two non-nil
// children. Every key under left has the routing bit clear; every key
// under right has it set.
//
// Nodes hold no parent link; the tree is navigated top-down only, and each
// node is owned by exactly one slot (the Map root or one child pointer).
type node[V any] struct {
	kind nodeKind

	// leaf fields
	key   uint64
	value V

	// branch fields
	prefix uint64
	bit    uint8
	left   *node[V]
	right  *node[V]
}

func newLeaf[V any](key uint64, value V) *node[V] {
	return &node[V]{kind: kindLeaf, key: key, value: value}
}
