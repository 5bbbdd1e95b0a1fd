package patricia

// Map is an associative map from uint64 keys to values of type V, backed by
// a compressed binary trie that branches on the lowest bit at which keys
// diverge. The zero value is an empty map ready for use.
//
// A Map is not safe for concurrent use. Callers must serialize mutation
// exactly as for a built-in Go map.
type Map[V any] struct {
	size int
	root *node[V]
}

// New returns an empty map. Equivalent to new(Map[V]).
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of stored keys.
func (m *Map[V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[V]) IsEmpty() bool {
	return m.Len() == 0
}

// Get returns the value stored under key and whether key is present.
// Get never mutates the map.
func (m *Map[V]) Get(key uint64) (V, bool) {
	var zero V

	slot := m.locate(key)
	if slot == nil {
		return zero, false
	}

	// locate stops at a prefix-mismatched branch when the key is provably
	// absent; only an exact leaf hit is a find.
	n := *slot
	if n.kind == kindLeaf && n.key == key {
		return n.value, true
	}
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(key uint64) bool {
	_, ok := m.Get(key)
	return ok
}
