package patricia

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// String returns a debug rendering of the map: a summary line followed by
// one node per line, indented by depth. The format is for humans and is
// not stable.
func (m *Map[V]) String() string {
	w := new(strings.Builder)
	m.dump(w)
	return w.String()
}

// dump the tree structure and all the nodes to w.
func (m *Map[V]) dump(w io.Writer) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "patricia.Map: %d entries", m.size)
	if m.root != nil {
		fmt.Fprintln(w)
		m.root.dumpRec(w, 0)
	}
}

// dumpRec, rec-descent the trie.
func (n *node[V]) dumpRec(w io.Writer, depth int) {
	pad := strings.Repeat(". ", depth)
	switch n.kind {
	case kindLeaf:
		fmt.Fprintf(w, "%sleaf:   key=%#018x (%v)\n", pad, n.key, n.value)
	case kindBranch:
		fmt.Fprintf(w, "%sbranch: bit=%d prefix=%#x\n", pad, n.bit, n.prefix)
		n.left.dumpRec(w, depth+1)
		n.right.dumpRec(w, depth+1)
	default:
		panic("patricia: unused node reached outside a splice")
	}
}
