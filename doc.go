package patricia

/*

# PATRICIA map over 64-bit keys

This package provides an in-memory associative map from uint64 keys to
arbitrary values, backed by a compressed binary trie (a PATRICIA tree)
rather than a comparison tree or a hash table.

It follows the same "small, composable functions" style as the
`go-merklelog` primitives:

- one file per concern
- explicit bit arithmetic in `bit.go`
- a minimal public surface over two shared internal routines

## Structure

The tree has two live node kinds:

- a leaf stores exactly one key/value pair
- a branch stores a routing bit position, the prefix (the key bits strictly
  below that position) shared by every key underneath, and two children

Every key under the left child has the routing bit clear; every key under
the right child has it set. A lookup or insert walks from the root and stops
at the first leaf, or at the first branch whose recorded prefix disagrees
with the probe key. That stop node is the unique attachment point: the leaf
the key must match if present, or the branch at which a new key has to be
grafted in.

## Branch bit policy

When two keys collide, the branch bit is the LOWEST bit at which they
differ (`diff & -diff`, LSB-first). This keeps every splice a constant-size
local edit, but it means the trie is not ordered by key value:

- there is no sorted or prefix iteration
- the shape depends only on the set of keys, not insertion order

This is a deliberate property of the structure, not a defect.

## Limits

No deletion, no iteration, no persistence, and no internal locking. A Map
must be serialized by the caller under mutation, exactly as for a built-in
Go map.

*/
