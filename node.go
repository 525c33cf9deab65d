package llist

// node is a single link in the chain, holding one element and its two
// neighbors. A node belongs to at most one list; a node with both
// links nil is the sole member of its list.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}
