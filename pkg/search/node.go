package search

// NodeID identifies a node inside the Tree it was created in.
type NodeID int32

// NoParent is the parent id carried by root nodes.
const NoParent NodeID = -1

// record is the arena entry backing a Node. Records are never mutated after append.
type record[A, S any] struct {
	state     S
	action    A
	hasAction bool
	parent    NodeID
	pathCost  float64
	depth     int
}

// Tree is an append-only arena holding every node generated from one root.
// Parents are referenced by index, so a node never owns its parent and the
// chain stays acyclic: a parent is always appended before its children.
type Tree[A, S any] struct {
	records []record[A, S]
}

// Len returns the number of nodes generated in the tree so far
func (t *Tree[A, S]) Len() int {
	return len(t.records)
}

// Node returns the node with the given id
func (t *Tree[A, S]) Node(id NodeID) (Node[A, S], bool) {
	if id < 0 || int(id) >= len(t.records) {
		return Node[A, S]{}, false
	}
	return Node[A, S]{tree: t, id: id}, true
}

func (t *Tree[A, S]) add(r record[A, S]) Node[A, S] {
	id := NodeID(len(t.records))
	t.records = append(t.records, r)
	return Node[A, S]{tree: t, id: id}
}

// Node is an immutable handle on a state reached during search, the action
// that produced it and the link back to its parent.
type Node[A, S any] struct {
	tree *Tree[A, S]
	id   NodeID
}

func (n Node[A, S]) rec() *record[A, S] {
	return &n.tree.records[n.id]
}

// ID returns the node's index in its tree
func (n Node[A, S]) ID() NodeID {
	return n.id
}

// Tree returns the arena the node lives in
func (n Node[A, S]) Tree() *Tree[A, S] {
	return n.tree
}

// IsZero reports whether n is the zero Node, which refers to no tree
func (n Node[A, S]) IsZero() bool {
	return n.tree == nil
}

// State returns the state held by the node
func (n Node[A, S]) State() S {
	return n.rec().state
}

// Action returns the action that led from the parent to this node.
// Roots report false.
func (n Node[A, S]) Action() (A, bool) {
	r := n.rec()
	return r.action, r.hasAction
}

// PathCost returns the accumulated cost from the root to this node
func (n Node[A, S]) PathCost() float64 {
	return n.rec().pathCost
}

// Depth returns the number of actions between the root and this node
func (n Node[A, S]) Depth() int {
	return n.rec().depth
}

// IsRoot reports whether the node has no parent
func (n Node[A, S]) IsRoot() bool {
	return n.rec().parent == NoParent
}

// Parent returns the node's parent. Roots report false.
func (n Node[A, S]) Parent() (Node[A, S], bool) {
	p := n.rec().parent
	if p == NoParent {
		return Node[A, S]{}, false
	}
	return Node[A, S]{tree: n.tree, id: p}, true
}

// Path returns the nodes from the root to n, root first
func (n Node[A, S]) Path() []Node[A, S] {
	path := make([]Node[A, S], n.Depth()+1)
	cur, ok := n, true
	for i := len(path) - 1; ok; i-- {
		path[i] = cur
		cur, ok = cur.Parent()
	}
	return path
}

// Actions returns the actions leading from the root to n, in order
func (n Node[A, S]) Actions() []A {
	actions := make([]A, n.Depth())
	cur := n
	for i := len(actions) - 1; i >= 0; i-- {
		actions[i], _ = cur.Action()
		cur, _ = cur.Parent()
	}
	return actions
}
