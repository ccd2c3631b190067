package tree

import "errors"

// ErrStop can be returned by a hook to end a traversal early. The traversal
// methods swallow it and return nil.
var ErrStop = errors.New("stop traversal")

// Node is a tree vertex holding a value and its ordered children.
type Node[T any] struct {
	id       int
	depth    int
	value    T
	parent   *Node[T]
	children []*Node[T]
}

// ID returns the node handle, unique within its tree. The root is 0 and
// handles follow insertion order.
func (n *Node[T]) ID() int { return n.id }

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// Depth returns the distance from the root.
func (n *Node[T]) Depth() int { return n.depth }

// Parent returns the parent node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Children returns the children in insertion order. The slice is a copy.
func (n *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), n.children...)
}

// Leaf reports whether n has no children.
func (n *Node[T]) Leaf() bool { return len(n.children) == 0 }

// Find returns the first child whose value satisfies pred, or nil.
func (n *Node[T]) Find(pred func(T) bool) *Node[T] {
	for _, c := range n.children {
		if pred(c.value) {
			return c
		}
	}
	return nil
}

// Path returns the nodes from the root down to n, inclusive.
func (n *Node[T]) Path() []*Node[T] {
	out := make([]*Node[T], n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		out[cur.depth] = cur
	}
	return out
}

// Tree is a rooted tree. The zero value is not usable; create trees with [New].
type Tree[T any] struct {
	nodes []*Node[T]
}

// New returns a tree with a single root holding v.
func New[T any](v T) *Tree[T] {
	root := &Node[T]{id: 0, value: v}
	return &Tree[T]{nodes: []*Node[T]{root}}
}

// Root returns the root node.
func (t *Tree[T]) Root() *Node[T] { return t.nodes[0] }

// Len returns the number of nodes.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Node returns the node with handle id, or nil if there is none.
func (t *Tree[T]) Node(id int) *Node[T] {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Add appends a child holding v to parent and returns it.
// Parent must belong to t.
func (t *Tree[T]) Add(parent *Node[T], v T) *Node[T] {
	child := &Node[T]{
		id:     len(t.nodes),
		depth:  parent.depth + 1,
		value:  v,
		parent: parent,
	}
	parent.children = append(parent.children, child)
	t.nodes = append(t.nodes, child)
	return child
}

// Height returns the depth of the deepest node.
func (t *Tree[T]) Height() int {
	h := 0
	for _, n := range t.nodes {
		h = max(h, n.depth)
	}
	return h
}

// Level returns the nodes at depth d, in depth-first order.
func (t *Tree[T]) Level(d int) []*Node[T] {
	var out []*Node[T]
	_ = t.DepthFirst(Visitor[T]{
		Descend: func(n *Node[T]) error {
			if n.depth == d {
				out = append(out, n)
			}
			return nil
		},
	})
	return out
}

// Leaves returns the leaves in depth-first order.
func (t *Tree[T]) Leaves() []*Node[T] {
	var out []*Node[T]
	_ = t.DepthFirst(Visitor[T]{
		Leaf: func(n *Node[T]) error {
			out = append(out, n)
			return nil
		},
	})
	return out
}

// Clone returns a deep copy with the same shape and values. Handles in the
// copy follow depth-first order.
func (t *Tree[T]) Clone() *Tree[T] {
	out := New(t.Root().value)
	var copyChildren func(src, dst *Node[T])
	copyChildren = func(src, dst *Node[T]) {
		for _, c := range src.children {
			copyChildren(c, out.Add(dst, c.value))
		}
	}
	copyChildren(t.Root(), out.Root())
	return out
}
