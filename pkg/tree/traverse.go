package tree

import "errors"

// Visitor holds the depth-first hooks. Any hook may be nil.
//
// Descend runs on an interior node before its children and Ascend after them.
// Leaf runs on nodes without children; when Leaf is nil, leaves receive
// Descend followed by Ascend instead.
type Visitor[T any] struct {
	Descend func(*Node[T]) error
	Ascend  func(*Node[T]) error
	Leaf    func(*Node[T]) error
}

// DepthFirst walks the tree in pre/post order starting at the root.
// The first hook error aborts the walk and is returned, except [ErrStop].
func (t *Tree[T]) DepthFirst(v Visitor[T]) error {
	if err := v.walk(t.Root()); err != nil && !errors.Is(err, ErrStop) {
		return err
	}
	return nil
}

func (v Visitor[T]) walk(n *Node[T]) error {
	if n.Leaf() && v.Leaf != nil {
		return v.Leaf(n)
	}
	if v.Descend != nil {
		if err := v.Descend(n); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := v.walk(c); err != nil {
			return err
		}
	}
	if v.Ascend != nil {
		return v.Ascend(n)
	}
	return nil
}

// BreadthFirst visits nodes level by level. onNode runs once per node;
// onChild runs for every (node, child) edge right after onNode of the parent.
// Either hook may be nil.
func (t *Tree[T]) BreadthFirst(onNode func(*Node[T]) error, onChild func(parent, child *Node[T]) error) error {
	queue := []*Node[T]{t.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if onNode != nil {
			if err := onNode(n); err != nil {
				return stopped(err)
			}
		}
		for _, c := range n.children {
			if onChild != nil {
				if err := onChild(n, c); err != nil {
					return stopped(err)
				}
			}
			queue = append(queue, c)
		}
	}
	return nil
}

// LevelSizes returns the number of nodes at each depth.
func (t *Tree[T]) LevelSizes() []int {
	var sizes []int
	_ = t.BreadthFirst(func(n *Node[T]) error {
		for len(sizes) <= n.depth {
			sizes = append(sizes, 0)
		}
		sizes[n.depth]++
		return nil
	}, nil)
	return sizes
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
