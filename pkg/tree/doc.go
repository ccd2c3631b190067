// Package tree provides a generic rooted tree with ordered children and
// traversals driven by injected hooks.
//
// Nodes are owned by their [Tree] and carry a handle ([Node.ID]) that is
// unique within it. Handles, not values, identify nodes: two branches may
// hold equal values at the same depth and still be different nodes.
//
// # Traversal
//
// [Tree.DepthFirst] calls [Visitor] hooks in pre-order and post-order, with a
// separate hook for leaves. [Tree.BreadthFirst] visits level by level. Hooks
// return an error to stop the walk early; the error is returned unchanged.
// Accumulators such as counters or writers live in the hook closures rather
// than in package state.
//
//	var leaves int
//	err := t.DepthFirst(tree.Visitor[int]{
//	    Leaf: func(n *tree.Node[int]) error { leaves++; return nil },
//	})
package tree
