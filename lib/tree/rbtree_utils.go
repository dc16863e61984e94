package tree

import (
	"errors"

	"go.uber.org/multierr"
)

func isRed[K, O any](node *RBNode[K, O]) bool {
	return node.Color() == Red
}

func isBlack[K, O any](node *RBNode[K, O]) bool {
	return node.Color() == Black
}

func blackDepthTo[K, O any](target, to *RBNode[K, O]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack(aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

var (
	ErrRBTreeRedViolation     = errors.New("[rbtree] red violation")
	ErrRBTreeBlackViolation   = errors.New("[rbtree] black violation")
	ErrRBTreeOrderViolation   = errors.New("[rbtree] bst order violation")
	ErrRBTreeExtremeViolation = errors.New("[rbtree] cached extreme violation")
)

// Inorder traversal to validate the rbtree properties.
func RedViolationValidate[K, O any](tree RBTree[K, O]) error {
	if isRed(tree.Root()) {
		return ErrRBTreeRedViolation
	}

	var violated bool
	tree.Foreach(func(idx int64, node *RBNode[K, O]) bool {
		if isRed(node) &&
			(isRed(node.Parent()) || isRed(node.Left()) || isRed(node.Right())) {
			violated = true
			return false
		}
		return true
	})
	if violated {
		return ErrRBTreeRedViolation
	}
	return nil
}

// BFS traversal to load all leaves.
func bfsLeaves[K, O any](tree RBTree[K, O]) []*RBNode[K, O] {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}

	leaves := make([]*RBNode[K, O], 0, size>>1+1)
	stack := make([]*RBNode[K, O], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			stack = append(stack, l)
		}
		if r != nil {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[K, O any](tree RBTree[K, O]) error {
	leaves := bfsLeaves(tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo(leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo(leaves[i], tree.Root()) != blackDepth {
			return ErrRBTreeBlackViolation
		}
	}
	return nil
}

// OrderViolationValidate checks the strict ascending key order of the
// in-order walk under the tree's own comparator, which also rules out
// stored duplicates.
func OrderViolationValidate[K, O any](tree RBTree[K, O]) error {
	t, ok := tree.(*rbTree[K, O])
	if !ok {
		return nil
	}

	var (
		prev     *RBNode[K, O]
		violated bool
	)
	tree.Foreach(func(idx int64, node *RBNode[K, O]) bool {
		if prev != nil && t.keyCompare(prev.Key(), node.Key()) >= 0 {
			violated = true
			return false
		}
		prev = node
		return true
	})
	if violated {
		return ErrRBTreeOrderViolation
	}
	return nil
}

// ExtremeViolationValidate checks the cached leftmost/rightmost
// against full extreme-child descents from the root.
func ExtremeViolationValidate[K, O any](tree RBTree[K, O]) error {
	if tree.Min() != tree.Root().minimum() || tree.Max() != tree.Root().maximum() {
		return ErrRBTreeExtremeViolation
	}
	return nil
}

// Validate aggregates every rbtree invariant check.
func Validate[K, O any](tree RBTree[K, O]) error {
	return multierr.Combine(
		RedViolationValidate(tree),
		BlackViolationValidate(tree),
		OrderViolationValidate(tree),
		ExtremeViolationValidate(tree),
	)
}
