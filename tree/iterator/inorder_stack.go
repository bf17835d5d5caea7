package iterator

import (
	"go.lepak.sg/sx/stack"
	"go.lepak.sg/sx/tree"
)

var _ Iterator[int] = (*InOrderStack[int])(nil)

// InOrderStack is an iterator object over a binary tree.
// It is functionally equivalent to InOrder, but this does
// not rely on the node parent pointer, instead keeping
// an internal stack of previous nodes.
type InOrderStack[T any] struct {
	root    *tree.Node[T]
	stack   *stack.Stack[*tree.Node[T]]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2).
// When we pop off a node from i.stack, we'll know
// we should be in the second half of visit, because we
// already did the first half before pushing it on.
// We can resume from (2), popping off the node and
// pushing on the right child and its left spine.

// NewInOrderStack creates a new in-order iterator.
func NewInOrderStack[T any](root *tree.Node[T]) *InOrderStack[T] {
	return &InOrderStack[T]{
		root:  root,
		stack: stack.New[*tree.Node[T]](),
	}
}

func (i *InOrderStack[T]) pushLeftSpine(n *tree.Node[T]) {
	for n != nil {
		i.stack.Push(n)
		n = n.Left
	}
}

func (i *InOrderStack[T]) Next() bool {
	if !i.started {
		i.started = true
		i.pushLeftSpine(i.root)
		return !i.stack.Empty()
	}

	if i.stack.Empty() {
		return false
	}

	// the left subtree of the top has been visited, so only
	// its right subtree is left
	pop := i.stack.Pop()
	i.pushLeftSpine(pop.Right)

	return !i.stack.Empty()
}

func (i *InOrderStack[T]) Item() T {
	return i.stack.Top().Key
}
