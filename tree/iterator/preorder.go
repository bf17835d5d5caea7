package iterator

import (
	"go.lepak.sg/sx/stack"
	"go.lepak.sg/sx/tree"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder is an iterator that yields each node before its
// subtrees. The top of its stack is always the current node.
type PreOrder[T any] struct {
	root    *tree.Node[T]
	stack   *stack.Stack[*tree.Node[T]]
	started bool
}

// NewPreOrder returns a new PreOrder iterator over the tree rooted
// at root. Parent pointers are not needed.
func NewPreOrder[T any](root *tree.Node[T]) *PreOrder[T] {
	return &PreOrder[T]{
		root:  root,
		stack: stack.New[*tree.Node[T]](),
	}
}

func (i *PreOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack.Push(i.root)
		}
		return !i.stack.Empty()
	}

	if i.stack.Empty() {
		return false
	}

	// right goes in first so that left comes out first
	n := i.stack.Pop()
	if n.Right != nil {
		i.stack.Push(n.Right)
	}
	if n.Left != nil {
		i.stack.Push(n.Left)
	}

	return !i.stack.Empty()
}

func (i *PreOrder[T]) Item() T {
	return i.stack.Top().Key
}
