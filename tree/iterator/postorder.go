package iterator

import (
	"go.lepak.sg/sx/stack"
	"go.lepak.sg/sx/tree"
)

var _ Iterator[int] = (*PostOrder[int])(nil)

// postFrame is what gets pushed onto the PostOrder stack.
// goingRight is true while the right subtree of n has
// not been entered yet.
type postFrame[T any] struct {
	n          *tree.Node[T]
	goingRight bool
}

// PostOrder is an iterator that yields each node after both
// of its subtrees. The top of its stack is always the current node.
// Parent pointers are not needed.
type PostOrder[T any] struct {
	root    *tree.Node[T]
	stack   *stack.Stack[*postFrame[T]]
	started bool
}

// NewPostOrder returns a new PostOrder iterator over the tree rooted
// at root.
func NewPostOrder[T any](root *tree.Node[T]) *PostOrder[T] {
	return &PostOrder[T]{
		root:  root,
		stack: stack.New[*postFrame[T]](),
	}
}

// descend pushes the path from n to the first node of a
// post-order walk of the subtree rooted at n: go left when
// possible, otherwise right, until reaching a leaf.
func (i *PostOrder[T]) descend(n *tree.Node[T]) {
	for {
		f := &postFrame[T]{n: n, goingRight: true}
		i.stack.Push(f)

		if n.Left != nil {
			n = n.Left
		} else if n.Right != nil {
			// the right subtree is being entered right now
			f.goingRight = false
			n = n.Right
		} else {
			f.goingRight = false
			return
		}
	}
}

func (i *PostOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.descend(i.root)
		}
		return !i.stack.Empty()
	}

	if i.stack.Empty() {
		return false
	}

	i.stack.Pop()
	if i.stack.Empty() {
		return false
	}

	// back at a parent: its left subtree is done
	top := i.stack.Top()
	if top.goingRight {
		top.goingRight = false
		if top.n.Right != nil {
			i.descend(top.n.Right)
		}
	}

	return true
}

func (i *PostOrder[T]) Item() T {
	return i.stack.Top().n.Key
}
