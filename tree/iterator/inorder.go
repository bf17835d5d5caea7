package iterator

import (
	"go.lepak.sg/sx/tree"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// It relies on parent pointers and keeps no other state,
// so every node's Parent must be set.
// Use InOrderStack if the tree has no parent pointers.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	root, at *tree.Node[T]
	done     bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
func NewInOrder[T any](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrder[T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			i.done = true
			return false
		}

		for i.at.Left != nil {
			i.at = i.at.Left
		}
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right

		for i.at.Left != nil {
			i.at = i.at.Left
		}

		return true
	}

	// climb until we arrive from a left child
	var child *tree.Node[T]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key
}
