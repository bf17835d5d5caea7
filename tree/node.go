// Package tree holds the node type shared by the binary tree packages.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Parent may be left nil by code that never
// walks upwards; iterators that need it say so.
//
// The same Node also stores general trees in first-child/next-sibling
// form: Left is the first child and Right is the next sibling.
type Node[T any] struct {
	Key                 T
	Left, Right, Parent *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Degree returns the number of children of n (0, 1 or 2).
func (n *Node[T]) Degree() int {
	d := 0
	if n.Left != nil {
		d++
	}
	if n.Right != nil {
		d++
	}
	return d
}

// SetLeft makes c the left child of n and sets its parent pointer.
func (n *Node[T]) SetLeft(c *Node[T]) {
	n.Left = c
	if c != nil {
		c.Parent = n
	}
}

// SetRight makes c the right child of n and sets its parent pointer.
func (n *Node[T]) SetRight(c *Node[T]) {
	n.Right = c
	if c != nil {
		c.Parent = n
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
