package binary

import (
	"errors"
	"fmt"

	"go.lepak.sg/sx/tree"
)

var (
	ErrIndexOutOfRange  = errors.New("child index out of range")
	ErrMultipleParents  = errors.New("node has more than one parent")
	ErrCycle            = errors.New("cycle detected")
	ErrDisconnected     = errors.New("not all nodes are reachable from the root")
	ErrKeyCountMismatch = errors.New("number of keys does not match number of nodes")
)

// LinkNodes builds a tree out of an array of nodes described by
// children: node i (counting from 1) has children[i-1][0] as its left
// child and children[i-1][1] as its right child, where 0 means no child.
// keys, if not nil, holds the key of each node in the same order.
//
// The root is found by following parent pointers up from node 1, and
// every node must be reachable from it.
func LinkNodes[T any](children [][2]int, keys []T) (*Tree[T], error) {
	n := len(children)
	if n == 0 {
		return &Tree[T]{}, nil
	}
	if keys != nil && len(keys) != n {
		return nil, fmt.Errorf("%w: %d keys for %d nodes", ErrKeyCountMismatch, len(keys), n)
	}

	nodes := make([]tree.Node[T], n)
	if keys != nil {
		for i := range nodes {
			nodes[i].Key = keys[i]
		}
	}

	link := func(parent, child int) (*tree.Node[T], error) {
		if child == 0 {
			return nil, nil
		}
		if child < 0 || child > n {
			return nil, fmt.Errorf("%w: node %d has child %d, want 0..%d",
				ErrIndexOutOfRange, parent, child, n)
		}
		if child == parent {
			return nil, fmt.Errorf("%w: node %d is its own child", ErrCycle, child)
		}
		c := &nodes[child-1]
		if c.Parent != nil {
			return nil, fmt.Errorf("%w: node %d", ErrMultipleParents, child)
		}
		c.Parent = &nodes[parent-1]
		return c, nil
	}

	for i, lr := range children {
		var err error
		p := &nodes[i]
		if p.Left, err = link(i+1, lr[0]); err != nil {
			return nil, err
		}
		if p.Right, err = link(i+1, lr[1]); err != nil {
			return nil, err
		}
	}

	root := &nodes[0]
	for steps := 0; root.Parent != nil; steps++ {
		if steps >= n {
			return nil, ErrCycle
		}
		root = root.Parent
	}

	t := &Tree[T]{root: root}
	if reachable := t.Len(); reachable != n {
		return nil, fmt.Errorf("%w: %d of %d", ErrDisconnected, reachable, n)
	}

	return t, nil
}
