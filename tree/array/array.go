// Package array stores a binary tree in an array, heap style: the root
// is at index 0 and the children of the node at index i are at
// Left(i) and Right(i). Missing nodes leave holes.
package array

import (
	"errors"
	"fmt"

	"go.lepak.sg/sx/queue"
	"go.lepak.sg/sx/tree"
	"go.lepak.sg/sx/vector"
)

// DefaultMaxSlots is used by FromLinked when maxSlots is not positive.
const DefaultMaxSlots = 1 << 16

// MaxSlots is the largest slot limit FromLinked accepts; larger limits
// are clamped to it. Child positions of any slot below it fit in an int
// on every platform.
const MaxSlots = 1 << 29

var ErrTooDeep = errors.New("tree does not fit in the slot limit")

func Left(i int) int {
	return 2*i + 1
}

func Right(i int) int {
	return 2*i + 2
}

// Parent returns the index of the parent of i, or -1 for the root.
func Parent(i int) int {
	if i == 0 {
		return -1
	}
	return (i - 1) / 2
}

type slot[T any] struct {
	key T
	ok  bool
}

// Tree is a binary tree laid out in an array. Its slots run up to and
// including the last present node, so the last slot is never a hole.
type Tree[T any] struct {
	slots *vector.Vector[slot[T]]
	n     int
}

type placed[T any] struct {
	n   *tree.Node[T]
	pos int
}

// FromLinked places every node of the linked tree rooted at root at its
// heap position. A skewed tree needs exponentially many slots, so
// FromLinked fails with ErrTooDeep when a position would reach maxSlots.
// Positions are all checked before any slot is allocated.
func FromLinked[T any](root *tree.Node[T], maxSlots int) (*Tree[T], error) {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	} else if maxSlots > MaxSlots {
		maxSlots = MaxSlots
	}

	t := &Tree[T]{slots: vector.New[slot[T]](0)}
	if root == nil {
		return t, nil
	}

	// level order visits positions in increasing order
	var order []placed[T]
	q := queue.New[placed[T]]()
	q.Push(placed[T]{root, 0})

	for !q.Empty() {
		p := q.Pop()
		if p.pos >= maxSlots {
			return nil, fmt.Errorf("%w: node %v needs slot %d, limit %d",
				ErrTooDeep, p.n.Key, p.pos, maxSlots)
		}
		order = append(order, p)

		if p.n.Left != nil {
			q.Push(placed[T]{p.n.Left, Left(p.pos)})
		}
		if p.n.Right != nil {
			q.Push(placed[T]{p.n.Right, Right(p.pos)})
		}
	}

	for _, p := range order {
		for t.slots.Len() < p.pos {
			t.slots.PushBack(slot[T]{})
		}
		t.slots.PushBack(slot[T]{key: p.n.Key, ok: true})
		t.n++
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return t.n
}

// Slots returns the number of slots, holes included.
func (t *Tree[T]) Slots() int {
	return t.slots.Len()
}

// At returns the key in slot i and whether a node is there. Slots past
// the end are holes.
func (t *Tree[T]) At(i int) (T, bool) {
	if i < 0 {
		panic(fmt.Sprintf("array: At index %d out of range", i))
	}
	if i >= t.slots.Len() {
		var zero T
		return zero, false
	}
	s := t.slots.At(i)
	return s.key, s.ok
}

// Layout formats every slot in order, writing null for the holes.
func (t *Tree[T]) Layout(null string) []string {
	out := make([]string, t.slots.Len())
	for i := range out {
		if k, ok := t.At(i); ok {
			out[i] = fmt.Sprint(k)
		} else {
			out[i] = null
		}
	}
	return out
}
