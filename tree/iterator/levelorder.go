package iterator

import (
	"go.lepak.sg/sx/queue"
	"go.lepak.sg/sx/tree"
)

var (
	_ Iterator[int] = (*LevelOrder[int])(nil)
	_ Iterator[int] = (*SiblingLevelOrder[int])(nil)
)

// LevelOrder is an iterator that yields nodes level by level,
// left to right within a level. The front of its queue is always
// the current node.
type LevelOrder[T any] struct {
	root    *tree.Node[T]
	queue   *queue.Queue[*tree.Node[T]]
	started bool
}

// NewLevelOrder returns a new LevelOrder iterator over the tree rooted
// at root.
func NewLevelOrder[T any](root *tree.Node[T]) *LevelOrder[T] {
	return &LevelOrder[T]{
		root:  root,
		queue: queue.New[*tree.Node[T]](),
	}
}

func (i *LevelOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.queue.Push(i.root)
		}
		return !i.queue.Empty()
	}

	if i.queue.Empty() {
		return false
	}

	n := i.queue.Pop()
	if n.Left != nil {
		i.queue.Push(n.Left)
	}
	if n.Right != nil {
		i.queue.Push(n.Right)
	}

	return !i.queue.Empty()
}

func (i *LevelOrder[T]) Item() T {
	return i.queue.Front().Key
}

// SiblingLevelOrder is a level order iterator for general trees
// (any number of children per node) stored in first-child/next-sibling
// form: Left points to the first child, Right to the next sibling.
//
// The iterator walks a sibling chain directly, and queues the first
// child of every node it passes so that the next level starts after
// the current one is exhausted.
type SiblingLevelOrder[T any] struct {
	at      *tree.Node[T]
	queue   *queue.Queue[*tree.Node[T]]
	started bool
}

// NewSiblingLevelOrder returns a new SiblingLevelOrder iterator over the
// general tree rooted at root. Siblings of root, if any, are treated as
// further roots of a forest at level 0.
func NewSiblingLevelOrder[T any](root *tree.Node[T]) *SiblingLevelOrder[T] {
	return &SiblingLevelOrder[T]{
		at:    root,
		queue: queue.New[*tree.Node[T]](),
	}
}

func (i *SiblingLevelOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		return i.at != nil
	}

	if i.at == nil {
		return false
	}

	if i.at.Left != nil {
		i.queue.Push(i.at.Left)
	}

	if i.at.Right != nil {
		i.at = i.at.Right
		return true
	}

	if i.queue.Empty() {
		i.at = nil
		return false
	}

	i.at = i.queue.Pop()
	return true
}

func (i *SiblingLevelOrder[T]) Item() T {
	return i.at.Key
}
