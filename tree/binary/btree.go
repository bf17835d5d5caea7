package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/sx/queue"
	"go.lepak.sg/sx/tree"
	"go.lepak.sg/sx/tree/iterator"
)

// Tree is a linked binary tree. Unlike a search tree it places no
// ordering constraint on its keys: its shape comes from whoever built
// it (see BuildFromPreAndInOrderRec, BuildFromPreAndInOrderIter and
// LinkNodes). It is safe for concurrent reads but not for concurrent
// reads and writes.
//
// The zero Tree is an empty tree.
type Tree[T any] struct {
	// don't return nodes to clients that didn't hand them to us
	root *tree.Node[T]
}

// New returns a Tree rooted at root. The tree takes the nodes as they
// are: parent pointers are not checked or set.
func New[T any](root *tree.Node[T]) *Tree[T] {
	return &Tree[T]{root: root}
}

// Root returns the root node, which may be nil.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.root
}

// Traversal selects the visiting order of Iterator, Walk and Keys.
type Traversal int

const (
	// PreOrder visits a node, then its left and right subtrees.
	PreOrder Traversal = iota
	// InOrder visits the left subtree, the node, then the right subtree.
	// It does not need parent pointers.
	InOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
	// LevelOrder visits nodes by depth, left to right.
	LevelOrder
	// SiblingLevelOrder reads the tree as a general tree in
	// first-child/next-sibling form and visits it by depth.
	SiblingLevelOrder
)

func (o Traversal) String() string {
	switch o {
	case PreOrder:
		return "PreOrder"
	case InOrder:
		return "InOrder"
	case PostOrder:
		return "PostOrder"
	case LevelOrder:
		return "LevelOrder"
	case SiblingLevelOrder:
		return "SiblingLevelOrder"
	default:
		return "<invalid binary.Traversal>"
	}
}

// Iterator returns an iterator object that yields keys from the tree
// in the given order. It panics on an unknown Traversal.
func (t *Tree[T]) Iterator(order Traversal) iterator.Iterator[T] {
	switch order {
	case PreOrder:
		return iterator.NewPreOrder(t.root)
	case InOrder:
		return iterator.NewInOrderStack(t.root)
	case PostOrder:
		return iterator.NewPostOrder(t.root)
	case LevelOrder:
		return iterator.NewLevelOrder(t.root)
	case SiblingLevelOrder:
		return iterator.NewSiblingLevelOrder(t.root)
	default:
		panic(fmt.Sprintf("binary: unknown traversal %d", int(order)))
	}
}

// Walk applies f to each key in the tree in the given order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) Walk(order Traversal, f func(k T) bool) {
	i := t.Iterator(order)
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// Keys returns the keys of the tree in the given order.
func (t *Tree[T]) Keys(order Traversal) []T {
	var out []T
	t.Walk(order, func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	n := 0
	t.Walk(PreOrder, func(T) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of nodes on the longest path from the root
// to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}

	q := queue.New[*tree.Node[T]]()
	q.Push(t.root)
	height := 0

	for !q.Empty() {
		height++
		// everything in the queue right now is on the same level
		for level := q.Len(); level > 0; level-- {
			n := q.Pop()
			if n.Left != nil {
				q.Push(n.Left)
			}
			if n.Right != nil {
				q.Push(n.Right)
			}
		}
	}

	return height
}

// Complete returns true if the tree is a complete binary tree: every
// level except possibly the last is full, and the nodes of the last
// level are as far left as possible. The empty tree is complete.
func (t *Tree[T]) Complete() bool {
	if t.root == nil {
		return true
	}

	q := queue.New[*tree.Node[T]]()
	q.Push(t.root)

	// set once a node with fewer than two children has been seen,
	// after which every node in level order must be a leaf
	seenPartial := false

	for !q.Empty() {
		n := q.Pop()

		if n.Left == nil && n.Right != nil {
			return false
		}

		if seenPartial {
			if n.Degree() != 0 {
				return false
			}
		} else if n.Degree() < 2 {
			seenPartial = true
		}

		if n.Left != nil {
			q.Push(n.Left)
		}
		if n.Right != nil {
			q.Push(n.Right)
		}
	}

	return true
}

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
