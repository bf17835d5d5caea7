package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/sx/tree"
)

func newCompleteTree_2Tall() *tree.Node[int] {
	t := &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int]{
				Key: 7,
			},
		},
	}

	t.Left.Left.Parent = t.Left
	t.Left.Right.Parent = t.Left
	t.Left.Parent = t

	t.Right.Left.Parent = t.Right
	t.Right.Right.Parent = t.Right
	t.Right.Parent = t

	return t
}

//	    8
//	   / \
//	  5   9
//	 / \
//	1   7
//	   /
//	  6
func newDogleg() *tree.Node[int] {
	n := func(k int) *tree.Node[int] { return tree.NodeOf(k) }
	root := n(8)
	root.SetLeft(n(5))
	root.SetRight(n(9))
	root.Left.SetLeft(n(1))
	root.Left.SetRight(n(7))
	root.Left.Right.SetLeft(n(6))
	return root
}

// 1 -> 2 -> 3, all right children
func newRightChain() *tree.Node[int] {
	root := tree.NodeOf(1)
	root.SetRight(tree.NodeOf(2))
	root.Right.SetRight(tree.NodeOf(3))
	return root
}

// 3 -> 2 -> 1, all left children
func newLeftChain() *tree.Node[int] {
	root := tree.NodeOf(3)
	root.SetLeft(tree.NodeOf(2))
	root.Left.SetLeft(tree.NodeOf(1))
	return root
}

func drain[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

var shapes = []struct {
	name   string
	create func() *tree.Node[int]
	pre    []int
	in     []int
	post   []int
	level  []int
}{
	{
		name:   "empty",
		create: func() *tree.Node[int] { return nil },
	},
	{
		name:   "one",
		create: func() *tree.Node[int] { return tree.NodeOf(1) },
		pre:    []int{1},
		in:     []int{1},
		post:   []int{1},
		level:  []int{1},
	},
	{
		name:   "height=2",
		create: newCompleteTree_2Tall,
		pre:    []int{4, 2, 1, 3, 6, 5, 7},
		in:     []int{1, 2, 3, 4, 5, 6, 7},
		post:   []int{1, 3, 2, 5, 7, 6, 4},
		level:  []int{4, 2, 6, 1, 3, 5, 7},
	},
	{
		name:   "dogleg",
		create: newDogleg,
		pre:    []int{8, 5, 1, 7, 6, 9},
		in:     []int{1, 5, 6, 7, 8, 9},
		post:   []int{1, 6, 7, 5, 9, 8},
		level:  []int{8, 5, 9, 1, 7, 6},
	},
	{
		name:   "right chain",
		create: newRightChain,
		pre:    []int{1, 2, 3},
		in:     []int{1, 2, 3},
		post:   []int{3, 2, 1},
		level:  []int{1, 2, 3},
	},
	{
		name:   "left chain",
		create: newLeftChain,
		pre:    []int{3, 2, 1},
		in:     []int{1, 2, 3},
		post:   []int{1, 2, 3},
		level:  []int{3, 2, 1},
	},
}

func reversed(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func TestIterators(t *testing.T) {
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pre, drain[int](NewPreOrder(tt.create())), "preorder")
			assert.Equal(t, tt.in, drain[int](NewInOrder(tt.create())), "inorder")
			assert.Equal(t, tt.in, drain[int](NewInOrderStack(tt.create())), "inorder stack")
			assert.Equal(t, reversed(tt.in), drain[int](NewInOrderReverse(tt.create())), "inorder reverse")
			assert.Equal(t, tt.post, drain[int](NewPostOrder(tt.create())), "postorder")
			assert.Equal(t, tt.level, drain[int](NewLevelOrder(tt.create())), "level order")
		})
	}
}

func TestInOrder_Steps(t *testing.T) {
	i := NewInOrder(newCompleteTree_2Tall())
	assert.True(t, i.Next(), "first")
	assert.Equal(t, 1, i.Item())
	assert.True(t, i.Next(), "second")
	assert.Equal(t, 2, i.Item())
	assert.True(t, i.Next(), "third")
	assert.Equal(t, 3, i.Item())
	assert.True(t, i.Next(), "fourth")
	assert.Equal(t, 4, i.Item())
	assert.True(t, i.Next(), "fifth")
	assert.Equal(t, 5, i.Item())
	assert.True(t, i.Next(), "sixth")
	assert.Equal(t, 6, i.Item())
	assert.True(t, i.Next(), "seventh")
	assert.Equal(t, 7, i.Item())
	assert.False(t, i.Next(), "eighth")
	assert.False(t, i.Next(), "exhausted iterators stay exhausted")
}

func TestPostOrder_ItemIsStable(t *testing.T) {
	i := NewPostOrder(newDogleg())
	assert.True(t, i.Next())
	assert.Equal(t, 1, i.Item())
	assert.Equal(t, 1, i.Item())
	assert.True(t, i.Next())
	assert.Equal(t, 6, i.Item())
}

func TestExhausted(t *testing.T) {
	iters := []Iterator[int]{
		NewPreOrder(newDogleg()),
		NewInOrderStack(newDogleg()),
		NewPostOrder(newDogleg()),
		NewLevelOrder(newDogleg()),
		NewSiblingLevelOrder(newDogleg()),
		NewInOrderReverse(newDogleg()),
	}
	for _, i := range iters {
		drain(i)
		assert.False(t, i.Next())
		assert.False(t, i.Next())
	}
}

func TestInOrderReverse_Nil(t *testing.T) {
	var i *InOrderReverse[int]
	assert.False(t, i.Next())
}

// general tree:
//
//	    1
//	  / | \
//	 2  3  4
//	/ \    |
//	5 6    7
func newGeneralTree() *tree.Node[int] {
	n := make([]*tree.Node[int], 8)
	for k := range n {
		n[k] = tree.NodeOf(k)
	}
	n[1].SetLeft(n[2])
	n[2].SetRight(n[3])
	n[3].SetRight(n[4])
	n[2].SetLeft(n[5])
	n[5].SetRight(n[6])
	n[4].SetLeft(n[7])
	return n[1]
}

func TestSiblingLevelOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		want   []int
	}{
		{
			name:   "empty",
			create: func() *tree.Node[int] { return nil },
		},
		{
			name:   "one",
			create: func() *tree.Node[int] { return tree.NodeOf(1) },
			want:   []int{1},
		},
		{
			name:   "general",
			create: newGeneralTree,
			want:   []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:   "forest",
			create: newRightChain,
			want:   []int{1, 2, 3},
		},
		{
			name:   "path",
			create: newLeftChain,
			want:   []int{3, 2, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, drain[int](NewSiblingLevelOrder(tt.create())))
		})
	}
}

func TestGeneralTree_Orders(t *testing.T) {
	// In first-child/next-sibling form, preorder is the general tree's
	// preorder and inorder is the general tree's postorder.
	assert.Equal(t, []int{1, 2, 5, 6, 3, 4, 7}, drain[int](NewPreOrder(newGeneralTree())))
	assert.Equal(t, []int{5, 6, 2, 3, 7, 4, 1}, drain[int](NewInOrderStack(newGeneralTree())))
	assert.Equal(t, []int{5, 6, 2, 3, 7, 4, 1}, drain[int](NewInOrder(newGeneralTree())))
}
