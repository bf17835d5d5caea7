// Package binary provides a linked binary tree with traversal in any
// order, a completeness check, and ways to build one from traversals or
// from an array of child indices.
package binary

import (
	"errors"
	"fmt"

	"go.lepak.sg/sx/tree"
	"golang.org/x/exp/slices"
)

var (
	ErrNothingToBuild = errors.New("nothing to build")
	ErrLengthMismatch = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicateKey   = errors.New("duplicated key")
	ErrKeyMismatch    = errors.New("pre-order key not found in in-order traversal")
)

// checkTraversals makes sure pre and in are permutations of the same
// set of distinct keys, and returns each key's in-order index.
func checkTraversals[S ~[]T, T comparable](pre, in S) (map[T]int, error) {
	if len(in) == 0 {
		return nil, ErrNothingToBuild
	}

	if len(in) != len(pre) {
		return nil, ErrLengthMismatch
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, fmt.Errorf("%w in in-order traversal: %v", ErrDuplicateKey, v)
		}
		inOrderMap[v] = i
	}

	seen := make(map[T]struct{}, len(pre))
	for _, v := range pre {
		if _, ok := inOrderMap[v]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyMismatch, v)
		}
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w in pre-order traversal: %v", ErrDuplicateKey, v)
		}
		seen[v] = struct{}{}
	}

	return inOrderMap, nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal. Keys must be distinct.
// Parent pointers are set.
func BuildFromPreAndInOrderIter[S ~[]T, T comparable](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	inOrderMap, err := checkTraversals(pre, in)
	if err != nil {
		return nil, err
	}

	tr := &Tree[T]{root: tree.NodeOf(pre[0])}

	for _, toInsert := range pre[1:] {
		// The idea: walk down the tree to find where toInsert should go.
		// A key that comes earlier in the in-order traversal is on the left.
		current, parent := tr.root, (*tree.Node[T])(nil)
		toInsertIdx := inOrderMap[toInsert]

		var result tree.Order
		for current != nil {
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, inOrderMap[current.Key])
			switch result {
			case tree.Less:
				current, parent = current.Left, current
			case tree.Greater:
				current, parent = current.Right, current
			default:
				// checkTraversals rules out duplicates
				panic("unreachable")
			}
		}

		newnode := tree.NodeOf(toInsert)

		switch result {
		case tree.Less:
			parent.SetLeft(newnode)
		case tree.Greater:
			parent.SetRight(newnode)
		default:
			panic("unreachable")
		}
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal. Keys must be distinct.
// Parent pointers are set.
func BuildFromPreAndInOrderRec[S ~[]T, T comparable](
	pre, in S) (*Tree[T], error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if _, err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	return &Tree[T]{root: buildFromPreAndInOrderRecVisit(pre, in)}, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T comparable](
	pre, in S) *tree.Node[T] {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		panic("key in pre-order traversal not found in in-order traversal")
	}

	inleft, inright := in[:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x)
	n.SetLeft(buildFromPreAndInOrderRecVisit(preleft, inleft))
	n.SetRight(buildFromPreAndInOrderRecVisit(preright, inright))

	return n
}
