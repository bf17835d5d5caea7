package exercise

import (
	"fmt"
	"io"
	"strings"

	"go.lepak.sg/sx/tree/array"
	"go.lepak.sg/sx/tree/binary"
	"go.lepak.sg/sx/vector"
)

// Null is written for the empty slots of a level layout.
const Null = "NULL"

// readTraversals reads the pre- and in-order walks of a tree whose keys
// are single characters.
func readTraversals(sc *scanner) (pre, in []string, err error) {
	p, err := sc.word("pre-order walk")
	if err != nil {
		return nil, nil, err
	}
	i, err := sc.word("in-order walk")
	if err != nil {
		return nil, nil, err
	}
	return strings.Split(p, ""), strings.Split(i, ""), nil
}

// LevelLayout reads the pre- and in-order walks of a tree and writes
// the tree as it would be stored in an array, with Null in the holes.
func LevelLayout(r io.Reader, w io.Writer) error {
	return levelLayout(r, w, array.DefaultMaxSlots)
}

// LevelLayoutWith is LevelLayout with a limit on the number of slots.
func LevelLayoutWith(maxSlots int) Func {
	return func(r io.Reader, w io.Writer) error {
		return levelLayout(r, w, maxSlots)
	}
}

func levelLayout(r io.Reader, w io.Writer, maxSlots int) error {
	pre, in, err := readTraversals(newScanner(r))
	if err != nil {
		return err
	}

	tr, err := binary.BuildFromPreAndInOrderIter(pre, in)
	if err != nil {
		return err
	}

	at, err := array.FromLinked(tr.Root(), maxSlots)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strings.Join(at.Layout(Null), " "))
	return err
}

// PostOrder reads the pre- and in-order walks of a tree and writes its
// post-order walk.
func PostOrder(r io.Reader, w io.Writer) error {
	pre, in, err := readTraversals(newScanner(r))
	if err != nil {
		return err
	}

	tr, err := binary.BuildFromPreAndInOrderRec(pre, in)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strings.Join(tr.Keys(binary.PostOrder), ""))
	return err
}

// readChildren reads n, then n lines of child indices, and a key after
// the children on each line if withKeys is set.
func readChildren(sc *scanner, withKeys bool) ([][2]int, []int, error) {
	n, err := sc.atLeast("node count", 0)
	if err != nil {
		return nil, nil, err
	}

	children := make([][2]int, 0, capHint(n))
	var keys []int
	if withKeys {
		keys = make([]int, 0, capHint(n))
	}

	for i := 1; i <= n; i++ {
		var lr [2]int
		for j, side := range [2]string{"left", "right"} {
			if lr[j], err = sc.integer(fmt.Sprintf("%s child of node %d", side, i)); err != nil {
				return nil, nil, err
			}
		}
		children = append(children, lr)

		if withKeys {
			k, err := sc.integer(fmt.Sprintf("key of node %d", i))
			if err != nil {
				return nil, nil, err
			}
			keys = append(keys, k)
		}
	}

	return children, keys, nil
}

// Complete reads a tree as an array of child indices and writes Y if it
// is a complete binary tree, N otherwise.
func Complete(r io.Reader, w io.Writer) error {
	children, _, err := readChildren(newScanner(r), false)
	if err != nil {
		return err
	}

	tr, err := binary.LinkNodes[int](children, nil)
	if err != nil {
		return err
	}

	answer := "N"
	if tr.Complete() {
		answer = "Y"
	}
	_, err = fmt.Fprintln(w, answer)
	return err
}

// Traverse reads a general tree in first-child/next-sibling form, one
// "firstChild nextSibling key" line per node, and writes three lines:
// its pre-order walk, the in-order walk of the linked form (which is the
// general tree's post-order walk) and its level order.
func Traverse(r io.Reader, w io.Writer) error {
	children, keys, err := readChildren(newScanner(r), true)
	if err != nil {
		return err
	}

	tr, err := binary.LinkNodes(children, keys)
	if err != nil {
		return err
	}

	for _, order := range []binary.Traversal{binary.PreOrder, binary.InOrder, binary.SiblingLevelOrder} {
		if _, err := fmt.Fprintln(w, vector.Of(tr.Keys(order)...)); err != nil {
			return err
		}
	}
	return nil
}
