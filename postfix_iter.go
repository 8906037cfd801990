// SPDX-License-Identifier: MIT

package louds

import (
	"iter"

	"github.com/loudstrie/loudstrie/internal/succinct"
)

// dfsFrame is one stack entry for the postfix walk: a node plus the
// children of that node still left to visit (cursor into childNodes).
type dfsFrame struct {
	node     succinct.NodeNum
	children []succinct.NodeNum
	next     int
}

// StartsWith enumerates every exact-match label in the trie that has
// prefix as a prefix, in token-lexicographic (pre-order DFS, siblings in
// ascending token order) order. If prefix itself is an exact match, it is
// included. StartsWith([]) enumerates every label in the trie.
func (t *Trie[T, V]) StartsWith(prefix []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node, _, found := t.locate(prefix)
		if !found {
			return
		}
		t.postfixWalk(node, prefix, true, yield)
	}
}

// SuffixesOf is like StartsWith but yields only the portion of each label
// after prefix; prefix itself is excluded even if it is an exact match.
func (t *Trie[T, V]) SuffixesOf(prefix []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node, _, found := t.locate(prefix)
		if !found {
			return
		}
		t.postfixWalk(node, nil, false, yield)
	}
}

// All enumerates every exact-match label in the trie, in
// token-lexicographic order. It is equivalent to StartsWith(nil).
func (t *Trie[T, V]) All() iter.Seq2[[]T, V] {
	return t.StartsWith(nil)
}

// postfixWalk performs an explicit-stack, pre-order depth-first traversal
// rooted at start, using base as the label so far. includeRoot controls
// whether start's own value (if any) is yielded before descending — false
// for SuffixesOf, which must exclude the query node itself.
//
// Children are pushed so that popping yields them in ascending token
// order: since each frame tracks a cursor into its own already-sorted
// child slice rather than a reversed push, no extra reversal is needed.
func (t *Trie[T, V]) postfixWalk(start succinct.NodeNum, base []T, includeRoot bool, yield func([]T, V) bool) {
	if includeRoot {
		if v, ok := t.Value(start); ok {
			if !yield(append([]T(nil), base...), v) {
				return
			}
		}
	}

	stackPtr := getFrameStack()
	defer putFrameStack(stackPtr)
	*stackPtr = append(*stackPtr, dfsFrame{node: start, children: t.childNodes(start)})

	labels := [][]T{base}

	for len(*stackPtr) > 0 {
		stack := *stackPtr
		top := &stack[len(stack)-1]
		if top.next >= len(top.children) {
			*stackPtr = stack[:len(stack)-1]
			labels = labels[:len(labels)-1]
			continue
		}
		child := top.children[top.next]
		top.next++

		childLabel := append(append([]T(nil), labels[len(labels)-1]...), t.Token(child))

		if v, ok := t.Value(child); ok {
			if !yield(childLabel, v) {
				return
			}
		}

		*stackPtr = append(stack, dfsFrame{node: child, children: t.childNodes(child)})
		labels = append(labels, childLabel)
	}
}
