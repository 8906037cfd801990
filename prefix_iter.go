// SPDX-License-Identifier: MIT

package louds

import (
	"iter"

	"github.com/loudstrie/loudstrie/internal/succinct"
)

// PrefixesOf walks label's tokens from the root, yielding (prefix, value)
// for every non-empty prefix of label (label itself included) that is an
// exact match, shortest first. A value stored under the empty label is not
// yielded. The walk terminates as soon as a token fails to match an
// existing child — tokens beyond that point can't be a prefix of anything
// stored, so there is nothing left to yield.
func (t *Trie[T, V]) PrefixesOf(label []T) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		node := t.rootNode()
		for i, tok := range label {
			first, count := t.louds.Children(node)
			if count == 0 {
				return
			}
			idx, ok := t.binarySearchChild(first, count, tok)
			if !ok {
				return
			}
			node = first + succinct.NodeNum(idx)
			if v, ok := t.Value(node); ok {
				if !yield(append([]T(nil), label[:i+1]...), v) {
					return
				}
			}
		}
	}
}
