// SPDX-License-Identifier: MIT

package louds

import "github.com/loudstrie/loudstrie/internal/succinct"

// ExactMatch looks up label and returns its value if some inserted label
// equals it exactly.
func (t *Trie[T, V]) ExactMatch(label []T) (V, bool) {
	node, _, found := t.locate(label)
	if !found {
		var zero V
		return zero, false
	}
	return t.Value(node)
}

// IsPrefix reports whether label is a prefix of at least one inserted
// label (equivalently: label's node, if reachable, has at least one
// child). The empty label is a prefix of the trie iff the trie is
// non-empty, i.e. the root has any children.
func (t *Trie[T, V]) IsPrefix(label []T) bool {
	node, _, found := t.locate(label)
	if !found {
		return false
	}
	return t.IsPrefixNode(node)
}

// rootNode is exposed for iterators that need to start a walk at the root
// rather than at an arbitrary located node. The super-root always has
// exactly one child — the real root — so this is just that child.
func (t *Trie[T, V]) rootNode() succinct.NodeNum {
	first, _ := t.louds.Children(succinct.RootNodeNum)
	return first
}
