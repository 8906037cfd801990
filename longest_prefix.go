// SPDX-License-Identifier: MIT

package louds

// LongestPrefix consumes as many of label's tokens as match existing
// children. If the resulting node is itself an exact match, that match is
// returned (the query is included when it is itself exact, per this
// trie's duplicate/open-question resolution — see DESIGN.md). Otherwise,
// while the current node has exactly one child, it descends into that
// child, extending the label deterministically until it reaches a branch
// point, a dead end or an exact match. The resulting label is returned; ok
// is false when some token of label fails to match, i.e. label is not a
// path in the trie.
func (t *Trie[T, V]) LongestPrefix(label []T) ([]T, bool) {
	node, _, found := t.locate(label)
	if !found {
		return nil, false
	}

	result := append([]T(nil), label...)

	if t.IsExactNode(node) {
		return result, true
	}

	for {
		first, count := t.louds.Children(node)
		if count != 1 {
			break
		}
		node = first
		result = append(result, t.Token(node))
		if t.IsExactNode(node) {
			break
		}
	}

	return result, true
}
