// SPDX-License-Identifier: MIT

package louds

import (
	"fmt"

	"github.com/loudstrie/loudstrie/internal/succinct"
)

// Kind classifies a trie node: whether it has children (Prefix), carries a
// value (Match), both, or — only possible for the root of an empty trie —
// neither.
type Kind uint8

const (
	// KindNone marks a node that is neither a prefix nor a match. Only the
	// real root of an empty trie can have this kind; it is unreachable for
	// any node with a token, since every such node was created because some
	// insert walked through it. IncSearch.Peek and Query also return it on
	// a miss.
	KindNone Kind = iota
	KindPrefix
	KindMatch
	KindPrefixAndMatch
)

func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "Prefix"
	case KindMatch:
		return "Match"
	case KindPrefixAndMatch:
		return "PrefixAndMatch"
	default:
		return "None"
	}
}

// nodePayload is the per-node data stored in the frozen trie's flat array,
// indexed by (LOUDS node number - 2): the super-root (node 1) and the real
// root (node 2) both have no token, but the root's slot still holds a
// value/children, so only the super-root is excluded from this array. See
// Trie for the indexing convention.
type nodePayload[T Token, V any] struct {
	token    T
	hasValue bool
	value    V
}

// Trie is an immutable, LOUDS-encoded succinct trie mapping labels of type
// T to values of type V. Once returned from TrieBuilder.Build, no method on
// Trie can mutate louds or nodes; any number of readers may share a *Trie
// concurrently without synchronization.
//
// A Trie must not be copied by value (see noCopy in common.go).
type Trie[T Token, V any] struct {
	_     noCopy
	louds *succinct.Louds
	// nodes is indexed by (node number - 2): the super-root (node 1) has
	// no payload slot, so the real root (node 2) is nodes[0].
	nodes []nodePayload[T, V]
}

func (t *Trie[T, V]) payload(n succinct.NodeNum) *nodePayload[T, V] {
	return &t.nodes[n-2]
}

// Token returns the token stored at node n. It panics if n is the
// super-root, which carries no token.
func (t *Trie[T, V]) Token(n succinct.NodeNum) T {
	if n == succinct.RootNodeNum {
		panic("louds: Token called on the super-root, which has no token")
	}
	return t.payload(n).token
}

// Value returns the value stored at node n, if any.
func (t *Trie[T, V]) Value(n succinct.NodeNum) (V, bool) {
	if n == succinct.RootNodeNum {
		var zero V
		return zero, false
	}
	p := t.payload(n)
	return p.value, p.hasValue
}

// IsPrefixNode reports whether node n has at least one child.
func (t *Trie[T, V]) IsPrefixNode(n succinct.NodeNum) bool {
	return !t.louds.IsLeaf(n)
}

// IsExactNode reports whether node n carries a value.
func (t *Trie[T, V]) IsExactNode(n succinct.NodeNum) bool {
	if n == succinct.RootNodeNum {
		return false
	}
	return t.payload(n).hasValue
}

// Kind classifies node n. It is KindNone only for the real root of an empty
// trie; the super-root, which always has the real root as its child, is
// KindPrefix.
func (t *Trie[T, V]) Kind(n succinct.NodeNum) Kind {
	prefix := t.IsPrefixNode(n)
	match := t.IsExactNode(n)
	switch {
	case prefix && match:
		return KindPrefixAndMatch
	case prefix:
		return KindPrefix
	case match:
		return KindMatch
	default:
		return KindNone
	}
}

// childNodes returns the children of n in sorted-token (stored) order.
func (t *Trie[T, V]) childNodes(n succinct.NodeNum) []succinct.NodeNum {
	first, count := t.louds.Children(n)
	if count == 0 {
		return nil
	}
	out := make([]succinct.NodeNum, count)
	for i := range out {
		out[i] = first + succinct.NodeNum(i)
	}
	return out
}

// locate walks from the real root following label, binary-searching each
// node's sorted child list for the matching token at every step. It
// returns the deepest reachable node and how many tokens were consumed;
// found is true only if the whole label was consumed.
func (t *Trie[T, V]) locate(label []T) (node succinct.NodeNum, consumed int, found bool) {
	node = t.rootNode()
	for i, tok := range label {
		first, count := t.louds.Children(node)
		if count == 0 {
			return node, i, false
		}
		idx, ok := t.binarySearchChild(first, count, tok)
		if !ok {
			return node, i, false
		}
		node = first + succinct.NodeNum(idx)
	}
	return node, len(label), true
}

// binarySearchChild binary-searches the count children starting at first
// for tok, comparing against each candidate's stored token. Children are
// guaranteed sorted and token-unique by construction.
func (t *Trie[T, V]) binarySearchChild(first succinct.NodeNum, count int, tok T) (idx int, ok bool) {
	lo, hi := 0, count
	for lo < hi {
		mid := lo + (hi-lo)/2
		candidate := t.Token(first + succinct.NodeNum(mid))
		switch {
		case candidate == tok:
			return mid, true
		case candidate < tok:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// pathTo reconstructs the label leading from the root to node n by walking
// parent pointers and reversing. It is used by iterators that need to
// materialize a label from a node reached via child_to_parent navigation.
func (t *Trie[T, V]) pathTo(n succinct.NodeNum) []T {
	root := t.rootNode()
	var reversed []T
	for cur := n; cur != root; cur = t.louds.Parent(cur) {
		reversed = append(reversed, t.Token(cur))
	}
	out := make([]T, len(reversed))
	for i, tok := range reversed {
		out[len(reversed)-1-i] = tok
	}
	return out
}

// Len returns the number of exact-match labels stored in the trie.
func (t *Trie[T, V]) Len() int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].hasValue {
			n++
		}
	}
	return n
}

func (t *Trie[T, V]) String() string {
	return fmt.Sprintf("Trie[nodes=%d, exact=%d]", t.louds.NodeCount(), t.Len())
}
