// SPDX-License-Identifier: MIT

package louds

import "github.com/loudstrie/loudstrie/internal/succinct"

// TrieBuilder accumulates (label, value) pairs and lowers them to a frozen
// *Trie on Build. It is single-use: calling Build a second time panics,
// matching the "builder is exclusively owned until build() consumes it"
// contract.
type TrieBuilder[T Token, V any] struct {
	_     noCopy
	naive *naiveTrie[T, V]
	built bool
}

// NewBuilder returns an empty builder.
func NewBuilder[T Token, V any]() *TrieBuilder[T, V] {
	return &TrieBuilder[T, V]{naive: newNaiveTrie[T, V]()}
}

// Insert feeds label's tokens into the naive scratch trie. If label was
// already inserted, value overwrites the previous value for it —
// last-writer-wins is the only mutation-resolution rule this builder
// applies. Insert returns the builder to allow chaining.
func (b *TrieBuilder[T, V]) Insert(label []T, value V) *TrieBuilder[T, V] {
	if b.built {
		panic("louds: TrieBuilder.Insert called after Build")
	}
	b.naive.insert(label, value)
	return b
}

// Build consumes the builder: it walks the naive trie in level order,
// emits the LOUDS bit vector (prefixed by the super-root's constant "10")
// and the flat node payload array, constructs the LOUDS navigation index,
// and returns the frozen Trie. Calling Build twice panics.
func (b *TrieBuilder[T, V]) Build() *Trie[T, V] {
	if b.built {
		panic("louds: TrieBuilder.Build called twice")
	}
	b.built = true

	bits := succinct.NewBitVector()
	// Leading "10": the super-root always has exactly the real root as
	// its single child.
	bits.Append(true)
	bits.Append(false)

	nodeCount := 1 // the super-root itself

	// The real root (node number 2) is the super-root's only child, but it
	// is never anyone's child in the naive trie's own child lists, so its
	// payload must be seeded before the level-order stream's payloads
	// (which start at the root's children, node number 3 onward).
	root := b.naive.root
	nodes := []nodePayload[T, V]{{
		hasValue: root.hasValue,
		value:    root.value,
	}}

	for _, item := range b.naive.levelOrder() {
		if item.node == nil {
			bits.Append(false)
			nodeCount++
			continue
		}
		bits.Append(true)
		nodes = append(nodes, nodePayload[T, V]{
			token:    item.node.token,
			hasValue: item.node.hasValue,
			value:    item.node.value,
		})
	}

	lo := succinct.FromBits(bits, nodeCount)
	return &Trie[T, V]{louds: lo, nodes: nodes}
}
