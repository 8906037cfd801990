// SPDX-License-Identifier: MIT

package louds

import (
	"bytes"
	"encoding/gob"

	"github.com/loudstrie/loudstrie/internal/succinct"
)

// wireNode is the exported, gob-encodable shadow of nodePayload. nodePayload
// itself keeps its fields unexported, so marshaling goes through this type
// rather than exporting fields the rest of the package has no business
// touching.
type wireNode[T Token, V any] struct {
	Token    T
	HasValue bool
	Value    V
}

// wireTrie is the exported, gob-encodable shadow of Trie: the pair
// (louds bits, nodes) called for by this trie's serialisation contract —
// a pass-through of the in-memory structure, with no cross-version
// compatibility promised.
type wireTrie[T Token, V any] struct {
	Bits      []byte
	NodeCount int
	Nodes     []wireNode[T, V]
}

// MarshalBinary serialises t as the pair (louds bits, nodes), each node
// payload as (token, optional value), per this trie's serialisation
// contract. No cross-version compatibility is promised.
func (t *Trie[T, V]) MarshalBinary() ([]byte, error) {
	bitsData, err := t.louds.Bits().MarshalBinary()
	if err != nil {
		return nil, err
	}

	w := wireTrie[T, V]{
		Bits:      bitsData,
		NodeCount: t.louds.NodeCount(),
		Nodes:     make([]wireNode[T, V], len(t.nodes)),
	}
	for i, n := range t.nodes {
		w.Nodes[i] = wireNode[T, V]{Token: n.token, HasValue: n.hasValue, Value: n.value}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a Trie previously produced by MarshalBinary. It
// overwrites t in place; t must not be shared with any reader while this
// runs.
func (t *Trie[T, V]) UnmarshalBinary(data []byte) error {
	var w wireTrie[T, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}

	bits := succinct.NewBitVector()
	if err := bits.UnmarshalBinary(w.Bits); err != nil {
		return err
	}

	nodes := make([]nodePayload[T, V], len(w.Nodes))
	for i, n := range w.Nodes {
		nodes[i] = nodePayload[T, V]{token: n.Token, hasValue: n.HasValue, value: n.Value}
	}

	t.louds = succinct.FromBits(bits, w.NodeCount)
	t.nodes = nodes
	return nil
}
