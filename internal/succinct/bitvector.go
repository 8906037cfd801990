// SPDX-License-Identifier: MIT

// Package succinct implements the rank/select-capable bit vector that
// backs the LOUDS (Level-Order Unary Degree Sequence) encoding used by
// the trie in the parent module.
//
// The storage and popcount-rank arithmetic are delegated to the real
// ecosystem bit-vector library github.com/bits-and-blooms/bitset; this
// package adds select (inverse rank) and the LOUDS node-numbering layer
// on top of it.
package succinct

import (
	"bytes"
	"encoding/gob"

	"github.com/bits-and-blooms/bitset"
)

// BitVector is an append-only bit sequence with rank and select. Rank is a
// popcount over the 64-bit words before the queried position, so it is
// linear in the number of words W; select is a binary search over bit
// positions that calls rank at each step. No auxiliary rank or select
// tables are kept. The trie appends bits only while building and never
// changes the vector after Build returns.
type BitVector struct {
	bs  *bitset.BitSet
	len uint
}

// NewBitVector returns an empty, growable bit vector.
func NewBitVector() *BitVector {
	return &BitVector{bs: bitset.New(0)}
}

// Append pushes one bit onto the end of the vector and returns its index.
func (v *BitVector) Append(bit bool) (index uint) {
	index = v.len
	if bit {
		v.bs.Set(index)
	}
	v.len++
	return index
}

// Len reports the number of bits appended so far.
func (v *BitVector) Len() uint {
	return v.len
}

// Test reports whether the bit at i is set. i must be < Len().
func (v *BitVector) Test(i uint) bool {
	return v.bs.Test(i)
}

// Rank1 returns the number of one-bits in [0, i), i.e. strictly before i.
func (v *BitVector) Rank1(i uint) int {
	if i == 0 {
		return 0
	}
	// bitset.Rank(i) counts set bits in [0, i], inclusive.
	return int(v.bs.Rank(i - 1))
}

// Rank0 returns the number of zero-bits in [0, i).
func (v *BitVector) Rank0(i uint) int {
	return int(i) - v.Rank1(i)
}

// Select1 returns the position of the k-th one-bit (1-indexed: k=1 is the
// first one-bit). ok is false if there is no such bit.
func (v *BitVector) Select1(k int) (pos uint, ok bool) {
	if k < 1 {
		return 0, false
	}
	total := v.Rank1(v.len)
	if k > total {
		return 0, false
	}
	// Binary search the smallest position p such that Rank1(p+1) == k.
	lo, hi := uint(0), v.len-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v.Rank1(mid+1) >= k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}

// Select0 returns the position of the k-th zero-bit (1-indexed).
func (v *BitVector) Select0(k int) (pos uint, ok bool) {
	if k < 1 {
		return 0, false
	}
	total := v.Rank0(v.len)
	if k > total {
		return 0, false
	}
	lo, hi := uint(0), v.len-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v.Rank0(mid+1) >= k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}

// wireBitVector is the exported, gob-encodable shadow of BitVector. BS
// holds the bitset library's own binary encoding of the underlying words;
// Len records the exact bit count, since bitset's encoding is word-aligned
// and can't by itself distinguish a trailing partial word from padding.
type wireBitVector struct {
	BS  []byte
	Len uint
}

// MarshalBinary encodes the bit vector as a pass-through of its in-memory
// state. No cross-version compatibility is promised.
func (v *BitVector) MarshalBinary() ([]byte, error) {
	bsBytes, err := v.bs.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(wireBitVector{BS: bsBytes, Len: v.len}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a bit vector previously produced by MarshalBinary.
func (v *BitVector) UnmarshalBinary(data []byte) error {
	var w wireBitVector
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	bs := &bitset.BitSet{}
	if err := bs.UnmarshalBinary(w.BS); err != nil {
		return err
	}
	v.bs = bs
	v.len = w.Len
	return nil
}
