// SPDX-License-Identifier: MIT

// Package louds implements a memory-efficient trie (prefix tree) whose
// compressed representation is built on a LOUDS (Level-Order Unary Degree
// Sequence) succinct tree encoding.
//
// The trie is built once via TrieBuilder and is immutable afterwards: all
// navigation (exact match, prefix walks, postfix/completion enumeration,
// an incremental search cursor, and longest-shared-prefix search) is
// read-only and implemented purely in terms of the LOUDS bit vector plus a
// flat per-node token/value array.
package louds

import "cmp"

// Token is any totally ordered, comparable value usable as a single label
// element. byte and rune are the common instantiations; any cmp.Ordered
// type works because such types are copied by value in Go, satisfying the
// spec's "cloneable" requirement for free.
type Token interface {
	cmp.Ordered
}

// Label is a finite ordered sequence of tokens: the trie's key type.
type Label[T Token] []T
