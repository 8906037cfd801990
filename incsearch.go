// SPDX-License-Identifier: MIT

package louds

import (
	"fmt"
	"iter"

	"github.com/loudstrie/loudstrie/internal/succinct"
)

// Position is a frozen snapshot of an IncSearch cursor's location: a bare
// LOUDS node number. It is the one place this package deliberately exposes
// a raw node number, to support resuming a search later. Resuming a
// Position against a trie other than the one it was taken from is
// undefined behavior.
type Position struct {
	node succinct.NodeNum
}

// IncSearch is a stateful cursor over a Trie, advanced one token at a
// time. The start position is the root; IncSearch must be created via
// Trie.IncSearch.
type IncSearch[T Token, V any] struct {
	_    noCopy
	trie *Trie[T, V]
	node succinct.NodeNum
}

// IncSearch returns a new cursor over t, starting at the root.
func (t *Trie[T, V]) IncSearch() *IncSearch[T, V] {
	return &IncSearch[T, V]{trie: t, node: t.rootNode()}
}

// Reset moves the cursor back to the root.
func (s *IncSearch[T, V]) Reset() {
	s.node = s.trie.rootNode()
}

// Position freezes the cursor's current location so it can be resumed
// later, possibly in a different IncSearch instance over the same trie.
func (s *IncSearch[T, V]) Position() Position {
	return Position{node: s.node}
}

// Resume moves the cursor to a previously frozen Position. Resuming a
// Position taken from a different trie is undefined behavior.
func (s *IncSearch[T, V]) Resume(p Position) {
	s.node = p.node
}

// childAt finds tok among the cursor's current children without moving
// the cursor.
func (s *IncSearch[T, V]) childAt(tok T) (succinct.NodeNum, bool) {
	first, count := s.trie.louds.Children(s.node)
	if count == 0 {
		return 0, false
	}
	idx, ok := s.trie.binarySearchChild(first, count, tok)
	if !ok {
		return 0, false
	}
	return first + succinct.NodeNum(idx), true
}

// Peek reports what Query(tok) would do, without moving the cursor.
func (s *IncSearch[T, V]) Peek(tok T) (Kind, bool) {
	child, ok := s.childAt(tok)
	if !ok {
		return KindNone, false
	}
	return s.trie.Kind(child), true
}

// Query advances the cursor by tok iff tok matches one of the cursor's
// current children; it does not move the cursor on a miss.
func (s *IncSearch[T, V]) Query(tok T) (Kind, bool) {
	child, ok := s.childAt(tok)
	if !ok {
		return KindNone, false
	}
	s.node = child
	return s.trie.Kind(child), true
}

// QueryFailedError is the error QueryUntil returns when a token fails to
// match; use errors.As with *QueryFailedError to recover the failing
// position.
type QueryFailedError struct {
	// Index is the index, within the label passed to QueryUntil, of the
	// first token that failed to match. Tokens before Index remain
	// consumed: the cursor is left at the deepest reachable node.
	Index int
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("louds: query failed at token index %d", e.Index)
}

// QueryUntil advances the cursor through each of label's tokens in turn.
// On full success it returns the resulting Kind and a nil error. On the
// first token that fails to match, it returns a *QueryFailedError wrapping
// the failing index — tokens consumed before the failure remain consumed,
// i.e. the cursor is left at the deepest reachable node. This is the
// contract callers rely on for partial-input UIs.
func (s *IncSearch[T, V]) QueryUntil(label []T) (Kind, error) {
	for i, tok := range label {
		if _, ok := s.Query(tok); !ok {
			return KindNone, &QueryFailedError{Index: i}
		}
	}
	return s.trie.Kind(s.node), nil
}

// GotoLongestPrefix descends from the cursor's current position while it
// has exactly one child, extending the cursor deterministically. It
// succeeds (returns ok=true) with the number of tokens traversed when it
// reaches a terminal (a node that is itself an exact match) or a dead end
// (zero children); it fails (ok=false) with the number of tokens traversed
// so far when it instead reaches a branching node (more than one child)
// before either. Either way the cursor ends up at the node the walk
// stopped on.
func (s *IncSearch[T, V]) GotoLongestPrefix() (consumed int, ok bool) {
	for {
		first, count := s.trie.louds.Children(s.node)
		switch {
		case count == 0:
			return consumed, true
		case count > 1:
			return consumed, false
		default:
			s.node = first
			consumed++
			if s.trie.IsExactNode(s.node) {
				return consumed, true
			}
		}
	}
}

// Children enumerates the cursor's current children as (token, value)
// pairs, in sorted token order. The value is present only for children
// that are themselves exact matches.
func (s *IncSearch[T, V]) Children() iter.Seq2[T, *V] {
	return func(yield func(T, *V) bool) {
		nodes := s.trie.childNodes(s.node)
		for _, n := range nodes {
			var vp *V
			if v, ok := s.trie.Value(n); ok {
				vv := v
				vp = &vv
			}
			if !yield(s.trie.Token(n), vp) {
				return
			}
		}
	}
}

// Value returns the value at the cursor's current node, if any.
func (s *IncSearch[T, V]) Value() (V, bool) {
	return s.trie.Value(s.node)
}

// Prefix reconstructs the label from the root to the cursor by walking
// parent pointers and reversing.
func (s *IncSearch[T, V]) Prefix() []T {
	return s.trie.pathTo(s.node)
}

// PrefixLen is the cursor's depth: the number of tokens on the path from
// the root to the cursor's current node.
func (s *IncSearch[T, V]) PrefixLen() int {
	return len(s.Prefix())
}
