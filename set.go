// SPDX-License-Identifier: MIT

package louds

import "iter"

// Map is the generic core itself: a Trie IS a map from labels to values.
// Set is the specialization that erases the value, reusing the exact same
// engine rather than duplicating it per value type.
type Map[T Token, V any] = Trie[T, V]

// Set is a LOUDS-encoded succinct trie holding only labels, no values. It
// wraps Trie[T, struct{}] so the membership-only case pays no value storage
// cost beyond what the zero-size struct{} already erases to.
type Set[T Token] struct {
	trie *Trie[T, struct{}]
}

// SetBuilder builds a Set the same way TrieBuilder builds a Trie.
type SetBuilder[T Token] struct {
	b *TrieBuilder[T, struct{}]
}

// NewSetBuilder returns a new, empty SetBuilder.
func NewSetBuilder[T Token]() *SetBuilder[T] {
	return &SetBuilder[T]{b: NewBuilder[T, struct{}]()}
}

// Insert adds label to the set under construction. Chainable.
func (b *SetBuilder[T]) Insert(label []T) *SetBuilder[T] {
	b.b.Insert(label, struct{}{})
	return b
}

// Build freezes the builder into a Set. Like TrieBuilder.Build, it panics if
// called more than once on the same builder.
func (b *SetBuilder[T]) Build() *Set[T] {
	return &Set[T]{trie: b.b.Build()}
}

// Contains reports whether label was inserted into the set exactly.
func (s *Set[T]) Contains(label []T) bool {
	_, ok := s.trie.ExactMatch(label)
	return ok
}

// IsPrefix reports whether label is a prefix of at least one member.
func (s *Set[T]) IsPrefix(label []T) bool {
	return s.trie.IsPrefix(label)
}

// LongestPrefix returns label itself if it is a member, and otherwise label
// extended along its unique chain of single children, with the same
// deterministic-descent rule as Trie.LongestPrefix. ok is false when label
// is not a path in the set.
func (s *Set[T]) LongestPrefix(label []T) ([]T, bool) {
	return s.trie.LongestPrefix(label)
}

// PrefixesOf enumerates every member that is a prefix of label, shortest
// first.
func (s *Set[T]) PrefixesOf(label []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for prefix, _ := range s.trie.PrefixesOf(label) {
			if !yield(prefix) {
				return
			}
		}
	}
}

// StartsWith enumerates every member having prefix as a prefix.
func (s *Set[T]) StartsWith(prefix []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for label, _ := range s.trie.StartsWith(prefix) {
			if !yield(label) {
				return
			}
		}
	}
}

// SuffixesOf is like StartsWith but yields only the portion of each member
// after prefix; prefix itself is excluded even if it is a member.
func (s *Set[T]) SuffixesOf(prefix []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for label, _ := range s.trie.SuffixesOf(prefix) {
			if !yield(label) {
				return
			}
		}
	}
}

// All enumerates every member of the set, in token-lexicographic order.
func (s *Set[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for label, _ := range s.trie.All() {
			if !yield(label) {
				return
			}
		}
	}
}

// Len returns the number of members in the set.
func (s *Set[T]) Len() int {
	return s.trie.Len()
}

// IncSearch returns a stateful membership cursor over the set.
func (s *Set[T]) IncSearch() *IncSearch[T, struct{}] {
	return s.trie.IncSearch()
}

func (s *Set[T]) String() string {
	return s.trie.String()
}
