// SPDX-License-Identifier: MIT

package louds

import "testing"

// scenario1Words is the literal dataset from spec.md §8, Scenario 1 onward.
var scenario1Words = map[string]int{
	"a":            0,
	"app":          1,
	"apple":        2,
	"better":       3,
	"application":  4,
	"アップル🍎":       5,
}

func buildScenario1(t *testing.T) *Trie[byte, int] {
	t.Helper()
	b := NewBuilder[byte, int]()
	for w, v := range scenario1Words {
		b.Insert(StringToByteTokens(w), v)
	}
	return b.Build()
}

// TestScenario1ExactMatchAndPrefix is spec.md §8 Scenario 1.
func TestScenario1ExactMatchAndPrefix(t *testing.T) {
	t.Parallel()

	tr := buildScenario1(t)

	if v, ok := tr.ExactMatch(StringToByteTokens("apple")); !ok || v != 2 {
		t.Fatalf("ExactMatch(apple) = (%d, %v), want (2, true)", v, ok)
	}
	if _, ok := tr.ExactMatch(StringToByteTokens("appl")); ok {
		t.Fatal("ExactMatch(appl) should be None")
	}
	if !tr.IsPrefix(StringToByteTokens("appl")) {
		t.Fatal("IsPrefix(appl) should be true")
	}
	if tr.IsPrefix(StringToByteTokens("apple")) {
		t.Fatal("IsPrefix(apple) should be false: no further child")
	}
}

// TestInvariantProperPrefixesAreIsPrefix checks: "for all labels L
// inserted, every non-empty proper prefix P of L satisfies is_prefix(P)."
func TestInvariantProperPrefixesAreIsPrefix(t *testing.T) {
	t.Parallel()

	tr := buildScenario1(t)
	for w := range scenario1Words {
		tokens := StringToByteTokens(w)
		for i := 1; i < len(tokens); i++ {
			if !tr.IsPrefix(tokens[:i]) {
				t.Errorf("IsPrefix(%q) should be true (proper prefix of %q)", tokens[:i], w)
			}
		}
	}
}

// TestInvariantLenCountsExactMatches checks Len() against the inserted set.
func TestInvariantLenCountsExactMatches(t *testing.T) {
	t.Parallel()

	tr := buildScenario1(t)
	if got := tr.Len(); got != len(scenario1Words) {
		t.Fatalf("Len() = %d, want %d", got, len(scenario1Words))
	}
}

// TestInvariantLoudsSanity checks: "(#ones) + 1 == (#zeros) == node count."
func TestInvariantLoudsSanity(t *testing.T) {
	t.Parallel()

	tr := buildScenario1(t)
	nodeCount := tr.louds.NodeCount()

	ones, zeros := 0, 0
	bits := tr.louds.Bits()
	for i := uint(0); i < bits.Len(); i++ {
		if bits.Test(i) {
			ones++
		} else {
			zeros++
		}
	}
	if ones+1 != zeros {
		t.Errorf("ones+1 = %d, zeros = %d, want equal", ones+1, zeros)
	}
	if zeros != nodeCount {
		t.Errorf("zeros = %d, nodeCount = %d, want equal", zeros, nodeCount)
	}
}

func TestEmptyLabelQueries(t *testing.T) {
	t.Parallel()

	empty := NewBuilder[byte, int]().Build()
	if empty.IsPrefix(nil) {
		t.Error("IsPrefix(nil) on an empty trie should be false")
	}
	if _, ok := empty.ExactMatch(nil); ok {
		t.Error("ExactMatch(nil) on an empty trie should be false")
	}

	tr := buildScenario1(t)
	if !tr.IsPrefix(nil) {
		t.Error("IsPrefix(nil) on a non-empty trie should be true")
	}
	if _, ok := tr.ExactMatch(nil); ok {
		t.Error("ExactMatch(nil) should be false: empty label was never inserted")
	}
}

func TestEmptyLabelInsertedHasValue(t *testing.T) {
	t.Parallel()

	b := NewBuilder[byte, int]()
	b.Insert(nil, 99)
	tr := b.Build()

	v, ok := tr.ExactMatch(nil)
	if !ok || v != 99 {
		t.Fatalf("ExactMatch(nil) = (%d, %v), want (99, true)", v, ok)
	}
}

func TestDeepLabel(t *testing.T) {
	t.Parallel()

	deep := make([]byte, 64)
	for i := range deep {
		deep[i] = byte('a' + i%26)
	}

	b := NewBuilder[byte, int]()
	b.Insert(deep, 1)
	tr := b.Build()

	if v, ok := tr.ExactMatch(deep); !ok || v != 1 {
		t.Fatalf("ExactMatch(deep) = (%d, %v), want (1, true)", v, ok)
	}
	for i := 1; i < len(deep); i++ {
		if !tr.IsPrefix(deep[:i]) {
			t.Fatalf("IsPrefix(deep[:%d]) should be true", i)
		}
	}
}

func TestBuilderPanicsOnDoubleBuild(t *testing.T) {
	t.Parallel()

	b := NewBuilder[byte, int]()
	b.Insert(StringToByteTokens("a"), 1)
	b.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("second Build() should panic")
		}
	}()
	b.Build()
}

func TestBuilderPanicsOnInsertAfterBuild(t *testing.T) {
	t.Parallel()

	b := NewBuilder[byte, int]()
	b.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("Insert() after Build() should panic")
		}
	}()
	b.Insert(StringToByteTokens("a"), 1)
}

// TestDuplicateKeyLastWriterWins checks the Open Question resolution
// recorded in DESIGN.md.
func TestDuplicateKeyLastWriterWins(t *testing.T) {
	t.Parallel()

	b := NewBuilder[byte, int]()
	b.Insert(StringToByteTokens("dup"), 1)
	b.Insert(StringToByteTokens("dup"), 2)
	tr := b.Build()

	v, ok := tr.ExactMatch(StringToByteTokens("dup"))
	if !ok || v != 2 {
		t.Fatalf("ExactMatch(dup) = (%d, %v), want (2, true)", v, ok)
	}
	if got := tr.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicate key must not double-count)", got)
	}
}

func TestIdempotentInsertOrder(t *testing.T) {
	t.Parallel()

	order1 := []string{"a", "app", "apple", "better", "application"}
	order2 := []string{"application", "a", "better", "apple", "app"}

	build := func(order []string) *Trie[byte, int] {
		b := NewBuilder[byte, int]()
		for i, w := range order {
			b.Insert(StringToByteTokens(w), i)
		}
		return b.Build()
	}

	t1, t2 := build(order1), build(order2)

	var all1, all2 []string
	for label := range t1.All() {
		s, _ := StringFromByteTokens(label)
		all1 = append(all1, s)
	}
	for label := range t2.All() {
		s, _ := StringFromByteTokens(label)
		all2 = append(all2, s)
	}
	if len(all1) != len(all2) {
		t.Fatalf("enumeration length differs: %d vs %d", len(all1), len(all2))
	}
	for i := range all1 {
		if all1[i] != all2[i] {
			t.Fatalf("enumeration order differs at %d: %q vs %q", i, all1[i], all2[i])
		}
	}
}
