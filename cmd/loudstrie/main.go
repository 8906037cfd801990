package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	loudstrie "github.com/loudstrie/loudstrie"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <query>  (reads a newline-delimited word list from stdin)", os.Args[0])
	}

	words, err := readWords(os.Stdin)
	if err != nil {
		log.Fatalf("reading words: %v", err)
	}

	b := loudstrie.NewBuilder[byte, int]()
	for i, w := range words {
		b.Insert(loudstrie.StringToByteTokens(w), i)
	}
	t := b.Build()

	log.Printf("built %s from %d words", t, len(words))

	query := loudstrie.StringToByteTokens(os.Args[1])

	if idx, ok := t.ExactMatch(query); ok {
		fmt.Printf("exact match: %q -> %d\n", os.Args[1], idx)
	} else {
		fmt.Printf("no exact match for %q\n", os.Args[1])
	}

	fmt.Printf("is prefix: %v\n", t.IsPrefix(query))

	fmt.Println("completions:")
	for label, idx := range t.StartsWith(query) {
		s, err := loudstrie.StringFromByteTokens(label)
		if err != nil {
			log.Printf("skipping non-UTF-8 label: %v", err)
			continue
		}
		fmt.Printf("  %s -> %d\n", s, idx)
	}

	fmt.Println("incremental walk:")
	cur := t.IncSearch()
	for i, tok := range query {
		kind, ok := cur.Query(tok)
		if !ok {
			fmt.Printf("  diverged after %d bytes\n", i)
			break
		}
		fmt.Printf("  %c -> %s\n", tok, kind)
	}
}

// readWords reads one word per line until EOF.
func readWords(f *os.File) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			words = append(words, line)
		}
	}
	return words, sc.Err()
}
