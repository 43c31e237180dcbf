package lenbucket

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Lexicon answers whether a word is in a Table, ignoring case. It is
// immutable once built and safe for concurrent use.
type Lexicon struct {
	sets [NumBuckets]wordSet
}

// wordSet is one bucket indexed by a minimal perfect hash.
type wordSet struct {
	g     []int32
	words []string
}

// NewLexicon indexes every bucket of the table. Words are compared in upper
// case and duplicates are dropped.
func NewLexicon(t *Table) *Lexicon {
	lex := &Lexicon{}
	for i, bucket := range t.buckets {
		lex.sets[i] = newWordSet(bucket)
	}
	return lex
}

// OpenLexicon builds a Lexicon from a document written by Save.
func OpenLexicon(filename string) (*Lexicon, error) {
	t, err := LoadDocument(filename)
	if err != nil {
		return nil, err
	}
	return NewLexicon(t), nil
}

func newWordSet(bucket []string) wordSet {
	words := make([]string, 0, len(bucket))
	for _, word := range bucket {
		words = append(words, strings.ToUpper(word))
	}

	// the hash needs distinct keys
	sort.Strings(words)
	unique := words[:0]
	for i, word := range words {
		if i == 0 || word != words[i-1] {
			unique = append(unique, word)
		}
	}

	g, permute := minimalPerfectHash(len(unique), func(d int32, i int) int {
		return stringHash(d, unique[i])
	})

	set := wordSet{g: g, words: make([]string, len(unique))}
	for dest, src := range permute {
		set.words[dest] = unique[src]
	}
	return set
}

func (s *wordSet) has(word string) bool {
	if len(s.words) == 0 {
		return false
	}

	var slot int
	d := s.g[stringHash(0, word)%len(s.g)]
	if d < 0 {
		slot = int(-d - 1)
	} else {
		slot = stringHash(d, word) % len(s.words)
	}

	return s.words[slot] == word
}

// Has reports whether the word, in any case, is in the bucket for its length.
func (lex *Lexicon) Has(word string) bool {
	n := utf8.RuneCountInString(word)
	if n < 1 || n > NumBuckets {
		return false
	}
	return lex.sets[n-1].has(strings.ToUpper(word))
}

// Count returns the number of distinct words of the given length.
func (lex *Lexicon) Count(length int) int {
	if length < 1 || length > NumBuckets {
		return 0
	}
	return len(lex.sets[length-1].words)
}
