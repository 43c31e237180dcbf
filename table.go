package lenbucket

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NumBuckets is the number of buckets in a Table. Bucket i holds the words of
// length i+1, so this is also the longest word a Table accepts.
const NumBuckets = 15

var (
	// ErrWordLength is wrapped by every *LengthError.
	ErrWordLength = errors.New("word length out of range")

	// ErrInvalidEncoding is wrapped by every *EncodingError.
	ErrInvalidEncoding = errors.New("word is not valid UTF-8")
)

// LengthError reports a word that has no bucket.
type LengthError struct {
	Line   int // 1-based line in the input, 0 when added directly
	Word   string
	Length int
}

func (e *LengthError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: word %q has length %d, want 1..%d",
			e.Line, e.Word, e.Length, NumBuckets)
	}
	return fmt.Sprintf("word %q has length %d, want 1..%d", e.Word, e.Length, NumBuckets)
}

func (e *LengthError) Unwrap() error {
	return ErrWordLength
}

// EncodingError reports a word that is not valid UTF-8.
type EncodingError struct {
	Line int // 1-based line in the input, 0 when added directly
	Word string
}

func (e *EncodingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: word %q is not valid UTF-8", e.Line, e.Word)
	}
	return fmt.Sprintf("word %q is not valid UTF-8", e.Word)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// Table holds words grouped by length.
type Table struct {
	buckets [NumBuckets][]string
	count   int
}

// New creates an empty Table.
func New() *Table {
	t := &Table{}
	for i := range t.buckets {
		// empty buckets must encode as [] and not null
		t.buckets[i] = []string{}
	}
	return t
}

// Word strips the trailing whitespace and line ending from a line of input.
func Word(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// Add appends the word to the bucket for its length. The word is stored as
// given; call Word() first to trim a raw line.
func (t *Table) Add(word string) error {
	if !utf8.ValidString(word) {
		return &EncodingError{Word: word}
	}

	n := utf8.RuneCountInString(word)
	if n < 1 || n > NumBuckets {
		return &LengthError{Word: word, Length: n}
	}

	t.buckets[n-1] = append(t.buckets[n-1], word)
	t.count++
	return nil
}

// Bucket returns the words of the given length in the order they were added.
// It returns nil if no bucket exists for the length.
func (t *Table) Bucket(length int) []string {
	if length < 1 || length > NumBuckets {
		return nil
	}
	return t.buckets[length-1]
}

// Buckets returns a copy of all buckets, shortest words first.
func (t *Table) Buckets() [][]string {
	result := make([][]string, NumBuckets)
	for i, bucket := range t.buckets {
		result[i] = append([]string{}, bucket...)
	}
	return result
}

// Len returns the number of words added.
func (t *Table) Len() int {
	return t.count
}

// Words returns every word, in bucket order and then in the order added.
func (t *Table) Words() []string {
	words := make([]string, 0, t.count)
	for _, bucket := range t.buckets {
		words = append(words, bucket...)
	}
	return words
}
