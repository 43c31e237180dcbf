package lenbucket

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/exp/mmap"
)

const (
	// DefaultInput is the word list read by the dictionary-parse command.
	DefaultInput = "dictionary.txt"

	// DefaultOutput is the document written by the dictionary-parse command.
	DefaultOutput = "dictionary.json"

	// Indent is the indentation of one nesting level in the document.
	Indent = "    "

	// maxLineLength bounds a single input line. Anything near it is far
	// outside the bucket range anyway.
	maxLineLength = 1 << 20
)

// ErrMalformedDocument is returned by Decode for a document that could not
// have been written by Save.
var ErrMalformedDocument = errors.New("malformed dictionary document")

// Document is the JSON form of a Table.
type Document struct {
	Dictionary [][]string `json:"dictionary"`
}

// Load reads a word list from a file, one word per line.
func Load(filename string) (*Table, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}

	defer r.Close()
	return Read(io.NewSectionReader(r, 0, int64(r.Len())))
}

// Read builds a Table from one word per line. Lines end in "\n", "\r\n" or a
// lone "\r". It stops at the first word without a bucket, or that is not valid
// UTF-8, and returns a *LengthError or *EncodingError naming its line.
func Read(r io.Reader) (*Table, error) {
	t := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineLength)
	scanner.Split(scanLines)

	line := 0
	for scanner.Scan() {
		line++
		if err := t.Add(Word(scanner.Text())); err != nil {
			var lengthErr *LengthError
			var encodingErr *EncodingError
			if errors.As(err, &lengthErr) {
				lengthErr.Line = line
			} else if errors.As(err, &encodingErr) {
				encodingErr.Line = line
			}
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return t, nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need the next byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Marshal returns the indented JSON document for the table. It has no
// trailing newline.
func (t *Table) Marshal() ([]byte, error) {
	var buffer bytes.Buffer
	enc := json.NewEncoder(&buffer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	if err := enc.Encode(Document{Dictionary: t.buckets[:]}); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// Write writes the JSON document to an io.Writer in a single call. Returns
// the number of bytes written.
func (t *Table) Write(w io.Writer) (int, error) {
	data, err := t.Marshal()
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

// Save writes the JSON document to a file, replacing any previous contents.
// Returns the number of bytes written.
func (t *Table) Save(filename string) (n int, err error) {
	data, err := t.Marshal()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return f.Write(data)
}

// Decode reads a document written by Save back into a Table.
func Decode(r io.Reader) (*Table, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if len(doc.Dictionary) > NumBuckets {
		return nil, fmt.Errorf("%w: %d buckets, want at most %d",
			ErrMalformedDocument, len(doc.Dictionary), NumBuckets)
	}

	t := New()
	for i, bucket := range doc.Dictionary {
		for _, word := range bucket {
			if n := utf8.RuneCountInString(word); n != i+1 {
				return nil, fmt.Errorf("%w: word %q of length %d in bucket %d",
					ErrMalformedDocument, word, n, i)
			}
			t.buckets[i] = append(t.buckets[i], word)
			t.count++
		}
	}

	return t, nil
}

// LoadDocument reads a document written by Save from a file.
func LoadDocument(filename string) (*Table, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	defer r.Close()
	return Decode(io.NewSectionReader(r, 0, int64(r.Len())))
}
