package lenbucket_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/milden6/lenbucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTable(t *testing.T, words []string) *lenbucket.Table {
	table := lenbucket.New()
	for _, word := range words {
		require.NoError(t, table.Add(word))
	}
	return table
}

func TestNewTableIsEmpty(t *testing.T) {
	table := lenbucket.New()

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Words())

	buckets := table.Buckets()
	require.Len(t, buckets, lenbucket.NumBuckets)
	for i, bucket := range buckets {
		assert.NotNil(t, bucket, "bucket %d", i)
		assert.Empty(t, bucket, "bucket %d", i)
	}
}

func TestAddGroupsByLength(t *testing.T) {
	table := createTable(t, []string{"cat", "a", "dog", "be", "i", "bird"})

	assert.Equal(t, []string{"a", "i"}, table.Bucket(1))
	assert.Equal(t, []string{"be"}, table.Bucket(2))
	assert.Equal(t, []string{"cat", "dog"}, table.Bucket(3))
	assert.Equal(t, []string{"bird"}, table.Bucket(4))
	assert.Empty(t, table.Bucket(5))
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, []string{"a", "i", "be", "cat", "dog", "bird"}, table.Words())
}

func TestAddBoundaries(t *testing.T) {
	longest := strings.Repeat("x", lenbucket.NumBuckets)
	table := createTable(t, []string{"q", longest})

	buckets := table.Buckets()
	assert.Equal(t, []string{"q"}, buckets[0])
	assert.Equal(t, []string{longest}, buckets[lenbucket.NumBuckets-1])
}

func TestAddCountsCharactersNotBytes(t *testing.T) {
	table := createTable(t, []string{"été", "naïve"})

	assert.Equal(t, []string{"été"}, table.Bucket(3))
	assert.Equal(t, []string{"naïve"}, table.Bucket(5))
}

func TestAddKeepsDuplicatesAndCase(t *testing.T) {
	table := createTable(t, []string{"Cat", "cat", "cat"})

	assert.Equal(t, []string{"Cat", "cat", "cat"}, table.Bucket(3))
}

func TestAddRejectsOutOfRange(t *testing.T) {
	for _, word := range []string{"", strings.Repeat("y", lenbucket.NumBuckets+1)} {
		table := lenbucket.New()
		err := table.Add(word)

		require.Error(t, err)
		assert.True(t, errors.Is(err, lenbucket.ErrWordLength))

		var lengthErr *lenbucket.LengthError
		require.True(t, errors.As(err, &lengthErr))
		assert.Equal(t, word, lengthErr.Word)
		assert.Equal(t, len(word), lengthErr.Length)
		assert.Equal(t, 0, table.Len())
	}
}

func TestBucketOutOfRange(t *testing.T) {
	table := createTable(t, []string{"a"})

	assert.Nil(t, table.Bucket(0))
	assert.Nil(t, table.Bucket(lenbucket.NumBuckets+1))
}

func TestBucketsIsACopy(t *testing.T) {
	table := createTable(t, []string{"a"})

	buckets := table.Buckets()
	buckets[0][0] = "z"

	assert.Equal(t, []string{"a"}, table.Bucket(1))
}

func TestWord(t *testing.T) {
	assert.Equal(t, "cat", lenbucket.Word("cat\n"))
	assert.Equal(t, "cat", lenbucket.Word("cat\r\n"))
	assert.Equal(t, "cat", lenbucket.Word("cat \t"))
	assert.Equal(t, " cat", lenbucket.Word(" cat"))
	assert.Equal(t, "", lenbucket.Word(" \n"))
}

func ExampleTable_Add() {
	table := lenbucket.New()

	table.Add("cat")
	table.Add("a")
	table.Add("dog")

	for length := 1; length <= 3; length++ {
		fmt.Printf("%d: %v\n", length, table.Bucket(length))
	}

	// Output:
	// 1: [a]
	// 2: []
	// 3: [cat dog]
}

func TestAddRejectsInvalidUTF8(t *testing.T) {
	table := lenbucket.New()
	err := table.Add("ab\xff")

	var encodingErr *lenbucket.EncodingError
	require.True(t, errors.As(err, &encodingErr))
	assert.Equal(t, 0, encodingErr.Line)
	assert.True(t, errors.Is(err, lenbucket.ErrInvalidEncoding))
	assert.Equal(t, 0, table.Len())
}
