// Package trie_test validates word/prefix distinction, branch pruning on
// removal, and prefix enumeration.
package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlds/trie"
)

func TestInsertContains_WordVsPrefix(t *testing.T) {
	tr := trie.New()
	tr.Insert("car")
	tr.Insert("card")

	assert.True(t, tr.Contains("car"))
	assert.True(t, tr.Contains("card"))
	// "ca" is a prefix of stored words but not a word itself.
	assert.False(t, tr.Contains("ca"))
	assert.True(t, tr.HasPrefix("ca"))
	assert.False(t, tr.HasPrefix("dog"))
	assert.Equal(t, 2, tr.Len())
}

func TestInsert_DuplicateIsNoOp(t *testing.T) {
	tr := trie.New()
	tr.Insert("go")
	tr.Insert("go")

	assert.Equal(t, 1, tr.Len())
}

func TestRemove_PrunesDeadBranches(t *testing.T) {
	tr := trie.New()
	tr.Insert("car")
	tr.Insert("card")
	tr.Insert("care")

	assert.True(t, tr.Remove("card"))
	assert.False(t, tr.Contains("card"))
	assert.True(t, tr.Contains("car"))
	assert.True(t, tr.Contains("care"))

	// Removing a non-word or an absent word is a no-op.
	assert.False(t, tr.Remove("ca"))
	assert.False(t, tr.Remove("boat"))
	assert.Equal(t, 2, tr.Len())

	// Removing "care" must prune the whole "e" branch but keep "car".
	assert.True(t, tr.Remove("care"))
	assert.True(t, tr.Contains("car"))
	assert.False(t, tr.HasPrefix("care"))
}

func TestRemove_KeepsLongerWordWhenPrefixWordLeaves(t *testing.T) {
	tr := trie.New()
	tr.Insert("in")
	tr.Insert("inn")

	assert.True(t, tr.Remove("in"))
	assert.False(t, tr.Contains("in"))
	assert.True(t, tr.Contains("inn"))
	assert.True(t, tr.HasPrefix("in"))
}

func TestWordsWithPrefix_SortedEnumeration(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"dog", "door", "dorm", "cat", "do"} {
		tr.Insert(w)
	}

	assert.Equal(t, []string{"do", "dog", "door", "dorm"}, tr.WordsWithPrefix("do"))
	assert.Equal(t, []string{"cat", "do", "dog", "door", "dorm"}, tr.WordsWithPrefix(""))
	assert.Nil(t, tr.WordsWithPrefix("zz"))
}

func TestEmptyStringWordAndClear(t *testing.T) {
	tr := trie.New()
	tr.Insert("")

	assert.True(t, tr.Contains(""))
	assert.Equal(t, 1, tr.Len())

	tr.Clear()
	assert.True(t, tr.Empty())
	assert.False(t, tr.Contains(""))
}

func TestUnicodeWords(t *testing.T) {
	tr := trie.New()
	tr.Insert("дерево")
	tr.Insert("дело")

	assert.True(t, tr.Contains("дерево"))
	assert.True(t, tr.HasPrefix("де"))
	assert.Equal(t, []string{"дело", "дерево"}, tr.WordsWithPrefix("де"))
}
