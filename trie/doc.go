// Package trie implements a prefix tree over runes.
//
// Each node maps a rune to a child; a word is marked by a terminal flag
// on its final node, so a word and its prefixes are independent entries.
// Remove prunes branches that no longer lead to any word.
//
// Complexity (m = word length, k = matches):
//
//	– Insert / Contains / HasPrefix / Remove: O(m)
//	– WordsWithPrefix: O(m + k·m̄) where m̄ is the mean suffix length
//
// A Trie is not safe for concurrent use.
package trie
