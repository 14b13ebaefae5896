package trie

import "sort"

// node is one trie vertex: a rune-indexed child map plus a terminal flag.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a rune-keyed prefix tree storing a set of distinct words.
// The empty string is a valid word. Construct with New.
type Trie struct {
	root *node
	size int
}

// New creates an empty Trie.
// Complexity: O(1)
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the trie; inserting an existing word is a no-op.
// Complexity: O(m)
func (t *Trie) Insert(word string) {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Contains reports whether word was inserted as a whole word
// (a stored word's strict prefix does not count).
// Complexity: O(m)
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)

	return n != nil && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix.
// Complexity: O(m)
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Remove deletes word from the trie, pruning branches that no longer
// lead to any word. Reports whether the word was present.
// Complexity: O(m)
func (t *Trie) Remove(word string) bool {
	removed := remove(t.root, []rune(word), 0)
	if removed {
		t.size--
	}

	return removed
}

// WordsWithPrefix returns all stored words starting with prefix,
// in lexicographic order. An empty prefix returns every word.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}

	var out []string
	collect(start, []rune(prefix), &out)
	sort.Strings(out)

	return out
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.size }

// Empty reports whether the trie holds no words.
func (t *Trie) Empty() bool { return t.size == 0 }

// Clear removes all words.
// Complexity: O(1)
func (t *Trie) Clear() {
	t.root = newNode()
	t.size = 0
}

// walk descends along s and returns the final node, or nil when the path
// leaves the trie.
func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range s {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}

	return n
}

// remove recursively unmarks word[i:] below n and reports whether the
// word existed. Child nodes left with no children and no terminal flag
// are unlinked on the unwind.
func remove(n *node, word []rune, i int) bool {
	if i == len(word) {
		if !n.terminal {
			return false
		}
		n.terminal = false

		return true
	}

	child, ok := n.children[word[i]]
	if !ok || !remove(child, word, i+1) {
		return false
	}

	if !child.terminal && len(child.children) == 0 {
		delete(n.children, word[i])
	}

	return true
}

// collect gathers every terminal word below n into out.
func collect(n *node, path []rune, out *[]string) {
	if n.terminal {
		*out = append(*out, string(path))
	}
	for r, child := range n.children {
		collect(child, append(path, r), out)
	}
}
