// internal/dict/dict.go
//
// Prefix-tree dictionary for the Boggle engine.
// Responsibilities:
//   - Build a trie plus an exact-match set from a word list, once.
//   - Answer IsWord (exact membership) and IsPrefix (prefix feasibility)
//     in time proportional to the query length.
//
// Notes:
//   - Nodes use a fixed [26]*node child array indexed by letter offset; the
//     alphabet is static A–Z so this beats a generic map for traversal.
//   - A Dictionary is never mutated after Build, so it is safe for
//     unsynchronized concurrent reads (e.g. a background solver running
//     alongside interactive play).

package dict

import (
	"fmt"
	"strings"
)

// node is a single trie node. The root carries no letter of its own.
type node struct {
	children [26]*node
	terminal bool // a complete word ends here
}

// Dictionary wraps the trie root and a parallel exact-match set.
// Build-once, read-many; there is no mutation API.
type Dictionary struct {
	root  *node
	exact map[string]struct{}
}

// Build constructs a Dictionary from words. Each word is uppercased and
// inserted character by character. Any word containing a character outside
// A–Z (after uppercasing) is an error: a partially built trie would silently
// reject valid words, so callers should treat this as fatal at startup.
// An empty list yields a Dictionary that accepts nothing.
func Build(wordList []string) (*Dictionary, error) {
	d := &Dictionary{
		root:  &node{},
		exact: make(map[string]struct{}, len(wordList)),
	}
	for _, w := range wordList {
		w = strings.ToUpper(w)
		cur := d.root
		for i := 0; i < len(w); i++ {
			j := int(w[i] - 'A')
			if j < 0 || j > 25 {
				return nil, fmt.Errorf("dict: word %q contains non-alphabetic character %q", w, w[i])
			}
			if cur.children[j] == nil {
				cur.children[j] = &node{}
			}
			cur = cur.children[j]
		}
		cur.terminal = true
		d.exact[w] = struct{}{}
	}
	return d, nil
}

// IsWord reports whether candidate is an exact dictionary word,
// case-insensitively.
func (d *Dictionary) IsWord(candidate string) bool {
	_, ok := d.exact[strings.ToUpper(candidate)]
	return ok
}

// IsPrefix reports whether some dictionary word begins with candidate
// (a word counts as a prefix of itself). A false result means a search
// branch built on candidate can be abandoned.
func (d *Dictionary) IsPrefix(candidate string) bool {
	return d.walk(strings.ToUpper(candidate)) != nil
}

// walk descends the trie along s and returns the node reached, or nil if
// the path falls off the trie or s contains a non-letter.
func (d *Dictionary) walk(s string) *node {
	cur := d.root
	for i := 0; i < len(s); i++ {
		j := int(s[i] - 'A')
		if j < 0 || j > 25 {
			return nil
		}
		cur = cur.children[j]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.exact)
}
