// Package entity decodes HTML character references.
// It follows the HTML5 character reference algorithm, adapted to tolerate
// the broken forms found in real documents (missing semicolons, embedded
// '=', numeric overflow) without ever failing.
//
// Spec references:
// - HTML5 §13.2.5.72 Character reference state: https://html.spec.whatwg.org/multipage/parsing.html#character-reference-state
// - HTML5 named character references: https://html.spec.whatwg.org/multipage/named-characters.html
package entity

// Trie is a prefix tree over the named character reference catalog.
// A branch node exists for every name prefix and a terminal node for every
// full name. The tree is built once at package init and never mutated, so
// it is safe to share across goroutines.
type Trie struct {
	children map[byte]*Trie
	value    uint32
	terminal bool
}

// newTrie builds a trie from a name -> packed code unit pair map.
// Names are case-sensitive; callers that want case folding retry the walk
// themselves (see decode.go).
func newTrie(entries map[string]uint32) *Trie {
	root := &Trie{}
	for name, value := range entries {
		node := root
		for i := 0; i < len(name); i++ {
			c := name[i]
			if node.children == nil {
				node.children = make(map[byte]*Trie)
			}
			child := node.children[c]
			if child == nil {
				child = &Trie{}
				node.children[c] = child
			}
			node = child
		}
		node.terminal = true
		node.value = value
	}
	return root
}

// Lookup returns the child node reached over c, or nil.
func (t *Trie) Lookup(c byte) *Trie {
	if t.children == nil {
		return nil
	}
	return t.children[c]
}

// Terminal reports whether the node ends a registered name.
func (t *Trie) Terminal() bool {
	return t.terminal
}

// Value returns the packed code unit pair for a terminal node.
// The high 16 bits hold the first UTF-16 unit; a zero low half means the
// reference decodes to that single unit.
func (t *Trie) Value() uint32 {
	return t.value
}

// catalogTrie is the process-wide trie over the HTML5 catalog.
var catalogTrie = newTrie(catalog)
