package entity

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// maxCodePoint is the largest Unicode scalar value a numeric reference may
// name. Anything past it decodes to U+FFFD.
const maxCodePoint = 0x10FFFF

// replacementChar is emitted for overflowing numeric references.
const replacementChar = 0xFFFD

// DecodeAt decodes the single character reference starting at s[offset] and
// returns the next scan position together with one or two UTF-16 code units
// (second == 0 means a single unit).
//
// The decoder never fails: every input yields either the decoded character
// or a literal '&' that advances the cursor, so an outer tokenizer always
// makes progress. Only s[offset:limit] is examined.
//
// HTML5 §13.2.5.72 Character reference state, with two deliberate
// departures for sanitizer use:
//   - a reference interrupted by '=' is left as a literal '&', because
//     inserting the missing semicolon would corrupt URL-like attribute
//     values ("&lt=x" stays "&lt=x");
//   - broken references with a missing semicolon still decode when the name
//     is registered ("&amp x" decodes the "&amp").
func DecodeAt(s string, offset, limit int) (next int, first, second uint16) {
	if limit > len(s) {
		limit = len(s)
	}
	if offset >= limit {
		return offset + 1, '&', 0
	}
	if s[offset] != '&' {
		r, size := utf8.DecodeRuneInString(s[offset:limit])
		f, sec := encodeUnits(r)
		return offset + size, f, sec
	}

	// Scan for the end of the reference. The window is bounded by the
	// longest registered name plus the '#' of numeric forms.
	end, tail := -1, -1
	i := offset + 1
	stop := offset + 2 + longestName
	if stop > limit {
		stop = limit
	}
scan:
	for ; i < stop; i++ {
		switch c := s[i]; {
		case c == ';':
			end, tail = i, i+1
			break scan
		case c == '=':
			return offset + 1, '&', 0
		case isLetterOrDigit(c) || c == '#':
			// still inside the reference
		default:
			end, tail = i, i
			break scan
		}
	}
	if end < 0 {
		// Ran off the window without a terminator: a broken reference
		// pinned to wherever the scan stopped.
		end, tail = i, i
	}
	if end-offset < 2 {
		return offset + 1, '&', 0
	}

	if s[offset+1] == '#' {
		return decodeNumeric(s, offset, end, tail)
	}
	return decodeNamed(s, offset, end, tail)
}

// decodeNumeric handles &#DDD; and &#xHHH; forms between offset and end.
// HTML5 §13.2.5.74–80 numeric character reference states.
func decodeNumeric(s string, offset, end, tail int) (next int, first, second uint16) {
	start := offset + 2
	base := 10
	if start < end && (s[start] == 'x' || s[start] == 'X') {
		base = 16
		start++
	}
	if start >= end {
		return offset + 1, '&', 0
	}

	cp := 0
	overflow := false
	for i := start; i < end; i++ {
		d := digitValue(s[i], base)
		if d < 0 {
			return offset + 1, '&', 0
		}
		if !overflow {
			cp = cp*base + d
			if cp > maxCodePoint {
				overflow = true
			}
		}
	}
	if overflow {
		return tail, replacementChar, 0
	}
	f, sec := encodeUnits(rune(cp))
	return tail, f, sec
}

// decodeNamed walks the trie over s[offset+1:end], first with the exact
// characters, then with upper-case ASCII folded to lower case. The second
// pass keeps "&AMP;" and friends working while the verbatim registration of
// the historical upper-case aliases keeps them unambiguous.
func decodeNamed(s string, offset, end, tail int) (next int, first, second uint16) {
	node := catalogTrie
	for i := offset + 1; i < end && node != nil; i++ {
		node = node.Lookup(s[i])
	}
	if node == nil || !node.Terminal() {
		node = catalogTrie
		for i := offset + 1; i < end && node != nil; i++ {
			c := s[i]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			node = node.Lookup(c)
		}
	}
	if node == nil || !node.Terminal() {
		return offset + 1, '&', 0
	}
	v := node.Value()
	return tail, uint16(v >> 16), uint16(v & 0xFFFF)
}

// DecodeString decodes every character reference in s.
// This is the convenience form used by HTML tokenization; DecodeAt is the
// offset-addressable primitive.
func DecodeString(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:amp])
	for i := amp; i < len(s); {
		next, first, second := DecodeAt(s, i, len(s))
		switch {
		case second == 0:
			b.WriteRune(rune(first))
		case utf16.IsSurrogate(rune(first)):
			b.WriteRune(utf16.DecodeRune(rune(first), rune(second)))
		default:
			// Two-codepoint reference such as &NotEqualTilde;.
			b.WriteRune(rune(first))
			b.WriteRune(rune(second))
		}
		i = next
	}
	return b.String()
}

// encodeUnits splits a code point into UTF-16 code units.
// BMP scalars yield a single unit; supplementary scalars a surrogate pair.
func encodeUnits(r rune) (first, second uint16) {
	if r < 0x10000 {
		return uint16(r), 0
	}
	hi, lo := utf16.EncodeRune(r)
	return uint16(hi), uint16(lo)
}

func isLetterOrDigit(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func digitValue(c byte, base int) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case base == 16 && 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case base == 16 && 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
