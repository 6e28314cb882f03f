package css

import (
	"fmt"
	"strings"

	"github.com/purehtml/purehtml/log"
	"github.com/purehtml/purehtml/urlpolicy"
)

// PropertyHandler receives the value events of a declaration block. The
// grammar driver guarantees StartProperty/EndProperty and
// StartFunction/EndFunction arrive strictly paired and properly nested.
type PropertyHandler interface {
	StartProperty(name string)
	EndProperty()
	StartFunction(name string)
	EndFunction(name string)
	URL(value string)
	Identifier(value string)
	Hash(value string)
	Quantity(value string)
	QuotedString(value string)
	UnicodeRange(value string)
	Punctuation(value string)
	// Malformed reports a broken string or url token inside the current
	// property's value.
	Malformed(value string)
}

// ParseDeclarations splits raw into property/value runs and drives h over
// each value.
//
// Malformed declarations (a missing ':', stray braces) are skipped with
// local recovery: the driver scans to the next ';' at bracket depth zero, or
// past the bracket closer that drops below the starting depth, and resumes.
// Input pathologies never propagate as errors.
func ParseDeclarations(raw string, h PropertyHandler) {
	it := NewTokenIterator(raw)
	for it.HasNextAfterSpace() {
		if it.Type() != IdentToken {
			log.Debugf("css: skipping malformed declaration at %q", it.Token())
			recoverDeclaration(it)
			continue
		}
		name := it.Next().Value
		if !it.HasNextAfterSpace() || it.Type() != ColonToken {
			log.Debugf("css: property %q missing ':'", name)
			recoverDeclaration(it)
			continue
		}
		it.Advance()

		h.StartProperty(name)
		parseValue(it, h)
		h.EndProperty()

		if it.HasNext() && it.Type() == SemicolonToken {
			it.Advance()
		}
	}
}

// parseValue dispatches value tokens to the handler until the declaration
// ends. Function calls recurse over a spliced sub-iterator so the handler
// sees balanced Start/EndFunction events whatever the input looked like.
func parseValue(it *TokenIterator, h PropertyHandler) {
	for it.HasNext() {
		switch it.Type() {
		case SemicolonToken:
			return

		case WhitespaceToken:
			it.Advance()

		case FunctionToken:
			name := it.Next().Value
			h.StartFunction(name)
			parseValue(it.SpliceToEnd(), h)
			h.EndFunction(name)

		case LeftParenToken, LeftCurlyToken, LeftSquareToken:
			// A bare bracket group has no meaning in any admitted value;
			// skip the whole group to keep the event stream balanced.
			it.Advance()
			it.SpliceToEnd()

		case URLToken:
			h.URL(it.Next().Value)

		case BadStringToken, BadURLToken:
			h.Malformed(it.Next().Value)

		case IdentToken:
			h.Identifier(it.Next().Value)

		case HashIDToken, HashUnrestrictedToken:
			h.Hash(it.Next().Value)

		case NumberToken, DimensionToken, PercentageToken:
			h.Quantity(it.Next().Value)

		case StringToken:
			h.QuotedString(it.Next().Value)

		case UnicodeRangeToken:
			h.UnicodeRange(it.Next().Value)

		case CommaToken, ColonToken, DelimToken:
			h.Punctuation(it.Next().Value)

		default:
			// AT, DOT_IDENT, MATCH, COLUMN, BAD_DIMENSION, stray closers:
			// nothing admits these.
			it.Advance()
		}
	}
}

// recoverDeclaration implements the error recovery of malformed
// declarations: consume up to and including the next ';' at the starting
// bracket depth, or the bracket closer that drops below it.
func recoverDeclaration(it *TokenIterator) {
	depth := 0
	for it.HasNext() {
		switch it.Next().Type {
		case SemicolonToken:
			if depth <= 0 {
				return
			}
		case FunctionToken, LeftParenToken, LeftCurlyToken, LeftSquareToken:
			depth++
		case RightParenToken, RightCurlyToken, RightSquareToken:
			depth--
			if depth < 0 {
				return
			}
		}
	}
}

// sanitizer is the PropertyHandler that rebuilds a declaration block out of
// the admitted tokens. One frame per function nesting level tracks which
// descriptor gates the current tokens and whether the frame emits at all.
type sanitizer struct {
	schema  *Schema
	urls    urlpolicy.Policy
	element string

	stack    []frame
	decls    []string
	name     string
	tokens   []string
	poisoned bool
}

type frame struct {
	prop *Property
	emit bool
}

// SanitizeDeclarations sanitizes a style declaration block against the
// schema and URL policy. The result is always a syntactically valid
// (possibly empty) declaration block; nothing input-derived can make it
// fail.
func SanitizeDeclarations(raw string, schema *Schema, urls urlpolicy.Policy) string {
	h := &sanitizer{schema: schema, urls: urls}
	ParseDeclarations(raw, h)
	return strings.Join(h.decls, ";")
}

func (s *sanitizer) current() *Property {
	if len(s.stack) == 0 {
		return Disallowed
	}
	return s.stack[len(s.stack)-1].prop
}

func (s *sanitizer) push(token string) {
	s.tokens = append(s.tokens, token)
}

func (s *sanitizer) StartProperty(name string) {
	s.name = strings.ToLower(name)
	s.tokens = s.tokens[:0]
	s.poisoned = false
	s.stack = append(s.stack[:0], frame{prop: s.schema.ForKey(s.name), emit: true})
}

func (s *sanitizer) EndProperty() {
	if s.poisoned || len(s.tokens) == 0 {
		if s.poisoned {
			log.Debugf("css: dropping poisoned declaration %q", s.name)
		}
		return
	}
	s.decls = append(s.decls, s.name+":"+joinTokens(s.tokens))
}

func (s *sanitizer) StartFunction(name string) {
	d := s.current()
	if key, ok := d.FnKeys[name]; ok {
		s.stack = append(s.stack, frame{prop: s.schema.ForKey(key), emit: true})
		s.push(name)
		return
	}
	// The whole call is dropped: the Disallowed frame swallows its
	// arguments and EndFunction emits no closer.
	s.stack = append(s.stack, frame{prop: Disallowed, emit: false})
}

func (s *sanitizer) EndFunction(string) {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if top.emit {
		s.push(")")
	}
}

func (s *sanitizer) Identifier(value string) {
	d := s.current()
	if d.Literals[value] {
		s.push(value)
		return
	}
	if d.Bits&BitUnreservedWord != 0 && isUnreservedWord(value) {
		s.push(value)
	}
}

func (s *sanitizer) Hash(value string) {
	d := s.current()
	if d.Bits&BitHashValue == 0 {
		return
	}
	if len(value) != 4 && len(value) != 7 {
		return
	}
	for i := 1; i < len(value); i++ {
		if !isHex(value[i]) {
			return
		}
	}
	s.push(strings.ToLower(value))
}

func (s *sanitizer) Quantity(value string) {
	d := s.current()
	if d.Bits&BitQuantity == 0 {
		return
	}
	if strings.HasPrefix(value, "-") && d.Bits&BitNegative == 0 {
		return
	}
	unit := unitOf(value)
	if unit != "" && unit != "%" && !allowedUnits[unit] {
		log.Debugf("css: rejecting unknown unit in %q", value)
		return
	}
	s.push(value)
}

func (s *sanitizer) QuotedString(value string) {
	if s.current().Bits&BitString == 0 {
		return
	}
	s.push(quoteValue(value, '\''))
}

func (s *sanitizer) URL(value string) {
	d := s.current()
	if d.Bits&BitURL == 0 {
		return
	}
	if s.urls == nil {
		s.poisoned = true
		return
	}
	cleaned, ok := s.urls(s.element, "style", value)
	if !ok {
		log.Debugf("css: url rejected by policy in %q", s.name)
		s.poisoned = true
		return
	}
	s.push("url(" + quoteValue(cleaned, '"') + ")")
}

func (s *sanitizer) UnicodeRange(value string) {
	if s.current().Bits&BitUnicodeRange != 0 {
		s.push(value)
	}
}

func (s *sanitizer) Punctuation(value string) {
	if s.current().Literals[value] {
		s.push(value)
	}
}

func (s *sanitizer) Malformed(string) {
	s.poisoned = true
}

// joinTokens concatenates admitted tokens with a single separating space,
// except after an opening "name(" and before a ")". The rule is
// deterministic, keeps adjacent lexemes from fusing, and is stable under
// re-sanitization.
func joinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !strings.HasSuffix(tokens[i-1], "(") && tok != ")" {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// cssKeywordBlocklist are words that pass the unreserved-word shape but name
// constructs with script or fetch semantics in some engine.
var cssKeywordBlocklist = set(
	"url", "expression", "eval", "javascript", "vbscript", "behavior",
	"binding", "include-source", "accelerator",
)

// isUnreservedWord reports whether value is a free-form word an
// UnreservedWord descriptor may admit: ASCII letters, digits, and '-', not
// beginning with a digit or "--", and not on the blocklist.
func isUnreservedWord(value string) bool {
	if value == "" || cssKeywordBlocklist[value] {
		return false
	}
	if isDigit(value[0]) || strings.HasPrefix(value, "--") {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !('a' <= c && c <= 'z') && !isDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

// unitOf returns the unit suffix of a canonical numeric lexeme, "" for a
// plain number and "%" for a percentage.
func unitOf(value string) string {
	i := 0
	if i < len(value) && value[i] == '-' {
		i++
	}
	for i < len(value) && isDigit(value[i]) {
		i++
	}
	if i < len(value) && value[i] == '.' {
		i++
		for i < len(value) && isDigit(value[i]) {
			i++
		}
	}
	// An exponent marker only belongs to the number when digits follow;
	// otherwise it starts a unit such as "em" or "ex".
	if i < len(value) && value[i] == 'e' {
		j := i + 1
		if j < len(value) && value[j] == '-' {
			j++
		}
		if j < len(value) && isDigit(value[j]) {
			i = j
			for i < len(value) && isDigit(value[i]) {
				i++
			}
		}
	}
	return value[i:]
}

// quoteValue re-emits a decoded string or URL argument between quote
// characters, hex-escaping everything that could terminate the quote or the
// embedding document. ':', '(', ')', and '@' are escaped as well so that no
// scheme or call shape (javascript:, expression(, @import) can be spelled
// by a quoted value.
func quoteValue(s string, quote byte) string {
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\'', '"', '\\', '<', '>', '&', ':', '(', ')', '@', '\n', '\r', '\f':
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
