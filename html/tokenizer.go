// Package html provides HTML fragment tokenization and policy-driven
// sanitization.
//
// Spec references:
// - HTML5 §13.2.5 Tokenization: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
// - HTML5 §13.2.5.72 Character reference state: https://html.spec.whatwg.org/multipage/parsing.html#character-reference-state
//
// This is a simplified tokenizer, not a conforming HTML5 parser: it
// recognizes tags, attributes, text, comments, and doctypes, and decodes
// character references in text and attribute values. Tree construction is
// out of scope; the sanitizer re-serializes the token stream directly.
package html

import (
	"strings"
	"unicode"

	"github.com/purehtml/purehtml/entity"
)

// TokenType represents the type of an HTML token.
type TokenType int

const (
	// ErrorToken indicates an error occurred during tokenization
	ErrorToken TokenType = iota
	// TextToken represents text content
	TextToken
	// StartTagToken represents an opening tag (e.g., <div>)
	StartTagToken
	// EndTagToken represents a closing tag (e.g., </div>)
	EndTagToken
	// SelfClosingTagToken represents a self-closing tag (e.g., <br />)
	SelfClosingTagToken
	// CommentToken represents an HTML comment
	CommentToken
	// DoctypeToken represents a DOCTYPE declaration
	DoctypeToken
)

// Attribute is one name/value pair of a tag. Values are entity-decoded.
type Attribute struct {
	Name  string
	Value string
}

// Token represents an HTML token. Attribute order is preserved so the
// sanitizer can re-serialize deterministically.
type Token struct {
	Type       TokenType
	Data       string // Tag name or text content
	Attributes []Attribute
}

// Tokenizer tokenizes HTML input.
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer creates a new HTML tokenizer.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token from the input.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	// HTML5 §13.2.5.1 Data state
	if t.input[t.pos] != '<' {
		return t.readText(), true
	}

	t.pos++ // consume '<'

	if t.pos >= len(t.input) {
		return Token{Type: TextToken, Data: "<"}, true
	}

	// HTML5 §13.2.5.6 Tag open state
	switch t.input[t.pos] {
	case '!':
		t.pos++
		if strings.HasPrefix(t.input[t.pos:], "--") {
			return t.readComment(), true
		}
		if strings.HasPrefix(strings.ToUpper(t.input[t.pos:]), "DOCTYPE") {
			return t.readDoctype(), true
		}
		// Bogus markup declaration; consume it like a comment so its
		// contents cannot leak out as text.
		return t.readBogusComment(), true

	case '/':
		t.pos++
		return t.readEndTag(), true

	case '?':
		// Processing instructions become bogus comments, HTML5 §13.2.5.6.
		return t.readBogusComment(), true

	default:
		if !isTagNameStart(t.input[t.pos]) {
			// A '<' that does not open a tag is text.
			return Token{Type: TextToken, Data: "<"}, true
		}
		return t.readStartTag(), true
	}
}

// RawTextUntil consumes input up to (not including) the case-insensitive
// end tag "</name" and returns it undecoded. Used for elements like script
// and style whose content is raw text, HTML5 §13.2.5.4.
func (t *Tokenizer) RawTextUntil(name string) string {
	marker := "</" + strings.ToLower(name)
	lower := strings.ToLower(t.input[t.pos:])
	idx := strings.Index(lower, marker)
	if idx < 0 {
		raw := t.input[t.pos:]
		t.pos = len(t.input)
		return raw
	}
	raw := t.input[t.pos : t.pos+idx]
	t.pos += idx
	return raw
}

// readText reads text content until the next '<' and decodes character
// references. HTML5 §13.2.5.1 Data state.
func (t *Tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	return Token{
		Type: TextToken,
		Data: entity.DecodeString(t.input[start:t.pos]),
	}
}

// readStartTag reads a start tag. HTML5 §13.2.5.8 Tag name state.
func (t *Tokenizer) readStartTag() Token {
	tagName := t.readTagName()
	attrs := t.readAttributes()

	selfClosing := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		selfClosing = true
		t.pos++
	}
	if t.pos < len(t.input) && t.input[t.pos] == '>' {
		t.pos++
	}

	tokenType := StartTagToken
	if selfClosing {
		tokenType = SelfClosingTagToken
	}
	return Token{
		Type:       tokenType,
		Data:       strings.ToLower(tagName),
		Attributes: attrs,
	}
}

// readEndTag reads an end tag. HTML5 §13.2.5.9 End tag open state.
func (t *Tokenizer) readEndTag() Token {
	tagName := t.readTagName()
	for t.pos < len(t.input) && t.input[t.pos] != '>' {
		t.pos++
	}
	if t.pos < len(t.input) {
		t.pos++
	}
	return Token{Type: EndTagToken, Data: strings.ToLower(tagName)}
}

// readTagName reads a tag name.
func (t *Tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '>' || c == '/' || unicode.IsSpace(rune(c)) {
			break
		}
		t.pos++
	}
	return t.input[start:t.pos]
}

// readAttributes reads tag attributes in document order.
// HTML5 §13.2.5.32 Before attribute name state.
func (t *Tokenizer) readAttributes() []Attribute {
	var attrs []Attribute

	for t.pos < len(t.input) {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}
		c := t.input[t.pos]
		if c == '>' || c == '/' {
			break
		}

		name := t.readAttrName()
		if name == "" {
			break
		}

		t.skipWhitespace()

		value := ""
		if t.pos < len(t.input) && t.input[t.pos] == '=' {
			t.pos++
			t.skipWhitespace()
			value = t.readAttrValue()
		}

		attrs = append(attrs, Attribute{
			Name:  strings.ToLower(name),
			Value: entity.DecodeString(value),
		})
	}

	return attrs
}

// readAttrName reads an attribute name.
func (t *Tokenizer) readAttrName() string {
	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '=' || c == '>' || c == '/' || unicode.IsSpace(rune(c)) {
			break
		}
		t.pos++
	}
	return t.input[start:t.pos]
}

// readAttrValue reads an attribute value.
// HTML5 §13.2.5.36 Attribute value states.
func (t *Tokenizer) readAttrValue() string {
	if t.pos >= len(t.input) {
		return ""
	}

	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		value := t.input[start:t.pos]
		if t.pos < len(t.input) {
			t.pos++
		}
		return value
	}

	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if unicode.IsSpace(rune(c)) || c == '>' {
			break
		}
		t.pos++
	}
	return t.input[start:t.pos]
}

// readComment reads an HTML comment. HTML5 §13.2.5.43 Comment state.
func (t *Tokenizer) readComment() Token {
	t.pos += 2 // consume '--'
	start := t.pos

	for t.pos < len(t.input)-2 {
		if t.input[t.pos] == '-' && t.input[t.pos+1] == '-' && t.input[t.pos+2] == '>' {
			data := t.input[start:t.pos]
			t.pos += 3
			return Token{Type: CommentToken, Data: data}
		}
		t.pos++
	}

	data := t.input[start:]
	t.pos = len(t.input)
	return Token{Type: CommentToken, Data: data}
}

// readBogusComment consumes up to '>' and yields a comment token.
// HTML5 §13.2.5.41 Bogus comment state.
func (t *Tokenizer) readBogusComment() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '>' {
		t.pos++
	}
	data := t.input[start:t.pos]
	if t.pos < len(t.input) {
		t.pos++
	}
	return Token{Type: CommentToken, Data: data}
}

// readDoctype reads a DOCTYPE declaration.
func (t *Tokenizer) readDoctype() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '>' {
		t.pos++
	}
	data := t.input[start:t.pos]
	if t.pos < len(t.input) {
		t.pos++
	}
	return Token{Type: DoctypeToken, Data: data}
}

// skipWhitespace skips whitespace characters.
func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func isTagNameStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
