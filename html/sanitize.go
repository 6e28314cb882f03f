package html

import (
	"strings"

	"github.com/purehtml/purehtml/css"
	"github.com/purehtml/purehtml/log"
)

// Sanitize re-serializes the fragment keeping only what the policy allows.
//
// Tags not in the policy are removed; their children are kept inline,
// except for raw-text elements (script, style, ...) whose content is
// discarded wholesale. Comments, doctypes, and processing instructions are
// dropped. Tree repair is limited to dropping unmatched end tags, closing
// the elements still open inside a matched end tag, and closing still-open
// tags at end of input, so the output is always balanced.
func Sanitize(fragment string, p *Policy) string {
	t := NewTokenizer(fragment)
	var b strings.Builder
	b.Grow(len(fragment))
	var open []string

	for {
		tok, ok := t.Next()
		if !ok {
			break
		}

		switch tok.Type {
		case StartTagToken, SelfClosingTagToken:
			name := tok.Data
			attrs, allowed := p.Tags[name]
			if !allowed {
				log.Debugf("html: removing tag %q", name)
				if rawTextElements[name] && tok.Type == StartTagToken {
					t.RawTextUntil(name)
				}
				continue
			}

			b.WriteByte('<')
			b.WriteString(name)
			writeAttributes(&b, p, name, attrs, tok.Attributes)
			b.WriteByte('>')

			if voidElements[name] {
				continue
			}
			if tok.Type == SelfClosingTagToken {
				// Normalize a self-closed non-void element to a balanced
				// pair.
				b.WriteString("</" + name + ">")
				continue
			}
			open = append(open, name)

		case EndTagToken:
			idx := -1
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] == tok.Data {
					idx = i
					break
				}
			}
			if idx < 0 {
				// Unmatched end tag; drop it.
				continue
			}
			for i := len(open) - 1; i >= idx; i-- {
				b.WriteString("</" + open[i] + ">")
			}
			open = open[:idx]

		case TextToken:
			b.WriteString(escapeText(tok.Data))

		case CommentToken, DoctypeToken, ErrorToken:
			// Dropped.
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</" + open[i] + ">")
	}
	return b.String()
}

// writeAttributes emits the allowed attributes of one tag, routing style
// attributes through the CSS sanitizer and URL attributes through the URL
// policy. Attributes that come back empty or rejected are omitted.
func writeAttributes(b *strings.Builder, p *Policy, tag string, allowed map[string]bool, attrs []Attribute) {
	for _, attr := range attrs {
		if !allowed[attr.Name] && !p.GlobalAttributes[attr.Name] {
			continue
		}
		value := attr.Value

		switch {
		case attr.Name == "style":
			if p.Styles == nil {
				continue
			}
			value = css.SanitizeDeclarations(value, p.Styles,
				func(_, a, u string) (string, bool) {
					if p.URLs == nil {
						return "", false
					}
					return p.URLs(tag, a, u)
				})
			if value == "" {
				continue
			}
		case p.URLAttributes[attr.Name]:
			if p.URLs == nil {
				continue
			}
			cleaned, ok := p.URLs(tag, attr.Name, value)
			if !ok {
				log.Debugf("html: dropping %s attribute on %q", attr.Name, tag)
				continue
			}
			value = cleaned
		}

		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(value))
		b.WriteByte('"')
	}
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
