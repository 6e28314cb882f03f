// Package urlpolicy classifies URLs by scheme against an allow-list and
// normalizes characters that can disguise a scheme separator.
//
// Classification happens over the raw bytes, before any parsing or
// normalization, because a URL parser that "fixes" input first reintroduces
// exactly the confusable-colon bypasses this filter exists to close.
//
// Spec references:
// - URL Standard §4.2 URL writing: https://url.spec.whatwg.org/#url-writing
// - HTML5 §2.5 URLs: https://html.spec.whatwg.org/multipage/urls-and-fetching.html
package urlpolicy

import (
	"strings"
)

// Policy decides whether a URL may survive sanitization, given the element
// and attribute it appears on. It returns the (possibly rewritten) URL and
// whether it is admitted; a rejection drops the surrounding attribute or
// url(...) value.
type Policy func(element, attribute, url string) (string, bool)

// AllowSchemes returns a Policy admitting absolute URLs with one of the
// given schemes (lowercase, without the ':'), all path-relative URLs, and
// protocol-relative URLs only when both http and https are allowed.
func AllowSchemes(schemes ...string) Policy {
	allowed := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		allowed[strings.ToLower(s)] = true
	}
	return func(_, _, url string) (string, bool) {
		return FilterURL(url, allowed)
	}
}

// FilterURL classifies url against the allowed scheme set and, when
// admitted, percent-encodes the colon confusables. It returns the
// normalized URL and whether it was admitted.
func FilterURL(url string, allowed map[string]bool) (string, bool) {
	for i := 0; i < len(url); i++ {
		switch url[i] {
		case '/', '?', '#':
			// No scheme. "//host/..." inherits the embedding document's
			// scheme, which is only predictable when the policy covers
			// both of the schemes a document is normally served over.
			if i == 0 && strings.HasPrefix(url, "//") {
				if allowed["http"] && allowed["https"] {
					return encodeConfusables(url), true
				}
				return "", false
			}
			return encodeConfusables(url), true
		case ':':
			if allowed[strings.ToLower(url[:i])] {
				return encodeConfusables(url), true
			}
			return "", false
		}
	}
	// No special character at all: an opaque relative reference.
	return encodeConfusables(url), true
}

// confusableEncoder percent-encodes '(' and ')' (which terminate a CSS
// url(...) token) and the characters renderers display like a colon:
// U+0589 ARMENIAN FULL STOP, U+05C3 HEBREW PUNCTUATION SOF PASUQ,
// U+2236 RATIO, and U+FF1A FULLWIDTH COLON.
var confusableEncoder = strings.NewReplacer(
	"(", "%28",
	")", "%29",
	"։", "%D6%89",
	"׃", "%D7%83",
	"∶", "%E2%88%B6",
	"：", "%EF%BC%9A",
)

func encodeConfusables(url string) string {
	return confusableEncoder.Replace(url)
}
