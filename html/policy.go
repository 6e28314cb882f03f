package html

import (
	"github.com/purehtml/purehtml/css"
	"github.com/purehtml/purehtml/urlpolicy"
)

// Policy describes what survives sanitization: which tags, which attributes
// on them, how URL-valued attributes are filtered, and which CSS schema
// gates style attributes.
type Policy struct {
	// Tags maps an allowed tag name to its allowed attribute names.
	Tags map[string]map[string]bool
	// GlobalAttributes are allowed on every allowed tag.
	GlobalAttributes map[string]bool
	// URLAttributes names the attributes whose values are URLs and must
	// pass the URL policy.
	URLAttributes map[string]bool
	// URLs filters URL attribute values and url(...) values inside style
	// attributes. A nil policy rejects every URL.
	URLs urlpolicy.Policy
	// Styles gates style attribute declarations. A nil schema drops the
	// style attribute entirely.
	Styles *css.Schema
}

func attrSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// DefaultPolicy returns a policy over common formatting markup: the CSS
// default schema on style attributes and http/https/mailto URLs.
func DefaultPolicy() *Policy {
	none := attrSet()
	return &Policy{
		Tags: map[string]map[string]bool{
			"a":          attrSet("href"),
			"abbr":       none,
			"b":          none,
			"blockquote": attrSet("cite"),
			"br":         none,
			"caption":    none,
			"code":       none,
			"dd":         none,
			"div":        none,
			"dl":         none,
			"dt":         none,
			"em":         none,
			"h1":         none,
			"h2":         none,
			"h3":         none,
			"h4":         none,
			"h5":         none,
			"h6":         none,
			"hr":         none,
			"i":          none,
			"img":        attrSet("src", "alt", "width", "height"),
			"li":         none,
			"ol":         none,
			"p":          none,
			"pre":        none,
			"q":          attrSet("cite"),
			"s":          none,
			"small":      none,
			"span":       none,
			"strong":     none,
			"sub":        none,
			"sup":        none,
			"table":      none,
			"tbody":      none,
			"td":         attrSet("colspan", "rowspan"),
			"tfoot":      none,
			"th":         attrSet("colspan", "rowspan"),
			"thead":      none,
			"tr":         none,
			"u":          none,
			"ul":         none,
		},
		GlobalAttributes: attrSet("style", "title", "dir", "lang"),
		URLAttributes:    attrSet("href", "src", "cite"),
		URLs:             urlpolicy.AllowSchemes("http", "https", "mailto"),
		Styles:           css.Default,
	}
}

// voidElements cannot have children and need no end tag.
// HTML5 §13.1.2 Elements.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements hold raw text content that must be discarded wholesale
// when the element is not allowed; tokenizing it as markup would leak
// fragments of it as text. HTML5 §13.2.5.4.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
	"xmp": true, "noembed": true, "noframes": true,
}
