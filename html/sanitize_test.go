package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sanitizeDefault(fragment string) string {
	return Sanitize(fragment, DefaultPolicy())
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello", "hello"},
		{"allowed tag", "<p>hi</p>", "<p>hi</p>"},
		{"uppercase folds", "<P>hi</P>", "<p>hi</p>"},
		{"text escaped", "a < b & c > d", "a &lt; b &amp; c &gt; d"},
		{"entities normalized", "a &lt; b", "a &lt; b"},
		{"disallowed tag unwrapped", "<form><p>hi</p></form>", "<p>hi</p>"},
		{"script content dropped", "<p>a</p><script>alert(1)</script><p>b</p>", "<p>a</p><p>b</p>"},
		{"style content dropped", "<style>p{color:red}</style>x", "x"},
		{"event handler dropped", `<p onclick="evil()">hi</p>`, "<p>hi</p>"},
		{"comment dropped", "a<!-- secret -->b", "ab"},
		{"doctype dropped", "<!DOCTYPE html><p>x</p>", "<p>x</p>"},
		{"processing instruction dropped", "<?php evil(); ?>x", "x"},
		{"void element", "a<br>b", "a<br>b"},
		{"self closing normalized", "<p/>x", "<p></p>x"},
		{"unclosed tags closed", "<div><p>x", "<div><p>x</p></div>"},
		{"unmatched end tag dropped", "</div>x", "x"},
		{"interleaved tags rebalanced", "<b>x<i>y</b>z</i>", "<b>x<i>y</i></b>z"},
		{"good link kept", `<a href="http://example.com/">x</a>`, `<a href="http://example.com/">x</a>`},
		{"javascript link dropped", `<a href="javascript:alert(1)">x</a>`, "<a>x</a>"},
		{"entity-encoded scheme still dropped", `<a href="javascript&#58;alert(1)">x</a>`, "<a>x</a>"},
		{"mailto kept", `<a href="mailto:a@b.c">x</a>`, `<a href="mailto:a@b.c">x</a>`},
		{"img src filtered", `<img src="data:image/png;base64,x" alt="y">`, `<img alt="y">`},
		{"style attribute sanitized", `<p style="color: red; position: fixed">x</p>`, `<p style="color:red">x</p>`},
		{"style attribute fully dropped", `<p style="position: fixed">x</p>`, "<p>x</p>"},
		{"style url policy applies", `<p style="background: url(javascript:alert(1))">x</p>`, "<p>x</p>"},
		{"attribute value escaped", `<p title="a<b>c">x</p>`, `<p title="a&lt;b&gt;c">x</p>`},
		{"unknown attribute dropped", `<p data-x="1">x</p>`, "<p>x</p>"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sanitizeDefault(tt.input))
		})
	}
}

// TestSanitizeIdempotent re-runs the sanitizer over its own output.
func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<p>hi</p>",
		"a < b & c",
		`<a href="http://example.com/?a=1&b=2">x</a>`,
		"<b>x<i>y</b>z</i>",
		`<p style="color: red">x</p>`,
		"<div><p>x",
		"&amp;&lt;&gt;",
	}
	for _, input := range inputs {
		once := sanitizeDefault(input)
		twice := sanitizeDefault(once)
		require.Equal(t, once, twice, "input %q", input)
	}
}

// TestSanitizeNoScriptSinks feeds classic fragment payloads and checks no
// executable construct survives.
func TestSanitizeNoScriptSinks(t *testing.T) {
	inputs := []string{
		`<script>alert(1)</script>`,
		`<SCRIPT SRC=http://evil/x.js></SCRIPT>`,
		`<img src=x onerror=alert(1)>`,
		`<a href="jAvAsCrIpT:alert(1)">x</a>`,
		`<a href="java&#x73;cript:alert(1)">x</a>`,
		`<iframe src="http://evil/"></iframe>`,
		`<object data="x"></object>`,
		`<embed src="x">`,
		`<p style="width: expression(alert(1))">x</p>`,
		`<p style="background:url('javascript:alert(1)')">x</p>`,
		`<svg onload=alert(1)>`,
		`<math href="javascript:alert(1)">x</math>`,
		`<!--[if gte IE 4]><script>alert(1)</script><![endif]-->`,
	}
	for _, input := range inputs {
		out := strings.ToLower(sanitizeDefault(input))
		for _, sink := range []string{"<script", "javascript:", "onerror", "onload", "expression(", "<iframe", "<object", "<embed"} {
			require.NotContains(t, out, sink, "input %q gave %q", input, out)
		}
	}
}

func TestSanitizeCustomPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.Tags = map[string]map[string]bool{
		"b": attrSet(),
	}
	out := Sanitize("<b>x</b><p>y</p>", p)
	require.Equal(t, "<b>x</b>y", out)
}

func TestSanitizeNilURLPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.URLs = nil
	out := Sanitize(`<a href="http://example.com/">x</a>`, p)
	require.Equal(t, "<a>x</a>", out)
}
