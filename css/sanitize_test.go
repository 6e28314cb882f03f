package css

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purehtml/purehtml/urlpolicy"
)

var testURLs = urlpolicy.AllowSchemes("http", "https", "mailto")

func sanitize(raw string) string {
	return SanitizeDeclarations(raw, Default, testURLs)
}

func TestSanitizeDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple color", "color: red", "color:red"},
		{"uppercase folds", "COLOR: RED", "color:red"},
		{"hash color", "color: #A0B1C2", "color:#a0b1c2"},
		{"short hash color", "color: #fff", "color:#fff"},
		{"bad hash length dropped", "color: #ffff", ""},
		{"two declarations", "color: red; width: 10px", "color:red;width:10px"},
		{"script url drops declaration",
			"color: red; background: url(javascript:alert(1))", "color:red"},
		{"font with string and family",
			`font: 10pt "Arial", sans-serif`, "font:10pt 'Arial' , sans-serif"},
		{"vendor prefixed radius", "-moz-border-radius: 5px", "-moz-border-radius:5px"},
		{"expression dropped", "width: expression(alert(1))", ""},
		{"rgb passthrough", "color: rgb(255, 0, 0)", "color:rgb(255 , 0 , 0)"},
		{"disallowed property", "position: fixed", ""},
		{"unknown unit dropped", "width: 10parsec", ""},
		{"negative margin allowed", "margin: -5px", "margin:-5px"},
		{"negative padding dropped", "padding: -5px", ""},
		{"allowed url survives",
			"background-image: url(http://example.com/a.png)",
			`background-image:url("http\3a //example.com/a.png")`},
		{"relative url survives",
			"background-image: url(/a.png)",
			`background-image:url("/a.png")`},
		{"url parens escaped",
			"background-image: url('http://example.com/a(1).png')",
			`background-image:url("http\3a //example.com/a%281%29.png")`},
		{"missing colon recovers", "color red; width: 10px", "width:10px"},
		{"stray at keyword dropped", "color: @import red", "color:red"},
		{"import declaration recovers", "@import url(evil.css); color: red", "color:red"},
		{"unterminated string poisons", "font-family: \"abc\ndef; color: red", "color:red"},
		{"unterminated url poisons", "background-image: url(abc", ""},
		{"empty input", "", ""},
		{"only whitespace", "  \t\n ", ""},
		{"gradient",
			"background-image: linear-gradient(to right, #fff, red)",
			"background-image:linear-gradient(to right , #fff , red)"},
		{"nested disallowed function dropped",
			"background-image: linear-gradient(expression(alert(1)), red)",
			"background-image:linear-gradient(, red)"},
		{"clip rect", "clip: rect(0, 10px, 10px, 0)", "clip:rect(0 , 10px , 10px , 0)"},
		{"quotes escaped in string",
			`font-family: "a'b"`, `font-family:'a\27 b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sanitize(tt.input))
		})
	}
}

// TestSanitizeIdempotent re-runs the sanitizer over its own output; a fixed
// point is what makes layered sanitization safe.
func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"color: red",
		"color: rgb(255, 0, 0)",
		`font: 10pt "Arial", sans-serif`,
		"background: url('http://a/b (1).png') no-repeat top left",
		"margin: -5px 10% 3em auto",
		"background-image: linear-gradient(to right, #fff, red)",
		`font-family: "a'b<c>"`,
		"color red; width: 10px",
		"width: expression(alert(1)); height: 10px",
		"clip: rect(0, 10px, 10px, 0); position: fixed",
	}
	for _, input := range inputs {
		once := sanitize(input)
		twice := sanitize(once)
		require.Equal(t, once, twice, "input %q", input)
	}
}

// TestSanitizeErasesDisallowedProperties checks that no declaration in the
// output names a property outside the schema.
func TestSanitizeErasesDisallowedProperties(t *testing.T) {
	allowed := make(map[string]bool)
	for _, name := range Default.AllowedProperties() {
		allowed[name] = true
	}

	inputs := []string{
		"position: fixed; color: red; behavior: url(x.htc)",
		"-moz-binding: url(evil.xml); width: 10px",
		"zoom: 2; -webkit-margin-start: 4px; margin: 4px",
	}
	for _, input := range inputs {
		out := sanitize(input)
		for _, decl := range strings.Split(out, ";") {
			if decl == "" {
				continue
			}
			name := decl[:strings.Index(decl, ":")]
			base := name
			for _, prefix := range vendorPrefixes {
				if strings.HasPrefix(name, prefix) {
					base = name[len(prefix):]
					break
				}
			}
			require.True(t, allowed[name] || allowed[base], "property %q leaked from %q", name, input)
		}
	}
}

// TestSanitizeNoScriptSinks feeds hostile inputs and checks that none of
// the classic CSS script sinks survive under the default schema.
func TestSanitizeNoScriptSinks(t *testing.T) {
	inputs := []string{
		"background: url(javascript:alert(1))",
		"background: url('javascript:alert(1)')",
		"background: url(\"JAVASCRIPT:alert(1)\")",
		"background: url(vbscript:msgbox(1))",
		"background: url(data:text/html;base64,PHNjcmlwdD4=)",
		"width: expression(alert(1))",
		"width: EXPRESSION(alert(1))",
		"behavior: url(xss.htc)",
		"-moz-binding: url(http://evil/x.xml#x)",
		"@import 'evil.css'; color: red",
		"@import url(evil.css)",
		"background: url(java\\73cript:alert(1))",
		"background: url('java\nscript:alert(1)')",
		"font-family: expression(alert(1))",
		"color: expression\\28 alert\\28 1\\29\\29",
		"background-image: image(javascript:alert(1))",
	}
	for _, input := range inputs {
		out := sanitize(input)
		lower := strings.ToLower(out)
		for _, sink := range []string{"javascript:", "vbscript:", "data:", "expression(", "behavior:", "@import", "binding"} {
			require.NotContains(t, lower, sink, "input %q gave %q", input, out)
		}
	}
}

// TestSanitizeURLSoundness re-runs every url(...) argument of the output
// through the same policy and expects it back unchanged.
func TestSanitizeURLSoundness(t *testing.T) {
	inputs := []string{
		"background-image: url(http://example.com/a.png)",
		"background-image: url('https://example.com/a (1).png')",
		"background-image: url(/relative/path.png)",
		"background-image: url(//example.com/proto-relative.png)",
		"list-style-image: url(image.png)",
	}
	for _, input := range inputs {
		out := sanitize(input)
		for _, arg := range extractURLArgs(t, out) {
			again, ok := testURLs("", "style", arg)
			require.True(t, ok, "url %q from %q re-rejected", arg, out)
			require.Equal(t, arg, again, "url %q from %q not a fixed point", arg, out)
		}
	}
}

func extractURLArgs(t *testing.T, out string) []string {
	t.Helper()
	var args []string
	for _, tok := range Tokenize(out) {
		if tok.Type == URLToken {
			args = append(args, tok.Value)
		}
	}
	return args
}

func TestSanitizeCustomSchema(t *testing.T) {
	s, err := WithProperties([]string{"color"})
	require.NoError(t, err)

	out := SanitizeDeclarations("color: red; width: 10px", s, testURLs)
	require.Equal(t, "color:red", out)
}

func TestSanitizeNilURLPolicyPoisons(t *testing.T) {
	out := SanitizeDeclarations(
		"color: red; background-image: url(http://example.com/a.png)",
		Default, nil)
	require.Equal(t, "color:red", out)
}

func TestUnreservedWords(t *testing.T) {
	require.Equal(t, "font-family:arial , sans-serif",
		sanitize("font-family: Arial, sans-serif"))
	// Words with fetch or script semantics never pass the free-word gate.
	require.Equal(t, "", sanitize("font-family: expression"))
	require.Equal(t, "", sanitize("font-family: url"))
}

func TestUnicodeRangeGate(t *testing.T) {
	s, err := WithProperties([]string{"unicode-range"})
	require.NoError(t, err)

	out := SanitizeDeclarations("unicode-range: U+0400-04FF", s, nil)
	require.Equal(t, "unicode-range:u+0400-04ff", out)

	// The default schema has no property admitting ranges.
	require.Equal(t, "", sanitize("unicode-range: U+0400-04FF"))
}
