package urlpolicy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterURL(t *testing.T) {
	web := AllowSchemes("http", "https", "mailto")

	tests := []struct {
		name     string
		url      string
		admitted bool
		expected string
	}{
		{"http absolute", "http://example.com/a", true, "http://example.com/a"},
		{"https absolute", "https://example.com/a", true, "https://example.com/a"},
		{"mailto", "mailto:a@example.com", true, "mailto:a@example.com"},
		{"scheme case folded", "HTTP://EXAMPLE.COM", true, "HTTP://EXAMPLE.COM"},
		{"javascript rejected", "javascript:alert(1)", false, ""},
		{"data rejected", "data:text/html,x", false, ""},
		{"vbscript rejected", "vbscript:msgbox(1)", false, ""},
		{"path relative", "a/b.png", true, "a/b.png"},
		{"rooted path", "/a/b.png", true, "/a/b.png"},
		{"query only", "?q=1", true, "?q=1"},
		{"fragment only", "#top", true, "#top"},
		{"protocol relative", "//example.com/a", true, "//example.com/a"},
		{"opaque relative", "image.png", true, "image.png"},
		{"empty", "", true, ""},
		{"colon after slash is path", "/a:b", true, "/a:b"},
		{"colon after query is value", "?t=1:2", true, "?t=1:2"},
		{"parens encoded", "http://e/a(1).png", true, "http://e/a%281%29.png"},
		{"armenian full stop encoded", "/a։b", true, "/a%D6%89b"},
		{"sof pasuq encoded", "/a׃b", true, "/a%D7%83b"},
		{"ratio encoded", "/a∶b", true, "/a%E2%88%B6b"},
		{"fullwidth colon encoded", "/a：b", true, "/a%EF%BC%9Ab"},
		{"confusable colon does not make a scheme", "javascript∶alert(1)", true, "javascript%E2%88%B6alert%281%29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := web("a", "href", tt.url)
			require.Equal(t, tt.admitted, ok)
			require.Equal(t, tt.expected, got)
		})
	}
}

// TestProtocolRelative checks the http+https pairing rule: a
// protocol-relative URL inherits the document scheme, so it is only
// predictable when both web schemes are allowed.
func TestProtocolRelative(t *testing.T) {
	both := AllowSchemes("http", "https")
	_, ok := both("", "", "//example.com/a")
	require.True(t, ok)

	httpsOnly := AllowSchemes("https")
	_, ok = httpsOnly("", "", "//example.com/a")
	require.False(t, ok)

	_, ok = httpsOnly("", "", "https://example.com/a")
	require.True(t, ok)
}

// TestFilterIdempotent re-runs admitted URLs through the filter; the
// sanitized CSS output embeds these verbatim, so they must be fixed points.
func TestFilterIdempotent(t *testing.T) {
	web := AllowSchemes("http", "https")
	inputs := []string{
		"http://example.com/a(1).png",
		"/a։b∶c",
		"//example.com/x",
		"image.png",
	}
	for _, url := range inputs {
		once, ok := web("", "", url)
		require.True(t, ok, url)
		twice, ok := web("", "", once)
		require.True(t, ok, url)
		require.Equal(t, once, twice, url)
	}
}
