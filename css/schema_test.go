package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		allowed bool
	}{
		{"known property", "color", true},
		{"uppercase folds", "COLOR", true},
		{"vendor prefix falls back", "-moz-border-radius", true},
		{"webkit prefix falls back", "-webkit-border-radius", true},
		{"explicit legacy corner spelling", "-moz-border-radius-topleft", true},
		{"function key", "rgb()", true},
		{"unknown property", "behavior", false},
		{"unknown prefixed property", "-moz-binding", false},
		{"unknown prefix is not stripped", "-foo-color", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default.ForKey(tt.key)
			if tt.allowed {
				require.NotEqual(t, Disallowed, p, "key %q", tt.key)
			} else {
				require.Equal(t, Disallowed, p, "key %q", tt.key)
			}
		})
	}
}

func TestForKeyAliasIdentity(t *testing.T) {
	// Side properties share descriptor identity with their family.
	require.Same(t, Default.ForKey("margin"), Default.ForKey("margin-top"))
	require.Same(t, Default.ForKey("border-top-color"), Default.ForKey("color"))
	require.Same(t, Default.ForKey("border-radius"), Default.ForKey("-moz-border-radius"))
}

func TestWithPropertiesUnknown(t *testing.T) {
	_, err := WithProperties([]string{"color", "nonesuch"})
	require.ErrorIs(t, err, ErrUnknownProperty)
}

func TestWithPropertiesPullsFunctionKeys(t *testing.T) {
	s, err := WithProperties([]string{"color"})
	require.NoError(t, err)
	require.NotEqual(t, Disallowed, s.ForKey("rgb()"))
	require.NotEqual(t, Disallowed, s.ForKey("hsla()"))
	// Function keys are reachable but not listed as properties.
	require.Equal(t, []string{"color"}, s.AllowedProperties())
}

func TestWithPropertiesMapClosure(t *testing.T) {
	_, err := WithPropertiesMap(map[string]*Property{
		"color": {
			Bits:   BitHashValue,
			FnKeys: map[string]string{"rgb(": "rgb()"},
		},
	})
	require.ErrorIs(t, err, ErrUnresolvedFunction)

	s, err := WithPropertiesMap(map[string]*Property{
		"color": {
			Bits:   BitHashValue,
			FnKeys: map[string]string{"rgb(": "rgb()"},
		},
		"rgb()": {Bits: BitQuantity, Literals: set(",")},
	})
	require.NoError(t, err)
	require.NotEqual(t, Disallowed, s.ForKey("rgb()"))
}

func TestUnion(t *testing.T) {
	a, err := WithProperties([]string{"color"})
	require.NoError(t, err)
	b, err := WithProperties([]string{"width"})
	require.NoError(t, err)

	u, err := Union(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"color", "width"}, u.AllowedProperties())

	// The same name with an equal definition is reconcilable.
	c, err := WithProperties([]string{"color"})
	require.NoError(t, err)
	u, err = Union(a, c)
	require.NoError(t, err)
	require.Equal(t, []string{"color"}, u.AllowedProperties())
}

func TestUnionConflict(t *testing.T) {
	a, err := WithPropertiesMap(map[string]*Property{
		"color": {Bits: BitHashValue},
	})
	require.NoError(t, err)
	b, err := WithPropertiesMap(map[string]*Property{
		"color": {Bits: BitHashValue | BitQuantity},
	})
	require.NoError(t, err)

	_, err = Union(a, b)
	require.ErrorIs(t, err, ErrDuplicateProperty)
}

func TestDefaultSchema(t *testing.T) {
	props := Default.AllowedProperties()
	require.Greater(t, len(props), 100)

	// The spot checks every deployment relies on.
	for _, name := range []string{
		"background", "border", "color", "font", "font-family", "height",
		"margin", "outline", "padding", "text-align", "width",
	} {
		require.Contains(t, props, name)
	}

	// unicode-range needs an explicit opt-in.
	require.NotContains(t, props, "unicode-range")
	require.Equal(t, Disallowed, Default.ForKey("unicode-range"))

	// Nothing with script semantics is reachable.
	for _, name := range []string{"behavior", "expression", "-moz-binding"} {
		require.Equal(t, Disallowed, Default.ForKey(name))
	}
}
