package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicyDefaults(t *testing.T) {
	policyPath = ""
	p, err := loadPolicy()
	require.NoError(t, err)
	require.NotNil(t, p.Styles)
	require.NotNil(t, p.URLs)
	require.Contains(t, p.Tags, "p")
}

func TestLoadPolicyOverrides(t *testing.T) {
	policyPath = writePolicy(t, `
properties:
  - color
  - width
schemes:
  - https
tags:
  b: []
  a: [href]
`)
	defer func() { policyPath = "" }()

	p, err := loadPolicy()
	require.NoError(t, err)

	require.Equal(t, []string{"color", "width"}, p.Styles.AllowedProperties())

	_, ok := p.URLs("a", "href", "https://example.com/")
	require.True(t, ok)
	_, ok = p.URLs("a", "href", "http://example.com/")
	require.False(t, ok)

	require.Contains(t, p.Tags, "b")
	require.NotContains(t, p.Tags, "p")
	require.True(t, p.Tags["a"]["href"])
}

func TestLoadPolicyUnknownProperty(t *testing.T) {
	policyPath = writePolicy(t, "properties: [nonesuch]")
	defer func() { policyPath = "" }()

	_, err := loadPolicy()
	require.Error(t, err)
}
