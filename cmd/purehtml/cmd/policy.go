package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/purehtml/purehtml/css"
	"github.com/purehtml/purehtml/html"
	"github.com/purehtml/purehtml/urlpolicy"
)

// policyFile is the YAML shape of a --policy file. Every section is
// optional; omitted sections keep the built-in defaults.
type policyFile struct {
	// Properties whitelists CSS properties by name.
	Properties []string `yaml:"properties"`
	// Schemes whitelists URL schemes (without the ':').
	Schemes []string `yaml:"schemes"`
	// Tags maps allowed tag names to their allowed attributes.
	Tags map[string][]string `yaml:"tags"`
}

// loadPolicy builds the effective HTML policy from --policy, falling back
// to the defaults for anything the file leaves out.
func loadPolicy() (*html.Policy, error) {
	p := html.DefaultPolicy()
	if policyPath == "" {
		return p, nil
	}

	content, err := os.ReadFile(policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy %s: %w", policyPath, err)
	}
	var pf policyFile
	if err := yaml.Unmarshal(content, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse policy %s: %w", policyPath, err)
	}

	if len(pf.Properties) > 0 {
		schema, err := css.WithProperties(pf.Properties)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", policyPath, err)
		}
		p.Styles = schema
	}
	if len(pf.Schemes) > 0 {
		p.URLs = urlpolicy.AllowSchemes(pf.Schemes...)
	}
	if len(pf.Tags) > 0 {
		tags := make(map[string]map[string]bool, len(pf.Tags))
		for tag, attrs := range pf.Tags {
			m := make(map[string]bool, len(attrs))
			for _, a := range attrs {
				m[a] = true
			}
			tags[tag] = m
		}
		p.Tags = tags
	}
	return p, nil
}
