package narrative

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider identifiers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ProviderPolicy is one row of the fallback table: ordered primary candidates,
// then one direct model, then the template.
type ProviderPolicy struct {
	Provider string   `yaml:"-"`
	Title    string   `yaml:"title"`
	Models   []string `yaml:"models"`
	Direct   string   `yaml:"direct"`
}

// Policy maps provider identifiers to their fallback chain.
type Policy struct {
	Providers map[string]ProviderPolicy `yaml:"providers"`
}

// DefaultPolicy is the built-in table.
func DefaultPolicy() Policy {
	return Policy{Providers: map[string]ProviderPolicy{
		ProviderOpenAI: {
			Provider: ProviderOpenAI,
			Title:    "Analyse door GPT",
			Models:   []string{"gpt-4o", "gpt-4-turbo", "gpt-3.5-turbo"},
			Direct:   "gpt-3.5-turbo",
		},
		ProviderAnthropic: {
			Provider: ProviderAnthropic,
			Title:    "Analyse door Claude",
			Models:   []string{"claude-3-opus-20240229"},
			Direct:   "claude-3-haiku-20240307",
		},
	}}
}

// For returns the chain for provider. Unknown providers get an empty chain,
// which goes straight to the template.
func (p Policy) For(provider string) ProviderPolicy {
	pp, ok := p.Providers[provider]
	if !ok {
		return ProviderPolicy{Provider: provider, Title: "Analyse"}
	}
	pp.Provider = provider
	return pp
}

// LoadPolicy reads a YAML override on top of DefaultPolicy. Fields left empty
// in the file keep their default. An empty path returns the default table.
//
//	providers:
//	  openai:
//	    models: [gpt-4o-mini, gpt-4o]
//	    direct: gpt-4o-mini
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read model policy: %w", err)
	}

	var override Policy
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Policy{}, fmt.Errorf("parse model policy %s: %w", path, err)
	}

	for name, o := range override.Providers {
		base := policy.For(name)
		if o.Title != "" {
			base.Title = o.Title
		}
		if len(o.Models) > 0 {
			base.Models = o.Models
		}
		if o.Direct != "" {
			base.Direct = o.Direct
		}
		policy.Providers[name] = base
	}
	return policy, nil
}
