// Package narrative turns a unified location record into readable analyses:
// one per language-model provider, a synthesis of both, and answers to
// follow-up questions.
package narrative

import (
	"context"

	locationtransport "github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/metrics"
)

const (
	transportPrimary = "primary"
	transportDirect  = "direct"
)

// Generator produces the analysis of one provider. It walks the policy's
// primary candidates, then the direct model, then the template.
type Generator struct {
	policy  ProviderPolicy
	primary Transport
	direct  Transport
	log     *logger.Logger
}

// NewGenerator creates a generator. Either transport may be nil, in which
// case that stage is skipped.
func NewGenerator(policy ProviderPolicy, primary, direct Transport, log *logger.Logger) *Generator {
	return &Generator{policy: policy, primary: primary, direct: direct, log: log}
}

// Provider returns the provider identifier.
func (g *Generator) Provider() string {
	return g.policy.Provider
}

// Generate never fails; the template stage always yields non-empty text.
func (g *Generator) Generate(ctx context.Context, rec locationtransport.UnifiedRecord, address string) transport.Narrative {
	return g.generate(ctx, analysisPrompt(rec, ""), func() string {
		return templateAnalysis(rec, address)
	})
}

func (g *Generator) generate(ctx context.Context, prompt string, template func() string) transport.Narrative {
	n := transport.Narrative{Title: g.policy.Title, Provider: g.policy.Provider}

	if text, model, ok := g.tryPrimary(ctx, prompt); ok {
		n.Text, n.Model, n.Source = text, model, transport.SourceModel
	} else if text, ok := g.tryDirect(ctx, prompt); ok {
		n.Text, n.Model, n.Source = text, g.policy.Direct, transport.SourceDirect
	} else {
		n.Text, n.Source = template(), transport.SourceTemplate
	}

	metrics.NarrativeSource(g.policy.Provider, n.Source)
	return n
}

// tryPrimary stops at the first candidate that returns non-empty text.
func (g *Generator) tryPrimary(ctx context.Context, prompt string) (string, string, bool) {
	if g.primary == nil {
		return "", "", false
	}
	log := g.log.WithContext(ctx)

	for _, model := range g.policy.Models {
		if ctx.Err() != nil {
			log.ModelAttemptFailed(g.policy.Provider, transportPrimary, model, ctx.Err())
			return "", "", false
		}
		text, err := g.primary.Complete(ctx, model, prompt)
		if err != nil {
			log.ModelAttemptFailed(g.policy.Provider, transportPrimary, model, err)
			continue
		}
		if text == "" {
			log.ModelAttemptFailed(g.policy.Provider, transportPrimary, model, nil)
			continue
		}
		return text, model, true
	}
	return "", "", false
}

func (g *Generator) tryDirect(ctx context.Context, prompt string) (string, bool) {
	if g.direct == nil || g.policy.Direct == "" || ctx.Err() != nil {
		return "", false
	}

	text, err := g.direct.Complete(ctx, g.policy.Direct, prompt)
	if err != nil || text == "" {
		g.log.WithContext(ctx).ModelAttemptFailed(g.policy.Provider, transportDirect, g.policy.Direct, err)
		return "", false
	}
	return text, true
}
