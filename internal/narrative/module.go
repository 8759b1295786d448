package narrative

import (
	"fmt"

	"google.golang.org/adk/model"

	"github.com/Wim1201/locatie-informatie-v5/platform/ai/anthropic"
	"github.com/Wim1201/locatie-informatie-v5/platform/ai/openai"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Config is what the narrative module reads from the application config.
type Config interface {
	config.OpenAIConfig
	config.AnthropicConfig
	config.PolicyConfig
}

// Module wires both generators and the responder.
type Module struct {
	openAI    *Generator
	anthropic *Generator
	responder *Responder
}

// NewModule builds the generators. A provider without an API key keeps its
// generator but skips straight to the template.
func NewModule(cfg Config, log *logger.Logger) (*Module, error) {
	policy, err := LoadPolicy(cfg.GetModelPolicyFile())
	if err != nil {
		return nil, fmt.Errorf("narrative policy: %w", err)
	}

	var openAIPrimary, openAIDirect Transport
	if cfg.IsOpenAIEnabled() {
		client := openai.NewClient(openai.Config{APIKey: cfg.GetOpenAIAPIKey(), Timeout: cfg.GetLLMTimeout()})
		openAIPrimary = NewAgentTransport("locatie-openai", "Locatieanalyse via OpenAI", Instruction,
			func(name string) model.LLM { return client.Model(name) })
		openAIDirect = client
		log.Info("narrative provider enabled", "provider", ProviderOpenAI)
	} else {
		log.Info("narrative provider degraded: OPENAI_API_KEY not configured", "provider", ProviderOpenAI)
	}

	var anthropicPrimary, anthropicDirect Transport
	if cfg.IsAnthropicEnabled() {
		client := anthropic.NewClient(anthropic.Config{APIKey: cfg.GetAnthropicAPIKey(), Timeout: cfg.GetLLMTimeout()})
		anthropicPrimary = NewAgentTransport("locatie-anthropic", "Locatieanalyse via Anthropic", Instruction,
			func(name string) model.LLM { return client.Model(name) })
		anthropicDirect = client
		log.Info("narrative provider enabled", "provider", ProviderAnthropic)
	} else {
		log.Info("narrative provider degraded: ANTHROPIC_API_KEY not configured", "provider", ProviderAnthropic)
	}

	m := &Module{
		openAI:    NewGenerator(policy.For(ProviderOpenAI), openAIPrimary, openAIDirect, log),
		anthropic: NewGenerator(policy.For(ProviderAnthropic), anthropicPrimary, anthropicDirect, log),
	}
	m.responder = NewResponder(m.anthropic, m.openAI, log)
	return m, nil
}

// OpenAI returns the first provider's generator.
func (m *Module) OpenAI() *Generator { return m.openAI }

// Anthropic returns the second provider's generator.
func (m *Module) Anthropic() *Generator { return m.anthropic }

// Responder returns the question responder.
func (m *Module) Responder() *Responder { return m.responder }
