package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// Transport completes a prompt with the named model.
// The raw provider HTTP clients satisfy it directly.
type Transport interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// ModelFactory binds a model name to an ADK model.
type ModelFactory func(name string) model.LLM

// errEmptyOutput is returned when a run finished without text.
var errEmptyOutput = errors.New("agent produced no text")

// AgentTransport runs each completion as a one-shot ADK agent in a fresh
// in-memory session.
type AgentTransport struct {
	appName        string
	description    string
	instruction    string
	models         ModelFactory
	sessionService session.Service
}

// NewAgentTransport creates the primary transport for one provider.
func NewAgentTransport(appName, description, instruction string, models ModelFactory) *AgentTransport {
	return &AgentTransport{
		appName:        appName,
		description:    description,
		instruction:    instruction,
		models:         models,
		sessionService: session.InMemoryService(),
	}
}

// Complete runs prompt through an agent backed by modelName and returns its text.
func (t *AgentTransport) Complete(ctx context.Context, modelName, prompt string) (string, error) {
	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName(t.appName),
		Model:       t.models(modelName),
		Description: t.description,
		Instruction: t.instruction,
	})
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	r, err := runner.New(runner.Config{
		AppName:        t.appName,
		Agent:          adkAgent,
		SessionService: t.sessionService,
	})
	if err != nil {
		return "", fmt.Errorf("create runner: %w", err)
	}

	sessionID := uuid.New().String()
	userID := t.appName + "-" + sessionID

	if _, err := t.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   t.appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer func() {
		_ = t.sessionService.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   t.appName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	userMessage := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}
	runConfig := agent.RunConfig{StreamingMode: agent.StreamingModeNone}

	var output strings.Builder
	for event, err := range r.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			return "", fmt.Errorf("run agent: %w", err)
		}
		if event == nil || event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			if part != nil {
				output.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(output.String())
	if text == "" {
		return "", errEmptyOutput
	}
	return text, nil
}

// agentName turns "locatie-openai" into "LocatieOpenai"; ADK agent names must be identifiers.
func agentName(appName string) string {
	var sb strings.Builder
	for _, word := range strings.FieldsFunc(appName, func(r rune) bool { return r == '-' || r == '_' || r == ' ' }) {
		sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	return sb.String()
}
