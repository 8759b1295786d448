package openai

import (
	"context"
	"iter"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// Model adapts one OpenAI model to the ADK model.LLM interface.
type Model struct {
	name   string
	client *Client
}

// Model returns an ADK adapter bound to the named model.
func (c *Client) Model(name string) *Model {
	return &Model{name: name, client: c}
}

func (m *Model) Name() string {
	return m.name
}

// GenerateContent maps ADK contents onto a chat completion. Streaming is not
// supported; a single response is yielded either way.
func (m *Model) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

func (m *Model) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	chat := ChatRequest{
		Model:       m.name,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			chat.Temperature = float64(*req.Config.Temperature)
		}
		if req.Config.MaxOutputTokens > 0 {
			chat.MaxTokens = int(req.Config.MaxOutputTokens)
		}
		if system := contentText(req.Config.SystemInstruction); system != "" {
			chat.Messages = append(chat.Messages, Message{Role: "system", Content: system})
		}
	}

	for _, content := range req.Contents {
		text := contentText(content)
		if text == "" {
			continue
		}
		chat.Messages = append(chat.Messages, Message{Role: roleForContent(content.Role), Content: text})
	}

	text, err := m.client.Chat(ctx, chat)
	if err != nil {
		return nil, err
	}

	return &model.LLMResponse{
		Content: &genai.Content{
			Role:  genai.RoleModel,
			Parts: []*genai.Part{genai.NewPartFromText(text)},
		},
	}, nil
}

func roleForContent(role string) string {
	if role == genai.RoleModel {
		return "assistant"
	}
	return "user"
}

func contentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || strings.TrimSpace(part.Text) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}

var _ model.LLM = (*Model)(nil)
