package anthropic

import (
	"context"
	"iter"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// Model adapts one Anthropic model to the ADK model.LLM interface.
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

// GenerateContent maps ADK contents onto a Messages call. A single response
// is yielded whether or not streaming was requested.
func (m *Model) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

func (m *Model) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	msgReq := MessagesRequest{
		Model:       m.name,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			msgReq.Temperature = float64(*req.Config.Temperature)
		}
		if req.Config.MaxOutputTokens > 0 {
			msgReq.MaxTokens = int(req.Config.MaxOutputTokens)
		}
		msgReq.System = contentText(req.Config.SystemInstruction)
	}

	for _, content := range req.Contents {
		text := contentText(content)
		if text == "" {
			continue
		}
		role := "user"
		if content.Role == genai.RoleModel {
			role = "assistant"
		}
		// The Messages API rejects consecutive turns with the same role.
		if n := len(msgReq.Messages); n > 0 && msgReq.Messages[n-1].Role == role {
			msgReq.Messages[n-1].Content += "\n\n" + text
			continue
		}
		msgReq.Messages = append(msgReq.Messages, Message{Role: role, Content: text})
	}

	text, err := m.client.Messages(ctx, msgReq)
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
