package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAIProvider speaks the OpenAI chat completions streaming API. It also
// serves any endpoint that implements the same wire format.
type OpenAIProvider struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

type OpenAIOption func(*OpenAIProvider)

func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(p *OpenAIProvider) {
		if url != "" {
			p.baseURL = url
		}
	}
}

func WithOpenAIMaxTokens(n int) OpenAIOption {
	return func(p *OpenAIProvider) {
		if n > 0 {
			p.maxTokens = n
		}
	}
}

func NewOpenAIProvider(apiKey, model string, opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		apiKey:    apiKey,
		baseURL:   "https://api.openai.com/v1",
		model:     model,
		maxTokens: 2048,
		client:    &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAIToolCall struct {
	Index    int                `json:"index,omitempty"`
	ID       string             `json:"id,omitempty"`
	Type     string             `json:"type,omitempty"`
	Function openAIToolFunction `json:"function"`
}

type openAIToolFunction struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	Tools     []openAITool    `json:"tools,omitempty"`
	MaxTokens int             `json:"max_tokens,omitempty"`
	Stream    bool            `json:"stream"`
}

type openAITool struct {
	Type     string `json:"type"`
	Function Tool   `json:"function"`
}

type openAIChunk struct {
	Choices []struct {
		Delta struct {
			Content   string           `json:"content"`
			ToolCalls []openAIToolCall `json:"tool_calls"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message, tools []Tool) (Stream, error) {
	req := openAIRequest{
		Model:     p.model,
		Messages:  toOpenAIMessages(messages),
		MaxTokens: p.maxTokens,
		Stream:    true,
	}
	for _, t := range tools {
		req.Tools = append(req.Tools, openAITool{Type: "function", Function: t})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call completions API: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("completions API returned %d: %s", resp.StatusCode, string(errBody))
	}

	return newSSEStream(resp, decodeOpenAIChunk), nil
}

// toOpenAIMessages converts to the wire shape. Assistant messages that carry
// tool calls get a null content field and a tool_calls array, which is what
// the API expects when replaying a tool round in the conversation history.
func toOpenAIMessages(messages []Message) []openAIMessage {
	out := make([]openAIMessage, 0, len(messages))
	for _, m := range messages {
		wire := openAIMessage{Role: m.Role, ToolCallID: m.ToolCallID}
		if len(m.ToolCalls) > 0 {
			for _, tc := range m.ToolCalls {
				wire.ToolCalls = append(wire.ToolCalls, openAIToolCall{
					ID:   tc.ID,
					Type: "function",
					Function: openAIToolFunction{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
		}
		if m.Content != "" || len(m.ToolCalls) == 0 {
			content := m.Content
			wire.Content = &content
		}
		out = append(out, wire)
	}
	return out
}

func decodeOpenAIChunk(data []byte) (Chunk, error) {
	var chunk openAIChunk
	if err := json.Unmarshal(data, &chunk); err != nil {
		return Chunk{}, fmt.Errorf("decode chunk: %w", err)
	}
	if chunk.Error != nil {
		return Chunk{}, fmt.Errorf("stream error: %s", chunk.Error.Message)
	}
	if len(chunk.Choices) == 0 {
		return Chunk{}, nil
	}

	choice := chunk.Choices[0]
	out := Chunk{Content: choice.Delta.Content}
	if choice.FinishReason != nil {
		out.FinishReason = *choice.FinishReason
	}
	for _, tc := range choice.Delta.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			Index:     tc.Index,
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out, nil
}
