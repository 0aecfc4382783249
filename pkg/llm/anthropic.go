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

// AnthropicProvider speaks the Anthropic Messages streaming API and maps its
// content-block events onto the common Chunk shape: tool_use blocks become
// indexed tool calls with incremental argument fragments, and an end_turn /
// tool_use stop reason becomes the finish signal.
type AnthropicProvider struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

type AnthropicOption func(*AnthropicProvider)

func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(p *AnthropicProvider) {
		if url != "" {
			p.baseURL = url
		}
	}
}

func WithAnthropicMaxTokens(n int) AnthropicOption {
	return func(p *AnthropicProvider) {
		if n > 0 {
			p.maxTokens = n
		}
	}
}

func NewAnthropicProvider(apiKey, model string, opts ...AnthropicOption) *AnthropicProvider {
	p := &AnthropicProvider{
		apiKey:    apiKey,
		baseURL:   "https://api.anthropic.com/v1",
		model:     model,
		maxTokens: 2048,
		client:    &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []anthropicTool    `json:"tools,omitempty"`
	MaxTokens int                `json:"max_tokens"`
	Stream    bool               `json:"stream"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

type anthropicTool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

type anthropicEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Delta struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
		StopReason  string `json:"stop_reason"`
	} `json:"delta"`
	ContentBlock struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"content_block"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *AnthropicProvider) Complete(ctx context.Context, messages []Message, tools []Tool) (Stream, error) {
	req := anthropicRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Stream:    true,
	}
	for _, m := range messages {
		if m.Role == "system" {
			req.System = m.Content
			continue
		}
		req.Messages = append(req.Messages, toAnthropicMessage(m))
	}
	for _, t := range tools {
		req.Tools = append(req.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Parameters,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call messages API: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("messages API returned %d: %s", resp.StatusCode, string(errBody))
	}

	return newSSEStream(resp, newAnthropicDecoder()), nil
}

func toAnthropicMessage(m Message) anthropicMessage {
	switch {
	case m.Role == "tool":
		return anthropicMessage{
			Role: "user",
			Content: []anthropicContent{{
				Type:      "tool_result",
				ToolUseID: m.ToolCallID,
				Content:   m.Content,
			}},
		}
	case len(m.ToolCalls) > 0:
		var content []anthropicContent
		if m.Content != "" {
			content = append(content, anthropicContent{Type: "text", Text: m.Content})
		}
		for _, tc := range m.ToolCalls {
			input := json.RawMessage(tc.Arguments)
			if tc.Arguments == "" {
				input = json.RawMessage("{}")
			}
			content = append(content, anthropicContent{
				Type:  "tool_use",
				ID:    tc.ID,
				Name:  tc.Name,
				Input: input,
			})
		}
		return anthropicMessage{Role: m.Role, Content: content}
	default:
		return anthropicMessage{
			Role:    m.Role,
			Content: []anthropicContent{{Type: "text", Text: m.Content}},
		}
	}
}

// newAnthropicDecoder returns a per-stream event decoder. Anthropic numbers
// content blocks across text and tool_use alike, so a tool_use block rarely
// starts at index 0. The decoder renumbers tool_use blocks to a dense
// 0-based ordinal so their indices address tool calls, not content blocks.
func newAnthropicDecoder() func([]byte) (Chunk, error) {
	ordinals := make(map[int]int)
	return func(data []byte) (Chunk, error) {
		var event anthropicEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return Chunk{}, fmt.Errorf("decode event: %w", err)
		}
		if event.Error != nil {
			return Chunk{}, fmt.Errorf("stream error: %s", event.Error.Message)
		}

		switch event.Type {
		case "content_block_start":
			if event.ContentBlock.Type == "tool_use" {
				ordinal := len(ordinals)
				ordinals[event.Index] = ordinal
				return Chunk{ToolCalls: []ToolCall{{
					Index: ordinal,
					ID:    event.ContentBlock.ID,
					Name:  event.ContentBlock.Name,
				}}}, nil
			}
		case "content_block_delta":
			switch event.Delta.Type {
			case "text_delta":
				return Chunk{Content: event.Delta.Text}, nil
			case "input_json_delta":
				ordinal, ok := ordinals[event.Index]
				if !ok {
					return Chunk{}, nil
				}
				return Chunk{ToolCalls: []ToolCall{{
					Index:     ordinal,
					Arguments: event.Delta.PartialJSON,
				}}}, nil
			}
		case "message_delta":
			if event.Delta.StopReason == "tool_use" {
				return Chunk{FinishReason: FinishReasonToolCalls}, nil
			}
			if event.Delta.StopReason != "" {
				return Chunk{FinishReason: event.Delta.StopReason}, nil
			}
		}
		return Chunk{}, nil
	}
}
