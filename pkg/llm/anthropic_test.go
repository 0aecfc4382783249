package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicToolUseStream(t *testing.T) {
	srv := httptest.NewServer(sseHandler(t, []string{
		`{"type":"message_start"}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"text"}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Checking"}}`,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"toolu_1","name":"check_inventory"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"medication_id\":"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"\"2\"}"}}`,
		`{"type":"content_block_stop","index":1}`,
		`{"type":"message_delta","delta":{"stop_reason":"tool_use"}}`,
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-sonnet-4", WithAnthropicBaseURL(srv.URL))
	stream, err := p.Complete(context.Background(), []Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "any amoxicillin left?"},
	}, nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	chunks := collect(t, stream)
	var text, args, finish string
	var started *ToolCall
	for _, c := range chunks {
		text += c.Content
		for i, tc := range c.ToolCalls {
			if tc.ID != "" {
				started = &c.ToolCalls[i]
			}
			args += tc.Arguments
		}
		if c.FinishReason != "" {
			finish = c.FinishReason
		}
	}
	if text != "Checking" {
		t.Errorf("text = %q", text)
	}
	if started == nil || started.Name != "check_inventory" {
		t.Fatalf("tool_use block start not surfaced: %+v", started)
	}
	if started.Index != 0 {
		t.Errorf("tool call index = %d, want 0 (block index 1 renumbered)", started.Index)
	}
	if args != `{"medication_id":"2"}` {
		t.Errorf("concatenated arguments = %q", args)
	}
	if finish != FinishReasonToolCalls {
		t.Errorf("finish reason = %q, want %q", finish, FinishReasonToolCalls)
	}
}

func TestAnthropicMessageConversion(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		sseHandler(t, []string{`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"ok"}}`})(w, r)
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-sonnet-4", WithAnthropicBaseURL(srv.URL))
	messages := []Message{
		{Role: "system", Content: "pharmacy assistant"},
		{Role: "user", Content: "hello"},
		{Role: "assistant", ToolCalls: []ToolCall{{ID: "toolu_1", Name: "get_medication_info", Arguments: `{"name":"x"}`}}},
		{Role: "tool", ToolCallID: "toolu_1", Content: `{"found":false}`},
	}
	stream, err := p.Complete(context.Background(), messages, []Tool{
		{Name: "get_medication_info", Description: "look up a medication", Parameters: map[string]interface{}{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	collect(t, stream)

	if captured.System != "pharmacy assistant" {
		t.Errorf("system prompt = %q", captured.System)
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("got %d messages, want 3 (system lifted out)", len(captured.Messages))
	}
	assistant := captured.Messages[1]
	if assistant.Content[0].Type != "tool_use" || assistant.Content[0].ID != "toolu_1" {
		t.Errorf("assistant tool_use block malformed: %+v", assistant.Content)
	}
	toolResult := captured.Messages[2]
	if toolResult.Role != "user" || toolResult.Content[0].Type != "tool_result" || toolResult.Content[0].ToolUseID != "toolu_1" {
		t.Errorf("tool result not converted to user tool_result block: %+v", toolResult)
	}
	if len(captured.Tools) != 1 || captured.Tools[0].InputSchema == nil {
		t.Errorf("tools not converted: %+v", captured.Tools)
	}
}
