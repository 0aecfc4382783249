package chat

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/llm"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

func testRouter(provider *fakeProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logging.NewLogger()
	logger.SetOutput(io.Discard)
	NewHandler(testOrchestrator(provider), logger).RegisterRoutes(router)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseSSE(t *testing.T, body string) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("invalid event frame %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestChatValidation(t *testing.T) {
	router := testRouter(&fakeProvider{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"no messages", `{"messages":[]}`},
		{"bad role", `{"messages":[{"role":"system","content":"x"}]}`},
		{"last not user", `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`},
		{"empty last message", `{"messages":[{"role":"user","content":""}]}`},
		{"oversized message", `{"messages":[{"role":"user","content":"` + strings.Repeat("x", maxMessageLength+1) + `"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChat(t, router, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestChatStreamsSSE(t *testing.T) {
	provider := &fakeProvider{responses: [][]llm.Chunk{
		{
			{ToolCalls: []llm.ToolCall{{Index: 0, ID: "call_1", Name: "get_medication_by_name", Arguments: `{"medication_name":"Ibuprofen"}`}}},
			{FinishReason: llm.FinishReasonToolCalls},
		},
		{
			{Content: "Ibuprofen is "},
			{Content: "an NSAID."},
			{FinishReason: "stop"},
		},
	}}
	router := testRouter(provider)

	w := postChat(t, router, `{"messages":[{"role":"user","content":"Tell me about Ibuprofen"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q", ct)
	}

	events := parseSSE(t, w.Body.String())
	if len(events) == 0 {
		t.Fatal("no events in response")
	}
	if last := events[len(events)-1]; last.Type != "done" {
		t.Errorf("last event = %q, want done", last.Type)
	}

	var text string
	var toolCalls int
	for _, ev := range events {
		switch ev.Type {
		case "token":
			text += ev.Content
		case "tool_call":
			toolCalls++
			if ev.Name != "get_medication_by_name" {
				t.Errorf("tool name = %q", ev.Name)
			}
		}
	}
	if text != "Ibuprofen is an NSAID." {
		t.Errorf("streamed text = %q", text)
	}
	if toolCalls != 1 {
		t.Errorf("tool_call events = %d, want 1", toolCalls)
	}
}

func TestChatPolicyRefusalOverSSE(t *testing.T) {
	provider := &fakeProvider{}
	router := testRouter(provider)

	w := postChat(t, router, `{"messages":[{"role":"user","content":"מה אתה ממליץ לכאב ראש?"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	events := parseSSE(t, w.Body.String())
	if len(events) != 2 || events[0].Type != "token" || events[1].Type != "done" {
		t.Fatalf("events = %+v", events)
	}
	if !strings.Contains(events[0].Content, "מצטער") {
		t.Errorf("refusal should be in Hebrew: %q", events[0].Content)
	}
	if len(provider.requests) != 0 {
		t.Error("model must not be consulted for refused messages")
	}
}
