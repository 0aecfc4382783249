package chat

import "encoding/json"

// Event is one frame of the chat response stream.
type Event struct {
	Type    string          `json:"type"`
	Content string          `json:"content,omitempty"`
	Name    string          `json:"name,omitempty"`
	Input   json.RawMessage `json:"input,omitempty"`
	Output  json.RawMessage `json:"output,omitempty"`
}

func tokenEvent(content string) Event {
	return Event{Type: "token", Content: content}
}

func toolCallEvent(name string, input, output json.RawMessage) Event {
	return Event{Type: "tool_call", Name: name, Input: input, Output: output}
}

func errorEvent(message string) Event {
	return Event{Type: "error", Content: message}
}

func doneEvent() Event {
	return Event{Type: "done"}
}

// Sink receives ordered events for one chat turn. Implementations deliver
// them to the client; the orchestrator guarantees exactly one done event,
// always last.
type Sink interface {
	Send(event Event) error
}
