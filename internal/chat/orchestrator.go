// Package chat runs the conversation loop: policy gating, model streaming,
// tool-call assembly and execution, and event delivery to the client.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/tom-damari/pharmacy-ai-agent/internal/policy"
	"github.com/tom-damari/pharmacy-ai-agent/internal/tools"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/llm"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

const (
	defaultMaxToolRounds      = 8
	defaultMaxHistoryMessages = 40
)

// UsageRecorder receives a summary of each completed chat turn. Used for
// metering; a nil recorder disables it.
type UsageRecorder interface {
	RecordTurn(ctx context.Context, rounds, toolCalls int, duration time.Duration)
}

// Orchestrator drives one chat turn: it gates the last user message through
// the policy filter, streams model output, assembles tool calls from
// indexed deltas, executes them in order, and feeds results back to the
// model until it produces a final answer.
type Orchestrator struct {
	provider llm.Provider
	registry *tools.Registry
	logger   logging.Logger
	usage    UsageRecorder

	maxToolRounds      int
	maxHistoryMessages int
}

type OrchestratorOption func(*Orchestrator)

func WithMaxToolRounds(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxToolRounds = n
		}
	}
}

func WithMaxHistoryMessages(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxHistoryMessages = n
		}
	}
}

func WithUsageRecorder(u UsageRecorder) OrchestratorOption {
	return func(o *Orchestrator) {
		o.usage = u
	}
}

func NewOrchestrator(provider llm.Provider, registry *tools.Registry, logger logging.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		provider:           provider,
		registry:           registry,
		logger:             logger,
		maxToolRounds:      defaultMaxToolRounds,
		maxHistoryMessages: defaultMaxHistoryMessages,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run processes one chat turn and emits events to the sink. It always emits
// exactly one done event, as the last event. Model failures produce a single
// error event before done; they are terminal for the turn, never retried.
func (o *Orchestrator) Run(ctx context.Context, messages []llm.Message, sink Sink) error {
	chatRequestsTotal.Inc()
	activeStreams.Inc()
	defer activeStreams.Dec()
	start := time.Now()
	defer func() {
		chatRequestDuration.Observe(time.Since(start).Seconds())
	}()

	if refusal, refused := o.checkPolicy(messages); refused {
		if err := sink.Send(tokenEvent(refusal)); err != nil {
			return err
		}
		return sink.Send(doneEvent())
	}

	full := make([]llm.Message, 0, len(messages)+1)
	full = append(full, llm.Message{Role: "system", Content: SystemPrompt})
	full = append(full, trimHistory(messages, o.maxHistoryMessages)...)

	rounds := 0
	totalToolCalls := 0
	defer func() {
		modelRoundsPerTurn.Observe(float64(rounds))
		if o.usage != nil {
			o.usage.RecordTurn(ctx, rounds, totalToolCalls, time.Since(start))
		}
	}()

	for {
		rounds++
		if rounds > o.maxToolRounds {
			o.logger.WithFields(logging.Fields{"rounds": rounds}).Warn("Tool round limit reached")
			if err := sink.Send(errorEvent("tool call limit reached")); err != nil {
				return err
			}
			return sink.Send(doneEvent())
		}

		stream, err := o.provider.Complete(ctx, full, tools.Definitions())
		if err != nil {
			return o.fail(sink, err)
		}

		text, calls, finishReason, err := o.consumeStream(stream, sink)
		if err != nil {
			return o.fail(sink, err)
		}

		// The model admitting it has no information means the buffered
		// medication context is stale; restart from the user's message.
		if mentionsMissingInformation(text) {
			full = resetConversation(messages)
		}

		if finishReason != llm.FinishReasonToolCalls || len(calls) == 0 {
			return sink.Send(doneEvent())
		}

		full = append(full, llm.Message{Role: "assistant", Content: text, ToolCalls: calls})

		for _, call := range calls {
			totalToolCalls++
			toolExecutionsTotal.WithLabelValues(call.Name).Inc()

			input := normalizeArguments(call.Arguments)
			output := o.registry.Execute(call.Name, call.Arguments)

			o.logger.WithFields(logging.Fields{
				"tool": call.Name,
				"args": string(input),
			}).Debug("Executed tool")

			if err := sink.Send(toolCallEvent(call.Name, input, json.RawMessage(output))); err != nil {
				return err
			}
			full = append(full, llm.Message{
				Role:       "tool",
				Content:    output,
				ToolCallID: call.ID,
			})
		}
	}
}

// consumeStream drains one model response, forwarding content fragments to
// the sink as token events and folding tool-call deltas into complete calls.
func (o *Orchestrator) consumeStream(stream llm.Stream, sink Sink) (string, []llm.ToolCall, string, error) {
	defer stream.Close()

	var text strings.Builder
	var calls []llm.ToolCall
	var finishReason string

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return text.String(), compactToolCalls(calls), finishReason, nil
		}
		if err != nil {
			return "", nil, "", err
		}

		if chunk.Content != "" {
			text.WriteString(chunk.Content)
			tokensStreamedTotal.Inc()
			if err := sink.Send(tokenEvent(chunk.Content)); err != nil {
				return "", nil, "", err
			}
		}
		for _, delta := range chunk.ToolCalls {
			calls = mergeToolCallDelta(calls, delta)
		}
		if chunk.FinishReason != "" {
			finishReason = chunk.FinishReason
		}
	}
}

// mergeToolCallDelta folds one streamed delta into the accumulated calls.
// The delta's index addresses the call: an unseen index opens a new call,
// while a repeat index overwrites the id, overwrites the name when the
// fragment carries one, and appends the argument text.
func mergeToolCallDelta(calls []llm.ToolCall, delta llm.ToolCall) []llm.ToolCall {
	for len(calls) <= delta.Index {
		calls = append(calls, llm.ToolCall{Index: len(calls)})
	}
	call := &calls[delta.Index]
	if delta.ID != "" {
		call.ID = delta.ID
	}
	if delta.Name != "" {
		call.Name = delta.Name
	}
	call.Arguments += delta.Arguments
	return calls
}

// compactToolCalls drops index gaps left by providers that number tool
// calls alongside other content blocks. An entry that no fragment ever
// opened with an id or name is a placeholder, not a call.
func compactToolCalls(calls []llm.ToolCall) []llm.ToolCall {
	kept := calls[:0]
	for _, call := range calls {
		if call.ID == "" && call.Name == "" {
			continue
		}
		call.Index = len(kept)
		kept = append(kept, call)
	}
	return kept
}

func (o *Orchestrator) checkPolicy(messages []llm.Message) (string, bool) {
	if len(messages) == 0 {
		return "", false
	}
	last := messages[len(messages)-1]
	if last.Role != "user" {
		return "", false
	}
	violation, refusal := policy.CheckViolation(last.Content)
	if !violation {
		return "", false
	}
	language := "en"
	if refusal == policy.RefusalHE {
		language = "he"
	}
	policyRefusalsTotal.WithLabelValues(language).Inc()
	o.logger.WithFields(logging.Fields{"language": language}).Info("Refused message on policy grounds")
	return refusal, true
}

func (o *Orchestrator) fail(sink Sink, err error) error {
	modelErrorsTotal.Inc()
	o.logger.WithError(err).Error("Model call failed")
	if sendErr := sink.Send(errorEvent("API error: " + err.Error())); sendErr != nil {
		return sendErr
	}
	return sink.Send(doneEvent())
}

// mentionsMissingInformation detects the model stating it has no data about
// the requested medication, in either supported language.
func mentionsMissingInformation(text string) bool {
	return strings.Contains(text, "I don't have information") ||
		strings.Contains(text, "אין לי מידע")
}

// resetConversation collapses the buffer to the system prompt plus the last
// original message, dropping stale medication context.
func resetConversation(original []llm.Message) []llm.Message {
	full := []llm.Message{{Role: "system", Content: SystemPrompt}}
	if len(original) > 0 {
		full = append(full, original[len(original)-1])
	}
	return full
}

// trimHistory bounds the conversation window, keeping the most recent
// messages.
func trimHistory(messages []llm.Message, max int) []llm.Message {
	if max <= 0 || len(messages) <= max {
		return messages
	}
	return messages[len(messages)-max:]
}

// normalizeArguments parses raw argument JSON for event reporting. Text the
// model failed to complete degrades to an empty object, matching what the
// executor will see.
func normalizeArguments(raw string) json.RawMessage {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return json.RawMessage("{}")
	}
	normalized, err := json.Marshal(parsed)
	if err != nil {
		return json.RawMessage("{}")
	}
	return normalized
}
