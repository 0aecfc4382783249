package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/llm"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

const maxMessageLength = 4000

// Handler exposes the chat turn over HTTP with SSE streaming.
type Handler struct {
	orchestrator *Orchestrator
	logger       logging.Logger
}

func NewHandler(orchestrator *Orchestrator, logger logging.Logger) *Handler {
	return &Handler{orchestrator: orchestrator, logger: logger}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/chat", h.Chat)
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat handles POST /chat. The body carries the conversation so far; the
// response is a text/event-stream of token, tool_call, error, and done
// events.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages is required"})
		return
	}
	for i, m := range req.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("messages[%d] has unsupported role %q", i, m.Role)})
			return
		}
		if len(m.Content) > maxMessageLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("messages[%d] exceeds maximum length", i)})
			return
		}
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != "user" || last.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last message must be a non-empty user message"})
		return
	}

	messages := make([]llm.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = llm.Message{Role: m.Role, Content: m.Content}
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	sink := newSSESink(c.Writer)
	if err := h.orchestrator.Run(c.Request.Context(), messages, sink); err != nil {
		// The stream is already open; all we can do is log.
		h.logger.WithError(err).Warn("Chat stream aborted")
	}
}

type sseSink struct {
	writer gin.ResponseWriter
}

func newSSESink(w gin.ResponseWriter) *sseSink {
	return &sseSink{writer: w}
}

func (s *sseSink) Send(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := fmt.Fprintf(s.writer, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	s.writer.Flush()
	return nil
}
