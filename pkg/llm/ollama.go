package llm

// NewOllamaProvider targets a local Ollama server through its
// OpenAI-compatible endpoint. Ollama ignores the API key but the
// header must be present, so a placeholder is sent.
func NewOllamaProvider(baseURL, model string, opts ...OpenAIOption) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	all := append([]OpenAIOption{WithOpenAIBaseURL(baseURL + "/v1")}, opts...)
	return NewOpenAIProvider("ollama", model, all...)
}
