package llm

import "fmt"

// Config selects and parameterizes a provider from deploy-time settings.
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	APIURL    string
	MaxTokens int
}

// NewProvider builds the provider named by cfg.Provider. Unknown names are a
// configuration error, not a silent default.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model is required")
	}
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model,
			WithOpenAIBaseURL(cfg.APIURL),
			WithOpenAIMaxTokens(cfg.MaxTokens)), nil
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an API key")
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.Model,
			WithAnthropicBaseURL(cfg.APIURL),
			WithAnthropicMaxTokens(cfg.MaxTokens)), nil
	case "ollama":
		return NewOllamaProvider(cfg.APIURL, cfg.Model,
			WithOpenAIMaxTokens(cfg.MaxTokens)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
