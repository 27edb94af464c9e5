package llm

import (
	"context"
	"fmt"
)

// LLM is the contract with the hosted language model: a filled prompt in,
// generated text out. Calls are all-or-nothing; there is no streaming.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

// New constructs the configured provider.
func New(cfg Config) (LLM, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.Temperature), nil
	case "langchain":
		return NewLangChain(cfg.APIKey, cfg.Model)
	case "compat":
		return NewCompat(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
