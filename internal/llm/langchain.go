package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangChain generates through langchaingo's OpenAI client. Kept as an
// alternate provider for deployments already standardized on it.
type LangChain struct {
	client *lcopenai.LLM
}

func NewLangChain(apiKey, model string) (*LangChain, error) {
	client, err := lcopenai.New(lcopenai.WithToken(apiKey), lcopenai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("could not create OpenAI client: %v", err)
	}
	return &LangChain{client: client}, nil
}

func (l *LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := l.client.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("langchain generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("langchain generation returned no choices")
	}

	return resp.Choices[0].Content, nil
}
