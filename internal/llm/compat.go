package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Compat talks to any OpenAI-compatible chat completions endpoint, for
// self-hosted or proxied models.
type Compat struct {
	client *resty.Client
	model  string
	temp   float64
}

func NewCompat(baseURL, apiKey, model string, temp float64) (*Compat, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base URL is required for the compat provider")
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(baseURL), "/")).
		SetAuthToken(apiKey).
		SetTimeout(50 * time.Second)
	return &Compat{client: client, model: model, temp: temp}, nil
}

func (c *Compat) Generate(ctx context.Context, prompt string) (string, error) {
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       c.model,
			"messages":    []map[string]string{{"role": "user", "content": prompt}},
			"temperature": c.temp,
		}).
		SetResult(&parsed).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion failed status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty chat completion choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
