package chatbot

import (
	"context"
	"fmt"
)

// Pleasantry answers small talk in persona. History is not consulted: a
// greeting is a greeting regardless of what came before.
func (b *Chatbot) Pleasantry(ctx context.Context, humanInput string) (string, error) {
	prompt, err := renderPrompt(pleasantryTmpl, promptData{HumanInput: humanInput})
	if err != nil {
		return "", fmt.Errorf("rendering pleasantry prompt: %w", err)
	}

	reply, err := b.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating pleasantry: %w", err)
	}
	return reply, nil
}
