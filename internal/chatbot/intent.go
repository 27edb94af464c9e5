package chatbot

import (
	"context"
	"fmt"
	"strings"
)

// Intent is the classifier's routing decision for one message. It is derived
// per message and never persisted.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentDatabaseQuestion
	IntentPleasantry
	IntentOutOfScopeLaptopQuestion
	IntentUnrelated
)

func (i Intent) String() string {
	switch i {
	case IntentDatabaseQuestion:
		return "database_question"
	case IntentPleasantry:
		return "pleasantry"
	case IntentOutOfScopeLaptopQuestion:
		return "out_of_scope_laptop_question"
	case IntentUnrelated:
		return "unrelated"
	default:
		return "unknown"
	}
}

// Classify sends the raw message through the taxonomy prompt and maps the
// reply onto the four known labels. Anything the model returns outside
// "1".."4" is IntentUnknown; the orchestrator decides what to do with it.
func (b *Chatbot) Classify(ctx context.Context, humanInput string) (Intent, error) {
	prompt, err := renderPrompt(classificationTmpl, promptData{HumanInput: humanInput})
	if err != nil {
		return IntentUnknown, fmt.Errorf("rendering classification prompt: %w", err)
	}

	reply, err := b.llm.Generate(ctx, prompt)
	if err != nil {
		return IntentUnknown, fmt.Errorf("classifying input: %w", err)
	}

	switch strings.TrimSpace(reply) {
	case "1":
		return IntentDatabaseQuestion, nil
	case "2":
		return IntentPleasantry, nil
	case "3":
		return IntentOutOfScopeLaptopQuestion, nil
	case "4":
		return IntentUnrelated, nil
	default:
		return IntentUnknown, nil
	}
}
