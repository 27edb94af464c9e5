package chatbot

import (
	"context"
	"log/slog"

	"github.com/ashleyliu31/sql-llm-chatbot/internal/chat"
)

const (
	refusalOutOfScope = "Sorry, I can only answer questions about the following aspects of laptops: year of release, storage, memory (RAM), product name, brand, weight, price, graphics (GPU), graphics card integrated or dedicated, screen resolution, processor model, warranty, memory type."
	refusalUnrelated  = "Sorry, I can only answer questions about laptops sold by " + shopName + "."

	// Used when the pleasantry call itself fails; still a greeting, never an
	// error shown to the caller.
	fallbackGreeting = "Hello! I'm " + assistantName + " for " + shopName + ". How can I help you today?"
)

// Result is the outcome of one conversational turn.
type Result struct {
	Response string
	History  chat.History
	Intent   Intent
}

// Turn runs one full exchange: classify, branch, respond. Database questions
// and pleasantries extend the history by exactly one exchange; the refusal
// branches return it untouched. No failure in any collaborator escapes as an
// error; the worst outcome is a canned apology.
func (b *Chatbot) Turn(ctx context.Context, humanInput string, prior chat.History) Result {
	intent, err := b.Classify(ctx, humanInput)
	if err != nil {
		slog.Error("intent classification failed", "error", err)
	}

	switch intent {
	case IntentDatabaseQuestion:
		sqlQuery, err := b.GenerateSQL(ctx, humanInput, prior)
		if err != nil {
			// Fail-soft: a failed generation degrades to "no SQL produced".
			slog.Error("sql generation failed", "error", err)
			sqlQuery = ""
		}
		response := b.Answer(ctx, humanInput, sqlQuery, prior)
		return Result{
			Response: response,
			History:  prior.Append(humanInput, response),
			Intent:   intent,
		}

	case IntentPleasantry:
		response, err := b.Pleasantry(ctx, humanInput)
		if err != nil {
			slog.Error("pleasantry generation failed", "error", err)
			response = fallbackGreeting
		}
		return Result{
			Response: response,
			History:  prior.Append(humanInput, response),
			Intent:   intent,
		}

	case IntentOutOfScopeLaptopQuestion:
		return Result{Response: refusalOutOfScope, History: prior, Intent: intent}

	default:
		// IntentUnrelated, and unrecognized classifier output: the original
		// behavior for an unknown label was to produce nothing, which is not
		// an acceptable contract for a service, so it shares the unrelated
		// refusal.
		if intent == IntentUnknown {
			slog.Warn("classifier returned an unrecognized label, treating as unrelated", "input", humanInput)
		}
		return Result{Response: refusalUnrelated, History: prior, Intent: intent}
	}
}
