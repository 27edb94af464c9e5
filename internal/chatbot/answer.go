package chatbot

import (
	"context"
	"log/slog"

	"github.com/ashleyliu31/sql-llm-chatbot/internal/chat"
)

// The two apology strings are intentionally different: one marks a query
// that was attempted and failed, the other marks a query that produced no
// data (or was never produced at all). They must not be unified or swapped.
const (
	apologyQueryFailed = "Sorry, we don't have that information in the database."
	apologyNoData      = "Sorry, we don't have that in the database."
)

// Answer executes the generated query and phrases its result. Every failure
// path resolves to a canned apology; this method never errors.
func (b *Chatbot) Answer(ctx context.Context, humanInput, sqlQuery string, history chat.History) string {
	result := ""
	if sqlQuery != "" {
		var err error
		result, err = b.catalog.Run(ctx, sqlQuery)
		if err != nil {
			slog.Error("sql execution failed", "error", err, "query", sqlQuery)
			return apologyQueryFailed
		}
	}

	if result == "" {
		return apologyNoData
	}

	prompt, err := renderPrompt(answerTmpl, promptData{
		HumanInput:  humanInput,
		ChatHistory: history.Render(),
		SQLResult:   result,
	})
	if err != nil {
		slog.Error("rendering answer prompt failed", "error", err)
		return apologyQueryFailed
	}

	reply, err := b.llm.Generate(ctx, prompt)
	if err != nil {
		slog.Error("answer synthesis failed", "error", err)
		return apologyQueryFailed
	}
	return reply
}
