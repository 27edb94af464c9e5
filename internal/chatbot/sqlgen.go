package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashleyliu31/sql-llm-chatbot/internal/chat"
)

// GenerateSQL produces a SQL query for the human input, grounded on the live
// table description and the prior conversation. The string is not validated
// beyond stripping markdown fences; a syntactically broken query simply
// fails at execution time. Callers treat any error here as "no SQL
// produced".
func (b *Chatbot) GenerateSQL(ctx context.Context, humanInput string, history chat.History) (string, error) {
	tableInfo, err := b.catalog.TableInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("describing catalog table: %w", err)
	}

	prompt, err := renderPrompt(sqlGenerationTmpl, promptData{
		HumanInput:  humanInput,
		ChatHistory: history.Render(),
		TableInfo:   tableInfo,
	})
	if err != nil {
		return "", fmt.Errorf("rendering sql generation prompt: %w", err)
	}

	reply, err := b.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating sql: %w", err)
	}

	return stripSQLFences(reply), nil
}

// Models often wrap queries in a markdown code fence despite instructions.
func stripSQLFences(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```sql")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		return strings.TrimSpace(trimmed)
	}
	return trimmed
}
