package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashleyliu31/sql-llm-chatbot/internal/chat"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/database"
)

// scriptedLLM replays canned replies in order and records every prompt it
// was given. An empty reply slot means "return an error for this call".
type scriptedLLM struct {
	replies []string
	errs    []error
	prompts []string
}

func (s *scriptedLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	call := len(s.prompts) - 1
	if call < len(s.errs) && s.errs[call] != nil {
		return "", s.errs[call]
	}
	if call >= len(s.replies) {
		return "", fmt.Errorf("unexpected llm call %d", call)
	}
	return s.replies[call], nil
}

func newTestBot(t *testing.T, model *scriptedLLM) *Chatbot {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())

	return New(model, database.NewCatalog(db))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		reply string
		want  Intent
	}{
		{"1", IntentDatabaseQuestion},
		{"2", IntentPleasantry},
		{"3", IntentOutOfScopeLaptopQuestion},
		{"4", IntentUnrelated},
		{" 2 \n", IntentPleasantry},
		{"category 1", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tc := range cases {
		model := &scriptedLLM{replies: []string{tc.reply}}
		bot := newTestBot(t, model)

		intent, err := bot.Classify(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, tc.want, intent, "classifier reply %q", tc.reply)
	}
}

func TestClassifyPromptContainsInput(t *testing.T) {
	model := &scriptedLLM{replies: []string{"1"}}
	bot := newTestBot(t, model)

	_, err := bot.Classify(context.Background(), "what is the cheapest laptop")
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "what is the cheapest laptop")
	assert.Contains(t, model.prompts[0], "category 4")
}

func TestTurnPleasantry(t *testing.T) {
	greeting := "Hi there! I'm Patra the AI Chatbot for Demo Laptop Shop. How can I help you today?"
	model := &scriptedLLM{replies: []string{"2", greeting}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "hello", nil)

	assert.Equal(t, IntentPleasantry, result.Intent)
	assert.Equal(t, greeting, result.Response)
	assert.Equal(t, chat.History{}.Append("hello", greeting), result.History)

	// the persona prompt names the assistant and the shop
	require.Len(t, model.prompts, 2)
	assert.Contains(t, model.prompts[1], "Patra the AI Chatbot")
	assert.Contains(t, model.prompts[1], "Demo Laptop Shop")
}

func TestTurnPleasantryFailureFallsBackToGreeting(t *testing.T) {
	model := &scriptedLLM{
		replies: []string{"2", ""},
		errs:    []error{nil, errors.New("model unavailable")},
	}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "hello", nil)

	assert.Equal(t, fallbackGreeting, result.Response)
	assert.Len(t, result.History, 2)
}

func TestTurnDatabaseQuestion(t *testing.T) {
	model := &scriptedLLM{replies: []string{
		"1",
		`SELECT "productname", "price" FROM laptops ORDER BY "price" ASC LIMIT 5`,
		`The cheapest laptop we sell is the Asus L210 11.6" at $229.`,
	}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "what is the cheapest laptop", nil)

	assert.Equal(t, IntentDatabaseQuestion, result.Intent)
	assert.Contains(t, result.Response, "Asus L210")
	assert.Equal(t, chat.History{
		{Role: chat.RoleHuman, Text: "what is the cheapest laptop"},
		{Role: chat.RoleAI, Text: result.Response},
	}, result.History)

	require.Len(t, model.prompts, 3)
	// generation prompt carries the schema, the ILIKE convention, and the row cap
	assert.Contains(t, model.prompts[1], "CREATE TABLE laptops (")
	assert.Contains(t, model.prompts[1], "ILIKE")
	assert.Contains(t, model.prompts[1], "at most 5 results")
	// synthesis prompt carries the rendered query result
	assert.Contains(t, model.prompts[2], "Asus L210")
	assert.Contains(t, model.prompts[2], "SQL Query Result:")
}

func TestTurnDatabaseQuestionThreadsHistory(t *testing.T) {
	prior := chat.History{}.Append("which ThinkPad models do you have?", "We carry the ThinkPad X13 Gen.")
	model := &scriptedLLM{replies: []string{
		"1",
		`SELECT "price" FROM laptops WHERE "productname" LIKE '%ThinkPad%'`,
		"The ThinkPad X13 Gen costs $1149.",
	}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "how much does it cost", prior)

	assert.Len(t, result.History, 4)
	// both the generation and synthesis prompts see the prior conversation
	assert.Contains(t, model.prompts[1], "human: which ThinkPad models do you have?")
	assert.Contains(t, model.prompts[2], "ai: We carry the ThinkPad X13 Gen.")
}

func TestTurnGenerationFailure(t *testing.T) {
	model := &scriptedLLM{
		replies: []string{"1", ""},
		errs:    []error{nil, errors.New("model unavailable")},
	}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "what is the cheapest laptop", nil)

	// generation failed, nothing was executed: the no-data apology, not the
	// execution-failure one
	assert.Equal(t, apologyNoData, result.Response)
	assert.Len(t, result.History, 2)
}

func TestTurnExecutionFailure(t *testing.T) {
	model := &scriptedLLM{replies: []string{"1", "SELECT bogus FROM nowhere"}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "what is the cheapest laptop", nil)

	assert.Equal(t, apologyQueryFailed, result.Response)
	assert.Len(t, result.History, 2)
}

func TestTurnEmptyResult(t *testing.T) {
	model := &scriptedLLM{replies: []string{
		"1",
		`SELECT "productname" FROM laptops WHERE "brand" LIKE '%Commodore%'`,
	}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "do you sell Commodore laptops", nil)

	assert.Equal(t, apologyNoData, result.Response)
}

func TestApologyStringsAreDistinct(t *testing.T) {
	assert.NotEqual(t, apologyQueryFailed, apologyNoData)
}

func TestTurnOutOfScope(t *testing.T) {
	model := &scriptedLLM{replies: []string{"3"}}
	bot := newTestBot(t, model)

	prior := chat.History{}.Append("hello", "hi")
	result := bot.Turn(context.Background(), "what color is the ThinkPad", prior)

	assert.Equal(t, IntentOutOfScopeLaptopQuestion, result.Intent)
	assert.True(t, strings.HasPrefix(result.Response, "Sorry, I can only answer questions about the following aspects"))
	assert.Equal(t, prior, result.History)
	assert.Len(t, model.prompts, 1)
}

func TestTurnUnrelated(t *testing.T) {
	model := &scriptedLLM{replies: []string{"4"}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "tell me a joke", nil)

	assert.Equal(t, IntentUnrelated, result.Intent)
	assert.Equal(t, "Sorry, I can only answer questions about laptops sold by Demo Laptop Shop.", result.Response)
	assert.Empty(t, result.History)
}

func TestTurnUnknownLabelRoutesToUnrelatedRefusal(t *testing.T) {
	model := &scriptedLLM{replies: []string{"I think this is category 1"}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "what is the cheapest laptop", nil)

	assert.Equal(t, IntentUnknown, result.Intent)
	assert.Equal(t, refusalUnrelated, result.Response)
	assert.Empty(t, result.History)
}

func TestTurnClassifierErrorRoutesToUnrelatedRefusal(t *testing.T) {
	model := &scriptedLLM{errs: []error{errors.New("model unavailable")}}
	bot := newTestBot(t, model)

	result := bot.Turn(context.Background(), "hello", nil)

	assert.Equal(t, refusalUnrelated, result.Response)
	assert.Empty(t, result.History)
}

func TestStripSQLFences(t *testing.T) {
	assert.Equal(t, "SELECT 1", stripSQLFences("SELECT 1"))
	assert.Equal(t, "SELECT 1", stripSQLFences("```sql\nSELECT 1\n```"))
	assert.Equal(t, "SELECT 1", stripSQLFences("```\nSELECT 1\n```"))
	assert.Equal(t, "SELECT 1", stripSQLFences("  SELECT 1  "))
}
