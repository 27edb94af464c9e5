package chatbot

import (
	"github.com/ashleyliu31/sql-llm-chatbot/internal/database"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/llm"
)

// Chatbot is the request-classification-and-answer pipeline for the shop's
// conversational agent. It owns no state between turns: the caller supplies
// the prior conversation and receives the extended one back.
type Chatbot struct {
	llm     llm.LLM
	catalog *database.Catalog
}

func New(model llm.LLM, catalog *database.Catalog) *Chatbot {
	return &Chatbot{
		llm:     model,
		catalog: catalog,
	}
}
