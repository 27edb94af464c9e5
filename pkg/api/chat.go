package api

// ChatRequest carries one user message. The schema tag supports classic
// form posts (the original UI submits a form field named human_input).
type ChatRequest struct {
	Message string `json:"message" schema:"human_input"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

type HistoryTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type HistoryResponse struct {
	Turns []HistoryTurn `json:"turns"`
}
