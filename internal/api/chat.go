package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ashleyliu31/sql-llm-chatbot/internal/chat"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/chatbot"
	"github.com/ashleyliu31/sql-llm-chatbot/pkg/api"
)

const (
	historyCookieName      = "chat_history"
	conversationCookieName = "conversation_id"

	// The conversation lives for 15 minutes of inactivity, enforced by the
	// cookie expiry, not by the pipeline.
	historyCookieMaxAge = 900
)

type ChatService struct {
	bot *chatbot.Chatbot
}

func NewChatService(bot *chatbot.Chatbot) *ChatService {
	return &ChatService{bot: bot}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", s.SendMessage)
		r.Post("/erase", s.EraseHistory)
		r.Get("/history", RestHandler(s.GetHistory))
	})
}

// SendMessage runs one conversational turn. The prior history arrives in the
// chat_history cookie and the updated one leaves the same way; the service
// never stores it.
func (s *ChatService) SendMessage(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, CodedErrorf(http.StatusBadRequest, "message must not be empty"))
		return
	}

	prior := historyFromCookie(r)

	result := s.bot.Turn(r.Context(), req.Message, prior)

	ensureConversationCookie(w, r)
	if len(result.History) != len(prior) {
		setHistoryCookie(w, result.History)
	}

	WriteJsonResponse(w, api.ChatResponse{
		Response: result.Response,
		Intent:   result.Intent.String(),
	})
}

// EraseHistory expires the history cookie so the next turn starts clean.
func (s *ChatService) EraseHistory(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     historyCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	WriteJsonResponse(w, struct{}{})
}

// GetHistory returns the structured decoding of the caller's own cookie,
// mostly as a UI aid.
func (s *ChatService) GetHistory(r *http.Request) (any, error) {
	history := historyFromCookie(r)

	resp := api.HistoryResponse{Turns: []api.HistoryTurn{}}
	for _, turn := range history {
		resp.Turns = append(resp.Turns, api.HistoryTurn{Role: turn.Role, Text: turn.Text})
	}
	return resp, nil
}

func historyFromCookie(r *http.Request) chat.History {
	cookie, err := r.Cookie(historyCookieName)
	if err != nil {
		return nil
	}
	return chat.DecodeCarrier(cookie.Value)
}

func setHistoryCookie(w http.ResponseWriter, history chat.History) {
	http.SetCookie(w, &http.Cookie{
		Name:     historyCookieName,
		Value:    history.EncodeCarrier(),
		Path:     "/",
		MaxAge:   historyCookieMaxAge,
		HttpOnly: true,
	})
}

// ensureConversationCookie tags first-time callers with an id used only for
// log correlation; the service keys nothing on it.
func ensureConversationCookie(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(conversationCookieName); err == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     conversationCookieName,
		Value:    uuid.New().String(),
		Path:     "/",
		HttpOnly: true,
	})
}
