package chat

import (
	"encoding/base64"
	"strings"
)

const (
	RoleHuman = "human"
	RoleAI    = "ai"
)

// Turn is one utterance in a conversation. Turns are never mutated once
// recorded; appending an exchange produces a new history.
type Turn struct {
	Role string
	Text string
}

// History is the ordered list of turns, newest last. The service holds no
// copy of it: the caller carries it between requests and hands it back.
type History []Turn

// Append records one human/ai exchange and returns the extended history.
func (h History) Append(humanInput, aiResponse string) History {
	extended := make(History, 0, len(h)+2)
	extended = append(extended, h...)
	extended = append(extended,
		Turn{Role: RoleHuman, Text: humanInput},
		Turn{Role: RoleAI, Text: aiResponse},
	)
	return extended
}

// Render produces the carrier text form: each turn on its own
// "role: text" line. This is the exact shape embedded in prompts and
// round-tripped through the history cookie.
func (h History) Render() string {
	var b strings.Builder
	for i, turn := range h {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}

// Parse rebuilds a history from its rendered form. Lines that do not start a
// new turn are folded into the text of the current one, so message text
// containing newlines survives the round trip as long as no line of it
// begins with a role prefix. Leading garbage before the first turn is
// dropped.
func Parse(text string) History {
	var h History
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, RoleHuman+": "):
			h = append(h, Turn{Role: RoleHuman, Text: strings.TrimPrefix(line, RoleHuman+": ")})
		case strings.HasPrefix(line, RoleAI+": "):
			h = append(h, Turn{Role: RoleAI, Text: strings.TrimPrefix(line, RoleAI+": ")})
		case len(h) > 0:
			h[len(h)-1].Text += "\n" + line
		}
	}
	return h
}

// EncodeCarrier wraps the rendered history for transport in a cookie value,
// which cannot carry newlines.
func (h History) EncodeCarrier() string {
	if len(h) == 0 {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(h.Render()))
}

// DecodeCarrier is the inverse of EncodeCarrier. A missing or corrupted
// carrier yields an empty history rather than an error: the conversation
// simply starts over.
func DecodeCarrier(value string) History {
	if value == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	return Parse(string(raw))
}
