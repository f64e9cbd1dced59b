package http

import (
	"intent-chatbot/internal/chat"
	"intent-chatbot/internal/intent"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string  `json:"-"`
	Message   *string `json:"message"`
}

func (r chatReq) validate() error {
	if r.Message == nil {
		return errMissingMessage
	}
	return nil
}

func (r chatReq) toInput() chat.RespondInput {
	return chat.RespondInput{
		SessionID: r.SessionID,
		Message:   *r.Message,
	}
}

// --- Response DTOs ---

type startResp struct {
	Greeting string `json:"greeting"`
}

type chatResp struct {
	Response    string   `json:"response"`
	Intent      string   `json:"intent,omitempty"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions,omitempty"`
	Fallback    bool     `json:"fallback"`
}

func (h *handler) newChatResp(out chat.RespondOutput) chatResp {
	return chatResp{
		Response:    out.Response,
		Intent:      out.Intent,
		Confidence:  out.Confidence,
		Suggestions: out.Suggestions,
		Fallback:    out.Fallback,
	}
}

type historyResp struct {
	Messages []string `json:"messages"`
	Window   int      `json:"window"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	return historyResp{Messages: out.Messages, Window: out.Window}
}

type intentsResp struct {
	Intents []intent.Summary `json:"intents"`
	Total   int              `json:"total"`
}
