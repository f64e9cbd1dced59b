package chat

import (
	"context"

	"intent-chatbot/internal/intent"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Respond runs one conversational turn for a session.
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)
	// Start clears (or creates) a session and returns the greeting.
	Start(ctx context.Context, sessionID string) (StartOutput, error)
	Reset(ctx context.Context, sessionID string) error
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	Intents(ctx context.Context) []intent.Summary
}
