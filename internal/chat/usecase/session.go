package usecase

import (
	"context"

	"intent-chatbot/internal/chat"
	"intent-chatbot/internal/intent"
)

func (uc *implUseCase) Start(ctx context.Context, sessionID string) (chat.StartOutput, error) {
	if err := uc.Reset(ctx, sessionID); err != nil {
		return chat.StartOutput{}, err
	}
	return chat.StartOutput{Greeting: chat.Greeting}, nil
}

// Reset clears the session's history. Resetting an unknown or already empty
// session is not an error.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return chat.ErrEmptySession
	}
	uc.store.Reset(sessionID)
	uc.l.Debugf(ctx, "internal.chat.usecase.Reset: session cleared")
	return nil
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	if sessionID == "" {
		return chat.HistoryOutput{}, chat.ErrEmptySession
	}
	out := chat.HistoryOutput{Window: uc.window, Messages: []string{}}
	if conv, ok := uc.store.Peek(sessionID); ok && conv.Len() > 0 {
		out.Messages = conv.History()
	}
	return out, nil
}

func (uc *implUseCase) Intents(_ context.Context) []intent.Summary {
	return uc.catalog.Summaries()
}
