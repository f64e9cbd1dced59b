package usecase

import (
	"context"
	"fmt"

	"intent-chatbot/internal/chat"
)

func (uc *implUseCase) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	if input.SessionID == "" {
		return chat.RespondOutput{}, chat.ErrEmptySession
	}

	conv := uc.store.Get(input.SessionID)
	res, err := uc.resolver.Resolve(ctx, conv, input.Message)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Respond: resolve failed: %v", err)
		return chat.RespondOutput{Response: chat.GenericFailure}, fmt.Errorf("%w: %v", chat.ErrTurnFailed, err)
	}

	uc.l.Infof(ctx, "internal.chat.usecase.Respond: intent=%s confidence=%.3f fallback=%t",
		res.Intent, res.Confidence, res.Fallback)

	return chat.RespondOutput{
		Response:    res.Response,
		Intent:      res.Intent,
		Confidence:  res.Confidence,
		Suggestions: res.Suggestions,
		Fallback:    res.Fallback,
	}, nil
}
