package usecase

import (
	"intent-chatbot/internal/chat"
	"intent-chatbot/internal/conversation"
	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/resolver"
	"intent-chatbot/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	store    *conversation.Store
	resolver resolver.IResolver
	catalog  *intent.Catalog
	window   int
	l        log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(store *conversation.Store, res resolver.IResolver, catalog *intent.Catalog, window int, l log.Logger) *implUseCase {
	if window <= 0 {
		window = conversation.DefaultWindow
	}
	return &implUseCase{
		store:    store,
		resolver: res,
		catalog:  catalog,
		window:   window,
		l:        l,
	}
}
