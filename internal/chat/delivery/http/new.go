package http

import (
	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/chat"
	"intent-chatbot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Home(c *gin.Context)
	Chat(c *gin.Context)
	Reset(c *gin.Context)
	History(c *gin.Context)
	Intents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
