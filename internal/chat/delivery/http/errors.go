package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/chat"
	"intent-chatbot/pkg/response"
)

var (
	errMissingMessage = errors.New("message is required")
	errInvalidBody    = errors.New("invalid request body")
)

// writeError translates use-case errors into HTTP responses. A failed turn
// still carries a displayable reply.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptySession):
		response.Error(c, chat.ErrEmptySession, nil)
	case errors.Is(err, chat.ErrTurnFailed):
		response.InternalError(c, chatResp{Response: chat.GenericFailure})
	default:
		response.InternalError(c, nil)
	}
}
