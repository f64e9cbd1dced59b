package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/middleware"
)

// formField is the form field submitted by the HTML chat page.
const formField = "user_input"

// processChatReq accepts either a JSON body {"message": "..."} or a form
// field user_input. An empty message is a valid utterance; a missing one is not.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	req := chatReq{SessionID: middleware.SessionID(c)}

	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, errInvalidBody
		}
		return req, req.validate()
	}

	if msg, ok := c.GetPostForm(formField); ok {
		req.Message = &msg
	}
	return req, req.validate()
}
