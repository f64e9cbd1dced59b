package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"intent-chatbot/internal/middleware"
	"intent-chatbot/pkg/response"
)

// Home godoc
// @Summary     Start a conversation
// @Description Clears the caller's conversation (creating a session cookie if needed) and returns a greeting. Browsers asking for HTML get the chat page.
// @Tags        Chat
// @Produce     json
// @Produce     html
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      / [GET]
func (h *handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Start(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		h.writeError(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Render(http.StatusOK, render.HTML{
			Template: page,
			Name:     pageTemplate,
			Data:     homePage{Title: pageTitle, Greeting: out.Greeting},
		})
		return
	}

	response.OK(c, startResp{Greeting: out.Greeting})
}

// Chat godoc
// @Summary     Send a message
// @Description Runs one turn: the message joins the session context and the bot replies with a matched response or suggestions.
// @Tags        Chat
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       user_input formData string false "Message (form)"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Respond(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newChatResp(out))
}

// Reset godoc
// @Summary     Reset the conversation
// @Description Clears the caller's conversation history. Safe to repeat.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, middleware.SessionID(c)); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// History godoc
// @Summary     Conversation history
// @Description Returns the caller's retained utterances, oldest first, and the context window size.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.History(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(out))
}

// Intents godoc
// @Summary     List intents
// @Description Lists catalog intents with their pattern and response counts.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	summaries := h.uc.Intents(c.Request.Context())
	response.OK(c, intentsResp{Intents: summaries, Total: len(summaries)})
}
