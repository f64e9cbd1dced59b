package http

import (
	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/middleware"
)

// RegisterRoutes maps the browser-facing routes on root and the JSON API on
// api. Every chat route needs a session, and turns are rate limited.
func RegisterRoutes(root gin.IRouter, api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	root.GET("/", mw.Session(), h.Home)
	root.POST("/chat", mw.RateLimit(), mw.Session(), h.Chat)

	chatGroup := api.Group("/chat", mw.Session())
	{
		chatGroup.POST("", mw.RateLimit(), h.Chat)
		chatGroup.POST("/reset", h.Reset)
		chatGroup.GET("/history", h.History)
	}
	api.GET("/intents", h.Intents)
}
