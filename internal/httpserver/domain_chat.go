package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "intent-chatbot/internal/chat/delivery/http"
)

// setupChatDomain registers the browser routes (/ and /chat) and the
// /api/v1/chat JSON routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	chatHTTP.RegisterRoutes(srv.gin, api, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
