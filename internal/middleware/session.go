package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-chatbot/pkg/log"
)

// ContextKeySessionID is the gin context key holding the caller's session ID.
const ContextKeySessionID = "session_id"

// Session makes sure every request carries a session cookie. Missing or
// malformed cookies are replaced with a fresh random ID. The cookie is
// re-issued on every request so it lives as long as the server-side session.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.session.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.session.CookieName, id, int(m.session.TTL.Seconds()), "/", "", m.session.CookieSecure, true)

		c.Set(ContextKeySessionID, id)
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), id))
		c.Next()
	}
}

// SessionID returns the session ID set by Session, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
