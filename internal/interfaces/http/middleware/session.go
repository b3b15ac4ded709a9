// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "storefront_session"
	sessionKey    = "session_id"
)

// Session resolves the cart session for a request: an X-Session-ID header
// wins, then the session cookie; otherwise a fresh ID is issued and set as
// a cookie so the cart survives reloads.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			// 30 days, lax, not readable from scripts
			c.SetCookie(sessionCookie, sessionID, 30*24*3600, "/", "", false, true)
		}

		c.Set(sessionKey, sessionID)
		c.Header(sessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID returns the cart session ID resolved for this request
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
