package middleware

import (
	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/session"
)

const ctxKeySession = "session"

// SessionMiddleware decodes the signed session cookie into the request
// context. All persistent identity lives in the backend's bearer token;
// this only makes it (and the user snapshot) reachable per request.
func SessionMiddleware(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := codec.Get(c); ok {
			c.Set(ctxKeySession, s)
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated session from the gin context.
// Returns the session and true, or nil and false when not logged in.
func CurrentUser(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	if !ok || s == nil || s.Token == "" {
		return nil, false
	}
	return s, true
}

// BearerToken returns the session's token, or "" for guests.
func BearerToken(c *gin.Context) string {
	if s, ok := CurrentUser(c); ok {
		return s.Token
	}
	return ""
}
