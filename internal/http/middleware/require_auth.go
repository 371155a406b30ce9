package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/pkg/view"
)

// RequireAuth: giriş yoksa
// - SSR: flash + /login?return_to=... redirect
// - JSON: 401 JSON
func RequireAuth(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}

		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		returnTo := c.Request.URL.RequestURI()
		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please log in to continue.",
		})

		c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
		c.Abort()
	}
}
