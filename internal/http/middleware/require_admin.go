package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/pkg/view"
)

// RequireAdmin:
// - login yoksa: login'e redirect (return_to ile) + flash
// - login var ama admin değilse: home redirect + flash, JSON -> 403
//
// Her /admin isteğinde çalışır; panel markup'ı admin olmayana hiç gitmez.
func RequireAdmin(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
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
				Message: "Please log in to access the admin panel.",
			})
			c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
			c.Abort()
			return
		}

		if !u.IsAdmin {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}

			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashError,
				Message: "Access denied. Admin only.",
			})
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
