package render

import (
	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/pkg/view"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	HTML(c, status, "error", view.ErrorPage{
		Title:     "Error",
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
		Status:    status,
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
	})
}
