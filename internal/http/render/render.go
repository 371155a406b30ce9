package render

import (
	"github.com/gin-gonic/gin"
)

// HTML renders a named page template. Template sets are installed on
// the engine at router construction (embedded FS, one {{define}} per page).
func HTML(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}
