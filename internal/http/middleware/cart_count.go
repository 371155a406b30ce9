package middleware

import (
	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCount makes the cart badge count available to every page render.
func CartCount(ck *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cartCountKey, ck.Get(c).Count())
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
