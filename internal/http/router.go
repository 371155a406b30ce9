package http

import (
	"html/template"
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/config"
	"meridastore.com/app/internal/http/cartcookie"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/handlers"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/internal/http/session"
	"meridastore.com/app/internal/mailer"
	"meridastore.com/app/internal/storage"
	"meridastore.com/app/static"
	"meridastore.com/app/templates"
)

// NewRouter wires the middleware chain, the embedded template set and
// every route. mail may be nil (confirmation emails disabled).
func NewRouter(logger *slog.Logger, cfg config.Config, apiClient *api.Client, store storage.Storage, mail mailer.Service) *gin.Engine {
	flashCodec := flash.NewCodec(cfg.CookieSecret, cfg.FlashCookieName, cfg.SecureCookies)
	sessionCodec := session.NewCodec(cfg.CookieSecret, cfg.SessionCookieName, cfg.SecureCookies, cfg.SessionTTL)
	cartCodec := cartcookie.New(cfg.CookieSecret, cfg.CartCookieName, cfg.SecureCookies)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.SessionMiddleware(sessionCodec))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.CartCount(cartCodec))

	shop := handlers.NewShopHandler(apiClient, flashCodec, logger)
	auth := handlers.NewAuthHandler(apiClient, flashCodec, sessionCodec)
	cart := handlers.NewCartHandler(apiClient, flashCodec, cartCodec)
	checkout := handlers.NewCheckoutHandler(apiClient, flashCodec, cartCodec, mail, cfg.SMTP, logger)
	orders := handlers.NewOrdersHandler(apiClient, flashCodec, logger)
	adminH := handlers.NewAdminHandler(apiClient, flashCodec, store, logger)

	r.GET("/", shop.Home)

	r.GET("/login", auth.Form)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)

	r.GET("/cart", cart.Show)
	r.POST("/cart/add", cart.Add)
	r.POST("/cart/update", cart.Update)
	r.POST("/cart/remove", cart.Remove)
	r.POST("/checkout", checkout.Post)

	r.GET("/orders", middleware.RequireAuth(flashCodec), orders.History)

	admin := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	{
		admin.GET("", adminH.Panel)
		admin.POST("/products", adminH.CreateProduct)
		admin.POST("/products/:id", adminH.UpdateProduct)
		admin.GET("/products/:id/delete", adminH.ConfirmDelete)
		admin.POST("/products/:id/delete", adminH.DeleteProduct)
		admin.POST("/orders/:id/paid", adminH.TogglePaid)
	}

	r.StaticFS("/static", nethttp.FS(static.FS))
	if local, ok := store.(*storage.Local); ok {
		r.Static(local.URLPrefix, local.BaseDir)
	}

	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, nethttp.StatusNotFound, "Page not found")
	})

	return r
}
