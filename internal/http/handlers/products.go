package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/pkg/view"
)

// ShopHandler serves the public storefront listing.
type ShopHandler struct {
	API    *api.Client
	Flash  *flash.Codec
	Logger *slog.Logger
}

func NewShopHandler(apiClient *api.Client, fl *flash.Codec, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{API: apiClient, Flash: fl, Logger: logger}
}

// Home handles GET /.
func (h *ShopHandler) Home(c *gin.Context) {
	page := view.ShopPage{
		Title:     "Merida Store",
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
	}

	prods, err := h.API.ListProducts(c.Request.Context())
	if err != nil {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "list_products_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		page.Error = "Failed to fetch products"
		render.HTML(c, http.StatusOK, "shop", page)
		return
	}

	for _, p := range prods {
		page.Products = append(page.Products, view.ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Image:       view.ImageOr(p.Image, view.PlaceholderItemThumb),
			Price:       view.Money(p.Price),
			Description: p.Description,
			Category:    p.Category,
			Stock:       p.Stock,
		})
	}
	render.HTML(c, http.StatusOK, "shop", page)
}
