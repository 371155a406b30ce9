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

// OrdersHandler serves the order history page, the landing spot after a
// successful checkout. The backend scopes the list to the caller's
// token (admins see everything, customers their own orders).
type OrdersHandler struct {
	API    *api.Client
	Flash  *flash.Codec
	Logger *slog.Logger
}

func NewOrdersHandler(apiClient *api.Client, fl *flash.Codec, logger *slog.Logger) *OrdersHandler {
	return &OrdersHandler{API: apiClient, Flash: fl, Logger: logger}
}

// History handles GET /orders (behind RequireAuth).
func (h *OrdersHandler) History(c *gin.Context) {
	page := view.OrdersPage{
		Title:     "My Orders",
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
	}

	orders, err := h.API.ListOrders(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "list_orders_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		page.Error = "Failed to fetch orders"
		render.HTML(c, http.StatusOK, "orders", page)
		return
	}

	page.Orders = mapOrderCards(orders)
	render.HTML(c, http.StatusOK, "orders", page)
}
