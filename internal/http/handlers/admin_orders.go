package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/pkg/view"
)

func (h *AdminHandler) ordersTab(c *gin.Context) {
	page := view.AdminPage{
		Title:     "Admin Panel",
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
		Tab:       "orders",
	}

	orders, err := h.API.ListOrders(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "admin_list_orders_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		page.Error = "Failed to fetch orders"
		render.HTML(c, http.StatusOK, "admin", page)
		return
	}

	page.Orders = mapOrderCards(orders)
	render.HTML(c, http.StatusOK, "admin", page)
}

// TogglePaid handles POST /admin/orders/:id/paid. The form carries the
// negated target state computed at render time, so this is a single
// write, no read-modify-write round trip.
func (h *AdminHandler) TogglePaid(c *gin.Context) {
	id := c.Param("id")

	paid, err := strconv.ParseBool(c.PostForm("paid"))
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin?tab=orders", view.FlashError, "Invalid order status")
		return
	}

	if _, err := h.API.SetOrderPaid(c.Request.Context(), middleware.BearerToken(c), id, paid); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin?tab=orders", view.FlashError,
			publicOr(err, "Failed to update order"))
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/admin?tab=orders", view.FlashSuccess, "Order status updated")
}
