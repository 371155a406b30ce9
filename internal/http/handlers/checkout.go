package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/config"
	"meridastore.com/app/internal/http/cartcookie"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/internal/http/session"
	"meridastore.com/app/internal/mailer"
	"meridastore.com/app/pkg/view"
)

// CheckoutHandler turns the cart into an order. Exactly one attempt per
// POST; on failure the cart is left intact for a retry.
type CheckoutHandler struct {
	API    *api.Client
	Flash  *flash.Codec
	CK     *cartcookie.Codec
	Mail   mailer.Service // nil disables confirmation mail
	SMTP   config.SMTPConfig
	Logger *slog.Logger
}

func NewCheckoutHandler(apiClient *api.Client, fl *flash.Codec, ck *cartcookie.Codec, mail mailer.Service, smtp config.SMTPConfig, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{API: apiClient, Flash: fl, CK: ck, Mail: mail, SMTP: smtp, Logger: logger}
}

// Post handles POST /checkout.
func (h *CheckoutHandler) Post(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		// Nothing is submitted for guests.
		middleware.SetFlashCookie(c, h.Flash, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please log in to continue.",
		})
		c.Redirect(http.StatusFound, "/login?return_to=%2Fcart")
		return
	}

	cart := h.CK.Get(c)
	if cart.Empty() {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	address := strings.TrimSpace(c.PostForm("shipping_address"))
	if address == "" {
		// Local validation failure: no backend call is made.
		render.HTML(c, http.StatusOK, "cart",
			cartPage(c, cart, c.PostForm("shipping_address"), "Please enter a shipping address"))
		return
	}

	// Total matches the displayed one: Σ price×qty rounded to 2 decimals.
	total := math.Round(cart.Subtotal()*100) / 100

	in := api.OrderInput{
		ShippingAddress: address,
		TotalPrice:      total,
	}
	for _, it := range cart.Items {
		in.OrderItems = append(in.OrderItems, api.OrderItem{
			Product:  it.ProductID,
			Name:     it.Name,
			Quantity: it.Qty,
			Price:    it.Price,
			Image:    it.Image,
		})
	}

	order, err := h.API.CreateOrder(c.Request.Context(), u.Token, in)
	if err != nil {
		render.HTML(c, http.StatusOK, "cart",
			cartPage(c, cart, address, publicOr(err, "Failed to place order")))
		return
	}

	h.CK.Clear(c)
	h.sendConfirmation(c.Request.Context(), u, order)

	render.RedirectWithFlash(c, h.Flash, "/orders", view.FlashSuccess, "Order placed successfully!")
}

// sendConfirmation is best effort: a failed mail is logged and never
// shown to the user.
func (h *CheckoutHandler) sendConfirmation(ctx context.Context, u *session.Session, order *api.Order) {
	if h.Mail == nil || u.Email == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your order!\n\n", u.Name)
	for _, it := range order.OrderItems {
		fmt.Fprintf(&b, "  %d x %s = %s\n", it.Quantity, it.Name, view.LineTotal(it.Price, it.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: %s\nShipping to: %s\n", view.Money(order.TotalPrice), order.ShippingAddress)

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	err := h.Mail.Send(sendCtx, mailer.Email{
		FromName: h.SMTP.FromName,
		From:     h.SMTP.From,
		To:       []string{u.Email},
		Subject:  "Your order confirmation",
		TextBody: b.String(),
	})
	if err != nil {
		h.Logger.LogAttrs(ctx, slog.LevelWarn, "order_confirmation_mail_failed",
			slog.String("order_id", order.ID),
			slog.Any("err", err),
		)
	}
}
