package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/http/cartcookie"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/pkg/view"
)

// CartHandler renders the cart and mutates the cart cookie. The cookie
// is the cart store; nothing here touches the backend.
type CartHandler struct {
	API   *api.Client
	Flash *flash.Codec
	CK    *cartcookie.Codec
}

func NewCartHandler(apiClient *api.Client, fl *flash.Codec, ck *cartcookie.Codec) *CartHandler {
	return &CartHandler{API: apiClient, Flash: fl, CK: ck}
}

func cartPage(c *gin.Context, cart *cartcookie.Cart, address, errMsg string) view.CartPage {
	page := view.CartPage{
		Title:     "Shopping Cart",
		Flash:     middleware.GetFlash(c),
		Error:     errMsg,
		CartCount: cart.Count(),
		Total:     view.Money(cart.Subtotal()),
		Address:   address,
	}
	for _, it := range cart.Items {
		page.Items = append(page.Items, view.CartRow{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     view.ImageOr(it.Image, view.PlaceholderItemThumb),
			UnitPrice: view.Money(it.Price),
			Qty:       it.Qty,
			LineTotal: view.LineTotal(it.Price, it.Qty),
		})
	}
	return page
}

// Show handles GET /cart. An empty cart renders the call-to-action
// page; there is no checkout path on it.
func (h *CartHandler) Show(c *gin.Context) {
	cart := h.CK.Get(c)
	render.HTML(c, http.StatusOK, "cart", cartPage(c, cart, "", ""))
}

// Add handles POST /cart/add. The product snapshot (name, price, image)
// is captured now; later product edits won't change this cart entry.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 99 {
			qty = n
		}
	}
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Product not found")
		return
	}

	prods, err := h.API.ListProducts(c.Request.Context())
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Failed to fetch products")
		return
	}

	var found *api.Product
	for i := range prods {
		if prods[i].ID == productID {
			found = &prods[i]
			break
		}
	}
	if found == nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Product not found")
		return
	}

	cart := h.CK.Get(c)
	cart.AddItem(cartcookie.Item{
		ProductID: found.ID,
		Name:      found.Name,
		Price:     found.Price,
		Image:     found.Image,
		Qty:       qty,
	})
	if err := h.CK.Set(c, cart); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Could not update cart")
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart")
}

// Update handles POST /cart/update (qty 0 removes the line).
func (h *CartHandler) Update(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	qty, err := strconv.Atoi(strings.TrimSpace(c.PostForm("qty")))
	if productID == "" || err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update cart")
		return
	}
	if qty > 99 {
		qty = 99
	}

	cart := h.CK.Get(c)
	cart.UpdateQuantity(productID, qty)
	if err := h.CK.Set(c, cart); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update cart")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Cart updated")
}

// Remove handles POST /cart/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Product not found")
		return
	}

	cart := h.CK.Get(c)
	cart.RemoveItem(productID)
	if err := h.CK.Set(c, cart); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update cart")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart")
}
