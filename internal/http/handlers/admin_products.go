package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/internal/http/validation"
	"meridastore.com/app/internal/storage"
	"meridastore.com/app/pkg/view"
)

// AdminHandler serves the admin panel: a tabbed page over the products
// and orders collections, with all mutations delegated to the backend
// API and followed by a redirect back to a fresh list fetch.
type AdminHandler struct {
	API    *api.Client
	Flash  *flash.Codec
	Store  storage.Storage
	Logger *slog.Logger
}

func NewAdminHandler(apiClient *api.Client, fl *flash.Codec, store storage.Storage, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{API: apiClient, Flash: fl, Store: store, Logger: logger}
}

// productFormInput mirrors the form fields as text. Numbers are parsed
// separately so a failed parse can re-render exactly what was typed.
type productFormInput struct {
	Name        string `form:"name" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Description string `form:"description" binding:"required"`
	Image       string `form:"image"`
	Category    string `form:"category" binding:"required"`
	Stock       string `form:"stock" binding:"required"`
}

func formFromInput(in productFormInput) view.ProductForm {
	return view.ProductForm{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Stock:       in.Stock,
	}
}

func formFromProduct(p api.Product) view.ProductForm {
	return view.ProductForm{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Stock:       strconv.Itoa(p.Stock),
	}
}

func toProductInput(in productFormInput) (api.ProductInput, validation.FieldErrors) {
	errs := validation.FieldErrors{}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price < 0 {
		errs["price"] = "The price field must be a valid amount."
	}
	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		errs["stock"] = "The stock field must be a whole number."
	}
	if len(errs) > 0 {
		return api.ProductInput{}, errs
	}

	return api.ProductInput{
		Name:        strings.TrimSpace(in.Name),
		Price:       price,
		Description: strings.TrimSpace(in.Description),
		Image:       strings.TrimSpace(in.Image),
		Category:    strings.TrimSpace(in.Category),
		Stock:       stock,
	}, nil
}

// Panel handles GET /admin. Tab and edit target come from the query
// string; every visit re-fetches the active collection.
func (h *AdminHandler) Panel(c *gin.Context) {
	tab := c.DefaultQuery("tab", "products")
	if tab == "orders" {
		h.ordersTab(c)
		return
	}
	h.productsTab(c, view.CreateMode(), view.ProductForm{}, "")
}

func (h *AdminHandler) productsTab(c *gin.Context, mode view.FormMode, form view.ProductForm, errMsg string) {
	page := view.AdminPage{
		Title:     "Admin Panel",
		Flash:     middleware.GetFlash(c),
		Error:     errMsg,
		CartCount: middleware.GetCartCount(c),
		Tab:       "products",
		Mode:      mode,
		Form:      form,
	}

	prods, err := h.API.ListProducts(c.Request.Context())
	if err != nil {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "admin_list_products_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		if page.Error == "" {
			page.Error = "Failed to fetch products"
		}
		render.HTML(c, http.StatusOK, "admin", page)
		return
	}
	page.Products = mapProductRows(prods)

	// Edit mode: selected product's fields are copied into the form.
	if editID := c.Query("edit"); editID != "" && form.Empty() {
		found := false
		for _, p := range prods {
			if p.ID == editID {
				page.Mode = view.EditMode(p.ID)
				page.Form = formFromProduct(p)
				found = true
				break
			}
		}
		if !found {
			page.Error = "Product not found"
		}
	}

	render.HTML(c, http.StatusOK, "admin", page)
}

// CreateProduct handles POST /admin/products. On success the form is
// cleared and the product list re-fetched; on failure the submitted
// values are preserved for correction.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	h.saveProduct(c, view.CreateMode())
}

// UpdateProduct handles POST /admin/products/:id.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	h.saveProduct(c, view.EditMode(c.Param("id")))
}

func (h *AdminHandler) saveProduct(c *gin.Context, mode view.FormMode) {
	var in productFormInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.productsTab(c, mode, formFromInput(in), errs.First())
		return
	}

	pin, errs := toProductInput(in)
	if len(errs) > 0 {
		h.productsTab(c, mode, formFromInput(in), errs.First())
		return
	}

	// Optional image upload: a stored file's URL wins over the URL field.
	if file, err := c.FormFile("image_file"); err == nil && file != nil && file.Size > 0 {
		src, err := file.Open()
		if err != nil {
			h.productsTab(c, mode, formFromInput(in), "Image upload failed")
			return
		}
		res, err := h.Store.Put(c.Request.Context(), src, storage.PutInput{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
		})
		src.Close()
		if err != nil {
			h.productsTab(c, mode, formFromInput(in), "Image upload failed")
			return
		}
		pin.Image = res.URL
		in.Image = res.URL
	}

	token := middleware.BearerToken(c)
	var err error
	var msg string
	if mode.Editing() {
		_, err = h.API.UpdateProduct(c.Request.Context(), token, mode.ProductID(), pin)
		msg = "Product updated successfully"
	} else {
		_, err = h.API.CreateProduct(c.Request.Context(), token, pin)
		msg = "Product added successfully"
	}
	if err != nil {
		h.productsTab(c, mode, formFromInput(in), publicOr(err, "Failed to save product"))
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/admin?tab=products", view.FlashSuccess, msg)
}

// ConfirmDelete handles GET /admin/products/:id/delete: a confirmation
// page, no backend mutation. Declining is just navigating away.
func (h *AdminHandler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")

	prods, err := h.API.ListProducts(c.Request.Context())
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin?tab=products", view.FlashError, "Failed to fetch products")
		return
	}
	for _, p := range prods {
		if p.ID == id {
			rows := mapProductRows([]api.Product{p})
			render.HTML(c, http.StatusOK, "admin_confirm_delete", view.ConfirmDeletePage{
				Title:     "Delete Product",
				Flash:     middleware.GetFlash(c),
				CartCount: middleware.GetCartCount(c),
				Product:   rows[0],
			})
			return
		}
	}
	render.RedirectWithFlash(c, h.Flash, "/admin?tab=products", view.FlashError, "Product not found")
}

// DeleteProduct handles POST /admin/products/:id/delete.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	token := middleware.BearerToken(c)

	if err := h.API.DeleteProduct(c.Request.Context(), token, id); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin?tab=products", view.FlashError,
			publicOr(err, "Failed to delete product"))
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/admin?tab=products", view.FlashSuccess, "Product deleted successfully")
}
