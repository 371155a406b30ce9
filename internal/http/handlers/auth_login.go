package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/http/flash"
	"meridastore.com/app/internal/http/middleware"
	"meridastore.com/app/internal/http/render"
	"meridastore.com/app/internal/http/session"
	"meridastore.com/app/internal/http/validation"
	"meridastore.com/app/pkg/view"
)

// AuthHandler exchanges credentials for the backend's bearer token and
// keeps it in the signed session cookie. No credential is ever stored.
type AuthHandler struct {
	API     *api.Client
	Flash   *flash.Codec
	Session *session.Codec
}

func NewAuthHandler(apiClient *api.Client, fl *flash.Codec, sc *session.Codec) *AuthHandler {
	return &AuthHandler{API: apiClient, Flash: fl, Session: sc}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	ReturnTo string `form:"return_to"`
}

// Form handles GET /login.
func (h *AuthHandler) Form(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render.HTML(c, http.StatusOK, "login", view.LoginPage{
		Title:     "Log In",
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
		ReturnTo:  c.Query("return_to"),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.HTML(c, http.StatusOK, "login", view.LoginPage{
			Title:     "Log In",
			CartCount: middleware.GetCartCount(c),
			Error:     errs.First(),
			Email:     in.Email,
			ReturnTo:  in.ReturnTo,
		})
		return
	}

	res, err := h.API.Login(c.Request.Context(), api.LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: in.Password,
	})
	if err != nil {
		render.HTML(c, http.StatusOK, "login", view.LoginPage{
			Title:     "Log In",
			CartCount: middleware.GetCartCount(c),
			Error:     publicOr(err, "Invalid email or password"),
			Email:     in.Email,
			ReturnTo:  in.ReturnTo,
		})
		return
	}

	if err := h.Session.Set(c, session.Session{
		Token:   res.Token,
		Name:    res.Name,
		Email:   res.Email,
		IsAdmin: res.IsAdmin,
	}); err != nil {
		middleware.Fail(c, err)
		return
	}

	dest := in.ReturnTo
	// Sadece site içi yollar; açık redirect yok.
	if dest == "" || !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		dest = "/"
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Welcome back, "+res.Name+"!")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Session.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "You have been logged out.")
}
