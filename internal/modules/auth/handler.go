package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/pkg/render"
	"motoinventory/internal/session"
)

// Handler owns the login page, logout and the theme toggle.
type Handler struct {
	service  *Service
	store    *session.Store
	renderer *render.Renderer
}

func NewHandler(service *Service, store *session.Store, renderer *render.Renderer) *Handler {
	return &Handler{service: service, store: store, renderer: renderer}
}

func (h *Handler) ShowLogin(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "login", "Login", LoginView{})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.HTML(c, http.StatusOK, "login", "Login", LoginView{
			Username: c.PostForm("username"),
			Error:    invalidCredentialsMessage,
		})
		return
	}

	role, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		h.renderer.HTML(c, http.StatusOK, "login", "Login", LoginView{
			Username: req.Username,
			Error:    invalidCredentialsMessage,
		})
		return
	}

	h.store.Login(c, role)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears both stored values; the confirmation prompt lives in the
// header template.
func (h *Handler) Logout(c *gin.Context) {
	h.store.Logout(c)
	c.Redirect(http.StatusFound, "/login")
}

// ToggleTheme flips the persisted dark-theme flag and returns to the page the
// toggle was pressed on.
func (h *Handler) ToggleTheme(c *gin.Context) {
	h.store.ToggleTheme(c)

	target := c.GetHeader("Referer")
	if target == "" {
		target = "/dashboard"
	}
	c.Redirect(http.StatusFound, target)
}
