// Package placeholder serves the screens whose entities exist on the backend
// but whose management UI is still under construction: orders, workers,
// deadlines and expenses. No network call is made.
package placeholder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/pkg/render"
)

type View struct {
	Title             string
	AddLabel          string
	SearchPlaceholder string
}

type Handler struct {
	renderer *render.Renderer
}

func NewHandler(renderer *render.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Page returns a handler rendering the under-construction card for one
// entity.
func (h *Handler) Page(title, addLabel, searchPlaceholder string) gin.HandlerFunc {
	view := View{Title: title, AddLabel: addLabel, SearchPlaceholder: searchPlaceholder}
	return func(c *gin.Context) {
		h.renderer.HTML(c, http.StatusOK, "placeholder", title, view)
	}
}
