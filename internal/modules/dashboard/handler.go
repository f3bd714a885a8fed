package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/pkg/render"
)

// Point is one entry of an illustrative chart series.
type Point struct {
	Name  string
	Value int
}

// The chart panels are static illustrations; only the stat cards are live.
var (
	salesSeries = []Point{
		{"Jan", 4000}, {"Feb", 3000}, {"Mar", 5000}, {"Apr", 2780},
		{"May", 1890}, {"Jun", 2390}, {"Jul", 3490},
	}
	inventorySeries = []Point{
		{"Motorcycles", 400}, {"Pieces", 300},
	}
	expenseSeries = []Point{
		{"CARBURANT", 2400}, {"COMMISSION", 1398}, {"DELIVERY", 9800},
		{"PAPERS", 3908}, {"FIXING", 4800}, {"BILL", 3800}, {"OTHER", 4300},
	}
)

type View struct {
	Stats           Stats
	SalesSeries     []Point
	InventorySeries []Point
	ExpenseSeries   []Point
}

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (h *Handler) Show(c *gin.Context) {
	view := View{
		Stats:           h.service.Stats(c.Request.Context()),
		SalesSeries:     salesSeries,
		InventorySeries: inventorySeries,
		ExpenseSeries:   expenseSeries,
	}
	h.renderer.HTML(c, http.StatusOK, "dashboard", "Dashboard", view)
}
