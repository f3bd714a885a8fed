package pieces

import (
	"context"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/backend"
	"motoinventory/internal/domain"
	"motoinventory/internal/modules/crud"
	"motoinventory/internal/pkg/render"
)

// Module is the spare parts screen. Parts submit as JSON only; the image is a
// plain URL field in the form and renders as-is in the table.
type Module struct {
	resource *backend.Resource[domain.Piece]
	page     *crud.Page[domain.Piece]
}

func New(client *backend.Client, renderer *render.Renderer) *Module {
	m := &Module{resource: backend.NewResource[domain.Piece](client, "/pieces")}
	m.page = crud.NewPage(m.config(), renderer)
	return m
}

func (m *Module) Register(rg *gin.RouterGroup) {
	m.page.Register(rg)
}

func (m *Module) config() crud.Config[domain.Piece] {
	return crud.Config[domain.Piece]{
		Slug:              "pieces",
		Title:             "Motorcycle Parts",
		AddLabel:          "Add Part",
		SearchPlaceholder: "Search parts...",
		EmptyMessage:      "No parts found",
		DeleteConfirm:     "Are you sure you want to delete this piece?",
		PluralNoun:        "pieces",
		SingularNoun:      "piece",
		ModalNoun:         "Part",

		Fields: []crud.Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "description", Label: "Description", Kind: "textarea"},
			{Name: "purchasePrice", Label: "Purchase Price", Kind: "number", Required: true, Min: "0", Step: "0.01", Default: "0"},
			{Name: "sellPrice", Label: "Sell Price", Kind: "number", Required: true, Min: "0", Step: "0.01", Default: "0"},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true, Min: "0", Default: "0"},
			{Name: "image", Label: "Image URL", Kind: "text"},
		},
		Columns: []string{"Image", "Name", "Description", "Purchase Price", "Sell Price", "Quantity"},

		ID:         func(p domain.Piece) int64 { return p.ID },
		SearchText: func(p domain.Piece) []string { return []string{p.Name, p.Description} },
		Cells:      cells,
		FormValues: formValues,

		List:   m.resource.List,
		Create: m.create,
		Update: m.update,
		Delete: m.resource.Delete,
	}
}

func (m *Module) create(ctx context.Context, sub crud.Submission) error {
	return m.resource.Create(ctx, payload(sub))
}

func (m *Module) update(ctx context.Context, id int64, sub crud.Submission) error {
	return m.resource.Update(ctx, id, payload(sub))
}

func payload(sub crud.Submission) piecePayload {
	return piecePayload{
		Name:          sub.Text("name"),
		Description:   sub.Text("description"),
		PurchasePrice: sub.Number("purchasePrice"),
		SellPrice:     sub.Number("sellPrice"),
		Quantity:      sub.Number("quantity"),
		Image:         sub.Text("image"),
	}
}

func cells(p domain.Piece) []crud.Cell {
	return []crud.Cell{
		crud.ImageCell(p.Image, p.Name),
		crud.TextCell(p.Name),
		crud.TextCell(p.Description),
		crud.TextCell(crud.FormatMoney(p.PurchasePrice)),
		crud.TextCell(crud.FormatMoney(p.SellPrice)),
		crud.TextCell(crud.FormatNumber(p.Quantity)),
	}
}

func formValues(p domain.Piece) map[string]string {
	return map[string]string{
		"name":          p.Name,
		"description":   p.Description,
		"purchasePrice": crud.FormatNumber(p.PurchasePrice),
		"sellPrice":     crud.FormatNumber(p.SellPrice),
		"quantity":      crud.FormatNumber(p.Quantity),
		"image":         p.Image,
	}
}
