package motorcycles

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/backend"
	"motoinventory/internal/domain"
	"motoinventory/internal/modules/crud"
	"motoinventory/internal/pkg/render"
)

// Module is the motorcycles screen: the CRUD engine plus the image-aware
// submit rules. Creation always goes multipart (the backend binds request
// params plus the image file); updates go multipart only when a new file was
// chosen, JSON otherwise.
type Module struct {
	resource *backend.Resource[domain.Motorcycle]
	page     *crud.Page[domain.Motorcycle]
}

func New(client *backend.Client, renderer *render.Renderer) *Module {
	m := &Module{resource: backend.NewResource[domain.Motorcycle](client, "/motorcycles")}
	m.page = crud.NewPage(m.config(), renderer)
	return m
}

func (m *Module) Register(rg *gin.RouterGroup) {
	m.page.Register(rg)
}

func (m *Module) config() crud.Config[domain.Motorcycle] {
	return crud.Config[domain.Motorcycle]{
		Slug:              "motorcycles",
		Title:             "Motorcycles",
		AddLabel:          "Add Motorcycle",
		SearchPlaceholder: "Search motorcycles...",
		EmptyMessage:      "No motorcycles found",
		DeleteConfirm:     "Are you sure you want to delete this motorcycle?",
		PluralNoun:        "motorcycles",
		SingularNoun:      "motorcycle",
		ModalNoun:         "Motorcycle",
		Multipart:         true,

		Fields: []crud.Field{
			{Name: "numChassis", Label: "Chassis Number", Kind: "text", Required: true, ReadOnlyOnEdit: true},
			{Name: "model", Label: "Model", Kind: "text"},
			{Name: "brand", Label: "Brand", Kind: "text"},
			{Name: "cylinderSize", Label: "Cylinder Size", Kind: "number", Default: "0"},
			{Name: "isNew", Label: "New", Kind: "checkbox", Default: "true"},
			{Name: "mileageKm", Label: "Mileage (1000 km)", Kind: "number", Default: "0"},
			{Name: "purchasePrice", Label: "Purchase Price", Kind: "number", Default: "0"},
			{Name: "sellPrice", Label: "Sell Price", Kind: "number", Default: "0"},
			{Name: "quantity", Label: "Quantity", Kind: "number", Default: "0"},
			{Name: "image", Label: "Image", Kind: "file"},
			{Name: "existingImage", Kind: "hidden"},
		},
		Columns: []string{
			"Image", "Chassis Number", "Model", "Brand", "Cylinder Size",
			"Status", "Mileage", "Purchase Price", "Sell Price", "Quantity",
		},

		ID:         func(mc domain.Motorcycle) int64 { return mc.ID },
		SearchText: func(mc domain.Motorcycle) []string { return []string{mc.Model, mc.Brand, mc.NumChassis} },
		Cells:      cells,
		FormValues: formValues,
		ImagePreview: func(mc domain.Motorcycle) string {
			return domain.ImageDataURL(mc.Image)
		},

		List:   m.resource.List,
		Create: m.create,
		Update: m.update,
		Delete: m.resource.Delete,
	}
}

func (m *Module) create(ctx context.Context, sub crud.Submission) error {
	return m.resource.CreateWithImage(ctx, wireValues(sub), sub.Image)
}

func (m *Module) update(ctx context.Context, id int64, sub crud.Submission) error {
	if sub.Image != nil {
		return m.resource.UpdateWithImage(ctx, id, wireValues(sub), sub.Image)
	}
	return m.resource.Update(ctx, id, motorcyclePayload{
		NumChassis:    sub.Text("numChassis"),
		Model:         sub.Text("model"),
		Brand:         sub.Text("brand"),
		CylinderSize:  sub.Number("cylinderSize"),
		IsNew:         sub.Bool("isNew"),
		MileageKm:     sub.Number("mileageKm"),
		PurchasePrice: sub.Number("purchasePrice"),
		SellPrice:     sub.Number("sellPrice"),
		Quantity:      sub.Number("quantity"),
		Image:         sub.Text("existingImage"),
	})
}

// wireValues maps the form onto the multipart request params the backend
// expects; the image travels as a file part, never as a field.
func wireValues(sub crud.Submission) url.Values {
	v := url.Values{}
	v.Set("numChassis", sub.Text("numChassis"))
	v.Set("model", sub.Text("model"))
	v.Set("brand", sub.Text("brand"))
	v.Set("cylinderSize", sub.Text("cylinderSize"))
	v.Set("isNew", strconv.FormatBool(sub.Bool("isNew")))
	v.Set("mileageKm", sub.Text("mileageKm"))
	v.Set("purchasePrice", sub.Text("purchasePrice"))
	v.Set("sellPrice", sub.Text("sellPrice"))
	v.Set("quantity", sub.Text("quantity"))
	return v
}

func cells(mc domain.Motorcycle) []crud.Cell {
	status := crud.BadgeCell("Used", "badge-warning")
	if mc.IsNew {
		status = crud.BadgeCell("New", "badge-success")
	}
	return []crud.Cell{
		crud.ImageCell(domain.ImageDataURL(mc.Image), mc.Model),
		crud.TextCell(mc.NumChassis),
		crud.TextCell(mc.Model),
		crud.TextCell(mc.Brand),
		crud.TextCell(crud.FormatNumber(mc.CylinderSize) + " cc"),
		status,
		crud.TextCell(crud.FormatNumber(mc.MileageKm) + " km"),
		crud.TextCell(crud.FormatMoney(mc.PurchasePrice)),
		crud.TextCell(crud.FormatMoney(mc.SellPrice)),
		crud.TextCell(crud.FormatNumber(mc.Quantity)),
	}
}

func formValues(mc domain.Motorcycle) map[string]string {
	return map[string]string{
		"numChassis":    mc.NumChassis,
		"model":         mc.Model,
		"brand":         mc.Brand,
		"cylinderSize":  crud.FormatNumber(mc.CylinderSize),
		"isNew":         strconv.FormatBool(mc.IsNew),
		"mileageKm":     crud.FormatNumber(mc.MileageKm),
		"purchasePrice": crud.FormatNumber(mc.PurchasePrice),
		"sellPrice":     crud.FormatNumber(mc.SellPrice),
		"quantity":      crud.FormatNumber(mc.Quantity),
		"existingImage": mc.Image,
	}
}
