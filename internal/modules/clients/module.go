package clients

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/backend"
	"motoinventory/internal/domain"
	"motoinventory/internal/modules/crud"
	"motoinventory/internal/pkg/render"
)

// Module is the clients screen. JSON only, no image.
type Module struct {
	resource *backend.Resource[domain.Client]
	page     *crud.Page[domain.Client]
}

func New(client *backend.Client, renderer *render.Renderer) *Module {
	m := &Module{resource: backend.NewResource[domain.Client](client, "/clients")}
	m.page = crud.NewPage(m.config(), renderer)
	return m
}

func (m *Module) Register(rg *gin.RouterGroup) {
	m.page.Register(rg)
}

func (m *Module) config() crud.Config[domain.Client] {
	return crud.Config[domain.Client]{
		Slug:              "clients",
		Title:             "Clients",
		AddLabel:          "Add Client",
		SearchPlaceholder: "Search clients...",
		EmptyMessage:      "No clients found",
		DeleteConfirm:     "Are you sure you want to delete this client?",
		PluralNoun:        "clients",
		SingularNoun:      "client",
		ModalNoun:         "Client",

		Fields: []crud.Field{
			{
				Name: "clientType", Label: "Client Type", Kind: "select", Required: true,
				Options: []string{domain.ClientTypeIndividual, domain.ClientTypeBusiness},
			},
			{
				Name: "phoneNumber", Label: "Phone Number", Kind: "text", Required: true,
				Pattern: "[0-9]{10}", PatternTitle: "Phone number must be 10 digits",
			},
			{Name: "identityNumber", Label: "Identity Number (CNE/Passport)", Kind: "text", Required: true},
		},
		Columns: []string{"ID", "Client Type", "Phone Number", "Identity Number"},

		ID: func(cl domain.Client) int64 { return cl.ID },
		SearchText: func(cl domain.Client) []string {
			return []string{cl.ClientType, cl.PhoneNumber, cl.IdentityNumber}
		},
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

func payload(sub crud.Submission) clientPayload {
	return clientPayload{
		ClientType:     sub.Text("clientType"),
		PhoneNumber:    sub.Text("phoneNumber"),
		IdentityNumber: sub.Text("identityNumber"),
	}
}

func cells(cl domain.Client) []crud.Cell {
	return []crud.Cell{
		crud.TextCell(strconv.FormatInt(cl.ID, 10)),
		crud.TextCell(cl.ClientType),
		crud.TextCell(cl.PhoneNumber),
		crud.TextCell(cl.IdentityNumber),
	}
}

func formValues(cl domain.Client) map[string]string {
	return map[string]string{
		"clientType":     cl.ClientType,
		"phoneNumber":    cl.PhoneNumber,
		"identityNumber": cl.IdentityNumber,
	}
}
