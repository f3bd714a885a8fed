// Package crud is the one generic engine behind every entity screen. Every
// screen runs the same list/search/modal/submit cycle; each entity
// contributes a Config (labels, field schema, row rendering, backend
// operations) and the engine owns the cycle itself.
package crud

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/middleware"
	"motoinventory/internal/pkg/render"
)

// Config parameterizes Page for one entity.
type Config[T any] struct {
	Slug              string
	Title             string
	AddLabel          string
	SearchPlaceholder string
	EmptyMessage      string
	DeleteConfirm     string
	PluralNoun        string
	SingularNoun      string
	ModalNoun         string
	Multipart         bool

	Fields  []Field
	Columns []string

	ID           func(T) int64
	SearchText   func(T) []string
	Cells        func(T) []Cell
	FormValues   func(T) map[string]string
	ImagePreview func(T) string

	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, sub Submission) error
	Update func(ctx context.Context, id int64, sub Submission) error
	Delete func(ctx context.Context, id int64) error
}

type Page[T any] struct {
	cfg      Config[T]
	renderer *render.Renderer
}

func NewPage[T any](cfg Config[T], renderer *render.Renderer) *Page[T] {
	return &Page[T]{cfg: cfg, renderer: renderer}
}

func (p *Page[T]) Register(rg *gin.RouterGroup) {
	rg.GET("/"+p.cfg.Slug, p.show)
	rg.POST("/"+p.cfg.Slug, p.create)
	rg.POST("/"+p.cfg.Slug+"/:id", p.update)
	rg.POST("/"+p.cfg.Slug+"/:id/delete", p.remove)
}

func (p *Page[T]) show(c *gin.Context) {
	view, items := p.listView(c)

	switch {
	case c.Query("modal") == "new":
		view.Modal = p.blankModal()
	case c.Query("edit") != "":
		id, err := strconv.ParseInt(c.Query("edit"), 10, 64)
		if err == nil {
			for _, item := range items {
				if p.cfg.ID(item) == id {
					view.Modal = p.editModal(id, p.cfg.FormValues(item), p.preview(item))
					break
				}
			}
		}
	}

	p.renderer.HTML(c, http.StatusOK, "entity", p.cfg.Title, view)
}

func (p *Page[T]) create(c *gin.Context) {
	sub, err := p.parseSubmission(c)
	if err == nil {
		err = p.cfg.Create(c.Request.Context(), sub)
	}
	if err != nil {
		p.logError(c, "create", err)
		view, _ := p.listView(c)
		view.Error = p.saveError()
		modal := p.blankModal()
		p.fillModal(modal, sub.FormMap(), false)
		view.Modal = modal
		p.renderer.HTML(c, http.StatusOK, "entity", p.cfg.Title, view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+p.cfg.Slug)
}

func (p *Page[T]) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/"+p.cfg.Slug)
		return
	}

	sub, err := p.parseSubmission(c)
	if err == nil {
		err = p.cfg.Update(c.Request.Context(), id, sub)
	}
	if err != nil {
		p.logError(c, "update", err)
		view, _ := p.listView(c)
		view.Error = p.saveError()
		modal := p.editModal(id, sub.FormMap(), "")
		view.Modal = modal
		p.renderer.HTML(c, http.StatusOK, "entity", p.cfg.Title, view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+p.cfg.Slug)
}

func (p *Page[T]) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/"+p.cfg.Slug)
		return
	}

	if err := p.cfg.Delete(c.Request.Context(), id); err != nil {
		p.logError(c, "delete", err)
		view, _ := p.listView(c)
		view.Error = fmt.Sprintf("Failed to delete %s. Please try again.", p.cfg.SingularNoun)
		p.renderer.HTML(c, http.StatusOK, "entity", p.cfg.Title, view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+p.cfg.Slug)
}

// listView fetches the collection and builds the table. A fetch failure keeps
// the page alive with an empty table and the inline error message.
func (p *Page[T]) listView(c *gin.Context) (*View, []T) {
	view := &View{
		Slug:              p.cfg.Slug,
		Title:             p.cfg.Title,
		AddLabel:          p.cfg.AddLabel,
		SearchPlaceholder: p.cfg.SearchPlaceholder,
		EmptyMessage:      p.cfg.EmptyMessage,
		DeleteConfirm:     p.cfg.DeleteConfirm,
		Columns:           p.cfg.Columns,
		Query:             c.Query("q"),
	}

	items, err := p.cfg.List(c.Request.Context())
	if err != nil {
		p.logError(c, "fetch", err)
		view.Error = fmt.Sprintf("Failed to fetch %s. Please try again later.", p.cfg.PluralNoun)
		return view, nil
	}

	filtered := Filter(items, view.Query, p.cfg.SearchText)
	for _, item := range filtered {
		view.Rows = append(view.Rows, Row{ID: p.cfg.ID(item), Cells: p.cfg.Cells(item)})
	}
	return view, items
}

// Filter applies the case-insensitive substring search over the designated
// fields only. An empty term returns the input unfiltered.
func Filter[T any](items []T, term string, searchText func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	var out []T
	for _, item := range items {
		for _, hay := range searchText(item) {
			if strings.Contains(strings.ToLower(hay), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (p *Page[T]) blankModal() *Modal {
	m := &Modal{
		Heading:     p.cfg.addHeading(),
		Action:      "/" + p.cfg.Slug,
		SubmitLabel: "Save",
		Enctype:     p.enctype(),
	}
	defaults := map[string]string{}
	for _, f := range p.cfg.Fields {
		defaults[f.Name] = f.Default
	}
	p.buildFields(m, defaults, false, "")
	return m
}

func (p *Page[T]) editModal(id int64, values map[string]string, preview string) *Modal {
	m := &Modal{
		Heading:     p.cfg.editHeading(),
		Action:      fmt.Sprintf("/%s/%d", p.cfg.Slug, id),
		SubmitLabel: "Update",
		Enctype:     p.enctype(),
	}
	p.buildFields(m, values, true, preview)
	return m
}

func (p *Page[T]) fillModal(m *Modal, values map[string]string, editing bool) {
	m.Fields = nil
	p.buildFields(m, values, editing, "")
}

func (p *Page[T]) buildFields(m *Modal, values map[string]string, editing bool, preview string) {
	for _, f := range p.cfg.Fields {
		fv := FieldView{
			Name:         f.Name,
			Label:        f.Label,
			Kind:         f.Kind,
			Value:        values[f.Name],
			Required:     f.Required,
			ReadOnly:     editing && f.ReadOnlyOnEdit,
			Options:      f.Options,
			Pattern:      f.Pattern,
			PatternTitle: f.PatternTitle,
			Min:          f.Min,
			Step:         f.Step,
		}
		if f.Kind == "checkbox" {
			fv.Checked = values[f.Name] == "true"
		}
		if f.Kind == "file" {
			fv.Preview = template.URL(preview)
		}
		m.Fields = append(m.Fields, fv)
	}
}

func (p *Page[T]) preview(item T) string {
	if p.cfg.ImagePreview == nil {
		return ""
	}
	return p.cfg.ImagePreview(item)
}

func (p *Page[T]) enctype() string {
	if p.cfg.Multipart {
		return "multipart/form-data"
	}
	return "application/x-www-form-urlencoded"
}

func (p *Page[T]) saveError() string {
	return fmt.Sprintf("Failed to save %s. Please try again.", p.cfg.SingularNoun)
}

func (c *Config[T]) addHeading() string { return "Add New " + c.ModalNoun }

func (c *Config[T]) editHeading() string { return "Edit " + c.ModalNoun }

func (p *Page[T]) logError(c *gin.Context, op string, err error) {
	log.Printf("page_error page=%s op=%s request_id=%s error=%v",
		p.cfg.Slug, op, middleware.GetRequestID(c), err)
}
