package crud

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoinventory/internal/pkg/render"
	"motoinventory/internal/session"
)

type widget struct {
	ID    int64
	Name  string
	Brand string
	Price float64
}

// widgetStore is the Config backend for the engine tests: a slice plus
// switches to force each operation to fail.
type widgetStore struct {
	items []widget
	next  int64

	failList   bool
	failCreate bool
	failDelete bool

	lastCreate Submission
	lastUpdate Submission
	lastID     int64
}

func (s *widgetStore) list(context.Context) ([]widget, error) {
	if s.failList {
		return nil, errors.New("backend down")
	}
	return s.items, nil
}

func (s *widgetStore) create(_ context.Context, sub Submission) error {
	if s.failCreate {
		return errors.New("backend down")
	}
	s.lastCreate = sub
	s.next++
	s.items = append(s.items, widget{
		ID:    s.next,
		Name:  sub.Text("name"),
		Brand: sub.Text("brand"),
		Price: sub.Number("price"),
	})
	return nil
}

func (s *widgetStore) update(_ context.Context, id int64, sub Submission) error {
	s.lastID = id
	s.lastUpdate = sub
	return nil
}

func (s *widgetStore) remove(_ context.Context, id int64) error {
	if s.failDelete {
		return errors.New("backend down")
	}
	s.lastID = id
	return nil
}

func widgetConfig(store *widgetStore) Config[widget] {
	return Config[widget]{
		Slug:              "widgets",
		Title:             "Widgets",
		AddLabel:          "Add Widget",
		SearchPlaceholder: "Search widgets...",
		EmptyMessage:      "No widgets found",
		DeleteConfirm:     "Are you sure you want to delete this widget?",
		PluralNoun:        "widgets",
		SingularNoun:      "widget",
		ModalNoun:         "Widget",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: "text", Required: true, ReadOnlyOnEdit: true},
			{Name: "brand", Label: "Brand", Kind: "text"},
			{Name: "price", Label: "Price", Kind: "number"},
			{Name: "featured", Label: "Featured", Kind: "checkbox", Default: "true"},
		},
		Columns: []string{"Name", "Brand", "Price"},
		ID:      func(w widget) int64 { return w.ID },
		SearchText: func(w widget) []string {
			return []string{w.Name, w.Brand}
		},
		Cells: func(w widget) []Cell {
			return []Cell{
				TextCell(w.Name),
				TextCell(w.Brand),
				TextCell(FormatMoney(w.Price)),
			}
		},
		FormValues: func(w widget) map[string]string {
			return map[string]string{
				"name":  w.Name,
				"brand": w.Brand,
				"price": FormatNumber(w.Price),
			}
		},
		List:   store.list,
		Create: store.create,
		Update: store.update,
		Delete: store.remove,
	}
}

func widgetRouter(t *testing.T, store *widgetStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := render.New(session.NewStore())
	require.NoError(t, err)

	r := gin.New()
	NewPage(widgetConfig(store), renderer).Register(&r.RouterGroup)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func postURLEncoded(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func seeded() *widgetStore {
	return &widgetStore{
		next: 2,
		items: []widget{
			{ID: 1, Name: "Sprocket", Brand: "Acme", Price: 19.5},
			{ID: 2, Name: "Gasket", Brand: "Bolton", Price: 4},
		},
	}
}

func TestShowRendersRows(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Sprocket")
	assert.Contains(t, body, "Gasket")
	assert.Contains(t, body, "$19.50")
	assert.Contains(t, body, "Add Widget")
	assert.NotContains(t, body, "No widgets found")
}

func TestShowSearchFiltersRows(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets?q=sprock")

	body := w.Body.String()
	assert.Contains(t, body, "Sprocket")
	assert.NotContains(t, body, "Gasket")
}

func TestShowSearchNoMatchShowsEmptyMessage(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets?q=zzz")

	assert.Contains(t, w.Body.String(), "No widgets found")
}

func TestShowFetchFailureKeepsPageAlive(t *testing.T) {
	store := seeded()
	store.failList = true
	r := widgetRouter(t, store)

	w := get(r, "/widgets")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Failed to fetch widgets. Please try again later.")
	assert.NotContains(t, body, "Sprocket")
}

func TestShowNewModal(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets?modal=new")

	body := w.Body.String()
	assert.Contains(t, body, "Add New Widget")
	// checkbox default carries through to the blank form
	assert.Contains(t, body, "checked")
}

func TestShowEditModalPrefillsAndLocksNaturalKey(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets?edit=1")

	body := w.Body.String()
	assert.Contains(t, body, "Edit Widget")
	assert.Contains(t, body, `value="Sprocket"`)
	assert.Contains(t, body, `value="19.5"`)
	assert.Contains(t, body, "readonly")
	assert.Contains(t, body, `action="/widgets/1"`)
}

func TestShowEditUnknownIDShowsNoModal(t *testing.T) {
	r := widgetRouter(t, seeded())

	w := get(r, "/widgets?edit=99")

	assert.NotContains(t, w.Body.String(), "Edit Widget")
}

func TestCreateRedirectsOnSuccess(t *testing.T) {
	store := seeded()
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets", url.Values{
		"name":  {"Chain"},
		"brand": {"Acme"},
		"price": {"32.5"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/widgets", w.Header().Get("Location"))
	require.Equal(t, "Chain", store.lastCreate.Text("name"))
	require.InDelta(t, 32.5, store.lastCreate.Number("price"), 0.001)
	// unticked checkbox normalizes to false rather than going missing
	require.False(t, store.lastCreate.Bool("featured"))
}

func TestCreateFailureReopensModalWithValues(t *testing.T) {
	store := seeded()
	store.failCreate = true
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets", url.Values{
		"name":  {"Chain"},
		"brand": {"Acme"},
		"price": {"32.5"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Failed to save widget. Please try again.")
	assert.Contains(t, body, "Add New Widget")
	assert.Contains(t, body, `value="Chain"`)
}

func TestCreateValidationFailureNeverReachesBackend(t *testing.T) {
	store := seeded()
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets", url.Values{
		"name":  {"Chain"},
		"price": {"not-a-number"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save widget. Please try again.")
	require.Empty(t, store.lastCreate.Fields)
}

func TestUpdateRedirectsOnSuccess(t *testing.T) {
	store := seeded()
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets/2", url.Values{
		"name":  {"Gasket"},
		"brand": {"Bolton"},
		"price": {"5"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, int64(2), store.lastID)
	require.Equal(t, "5", store.lastUpdate.Text("price"))
}

func TestUpdateBadIDJustRedirects(t *testing.T) {
	store := seeded()
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets/abc", url.Values{"name": {"x"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Zero(t, store.lastID)
}

func TestDeleteRedirectsOnSuccess(t *testing.T) {
	store := seeded()
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets/1/delete", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/widgets", w.Header().Get("Location"))
	require.Equal(t, int64(1), store.lastID)
}

func TestDeleteFailureShowsInlineError(t *testing.T) {
	store := seeded()
	store.failDelete = true
	r := widgetRouter(t, store)

	w := postURLEncoded(r, "/widgets/1/delete", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to delete widget. Please try again.")
}

func TestFilterMatchesDesignatedFieldsOnly(t *testing.T) {
	items := []widget{
		{ID: 1, Name: "Sprocket", Brand: "Acme"},
		{ID: 2, Name: "Gasket", Brand: "Bolton"},
	}
	search := func(w widget) []string { return []string{w.Name, w.Brand} }

	require.Len(t, Filter(items, "ACME", search), 1)
	require.Len(t, Filter(items, "", search), 2)
	require.Empty(t, Filter(items, strconv.FormatInt(items[0].ID, 10), search))
}
