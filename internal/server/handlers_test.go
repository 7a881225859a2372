package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliopress/pkg/core/document"
	"foliopress/pkg/store"
	"foliopress/pkg/templates"
)

func newTestAPI(t *testing.T) (chi.Router, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	h := NewHandlers(s, templates.Builtin(), charmlog.New(io.Discard))
	return h.Routes(), s
}

func do(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seed(t *testing.T, s store.Store, c *document.Catalog) {
	t.Helper()
	require.NoError(t, s.Put(context.Background(), c))
}

func TestCatalogCRUD(t *testing.T) {
	r, s := newTestAPI(t)

	rec := do(t, r, http.MethodPost, "/catalogs", map[string]string{"name": "Spring"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created document.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Spring", created.Name)
	assert.Equal(t, 1, created.PageCount())

	rec = do(t, r, http.MethodGet, "/catalogs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/catalogs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []store.Summary `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)

	rec = do(t, r, http.MethodDelete, "/catalogs/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, r, http.MethodGet, "/catalogs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err := s.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateCatalogRejectsBadNames(t *testing.T) {
	r, _ := newTestAPI(t)

	rec := do(t, r, http.MethodPost, "/catalogs", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/catalogs", map[string]string{"nmae": "typo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutCatalogNormalizes(t *testing.T) {
	r, s := newTestAPI(t)
	seed(t, s, catalogWithID("c1", "Old"))

	// Stale z indices and page numbers are repaired before persistence.
	body := map[string]any{
		"name": "Replaced",
		"pages": []map[string]any{{
			"id": "p1", "number": 9, "type": "interior",
			"elements": []map[string]any{
				{"id": "a", "type": "shape", "z": 7},
				{"id": "b", "type": "shape", "z": 2},
			},
		}},
	}
	rec := do(t, r, http.MethodPut, "/catalogs/c1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Replaced", got.Name)
	require.Equal(t, 1, got.PageCount())
	assert.Equal(t, 1, got.Pages[0].Number)
	for i, el := range got.Pages[0].Elements {
		assert.Equal(t, i, el.Z, "z must mirror array order")
	}
}

func TestPutCatalogRejectsInvalid(t *testing.T) {
	r, s := newTestAPI(t)
	seed(t, s, catalogWithID("c1", "Keep"))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"no pages", map[string]any{"name": "n", "pages": []any{}}},
		{"duplicate element ids", map[string]any{
			"name": "n",
			"pages": []map[string]any{
				{"id": "p1", "number": 1, "type": "interior",
					"elements": []map[string]any{{"id": "x", "type": "shape"}}},
				{"id": "p2", "number": 2, "type": "interior",
					"elements": []map[string]any{{"id": "x", "type": "shape"}}},
			},
		}},
		{"element without id", map[string]any{
			"name": "n",
			"pages": []map[string]any{
				{"id": "p1", "number": 1, "type": "interior",
					"elements": []map[string]any{{"id": "", "type": "shape"}}},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPut, "/catalogs/c1", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// The stored catalog is untouched by every rejected PUT.
	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Keep", got.Name)
}

func TestElementMutations(t *testing.T) {
	r, s := newTestAPI(t)
	seed(t, s, catalogWithID("c1", "Doc"))

	rec := do(t, r, http.MethodPost, "/catalogs/c1/pages/0/elements",
		map[string]any{"id": "a", "type": "shape", "x": 10.0, "y": 10.0, "width": 100.0, "height": 50.0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPatch, "/catalogs/c1/pages/0/elements/a",
		map[string]any{"Fill": "#e94560"})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	el := got.Pages[0].Element("a")
	require.NotNil(t, el)
	assert.Equal(t, "#e94560", el.Fill)

	rec = do(t, r, http.MethodPost, "/catalogs/c1/pages/0/elements/a/duplicate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ = s.Get(context.Background(), "c1")
	assert.Len(t, got.Pages[0].Elements, 2)

	rec = do(t, r, http.MethodDelete, "/catalogs/c1/pages/0/elements/a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ = s.Get(context.Background(), "c1")
	assert.Nil(t, got.Pages[0].Element("a"))
}

func TestSetElementOrderReversesUIOrder(t *testing.T) {
	r, s := newTestAPI(t)
	c := catalogWithID("c1", "Doc")
	for _, id := range []string{"a", "b", "c"} {
		el := document.NewElement(document.TypeShape)
		el.ID = id
		c.AddElement(0, el)
	}
	seed(t, s, c)

	// Front-to-back from the layers panel: c frontmost.
	rec := do(t, r, http.MethodPost, "/catalogs/c1/pages/0/order",
		map[string]any{"ids": []string{"c", "a", "b"}})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	var storage []string
	for _, el := range got.Pages[0].Elements {
		storage = append(storage, el.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, storage, "storage is back-to-front")
}

func TestApplyTemplate(t *testing.T) {
	r, s := newTestAPI(t)
	seed(t, s, catalogWithID("c1", "Doc"))

	products := []map[string]any{}
	for _, name := range []string{"Mug", "Bowl", "Vase", "Lamp", "Rug"} {
		products = append(products, map[string]any{"name": name, "price": 10.0, "currency": "€"})
	}
	rec := do(t, r, http.MethodPost, "/catalogs/c1/pages/0/template",
		map[string]any{"template": "grid-2x2", "products": products})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	// 5 products on a 2x2 grid paginate onto a second page.
	assert.Equal(t, 2, got.PageCount())

	rec = do(t, r, http.MethodPost, "/catalogs/c1/pages/0/template",
		map[string]any{"template": "no-such", "products": []any{}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncProducts(t *testing.T) {
	r, s := newTestAPI(t)
	c := catalogWithID("c1", "Doc")
	el := document.NewElement(document.TypeText)
	el.ID = "a"
	el.ProductID = "p1"
	el.Role = document.RolePrice
	c.AddElement(0, el)
	seed(t, s, c)

	rec := do(t, r, http.MethodPost, "/catalogs/c1/sync",
		map[string]any{"products": []map[string]any{{"id": "p1", "name": "Mug", "price": 7.0, "currency": "€"}}})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "€7.00", got.Pages[0].Element("a").Text)
}

func TestListTemplates(t *testing.T) {
	r, _ := newTestAPI(t)
	rec := do(t, r, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []templates.Template `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.NotEmpty(t, list.Items)
}

func TestErrorMapping(t *testing.T) {
	r, _ := newTestAPI(t)

	// Store miss → 404 with a clean message.
	rec := do(t, r, http.MethodGet, "/catalogs/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Malformed body → 400 with a machine-readable code.
	req := httptest.NewRequest(http.MethodPost, "/catalogs", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_INPUT", body.Code)

	// Mutations against a missing catalog → 404, not 500.
	rec = do(t, r, http.MethodPost, "/catalogs/ghost/pages/0/elements",
		map[string]any{"id": "a", "type": "shape"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func catalogWithID(id, name string) *document.Catalog {
	c := document.New(name)
	c.ID = id
	return c
}
