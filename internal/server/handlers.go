package server

import (
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"foliopress/pkg/core/binding"
	"foliopress/pkg/core/document"
	"foliopress/pkg/core/layout"
	apperrors "foliopress/pkg/errors"
	catio "foliopress/pkg/io"
	"foliopress/pkg/product"
	"foliopress/pkg/store"
	"foliopress/pkg/templates"
)

// Handlers implements the catalog HTTP API over a store. Each mutating
// request loads the catalog, applies the document operation, and saves it
// back; editing sessions with undo history live in the editor, not here.
type Handlers struct {
	store     store.Store
	templates *templates.Catalog
	logger    *charmlog.Logger
}

// NewHandlers constructs the handler set.
func NewHandlers(s store.Store, t *templates.Catalog, logger *charmlog.Logger) *Handlers {
	return &Handlers{store: s, templates: t, logger: logger}
}

// Routes returns the catalog API router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/catalogs", h.listCatalogs)
	r.Post("/catalogs", h.createCatalog)
	r.Get("/catalogs/{id}", h.getCatalog)
	r.Put("/catalogs/{id}", h.putCatalog)
	r.Delete("/catalogs/{id}", h.deleteCatalog)

	r.Post("/catalogs/{id}/pages", h.addPage)
	r.Post("/catalogs/{id}/pages/{page}/elements", h.addElement)
	r.Patch("/catalogs/{id}/pages/{page}/elements/{el}", h.updateElement)
	r.Delete("/catalogs/{id}/pages/{page}/elements/{el}", h.removeElement)
	r.Post("/catalogs/{id}/pages/{page}/elements/{el}/duplicate", h.duplicateElement)
	r.Post("/catalogs/{id}/pages/{page}/elements/{el}/reorder", h.reorderElement)
	r.Post("/catalogs/{id}/pages/{page}/order", h.setElementOrder)

	r.Post("/catalogs/{id}/pages/{page}/template", h.applyTemplate)
	r.Post("/catalogs/{id}/sync", h.syncProducts)

	r.Get("/templates", h.listTemplates)
	return r
}

// withCatalog runs fn against the stored catalog and persists the result.
func (h *Handlers) withCatalog(w http.ResponseWriter, r *http.Request, fn func(c *document.Catalog) error) {
	id := chi.URLParam(r, "id")
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := fn(c); err != nil {
		respondError(w, err)
		return
	}
	if err := h.store.Put(r.Context(), c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handlers) listCatalogs(w http.ResponseWriter, r *http.Request) {
	sums, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": sums})
}

func (h *Handlers) createCatalog(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := apperrors.ValidateCatalogName(body.Name); err != nil {
		respondError(w, err)
		return
	}

	c := document.New(body.Name)
	if err := h.store.Put(r.Context(), c); err != nil {
		respondError(w, err)
		return
	}
	h.logger.Info("catalog created", "id", c.ID, "name", c.Name)
	respondJSON(w, http.StatusCreated, c)
}

func (h *Handlers) getCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handlers) putCatalog(w http.ResponseWriter, r *http.Request) {
	var c document.Catalog
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	c.ID = chi.URLParam(r, "id")
	if err := catio.Normalize(&c); err != nil {
		respondError(w, apperrors.Wrap(apperrors.ErrCodeInvalidCatalog, err, "invalid catalog body"))
		return
	}
	if err := h.store.Put(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &c)
}

func (h *Handlers) deleteCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) addPage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type document.PageType `json:"type"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.Type == "" {
		body.Type = document.PageInterior
	}
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.AddPage(body.Type)
		return nil
	})
}

func (h *Handlers) addElement(w http.ResponseWriter, r *http.Request) {
	var el document.Element
	if err := decodeJSON(r, &el); err != nil {
		respondError(w, err)
		return
	}
	page := pageIndex(r)
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.AddElement(page, el)
		return nil
	})
}

func (h *Handlers) updateElement(w http.ResponseWriter, r *http.Request) {
	var upd document.Update
	if err := decodeJSON(r, &upd); err != nil {
		respondError(w, err)
		return
	}
	page, el := pageIndex(r), chi.URLParam(r, "el")
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.UpdateElement(page, el, upd)
		return nil
	})
}

func (h *Handlers) removeElement(w http.ResponseWriter, r *http.Request) {
	page, el := pageIndex(r), chi.URLParam(r, "el")
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.RemoveElement(page, el)
		return nil
	})
}

func (h *Handlers) duplicateElement(w http.ResponseWriter, r *http.Request) {
	page, el := pageIndex(r), chi.URLParam(r, "el")
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.DuplicateElement(page, el)
		return nil
	})
}

func (h *Handlers) reorderElement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Direction document.Direction `json:"direction"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	page, el := pageIndex(r), chi.URLParam(r, "el")
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.ReorderElement(page, el, body.Direction)
		return nil
	})
}

func (h *Handlers) setElementOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		// IDs are front-to-back, the order a layers panel shows.
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	page := pageIndex(r)
	h.withCatalog(w, r, func(c *document.Catalog) error {
		c.SetElementOrder(page, body.IDs)
		return nil
	})
}

func (h *Handlers) applyTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Template string            `json:"template"`
		Products []product.Product `json:"products"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	tpl, err := h.templates.Get(body.Template)
	if err != nil {
		respondError(w, err)
		return
	}

	page := pageIndex(r)
	h.withCatalog(w, r, func(c *document.Catalog) error {
		added, err := layout.Apply(c, page, tpl.Grid, tpl.Theme, body.Products)
		if err != nil {
			return err
		}
		h.logger.Info("template applied", "catalog", c.ID, "template", tpl.Name, "pagesAdded", added)
		return nil
	})
}

func (h *Handlers) syncProducts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Products []product.Product `json:"products"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	coll := product.NewCollection(body.Products...)

	h.withCatalog(w, r, func(c *document.Catalog) error {
		n := binding.SyncAll(c, coll)
		h.logger.Info("products synced", "catalog", c.ID, "elements", n)
		return nil
	})
}

func (h *Handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"items": h.templates.List()})
}
