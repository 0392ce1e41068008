package handler

import (
	"net/http"

	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/adapter/repository"
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/catalog"
	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// PublicHandler serves the storefront read surface: the filtered grid
// and the selected-service detail projection. Everything is derived
// from the live snapshot; no request ever hits the document store.
type PublicHandler struct {
	Store *catalog.Store
	Admin domain.AdminRepository
}

// Catalog handles GET /api/catalog.
// Query parameters carry the view state; the optional "service"
// parameter is the shareable-link reference (record id or exact name)
// and resolves to the pre-selected detail id.
func (h *PublicHandler) Catalog(e *pbCore.RequestEvent) error {
	state := viewStateFromQuery(e.Request.URL.Query())
	snapshot := h.Store.Snapshot()

	selected := ""
	if svc, ok := catalog.Resolve(snapshot, state.Service); ok {
		selected = svc.ID
	}

	return e.JSON(http.StatusOK, map[string]any{
		"services": catalog.Grid(snapshot, state),
		"selected": selected,
	})
}

// ServiceDetail handles GET /api/catalog/{id}.
// The path segment follows the shareable-link convention too, so both
// /api/catalog/abc123 and /api/catalog/Netflix work.
func (h *PublicHandler) ServiceDetail(e *pbCore.RequestEvent) error {
	state := viewStateFromQuery(e.Request.URL.Query())

	svc, ok := catalog.Resolve(h.Store.Snapshot(), e.Request.PathValue("id"))
	if !ok {
		return e.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}

	return e.JSON(http.StatusOK, catalog.Detail(svc, state, h.exchangeRate()))
}

func (h *PublicHandler) exchangeRate() float64 {
	cfg, err := h.Admin.Config()
	if err != nil {
		return repository.DefaultExchangeRate
	}
	return cfg.ExchangeRate
}
