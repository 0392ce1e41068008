package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/catalog"
	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// AdminHandler is the back-office surface: login, the aggregated admin
// grid, the mutation gateway endpoints and the CSV export. Mutations
// are fire-and-forget for UI state — the response is only an ack (or an
// error); the authoritative result arrives through the next snapshot.
type AdminHandler struct {
	Store *catalog.Store
	Repo  domain.CatalogRepository
	Gate  *service.SessionGate
}

type loginPayload struct {
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
}

// ProcessLogin handles POST /api/login.
func (h *AdminHandler) ProcessLogin(e *pbCore.RequestEvent) error {
	var payload loginPayload
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "unable to parse login request"})
	}

	token, err := h.Gate.Login(payload.Password, payload.Remember)
	switch {
	case errors.Is(err, service.ErrPasswordNotSet):
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "admin password not set"})
	case errors.Is(err, service.ErrWrongPassword):
		return e.JSON(http.StatusUnauthorized, map[string]string{"error": "wrong password"})
	case err != nil:
		e.App.Logger().Error("login failed", "error", err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "login unavailable"})
	}

	http.SetCookie(e.Response, h.Gate.Cookie(token, payload.Remember))
	return e.JSON(http.StatusOK, map[string]any{"ok": true, "remember": payload.Remember})
}

// Logout handles POST /api/logout.
func (h *AdminHandler) Logout(e *pbCore.RequestEvent) error {
	http.SetCookie(e.Response, h.Gate.ClearCookie())
	return e.JSON(http.StatusOK, map[string]any{"ok": true})
}

// adminServiceJSON pairs the raw editable service with its profit
// aggregation for the back-office grid.
type adminServiceJSON struct {
	domain.Service
	Report catalog.ServiceReport `json:"report"`
}

// Catalog handles GET /admin/api/catalog.
// Unlike the storefront grid it keeps freshly created, still-unnamed
// services visible.
func (h *AdminHandler) Catalog(e *pbCore.RequestEvent) error {
	state := viewStateFromQuery(e.Request.URL.Query())

	services := catalog.AdminGrid(h.Store.Snapshot(), state)
	rows := make([]adminServiceJSON, 0, len(services))
	for _, svc := range services {
		rows = append(rows, adminServiceJSON{Service: svc, Report: catalog.Report(svc)})
	}

	return e.JSON(http.StatusOK, map[string]any{"services": rows})
}

// ServiceCreate handles POST /admin/api/services.
func (h *AdminHandler) ServiceCreate(e *pbCore.RequestEvent) error {
	svc, err := h.Repo.CreateService()
	if err != nil {
		e.App.Logger().Error("create service failed", "error", err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create service"})
	}
	return e.JSON(http.StatusOK, svc)
}

// ServiceDelete handles DELETE /admin/api/services/{id}.
func (h *AdminHandler) ServiceDelete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if err := h.Repo.DeleteService(id); err != nil {
		return h.storeError(e, "delete service", err)
	}
	return e.JSON(http.StatusOK, map[string]any{"id": id})
}

type fieldPayload struct {
	Field string `json:"field" form:"field"`
	Value any    `json:"value" form:"value"`
}

// ServiceUpdate handles PATCH /admin/api/services/{id}.
func (h *AdminHandler) ServiceUpdate(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	var payload fieldPayload
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "unable to parse field update"})
	}

	if err := h.Repo.UpdateServiceField(id, payload.Field, payload.Value); err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown service field %q", payload.Field)})
		}
		return h.storeError(e, "update service", err)
	}
	return e.JSON(http.StatusOK, map[string]any{"id": id, "field": payload.Field})
}

// PlanAdd handles POST /admin/api/services/{id}/plans.
func (h *AdminHandler) PlanAdd(e *pbCore.RequestEvent) error {
	svc, errResp := h.serviceByID(e)
	if svc == nil {
		return errResp
	}

	if err := h.Repo.ReplacePlans(svc.ID, service.AppendBlankPlan(svc.Plans)); err != nil {
		return h.storeError(e, "add plan", err)
	}
	return e.JSON(http.StatusOK, map[string]any{"id": svc.ID, "plans": len(svc.Plans) + 1})
}

// PlanUpdate handles PATCH /admin/api/services/{id}/plans/{index}.
func (h *AdminHandler) PlanUpdate(e *pbCore.RequestEvent) error {
	svc, errResp := h.serviceByID(e)
	if svc == nil {
		return errResp
	}
	index, ok := h.planIndex(e, svc)
	if !ok {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "plan index out of range"})
	}

	var payload fieldPayload
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "unable to parse field update"})
	}

	plans, err := service.SetPlanField(svc.Plans, index, payload.Field, payload.Value)
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.Repo.ReplacePlans(svc.ID, plans); err != nil {
		return h.storeError(e, "update plan", err)
	}
	return e.JSON(http.StatusOK, map[string]any{"id": svc.ID, "index": index, "field": payload.Field})
}

// PlanRemove handles DELETE /admin/api/services/{id}/plans/{index}.
func (h *AdminHandler) PlanRemove(e *pbCore.RequestEvent) error {
	svc, errResp := h.serviceByID(e)
	if svc == nil {
		return errResp
	}
	index, ok := h.planIndex(e, svc)
	if !ok {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "plan index out of range"})
	}

	plans, err := service.RemovePlanAt(svc.Plans, index)
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.Repo.ReplacePlans(svc.ID, plans); err != nil {
		return h.storeError(e, "remove plan", err)
	}
	return e.JSON(http.StatusOK, map[string]any{"id": svc.ID, "plans": len(plans)})
}

// Export handles GET /admin/api/export: the full snapshot as a CSV
// download, computed locally with no store interaction.
func (h *AdminHandler) Export(e *pbCore.RequestEvent) error {
	data := catalog.CSV(h.Store.Snapshot())
	e.Response.Header().Set("Content-Disposition", `attachment; filename="`+catalog.ExportFilename+`"`)
	return e.Blob(http.StatusOK, "text/csv", []byte(data))
}

// serviceByID resolves the addressed service from the live snapshot —
// the same state the admin UI is looking at. A nil service means the
// error response has already been written.
func (h *AdminHandler) serviceByID(e *pbCore.RequestEvent) (*domain.Service, error) {
	id := e.Request.PathValue("id")
	for _, svc := range h.Store.Snapshot() {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, e.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
}

func (h *AdminHandler) planIndex(e *pbCore.RequestEvent, svc *domain.Service) (int, bool) {
	index, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil || index < 0 || index >= len(svc.Plans) {
		return 0, false
	}
	return index, true
}

func (h *AdminHandler) storeError(e *pbCore.RequestEvent, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return e.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}
	e.App.Logger().Error(op+" failed", "error", err)
	return e.JSON(http.StatusInternalServerError, map[string]string{"error": op + " failed"})
}
