package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/awtad/website/internal/dal"
	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
	"github.com/gorilla/mux"
)

// TaxonomyHandler serves the sector and service pages. The two entities
// share one shape, so one handler covers both.
type TaxonomyHandler struct {
	dal      *dal.DAL
	sectors  repository.SectorRepo
	services repository.ServiceRepo
}

func NewTaxonomyHandler(d *dal.DAL, sectors repository.SectorRepo, services repository.ServiceRepo) *TaxonomyHandler {
	return &TaxonomyHandler{dal: d, sectors: sectors, services: services}
}

// ListSectors returns active sectors annotated with project counts.
func (h *TaxonomyHandler) ListSectors(w http.ResponseWriter, r *http.Request) {
	items := h.dal.Sectors(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *TaxonomyHandler) GetSector(w http.ResponseWriter, r *http.Request) {
	s := h.dal.SectorBySlug(r.Context(), mux.Vars(r)["slug"])
	if s == nil {
		writeError(w, http.StatusNotFound, "sector not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *TaxonomyHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	items := h.dal.Services(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *TaxonomyHandler) GetService(w http.ResponseWriter, r *http.Request) {
	s := h.dal.ServiceBySlug(r.Context(), mux.Vars(r)["slug"])
	if s == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *TaxonomyHandler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var s models.Sector
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if s.Name.Empty() {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.sectors.CreateSector(r.Context(), &s)
	if err != nil {
		logger.Error("create sector", "err", err)
		writeError(w, http.StatusInternalServerError, "error creating sector")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TaxonomyHandler) UpdateSector(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.SectorUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.sectors.UpdateSector(r.Context(), id, upd)
	if err != nil {
		logger.Error("update sector", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating sector")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "sector not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TaxonomyHandler) DeleteSector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.sectors.DeleteSector(r.Context(), id); err != nil {
		logger.Error("delete sector", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting sector")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *TaxonomyHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var s models.Service
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if s.Name.Empty() {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.services.CreateService(r.Context(), &s)
	if err != nil {
		logger.Error("create service", "err", err)
		writeError(w, http.StatusInternalServerError, "error creating service")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TaxonomyHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.services.UpdateService(r.Context(), id, upd)
	if err != nil {
		logger.Error("update service", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating service")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TaxonomyHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.services.DeleteService(r.Context(), id); err != nil {
		logger.Error("delete service", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting service")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
