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

type CareersHandler struct {
	dal  *dal.DAL
	repo repository.CareerRepo
}

func NewCareersHandler(d *dal.DAL, repo repository.CareerRepo) *CareersHandler {
	return &CareersHandler{dal: d, repo: repo}
}

// ListCareers is the public job board: active postings only.
func (h *CareersHandler) ListCareers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.CareerFilter{
		Department:      q.Get("department"),
		Location:        q.Get("location"),
		EmploymentType:  q.Get("employment_type"),
		ExperienceLevel: q.Get("experience_level"),
	}

	items := h.dal.Careers(r.Context(), f)
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *CareersHandler) GetCareer(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	c := h.dal.CareerByCode(r.Context(), code)
	if c == nil {
		writeError(w, http.StatusNotFound, "career not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CareersHandler) UrgentCareers(w http.ResponseWriter, r *http.Request) {
	items := h.dal.UrgentCareers(r.Context(), queryInt(r, "limit", 0))
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// AdminListCareers includes inactive postings.
func (h *CareersHandler) AdminListCareers(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.AllCareers(r.Context())
	if err != nil {
		logger.Error("admin list careers", "err", err)
		writeError(w, http.StatusInternalServerError, "error listing careers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *CareersHandler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var c models.Career
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if c.Title.Empty() {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.repo.CreateCareer(r.Context(), &c)
	if err != nil {
		logger.Error("create career", "err", err)
		writeError(w, http.StatusInternalServerError, "error creating career")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CareersHandler) UpdateCareer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.CareerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.repo.UpdateCareer(r.Context(), id, upd)
	if err != nil {
		logger.Error("update career", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating career")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "career not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CareersHandler) DeleteCareer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.repo.DeleteCareer(r.Context(), id); err != nil {
		logger.Error("delete career", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting career")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
