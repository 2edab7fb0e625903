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

type ProjectsHandler struct {
	dal  *dal.DAL
	repo repository.ProjectRepo
}

func NewProjectsHandler(d *dal.DAL, repo repository.ProjectRepo) *ProjectsHandler {
	return &ProjectsHandler{dal: d, repo: repo}
}

func projectFilterFromQuery(r *http.Request) repository.ProjectFilter {
	q := r.URL.Query()
	f := repository.ProjectFilter{
		Sector: q.Get("sector"),
		Status: q.Get("status"),
		Search: q.Get("q"),
	}
	if s := q.Get("year"); s != "" {
		if year, err := strconv.Atoi(s); err == nil {
			f.Year = &year
		}
	}
	if s := q.Get("featured"); s != "" {
		if featured, err := strconv.ParseBool(s); err == nil {
			f.Featured = &featured
		}
	}
	return f
}

// ListProjects is the public portfolio listing.
func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	f := projectFilterFromQuery(r)
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	items := h.dal.Projects(r.Context(), f, limit, offset)
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// ProjectFilters backs the public filter UI: distinct years and sectors.
func (h *ProjectsHandler) ProjectFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, map[string]any{
		"years":   h.dal.ProjectYears(ctx),
		"sectors": h.dal.ProjectSectorTags(ctx),
	})
}

func (h *ProjectsHandler) FeaturedProjects(w http.ResponseWriter, r *http.Request) {
	items := h.dal.FeaturedProjects(r.Context(), queryInt(r, "limit", 0))
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *ProjectsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	p := h.dal.ProjectBySlug(r.Context(), slug)
	if p == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Admin handlers below go straight to the repository: writes must surface
// their errors.

func (h *ProjectsHandler) AdminListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListProjects(r.Context(), projectFilterFromQuery(r), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		logger.Error("admin list projects", "err", err)
		writeError(w, http.StatusInternalServerError, "error listing projects")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if p.Name.Empty() {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.repo.CreateProject(r.Context(), &p)
	if err != nil {
		logger.Error("create project", "err", err)
		writeError(w, http.StatusInternalServerError, "error creating project")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProjectsHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.repo.UpdateProject(r.Context(), id, upd)
	if err != nil {
		logger.Error("update project", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating project")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.repo.DeleteProject(r.Context(), id); err != nil {
		logger.Error("delete project", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
