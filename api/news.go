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

type NewsHandler struct {
	dal  *dal.DAL
	repo repository.NewsRepo
}

func NewNewsHandler(d *dal.DAL, repo repository.NewsRepo) *NewsHandler {
	return &NewsHandler{dal: d, repo: repo}
}

// ListNews is the public feed: published articles only.
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.NewsFilter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Limit:    queryInt(r, "limit", 0),
	}

	items := h.dal.News(r.Context(), f)
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	n := h.dal.NewsBySlug(r.Context(), slug)
	if n == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// AdminListNews includes drafts.
func (h *NewsHandler) AdminListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.AllNews(r.Context())
	if err != nil {
		logger.Error("admin list news", "err", err)
		writeError(w, http.StatusInternalServerError, "error listing news")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var n models.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if n.Title.Empty() {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.repo.CreateNews(r.Context(), &n)
	if err != nil {
		logger.Error("create news", "err", err)
		writeError(w, http.StatusInternalServerError, "error creating article")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.NewsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.repo.UpdateNews(r.Context(), id, upd)
	if err != nil {
		logger.Error("update news", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating article")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.repo.DeleteNews(r.Context(), id); err != nil {
		logger.Error("delete news", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting article")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
