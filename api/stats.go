package api

import (
	"net/http"

	"github.com/awtad/website/internal/dal"
	"github.com/awtad/website/pkg/repository"
)

// StatsHandler serves the admin dashboard aggregates and sitewide search.
type StatsHandler struct {
	dal       *dal.DAL
	projects  repository.ProjectRepo
	careers   repository.CareerRepo
	inquiries repository.InquiryRepo
}

func NewStatsHandler(d *dal.DAL, projects repository.ProjectRepo, careers repository.CareerRepo, inquiries repository.InquiryRepo) *StatsHandler {
	return &StatsHandler{dal: d, projects: projects, careers: careers, inquiries: inquiries}
}

// AdminStats aggregates across all entities in one response. Errors are not
// swallowed here; a broken dashboard must say so.
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectStats, err := h.projects.ProjectStats(ctx)
	if err != nil {
		logger.Error("project stats", "err", err)
		writeError(w, http.StatusInternalServerError, "error loading stats")
		return
	}
	careerStats, err := h.careers.CareerStats(ctx)
	if err != nil {
		logger.Error("career stats", "err", err)
		writeError(w, http.StatusInternalServerError, "error loading stats")
		return
	}
	inquiryStats, err := h.inquiries.InquiryStats(ctx)
	if err != nil {
		logger.Error("inquiry stats", "err", err)
		writeError(w, http.StatusInternalServerError, "error loading stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"projects":  projectStats,
		"careers":   careerStats,
		"inquiries": inquiryStats,
	})
}

// Search is the public sitewide search over projects and careers.
func (h *StatsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query")
		return
	}
	writeJSON(w, http.StatusOK, h.dal.Search(r.Context(), q))
}
