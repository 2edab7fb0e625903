package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/awtad/website/internal/email"
	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type ApplicationsHandler struct {
	repo     repository.ApplicationRepo
	careers  repository.CareerRepo
	notifier *email.Notifier
	adminTo  string
	validate *validator.Validate
}

func NewApplicationsHandler(repo repository.ApplicationRepo, careers repository.CareerRepo, notifier *email.Notifier, adminTo string) *ApplicationsHandler {
	return &ApplicationsHandler{
		repo:     repo,
		careers:  careers,
		notifier: notifier,
		adminTo:  adminTo,
		validate: validator.New(),
	}
}

// SubmitApplication is the public apply endpoint. A caller-supplied status
// is ignored; the stored application is always pending. The notification is
// fire-and-forget: its failure never fails the submission.
func (h *ApplicationsHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var a models.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid application: "+err.Error())
		return
	}

	ctx := r.Context()
	career, err := h.careers.GetCareerByID(ctx, a.CareerID)
	if err != nil {
		logger.Error("career lookup for application", "career_id", a.CareerID, "err", err)
		writeError(w, http.StatusInternalServerError, "error submitting application")
		return
	}
	if career == nil || !career.IsActive {
		writeError(w, http.StatusBadRequest, "career not open for applications")
		return
	}

	created, err := h.repo.SubmitApplication(ctx, &a)
	if err != nil {
		logger.Error("submit application", "err", err)
		writeError(w, http.StatusInternalServerError, "error submitting application")
		return
	}

	if h.adminTo != "" {
		h.notifier.Send(ctx, email.Options{
			To:       []string{h.adminTo},
			Subject:  "New job application: " + career.Title.EN,
			Template: "application",
			Data: map[string]any{
				"Name":              created.Name,
				"Email":             created.Email,
				"Position":          career.Title.EN,
				"ApplicationNumber": created.ApplicationNumber,
			},
		})
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ApplicationsHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	f := repository.ApplicationFilter{Status: r.URL.Query().Get("status")}
	if s := r.URL.Query().Get("career_id"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.CareerID = id
		}
	}

	items, err := h.repo.ListApplications(r.Context(), f)
	if err != nil {
		logger.Error("list applications", "err", err)
		writeError(w, http.StatusInternalServerError, "error listing applications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *ApplicationsHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := h.repo.GetApplicationByID(r.Context(), id)
	if err != nil {
		logger.Error("get application", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error loading application")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "application not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type applicationStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (h *ApplicationsHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req applicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !validApplicationStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	updated, err := h.repo.UpdateApplicationStatus(r.Context(), id, req.Status, req.Notes)
	if err != nil {
		logger.Error("update application status", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating application")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "application not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func validApplicationStatus(s string) bool {
	switch s {
	case models.ApplicationPending, models.ApplicationShortlisted, models.ApplicationInterviewed,
		models.ApplicationAccepted, models.ApplicationRejected:
		return true
	}
	return false
}
