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

type InquiriesHandler struct {
	repo     repository.InquiryRepo
	notifier *email.Notifier
	adminTo  string
	validate *validator.Validate
}

func NewInquiriesHandler(repo repository.InquiryRepo, notifier *email.Notifier, adminTo string) *InquiriesHandler {
	return &InquiriesHandler{repo: repo, notifier: notifier, adminTo: adminTo, validate: validator.New()}
}

// SubmitInquiry is the public contact endpoint; the stored inquiry is
// always pending.
func (h *InquiriesHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var in models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid inquiry: "+err.Error())
		return
	}

	ctx := r.Context()
	created, err := h.repo.SubmitInquiry(ctx, &in)
	if err != nil {
		logger.Error("submit inquiry", "err", err)
		writeError(w, http.StatusInternalServerError, "error submitting inquiry")
		return
	}

	if h.adminTo != "" {
		h.notifier.Send(ctx, email.Options{
			To:       []string{h.adminTo},
			Subject:  "New inquiry from " + created.Name,
			Template: "inquiry",
			Data: map[string]any{
				"Name":    created.Name,
				"Email":   created.Email,
				"Company": created.Company,
				"Subject": created.Subject,
				"Message": created.Message,
			},
		})
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *InquiriesHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListInquiries(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		logger.Error("list inquiries", "err", err)
		writeError(w, http.StatusInternalServerError, "error listing inquiries")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *InquiriesHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	in, err := h.repo.GetInquiryByID(r.Context(), id)
	if err != nil {
		logger.Error("get inquiry", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error loading inquiry")
		return
	}
	if in == nil {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, in)
}

type inquiryStatusRequest struct {
	Status   string  `json:"status"`
	Response *string `json:"response,omitempty"`
}

// UpdateInquiry moves the status; a supplied response is stored together
// with its timestamp.
func (h *InquiriesHandler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req inquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !validInquiryStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	updated, err := h.repo.UpdateInquiryStatus(r.Context(), id, req.Status, req.Response)
	if err != nil {
		logger.Error("update inquiry", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error updating inquiry")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *InquiriesHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid id")
		return
	}
	if err := h.repo.DeleteInquiry(r.Context(), id); err != nil {
		logger.Error("delete inquiry", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "error deleting inquiry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func validInquiryStatus(s string) bool {
	switch s {
	case models.InquiryPending, models.InquiryInProgress, models.InquiryResponded, models.InquiryClosed:
		return true
	}
	return false
}
