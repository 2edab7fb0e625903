package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/awtad/website/internal/models"
)

func TestAdminRequiresToken(t *testing.T) {
	srv, _, cleanup := setupServer(t, testConfig())
	defer cleanup()

	res := doJSON(t, http.MethodGet, srv.URL+"/v1/admin/inquiries", "", nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}
	body := decodeBody[map[string]string](t, res)
	if body["error"] == "" {
		t.Fatalf("401 response missing error field: %v", body)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/v1/admin/inquiries", "not-a-token", nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	seedAdmin(t, srv, repo, "admin@example.com", "correct-horse")

	res := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "nobody@example.com", "password": "whatever",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestChangePassword(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	token := seedAdmin(t, srv, repo, "admin@example.com", "old-password")

	res := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/change-password", token, map[string]string{
		"current_password": "old-password", "new_password": "new-password-123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("change password expected 200, got %d", res.StatusCode)
	}
	res.Body.Close()

	// the old password no longer signs in
	res = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "admin@example.com", "password": "old-password",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("old password should be rejected, got %d", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "admin@example.com", "password": "new-password-123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("new password should sign in, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestAdminProjectCRUD(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	token := seedAdmin(t, srv, repo, "admin@example.com", "password-1")

	res := doJSON(t, http.MethodPost, srv.URL+"/v1/admin/projects", token, map[string]any{
		"name": map[string]string{"en": "Harbor Crane", "ar": "رافعة الميناء"},
		"year": 2025,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d", res.StatusCode)
	}
	created := decodeBody[models.Project](t, res)
	if created.ID == 0 || created.Status != models.ProjectPlanned {
		t.Fatalf("unexpected created project: %+v", created)
	}

	res = doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/admin/projects/%d", srv.URL, created.ID), token, map[string]any{
		"status": models.ProjectOngoing,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update expected 200, got %d", res.StatusCode)
	}
	updated := decodeBody[models.Project](t, res)
	if updated.Status != models.ProjectOngoing || updated.Name.EN != "Harbor Crane" {
		t.Fatalf("unexpected updated project: %+v", updated)
	}

	res = doJSON(t, http.MethodPut, srv.URL+"/v1/admin/projects/9999", token, map[string]any{"year": 2020})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("update of unknown id expected 404, got %d", res.StatusCode)
	}
	res.Body.Close()

	// delete takes the id as a query parameter
	res = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/admin/projects?id=%d", srv.URL, created.ID), token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete expected 200, got %d", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodDelete, srv.URL+"/v1/admin/projects", token, nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("delete without id expected 400, got %d", res.StatusCode)
	}
	res.Body.Close()

	gone, err := repo.GetProjectByID(context.Background(), created.ID)
	if err != nil || gone != nil {
		t.Fatalf("project not deleted: %v %v", gone, err)
	}
}

func TestAdminApplicationWorkflow(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	ctx := context.Background()
	token := seedAdmin(t, srv, repo, "admin@example.com", "password-1")

	career, err := repo.CreateCareer(ctx, &models.Career{Title: models.Text{EN: "Inspector"}, IsActive: true})
	if err != nil {
		t.Fatalf("CreateCareer: %v", err)
	}
	app, err := repo.SubmitApplication(ctx, &models.JobApplication{CareerID: career.ID, Name: "Omar", Email: "omar@example.com"})
	if err != nil {
		t.Fatalf("SubmitApplication: %v", err)
	}

	type listResponse struct {
		Items []models.JobApplication `json:"items"`
		Count int                     `json:"count"`
	}
	res := doJSON(t, http.MethodGet, srv.URL+"/v1/admin/applications", token, nil)
	listed := decodeBody[listResponse](t, res)
	if listed.Count != 1 || listed.Items[0].CareerTitle.EN != "Inspector" {
		t.Fatalf("admin listing wrong: %+v", listed)
	}

	res = doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/admin/applications/%d/status", srv.URL, app.ID), token, map[string]any{
		"status": models.ApplicationShortlisted,
		"notes":  "call for interview",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status update expected 200, got %d", res.StatusCode)
	}
	updated := decodeBody[models.JobApplication](t, res)
	if updated.Status != models.ApplicationShortlisted || updated.Notes == nil {
		t.Fatalf("unexpected updated application: %+v", updated)
	}

	res = doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/admin/applications/%d/status", srv.URL, app.ID), token, map[string]any{
		"status": "archived",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown status expected 400, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestAdminInquiryResponse(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	ctx := context.Background()
	token := seedAdmin(t, srv, repo, "admin@example.com", "password-1")

	in, err := repo.SubmitInquiry(ctx, &models.Inquiry{Name: "Sara", Email: "sara@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("SubmitInquiry: %v", err)
	}

	res := doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/admin/inquiries/%d", srv.URL, in.ID), token, map[string]any{
		"status":   models.InquiryResponded,
		"response": "Thanks, we will call you.",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("respond expected 200, got %d", res.StatusCode)
	}
	updated := decodeBody[models.Inquiry](t, res)
	if updated.Response == nil || updated.RespondedAt == nil {
		t.Fatalf("response and responded_at must be set together: %+v", updated)
	}

	res = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/admin/inquiries?id=%d", srv.URL, in.ID), token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete expected 200, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestAdminStats(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	ctx := context.Background()
	token := seedAdmin(t, srv, repo, "admin@example.com", "password-1")

	if _, err := repo.CreateProject(ctx, &models.Project{Name: models.Text{EN: "P"}, Year: 2024, Status: models.ProjectCompleted}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	res := doJSON(t, http.MethodGet, srv.URL+"/v1/admin/stats", token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("stats expected 200, got %d", res.StatusCode)
	}
	stats := decodeBody[map[string]map[string]any](t, res)
	if stats["projects"] == nil || stats["careers"] == nil || stats["inquiries"] == nil {
		t.Fatalf("stats payload incomplete: %v", stats)
	}
	if int(stats["projects"]["total_projects"].(float64)) != 1 {
		t.Fatalf("unexpected project total: %v", stats["projects"])
	}
}
