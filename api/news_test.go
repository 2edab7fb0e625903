package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/awtad/website/internal/models"
)

func TestPublicNewsHidesDrafts(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()
	ctx := context.Background()

	live, err := repo.CreateNews(ctx, &models.News{
		Title:       models.Text{EN: "Bridge Award", AR: "جائزة الجسر"},
		Category:    "awards",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("CreateNews error: %v", err)
	}
	if _, err := repo.CreateNews(ctx, &models.News{Title: models.Text{EN: "Draft"}}); err != nil {
		t.Fatalf("CreateNews error: %v", err)
	}

	res := doJSON(t, http.MethodGet, srv.URL+"/v1/news", "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list expected 200, got %d", res.StatusCode)
	}
	list := decodeBody[struct {
		Items []models.News `json:"items"`
		Count int           `json:"count"`
	}](t, res)
	if list.Count != 1 || list.Items[0].Slug != live.Slug {
		t.Fatalf("public feed wrong content: %#v", list)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/v1/news/"+live.Slug, "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("detail expected 200, got %d", res.StatusCode)
	}
	got := decodeBody[models.News](t, res)
	if got.Title.AR != "جائزة الجسر" {
		t.Fatalf("arabic title lost over the wire: %#v", got.Title)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/v1/news/no-such-article", "", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown slug expected 404, got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestAdminNewsCRUD(t *testing.T) {
	srv, repo, cleanup := setupServer(t, testConfig())
	defer cleanup()

	token := seedAdmin(t, srv, repo, "admin@example.com", "password123")

	res := doJSON(t, http.MethodPost, srv.URL+"/v1/admin/news", token, map[string]any{
		"title":    map[string]string{"en": "Metro Expansion"},
		"category": "projects",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d", res.StatusCode)
	}
	created := decodeBody[models.News](t, res)
	if created.IsPublished {
		t.Fatalf("article must default to draft: %#v", created)
	}

	// drafts show in the admin list, not the public one
	res = doJSON(t, http.MethodGet, srv.URL+"/v1/admin/news", token, nil)
	adminList := decodeBody[struct {
		Count int `json:"count"`
	}](t, res)
	if adminList.Count != 1 {
		t.Fatalf("admin list expected 1 article, got %d", adminList.Count)
	}
	res = doJSON(t, http.MethodGet, srv.URL+"/v1/news", "", nil)
	publicList := decodeBody[struct {
		Count int `json:"count"`
	}](t, res)
	if publicList.Count != 0 {
		t.Fatalf("draft leaked into public feed")
	}

	// publishing via the API stamps published_at and goes live
	res = doJSON(t, http.MethodPut, fmt.Sprintf("%s/v1/admin/news/%d", srv.URL, created.ID), token, map[string]any{"is_published": true})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("publish expected 200, got %d", res.StatusCode)
	}
	published := decodeBody[models.News](t, res)
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatalf("publish did not stamp the article: %#v", published)
	}
	res = doJSON(t, http.MethodGet, srv.URL+"/v1/news/"+created.Slug, "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("published article expected 200, got %d", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/admin/news?id=%d", srv.URL, created.ID), token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete expected 200, got %d", res.StatusCode)
	}
	res.Body.Close()

	res = doJSON(t, http.MethodGet, srv.URL+"/v1/news/"+created.Slug, "", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted article expected 404, got %d", res.StatusCode)
	}
	res.Body.Close()
}
