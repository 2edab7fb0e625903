package sqlite_test

import (
	"context"
	"testing"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

func TestNewsCRUD(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := repo.CreateNews(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil article")
	}
	if _, err := repo.CreateNews(ctx, &models.News{}); err == nil {
		t.Fatalf("expected error for missing title")
	}

	draft, err := repo.CreateNews(ctx, &models.News{
		Title:    models.Text{EN: "New Headquarters", AR: "المقر الرئيسي الجديد"},
		Excerpt:  models.Text{EN: "Construction begins."},
		Category: "company",
		Tags:     []string{"construction", "riyadh"},
	})
	if err != nil {
		t.Fatalf("CreateNews error: %v", err)
	}
	if draft.Slug == "" {
		t.Fatalf("expected generated slug")
	}
	if draft.IsPublished || draft.PublishedAt != nil {
		t.Fatalf("draft must not carry a publish stamp: %#v", draft)
	}
	if len(draft.Tags) != 2 || draft.Tags[0] != "construction" {
		t.Fatalf("tags lost on round trip: %#v", draft.Tags)
	}
	if draft.Title.AR != "المقر الرئيسي الجديد" {
		t.Fatalf("arabic title lost on round trip: %#v", draft.Title)
	}

	// drafts are invisible publicly but in the admin view
	if got, err := repo.GetNewsBySlug(ctx, draft.Slug); err != nil || got != nil {
		t.Fatalf("draft visible publicly: %#v (err %v)", got, err)
	}
	all, err := repo.AllNews(ctx)
	if err != nil {
		t.Fatalf("AllNews error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("admin view must include drafts, got %d", len(all))
	}

	// first publish stamps published_at
	published := true
	live, err := repo.UpdateNews(ctx, draft.ID, models.NewsUpdate{IsPublished: &published})
	if err != nil {
		t.Fatalf("UpdateNews publish error: %v", err)
	}
	if !live.IsPublished || live.PublishedAt == nil || *live.PublishedAt == 0 {
		t.Fatalf("publish did not stamp published_at: %#v", live)
	}
	stamp := *live.PublishedAt

	// re-publishing keeps the original stamp
	live, err = repo.UpdateNews(ctx, draft.ID, models.NewsUpdate{IsPublished: &published})
	if err != nil {
		t.Fatalf("UpdateNews re-publish error: %v", err)
	}
	if *live.PublishedAt != stamp {
		t.Fatalf("re-publish moved published_at from %d to %d", stamp, *live.PublishedAt)
	}

	bySlug, err := repo.GetNewsBySlug(ctx, draft.Slug)
	if err != nil {
		t.Fatalf("GetNewsBySlug error: %v", err)
	}
	if bySlug == nil || bySlug.ID != draft.ID {
		t.Fatalf("GetNewsBySlug wrong result: %#v", bySlug)
	}

	unknown, err := repo.UpdateNews(ctx, draft.ID+999, models.NewsUpdate{IsPublished: &published})
	if err != nil {
		t.Fatalf("expected no error for unknown id, got %v", err)
	}
	if unknown != nil {
		t.Fatalf("expected nil for unknown id, got %#v", unknown)
	}

	if err := repo.DeleteNews(ctx, draft.ID); err != nil {
		t.Fatalf("DeleteNews error: %v", err)
	}
	gone, err := repo.GetNewsBySlug(ctx, draft.Slug)
	if err != nil {
		t.Fatalf("GetNewsBySlug after delete error: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil after delete, got %#v", gone)
	}
}

func TestListNewsFilters(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	older := int64(1000)
	newer := int64(2000)
	fixtures := []*models.News{
		{Title: models.Text{EN: "Bridge Award", AR: "جائزة الجسر"}, Category: "awards", IsPublished: true, PublishedAt: &older},
		{Title: models.Text{EN: "Metro Expansion"}, Content: models.Text{EN: "tunnel works"}, Category: "projects", IsPublished: true, PublishedAt: &newer},
		{Title: models.Text{EN: "Internal Draft"}, Category: "projects"},
	}
	for _, f := range fixtures {
		if _, err := repo.CreateNews(ctx, f); err != nil {
			t.Fatalf("CreateNews error: %v", err)
		}
	}

	public, err := repo.ListNews(ctx, repository.NewsFilter{})
	if err != nil {
		t.Fatalf("ListNews error: %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("expected 2 published articles, got %d", len(public))
	}
	// newest published first
	if public[0].Title.EN != "Metro Expansion" || public[1].Title.EN != "Bridge Award" {
		t.Fatalf("wrong publish order: %q, %q", public[0].Title.EN, public[1].Title.EN)
	}

	cat, err := repo.ListNews(ctx, repository.NewsFilter{Category: "projects"})
	if err != nil {
		t.Fatalf("ListNews category filter error: %v", err)
	}
	if len(cat) != 1 || cat[0].Title.EN != "Metro Expansion" {
		t.Fatalf("category filter wrong result: %#v", cat)
	}

	// bilingual substring search across title and content
	arabic, err := repo.ListNews(ctx, repository.NewsFilter{Search: "جائزة"})
	if err != nil {
		t.Fatalf("ListNews arabic search error: %v", err)
	}
	if len(arabic) != 1 || arabic[0].Title.EN != "Bridge Award" {
		t.Fatalf("arabic search wrong result: %#v", arabic)
	}
	content, err := repo.ListNews(ctx, repository.NewsFilter{Search: "tunnel"})
	if err != nil {
		t.Fatalf("ListNews content search error: %v", err)
	}
	if len(content) != 1 || content[0].Title.EN != "Metro Expansion" {
		t.Fatalf("content search wrong result: %#v", content)
	}

	limited, err := repo.ListNews(ctx, repository.NewsFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListNews limit error: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit not applied, got %d", len(limited))
	}
}
