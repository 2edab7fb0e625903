package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

const newsCols = `id, slug, title_en, title_ar, excerpt_en, excerpt_ar, content_en, content_ar, author, category, image_url, tags, is_published, published_at, created, updated, views`

func scanNews(s scanner) (*models.News, error) {
	var n models.News
	var titleEN, titleAR, excerptEN, excerptAR, contentEN, contentAR, author, category, image, tags sql.NullString
	var publishedAt sql.NullInt64
	if err := s.Scan(&n.ID, &n.Slug, &titleEN, &titleAR, &excerptEN, &excerptAR, &contentEN, &contentAR,
		&author, &category, &image, &tags, &n.IsPublished, &publishedAt, &n.Created, &n.Updated, &n.Views); err != nil {
		return nil, err
	}
	n.Title = text(titleEN, titleAR)
	n.Excerpt = text(excerptEN, excerptAR)
	n.Content = text(contentEN, contentAR)
	n.Author = author.String
	n.Category = category.String
	n.ImageURL = image.String
	if tags.Valid && tags.String != "" {
		n.Tags = strings.Split(tags.String, ",")
	}
	if publishedAt.Valid {
		v := publishedAt.Int64
		n.PublishedAt = &v
	}
	return &n, nil
}

// ListNews is the public feed: published articles only, newest first.
func (r *SQLiteRepo) ListNews(ctx context.Context, f repository.NewsFilter) ([]models.News, error) {
	query := `SELECT ` + newsCols + ` FROM news WHERE is_published = 1`
	var args []any

	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		query += ` AND (LOWER(title_en) LIKE ? OR LOWER(title_ar) LIKE ? OR LOWER(excerpt_en) LIKE ? OR LOWER(excerpt_ar) LIKE ? OR LOWER(content_en) LIKE ? OR LOWER(content_ar) LIKE ?)`
		args = append(args, needle, needle, needle, needle, needle, needle)
	}

	query += ` ORDER BY published_at DESC, created DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+newsCols+` FROM news WHERE slug = ? AND is_published = 1`, slug)
	n, err := scanNews(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

// AllNews includes drafts; admin view.
func (r *SQLiteRepo) AllNews(ctx context.Context) ([]models.News, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+newsCols+` FROM news ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) getNewsByID(ctx context.Context, id int64) (*models.News, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+newsCols+` FROM news WHERE id = ?`, id)
	n, err := scanNews(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

func (r *SQLiteRepo) CreateNews(ctx context.Context, n *models.News) (*models.News, error) {
	if n == nil {
		return nil, fmt.Errorf("news is nil")
	}
	if n.Title.Empty() {
		return nil, fmt.Errorf("title is required")
	}
	if n.Slug == "" {
		n.Slug = makeSlug(n.Title.EN)
	}

	ts := now()
	publishedAt := n.PublishedAt
	if n.IsPublished && publishedAt == nil {
		publishedAt = &ts
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO news (slug, title_en, title_ar, excerpt_en, excerpt_ar, content_en, content_ar, author, category, image_url, tags, is_published, published_at, views, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		n.Slug, nullStr(n.Title.EN), nullStr(n.Title.AR), nullStr(n.Excerpt.EN), nullStr(n.Excerpt.AR),
		nullStr(n.Content.EN), nullStr(n.Content.AR), nullStr(n.Author), nullStr(n.Category),
		nullStr(n.ImageURL), nullStr(strings.Join(n.Tags, ",")), n.IsPublished, publishedAt, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getNewsByID(ctx, id)
}

// UpdateNews changes only the provided fields. Publishing an article that
// never had a published_at stamps it now.
func (r *SQLiteRepo) UpdateNews(ctx context.Context, id int64, upd models.NewsUpdate) (*models.News, error) {
	current, err := r.getNewsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var sets []string
	var args []any

	set := func(col string, v any) {
		sets = append(sets, col+` = ?`)
		args = append(args, v)
	}

	ts := now()
	if upd.Slug != nil {
		set(`slug`, *upd.Slug)
	}
	if upd.Title != nil {
		set(`title_en`, nullStr(upd.Title.EN))
		set(`title_ar`, nullStr(upd.Title.AR))
	}
	if upd.Excerpt != nil {
		set(`excerpt_en`, nullStr(upd.Excerpt.EN))
		set(`excerpt_ar`, nullStr(upd.Excerpt.AR))
	}
	if upd.Content != nil {
		set(`content_en`, nullStr(upd.Content.EN))
		set(`content_ar`, nullStr(upd.Content.AR))
	}
	if upd.Author != nil {
		set(`author`, nullStr(*upd.Author))
	}
	if upd.Category != nil {
		set(`category`, nullStr(*upd.Category))
	}
	if upd.ImageURL != nil {
		set(`image_url`, nullStr(*upd.ImageURL))
	}
	if upd.Tags != nil {
		set(`tags`, nullStr(strings.Join(*upd.Tags, ",")))
	}
	if upd.IsPublished != nil {
		set(`is_published`, *upd.IsPublished)
		if *upd.IsPublished && upd.PublishedAt == nil && current.PublishedAt == nil {
			set(`published_at`, ts)
		}
	}
	if upd.PublishedAt != nil {
		set(`published_at`, *upd.PublishedAt)
	}
	if upd.Views != nil {
		set(`views`, *upd.Views)
	}

	set(`updated`, ts)
	args = append(args, id)

	if _, err := r.conn.Exec(ctx, `UPDATE news SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}
	return r.getNewsByID(ctx, id)
}

func (r *SQLiteRepo) DeleteNews(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM news WHERE id = ?`, id)
	return err
}
