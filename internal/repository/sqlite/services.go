package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
)

const serviceCols = `id, slug, name_en, name_ar, description_en, description_ar, icon, sort_order, is_active, created, updated`

func scanService(s scanner, withCount bool) (*models.Service, error) {
	var svc models.Service
	var nameEN, nameAR, descEN, descAR, icon sql.NullString
	dest := []any{&svc.ID, &svc.Slug, &nameEN, &nameAR, &descEN, &descAR, &icon, &svc.SortOrder, &svc.IsActive, &svc.Created, &svc.Updated}
	if withCount {
		dest = append(dest, &svc.ProjectCount)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	svc.Name = text(nameEN, nameAR)
	svc.Description = text(descEN, descAR)
	svc.Icon = icon.String
	return &svc, nil
}

func (r *SQLiteRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+serviceCols+` FROM services WHERE is_active = 1 ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		svc, err := scanService(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *svc)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE slug = ? AND is_active = 1`, slug)
	svc, err := scanService(row, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return svc, nil
}

func (r *SQLiteRepo) ServicesWithProjectCount(ctx context.Context) ([]models.Service, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+serviceCols+`,
		(SELECT COUNT(*) FROM project_services ps WHERE ps.service_id = services.id)
		FROM services WHERE is_active = 1 ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		svc, err := scanService(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *svc)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) getServiceByID(ctx context.Context, id int64) (*models.Service, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE id = ?`, id)
	svc, err := scanService(row, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return svc, nil
}

func (r *SQLiteRepo) CreateService(ctx context.Context, s *models.Service) (*models.Service, error) {
	if s == nil {
		return nil, fmt.Errorf("service is nil")
	}
	if s.Slug == "" {
		s.Slug = makeSlug(s.Name.EN)
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO services (slug, name_en, name_ar, description_en, description_ar, icon, sort_order, is_active, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Slug, nullStr(s.Name.EN), nullStr(s.Name.AR), nullStr(s.Description.EN), nullStr(s.Description.AR),
		nullStr(s.Icon), s.SortOrder, s.IsActive, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getServiceByID(ctx, id)
}

func (r *SQLiteRepo) UpdateService(ctx context.Context, id int64, upd models.ServiceUpdate) (*models.Service, error) {
	var sets []string
	var args []any

	set := func(col string, v any) {
		sets = append(sets, col+` = ?`)
		args = append(args, v)
	}

	if upd.Slug != nil {
		set(`slug`, *upd.Slug)
	}
	if upd.Name != nil {
		set(`name_en`, nullStr(upd.Name.EN))
		set(`name_ar`, nullStr(upd.Name.AR))
	}
	if upd.Description != nil {
		set(`description_en`, nullStr(upd.Description.EN))
		set(`description_ar`, nullStr(upd.Description.AR))
	}
	if upd.Icon != nil {
		set(`icon`, nullStr(*upd.Icon))
	}
	if upd.SortOrder != nil {
		set(`sort_order`, *upd.SortOrder)
	}
	if upd.IsActive != nil {
		set(`is_active`, *upd.IsActive)
	}

	set(`updated`, now())
	args = append(args, id)

	if _, err := r.conn.Exec(ctx, `UPDATE services SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}
	return r.getServiceByID(ctx, id)
}

func (r *SQLiteRepo) DeleteService(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM services WHERE id = ?`, id)
	return err
}
