package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
)

const sectorCols = `id, slug, name_en, name_ar, description_en, description_ar, icon, sort_order, is_active, created, updated`

func scanSector(s scanner, withCount bool) (*models.Sector, error) {
	var sec models.Sector
	var nameEN, nameAR, descEN, descAR, icon sql.NullString
	dest := []any{&sec.ID, &sec.Slug, &nameEN, &nameAR, &descEN, &descAR, &icon, &sec.SortOrder, &sec.IsActive, &sec.Created, &sec.Updated}
	if withCount {
		dest = append(dest, &sec.ProjectCount)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	sec.Name = text(nameEN, nameAR)
	sec.Description = text(descEN, descAR)
	sec.Icon = icon.String
	return &sec, nil
}

// ListSectors returns active sectors in display order.
func (r *SQLiteRepo) ListSectors(ctx context.Context) ([]models.Sector, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+sectorCols+` FROM sectors WHERE is_active = 1 ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Sector
	for rows.Next() {
		sec, err := scanSector(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *sec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetSectorBySlug(ctx context.Context, slug string) (*models.Sector, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+sectorCols+` FROM sectors WHERE slug = ? AND is_active = 1`, slug)
	sec, err := scanSector(row, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return sec, nil
}

// SectorsWithProjectCount derives the count from the join table at read
// time, so it never goes stale.
func (r *SQLiteRepo) SectorsWithProjectCount(ctx context.Context) ([]models.Sector, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+sectorCols+`,
		(SELECT COUNT(*) FROM project_sectors ps WHERE ps.sector_id = sectors.id)
		FROM sectors WHERE is_active = 1 ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Sector
	for rows.Next() {
		sec, err := scanSector(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *sec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) getSectorByID(ctx context.Context, id int64) (*models.Sector, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+sectorCols+` FROM sectors WHERE id = ?`, id)
	sec, err := scanSector(row, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return sec, nil
}

func (r *SQLiteRepo) CreateSector(ctx context.Context, s *models.Sector) (*models.Sector, error) {
	if s == nil {
		return nil, fmt.Errorf("sector is nil")
	}
	if s.Slug == "" {
		s.Slug = makeSlug(s.Name.EN)
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO sectors (slug, name_en, name_ar, description_en, description_ar, icon, sort_order, is_active, created, updated)
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
	return r.getSectorByID(ctx, id)
}

func (r *SQLiteRepo) UpdateSector(ctx context.Context, id int64, upd models.SectorUpdate) (*models.Sector, error) {
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

	if _, err := r.conn.Exec(ctx, `UPDATE sectors SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}
	return r.getSectorByID(ctx, id)
}

func (r *SQLiteRepo) DeleteSector(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM sectors WHERE id = ?`, id)
	return err
}
