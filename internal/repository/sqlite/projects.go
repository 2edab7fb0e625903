package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

const projectCols = `id, slug, name_en, name_ar, description_en, description_ar, location_en, location_ar, client_en, client_ar, year, value, sector, status, is_featured, sort_order, created, updated`

func scanProject(s scanner) (*models.Project, error) {
	var p models.Project
	var nameEN, nameAR, descEN, descAR, locEN, locAR, clientEN, clientAR, sector sql.NullString
	var year sql.NullInt64
	var value sql.NullFloat64
	if err := s.Scan(&p.ID, &p.Slug, &nameEN, &nameAR, &descEN, &descAR, &locEN, &locAR, &clientEN, &clientAR, &year, &value, &sector, &p.Status, &p.IsFeatured, &p.SortOrder, &p.Created, &p.Updated); err != nil {
		return nil, err
	}
	p.Name = text(nameEN, nameAR)
	p.Description = text(descEN, descAR)
	p.Location = text(locEN, locAR)
	p.Client = text(clientEN, clientAR)
	p.Year = int(year.Int64)
	p.Value = value.Float64
	p.Sector = sector.String
	return &p, nil
}

// ListProjects applies the independently optional filters and returns rows
// ordered by year descending, then sort_order ascending.
func (r *SQLiteRepo) ListProjects(ctx context.Context, f repository.ProjectFilter, limit, offset int) ([]models.Project, error) {
	query := `SELECT ` + projectCols + ` FROM projects`
	var conditions []string
	var args []any

	if f.Year != nil {
		conditions = append(conditions, `year = ?`)
		args = append(args, *f.Year)
	}
	if f.Sector != "" {
		conditions = append(conditions, `sector = ?`)
		args = append(args, f.Sector)
	}
	if f.Status != "" {
		conditions = append(conditions, `status = ?`)
		args = append(args, f.Status)
	}
	if f.Featured != nil {
		conditions = append(conditions, `is_featured = ?`)
		args = append(args, *f.Featured)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		ors := make([]string, 0, 6)
		for _, col := range []string{"name_en", "name_ar", "description_en", "description_ar", "client_en", "client_ar"} {
			ors = append(ors, fmt.Sprintf(`LOWER(COALESCE(%s, '')) LIKE ?`, col))
			args = append(args, needle)
		}
		conditions = append(conditions, `(`+strings.Join(ors, ` OR `)+`)`)
	}

	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY year DESC, sort_order ASC`

	// An offset without a limit gets the default window of 10 rows.
	if limit <= 0 && offset > 0 {
		limit = 10
	}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, max(offset, 0))
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+projectCols+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+projectCols+` FROM projects WHERE slug = ?`, slug)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 6
	}
	t := true
	return r.ListProjects(ctx, repository.ProjectFilter{Featured: &t}, limit, 0)
}

// RecentProjects orders by creation time, not project year.
func (r *SQLiteRepo) RecentProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.conn.QueryRows(ctx, `SELECT `+projectCols+` FROM projects ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) ProjectsBySector(ctx context.Context, sector string, limit int) ([]models.Project, error) {
	return r.ListProjects(ctx, repository.ProjectFilter{Sector: sector}, limit, 0)
}

// ProjectYears returns the distinct non-null years, newest first, for
// building filter UIs.
func (r *SQLiteRepo) ProjectYears(ctx context.Context) ([]int, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT DISTINCT year FROM projects WHERE year IS NOT NULL ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) ProjectSectorTags(ctx context.Context) ([]string, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT DISTINCT sector FROM projects WHERE sector IS NOT NULL AND sector != '' ORDER BY sector`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ProjectStats aggregates over the whole table. Row counts are expected to
// stay in the hundreds, so this is a deliberate scalability ceiling.
func (r *SQLiteRepo) ProjectStats(ctx context.Context) (*models.ProjectStats, error) {
	stats := &models.ProjectStats{
		BySector: map[string]int{},
		ByYear:   map[int]int{},
	}

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*),
		COALESCE(SUM(is_featured), 0),
		COALESCE(SUM(status = 'completed'), 0),
		COALESCE(SUM(status = 'ongoing'), 0)
		FROM projects`)
	if err := row.Scan(&stats.TotalProjects, &stats.FeaturedProjects, &stats.CompletedProjects, &stats.OngoingProjects); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT sector, COUNT(*) FROM projects WHERE sector IS NOT NULL AND sector != '' GROUP BY sector`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sector string
		var n int
		if err := rows.Scan(&sector, &n); err != nil {
			return nil, err
		}
		stats.BySector[sector] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	yearRows, err := r.conn.QueryRows(ctx, `SELECT year, COUNT(*) FROM projects WHERE year IS NOT NULL GROUP BY year`)
	if err != nil {
		return nil, err
	}
	defer yearRows.Close()
	for yearRows.Next() {
		var year, n int
		if err := yearRows.Scan(&year, &n); err != nil {
			return nil, err
		}
		stats.ByYear[year] = n
	}
	return stats, yearRows.Err()
}

func (r *SQLiteRepo) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p == nil {
		return nil, fmt.Errorf("project is nil")
	}
	if p.Status == "" {
		p.Status = models.ProjectPlanned
	}
	if p.Slug == "" {
		p.Slug = makeSlug(p.Name.EN)
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO projects (slug, name_en, name_ar, description_en, description_ar, location_en, location_ar, client_en, client_ar, year, value, sector, status, is_featured, sort_order, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, nullStr(p.Name.EN), nullStr(p.Name.AR), nullStr(p.Description.EN), nullStr(p.Description.AR),
		nullStr(p.Location.EN), nullStr(p.Location.AR), nullStr(p.Client.EN), nullStr(p.Client.AR),
		p.Year, p.Value, nullStr(p.Sector), p.Status, p.IsFeatured, p.SortOrder, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetProjectByID(ctx, id)
}

// UpdateProject changes only the provided fields and returns the persisted
// row, or (nil, nil) when the id does not exist.
func (r *SQLiteRepo) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (*models.Project, error) {
	var sets []string
	var args []any

	set := func(col string, v any) {
		sets = append(sets, col+` = ?`)
		args = append(args, v)
	}
	setText := func(prefix string, t *models.Text) {
		if t != nil {
			set(prefix+`_en`, nullStr(t.EN))
			set(prefix+`_ar`, nullStr(t.AR))
		}
	}

	if upd.Slug != nil {
		set(`slug`, *upd.Slug)
	}
	setText(`name`, upd.Name)
	setText(`description`, upd.Description)
	setText(`location`, upd.Location)
	setText(`client`, upd.Client)
	if upd.Year != nil {
		set(`year`, *upd.Year)
	}
	if upd.Value != nil {
		set(`value`, *upd.Value)
	}
	if upd.Sector != nil {
		set(`sector`, nullStr(*upd.Sector))
	}
	if upd.Status != nil {
		set(`status`, *upd.Status)
	}
	if upd.IsFeatured != nil {
		set(`is_featured`, *upd.IsFeatured)
	}
	if upd.SortOrder != nil {
		set(`sort_order`, *upd.SortOrder)
	}

	set(`updated`, now())
	args = append(args, id)

	if _, err := r.conn.Exec(ctx, `UPDATE projects SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}
	return r.GetProjectByID(ctx, id)
}

func (r *SQLiteRepo) DeleteProject(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

const slugChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// makeSlug derives a URL slug from the English name, with a short random
// suffix so regenerated slugs never collide.
func makeSlug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	base := strings.Trim(b.String(), "-")

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		panic(err)
	}
	for i := range suffix {
		suffix[i] = slugChars[int(suffix[i])%len(slugChars)]
	}
	if base == "" {
		return string(suffix)
	}
	return base + "-" + string(suffix)
}
