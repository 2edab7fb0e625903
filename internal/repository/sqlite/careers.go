package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

const careerCols = `id, job_code, title_en, title_ar, department_en, department_ar, location_en, location_ar, description_en, description_ar, requirements_en, requirements_ar, responsibilities_en, responsibilities_ar, benefits_en, benefits_ar, employment_type, experience_level, closing_date, is_urgent, is_active, applications_count, created, updated`

func scanCareer(s scanner) (*models.Career, error) {
	var c models.Career
	var titleEN, titleAR, deptEN, deptAR, locEN, locAR, descEN, descAR sql.NullString
	var reqEN, reqAR, respEN, respAR, benEN, benAR, empType, expLevel sql.NullString
	var closing sql.NullInt64
	if err := s.Scan(&c.ID, &c.JobCode, &titleEN, &titleAR, &deptEN, &deptAR, &locEN, &locAR, &descEN, &descAR,
		&reqEN, &reqAR, &respEN, &respAR, &benEN, &benAR, &empType, &expLevel, &closing,
		&c.IsUrgent, &c.IsActive, &c.ApplicationsCount, &c.Created, &c.Updated); err != nil {
		return nil, err
	}
	c.Title = text(titleEN, titleAR)
	c.Department = text(deptEN, deptAR)
	c.Location = text(locEN, locAR)
	c.Description = text(descEN, descAR)
	c.Requirements = text(reqEN, reqAR)
	c.Responsibilities = text(respEN, respAR)
	c.Benefits = text(benEN, benAR)
	c.EmploymentType = empType.String
	c.ExperienceLevel = expLevel.String
	if closing.Valid {
		v := closing.Int64
		c.ClosingDate = &v
	}
	return &c, nil
}

func (r *SQLiteRepo) scanCareers(rows *sql.Rows) ([]models.Career, error) {
	defer rows.Close()
	var out []models.Career
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListCareers is the public view: active postings only, newest first.
func (r *SQLiteRepo) ListCareers(ctx context.Context, f repository.CareerFilter) ([]models.Career, error) {
	query := `SELECT ` + careerCols + ` FROM careers`
	conditions := []string{`is_active = 1`}
	var args []any

	bilingual := func(prefix, needle string) {
		conditions = append(conditions, fmt.Sprintf(`(LOWER(COALESCE(%s_en, '')) LIKE ? OR LOWER(COALESCE(%s_ar, '')) LIKE ?)`, prefix, prefix))
		pat := "%" + strings.ToLower(needle) + "%"
		args = append(args, pat, pat)
	}

	if f.Department != "" {
		bilingual("department", f.Department)
	}
	if f.Location != "" {
		bilingual("location", f.Location)
	}
	if f.EmploymentType != "" {
		conditions = append(conditions, `employment_type = ?`)
		args = append(args, f.EmploymentType)
	}
	if f.ExperienceLevel != "" {
		conditions = append(conditions, `experience_level = ?`)
		args = append(args, f.ExperienceLevel)
	}

	query += ` WHERE ` + strings.Join(conditions, ` AND `) + ` ORDER BY created DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.scanCareers(rows)
}

// AllCareers is the admin view and includes inactive postings.
func (r *SQLiteRepo) AllCareers(ctx context.Context) ([]models.Career, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+careerCols+` FROM careers ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	return r.scanCareers(rows)
}

func (r *SQLiteRepo) GetCareerByCode(ctx context.Context, jobCode string) (*models.Career, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+careerCols+` FROM careers WHERE job_code = ? AND is_active = 1`, jobCode)
	c, err := scanCareer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteRepo) UrgentCareers(ctx context.Context, limit int) ([]models.Career, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.conn.QueryRows(ctx, `SELECT `+careerCols+` FROM careers WHERE is_active = 1 AND is_urgent = 1 ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return r.scanCareers(rows)
}

func (r *SQLiteRepo) CreateCareer(ctx context.Context, c *models.Career) (*models.Career, error) {
	if c == nil {
		return nil, fmt.Errorf("career is nil")
	}
	if c.JobCode == "" {
		c.JobCode = makeSlug(c.Title.EN)
	}

	ts := now()
	// applications_count always starts at zero, whatever the caller set.
	res, err := r.conn.Exec(ctx, `INSERT INTO careers (job_code, title_en, title_ar, department_en, department_ar, location_en, location_ar, description_en, description_ar, requirements_en, requirements_ar, responsibilities_en, responsibilities_ar, benefits_en, benefits_ar, employment_type, experience_level, closing_date, is_urgent, is_active, applications_count, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		c.JobCode, nullStr(c.Title.EN), nullStr(c.Title.AR), nullStr(c.Department.EN), nullStr(c.Department.AR),
		nullStr(c.Location.EN), nullStr(c.Location.AR), nullStr(c.Description.EN), nullStr(c.Description.AR),
		nullStr(c.Requirements.EN), nullStr(c.Requirements.AR), nullStr(c.Responsibilities.EN), nullStr(c.Responsibilities.AR),
		nullStr(c.Benefits.EN), nullStr(c.Benefits.AR), nullStr(c.EmploymentType), nullStr(c.ExperienceLevel),
		c.ClosingDate, c.IsUrgent, c.IsActive, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetCareerByID(ctx, id)
}

// GetCareerByID has no is_active guard; it backs admin reads and the write
// paths that return the persisted row.
func (r *SQLiteRepo) GetCareerByID(ctx context.Context, id int64) (*models.Career, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+careerCols+` FROM careers WHERE id = ?`, id)
	c, err := scanCareer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteRepo) UpdateCareer(ctx context.Context, id int64, upd models.CareerUpdate) (*models.Career, error) {
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

	if upd.JobCode != nil {
		set(`job_code`, *upd.JobCode)
	}
	setText(`title`, upd.Title)
	setText(`department`, upd.Department)
	setText(`location`, upd.Location)
	setText(`description`, upd.Description)
	setText(`requirements`, upd.Requirements)
	setText(`responsibilities`, upd.Responsibilities)
	setText(`benefits`, upd.Benefits)
	if upd.EmploymentType != nil {
		set(`employment_type`, nullStr(*upd.EmploymentType))
	}
	if upd.ExperienceLevel != nil {
		set(`experience_level`, nullStr(*upd.ExperienceLevel))
	}
	if upd.ClosingDate != nil {
		set(`closing_date`, *upd.ClosingDate)
	}
	if upd.IsUrgent != nil {
		set(`is_urgent`, *upd.IsUrgent)
	}
	if upd.IsActive != nil {
		set(`is_active`, *upd.IsActive)
	}

	set(`updated`, now())
	args = append(args, id)

	if _, err := r.conn.Exec(ctx, `UPDATE careers SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}
	return r.GetCareerByID(ctx, id)
}

func (r *SQLiteRepo) DeleteCareer(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM careers WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepo) CareerStats(ctx context.Context) (*models.CareerStats, error) {
	stats := &models.CareerStats{ApplicationsByStatus: map[string]int{}}

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(is_active), 0) FROM careers`)
	if err := row.Scan(&stats.TotalCareers, &stats.ActiveCareers); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT status, COUNT(*) FROM job_applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats.ApplicationsByStatus[status] = n
		stats.TotalApplications += n
	}
	return stats, rows.Err()
}
