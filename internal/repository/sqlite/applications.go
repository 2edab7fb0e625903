package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
	"github.com/google/uuid"
)

const applicationCols = `a.id, a.career_id, a.application_number, a.name, a.email, a.phone, a.cover_letter, a.cv_url, a.linkedin_url, a.years_experience, a.expected_salary, a.status, a.notes, a.created, a.updated`

func scanApplication(s scanner, joined bool) (*models.JobApplication, error) {
	var a models.JobApplication
	var phone, cover, cv, linkedin, notes sql.NullString
	var years, salary sql.NullInt64

	dest := []any{&a.ID, &a.CareerID, &a.ApplicationNumber, &a.Name, &a.Email, &phone, &cover, &cv, &linkedin, &years, &salary, &a.Status, &notes, &a.Created, &a.Updated}
	var titleEN, titleAR, deptEN, deptAR sql.NullString
	if joined {
		dest = append(dest, &titleEN, &titleAR, &deptEN, &deptAR)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	a.Phone = phone.String
	a.CoverLetter = cover.String
	a.CVURL = cv.String
	a.LinkedInURL = linkedin.String
	if years.Valid {
		v := int(years.Int64)
		a.YearsExperience = &v
	}
	if salary.Valid {
		v := salary.Int64
		a.ExpectedSalary = &v
	}
	if notes.Valid {
		v := notes.String
		a.Notes = &v
	}
	if joined {
		a.CareerTitle = text(titleEN, titleAR)
		a.CareerDepartment = text(deptEN, deptAR)
	}
	return &a, nil
}

// SubmitApplication is the public entry point. The stored status is always
// pending, whatever the caller supplied, and the owning career's
// applications_count is bumped. Failures propagate: a silently lost
// application is unacceptable.
func (r *SQLiteRepo) SubmitApplication(ctx context.Context, a *models.JobApplication) (*models.JobApplication, error) {
	if a == nil {
		return nil, fmt.Errorf("application is nil")
	}
	if a.CareerID <= 0 || a.Name == "" || a.Email == "" {
		return nil, fmt.Errorf("career_id, name and email are required")
	}

	number := "APP-" + strings.ToUpper(uuid.NewString()[:8])
	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO job_applications (career_id, application_number, name, email, phone, cover_letter, cv_url, linkedin_url, years_experience, expected_salary, status, notes, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		a.CareerID, number, a.Name, a.Email, nullStr(a.Phone), nullStr(a.CoverLetter), nullStr(a.CVURL), nullStr(a.LinkedInURL),
		a.YearsExperience, a.ExpectedSalary, models.ApplicationPending, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.Exec(ctx, `UPDATE careers SET applications_count = applications_count + 1, updated = ? WHERE id = ?`, ts, a.CareerID); err != nil {
		// The application itself is stored; a stale counter is tolerable.
		r.logger.Error("failed to bump applications_count", "career_id", a.CareerID, "err", err)
	}

	return r.GetApplicationByID(ctx, id)
}

// ListApplications is admin-only and joins the career for display.
func (r *SQLiteRepo) ListApplications(ctx context.Context, f repository.ApplicationFilter) ([]models.JobApplication, error) {
	query := `SELECT ` + applicationCols + `, c.title_en, c.title_ar, c.department_en, c.department_ar
		FROM job_applications a JOIN careers c ON c.id = a.career_id`
	var conditions []string
	var args []any

	if f.CareerID > 0 {
		conditions = append(conditions, `a.career_id = ?`)
		args = append(args, f.CareerID)
	}
	if f.Status != "" {
		conditions = append(conditions, `a.status = ?`)
		args = append(args, f.Status)
	}
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY a.created DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetApplicationByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+applicationCols+` FROM job_applications a WHERE a.id = ?`, id)
	a, err := scanApplication(row, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// UpdateApplicationStatus changes the status and, when notes is non-nil,
// the admin annotation; nothing else moves.
func (r *SQLiteRepo) UpdateApplicationStatus(ctx context.Context, id int64, status string, notes *string) (*models.JobApplication, error) {
	if notes != nil {
		if _, err := r.conn.Exec(ctx, `UPDATE job_applications SET status = ?, notes = ?, updated = ? WHERE id = ?`, status, *notes, now(), id); err != nil {
			return nil, err
		}
	} else {
		if _, err := r.conn.Exec(ctx, `UPDATE job_applications SET status = ?, updated = ? WHERE id = ?`, status, now(), id); err != nil {
			return nil, err
		}
	}
	return r.GetApplicationByID(ctx, id)
}
