package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/awtad/website/internal/models"
)

const inquiryCols = `id, name, email, phone, company, subject, inquiry_type, message, status, response, responded_at, created, updated`

func scanInquiry(s scanner) (*models.Inquiry, error) {
	var in models.Inquiry
	var phone, company, subject, response sql.NullString
	var respondedAt sql.NullInt64
	if err := s.Scan(&in.ID, &in.Name, &in.Email, &phone, &company, &subject, &in.InquiryType, &in.Message, &in.Status, &response, &respondedAt, &in.Created, &in.Updated); err != nil {
		return nil, err
	}
	in.Phone = phone.String
	in.Company = company.String
	in.Subject = subject.String
	if response.Valid {
		v := response.String
		in.Response = &v
	}
	if respondedAt.Valid {
		v := respondedAt.Int64
		in.RespondedAt = &v
	}
	return &in, nil
}

// SubmitInquiry is the public entry point; status is forced to pending.
func (r *SQLiteRepo) SubmitInquiry(ctx context.Context, in *models.Inquiry) (*models.Inquiry, error) {
	if in == nil {
		return nil, fmt.Errorf("inquiry is nil")
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, fmt.Errorf("name, email and message are required")
	}
	if in.InquiryType == "" {
		in.InquiryType = "general"
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO inquiries (name, email, phone, company, subject, inquiry_type, message, status, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Email, nullStr(in.Phone), nullStr(in.Company), nullStr(in.Subject), in.InquiryType, in.Message, models.InquiryPending, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetInquiryByID(ctx, id)
}

func (r *SQLiteRepo) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	query := `SELECT ` + inquiryCols + ` FROM inquiries`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Inquiry
	for rows.Next() {
		in, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *in)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+inquiryCols+` FROM inquiries WHERE id = ?`, id)
	in, err := scanInquiry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return in, nil
}

// UpdateInquiryStatus changes the status; a supplied response sets the
// response text and responded_at together in the same statement. Omitting
// the response leaves both untouched.
func (r *SQLiteRepo) UpdateInquiryStatus(ctx context.Context, id int64, status string, response *string) (*models.Inquiry, error) {
	ts := now()
	if response != nil {
		if _, err := r.conn.Exec(ctx, `UPDATE inquiries SET status = ?, response = ?, responded_at = ?, updated = ? WHERE id = ?`, status, *response, ts, ts, id); err != nil {
			return nil, err
		}
	} else {
		if _, err := r.conn.Exec(ctx, `UPDATE inquiries SET status = ?, updated = ? WHERE id = ?`, status, ts, id); err != nil {
			return nil, err
		}
	}
	return r.GetInquiryByID(ctx, id)
}

func (r *SQLiteRepo) DeleteInquiry(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepo) InquiryStats(ctx context.Context) (*models.InquiryStats, error) {
	stats := &models.InquiryStats{ByStatus: map[string]int{}}

	rows, err := r.conn.QueryRows(ctx, `SELECT status, COUNT(*) FROM inquiries GROUP BY status`)
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
		stats.ByStatus[status] = n
		stats.Total += n
	}
	return stats, rows.Err()
}
