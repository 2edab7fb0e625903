package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/awtad/website/internal/models"
)

func (r *SQLiteRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("admin is nil")
	}
	if a.Email == "" || a.PasswordHash == "" {
		return 0, fmt.Errorf("email and password hash are required")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO admins (name, email, password_hash, updated) VALUES (?, ?, ?, ?)`,
		a.Name, a.Email, a.PasswordHash, now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, updated FROM admins WHERE email = ?`, email)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *SQLiteRepo) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.conn.Exec(ctx, `UPDATE admins SET password_hash = ?, updated = ? WHERE id = ?`, passwordHash, now(), id)
	return err
}

func (r *SQLiteRepo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM admins`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
