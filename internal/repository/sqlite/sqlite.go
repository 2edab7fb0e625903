package sqlite

import (
	"database/sql"
	"io"
	"log/slog"
	"time"

	"github.com/awtad/website/internal/db"
	"github.com/awtad/website/internal/models"
	"github.com/awtad/website/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.CareerRepo = (*SQLiteRepo)(nil)
var _ repository.ApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.InquiryRepo = (*SQLiteRepo)(nil)
var _ repository.SectorRepo = (*SQLiteRepo)(nil)
var _ repository.ServiceRepo = (*SQLiteRepo)(nil)
var _ repository.NewsRepo = (*SQLiteRepo)(nil)
var _ repository.AdminRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// text builds a bilingual value from a pair of nullable columns.
func text(en, ar sql.NullString) models.Text {
	return models.Text{EN: en.String, AR: ar.String}
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
