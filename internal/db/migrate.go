package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Migrate applies migrations and optional seed files found in the repository.
// It creates a `schema_migrations` table to track applied migrations and
// applies any SQL files in `db/migrations/` that have not yet been recorded.
// Seed files in seedFS are applied idempotently (INSERT OR IGNORE keyed by
// slug), so re-running startup never duplicates rows.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS, seedFS embed.FS) error {
	// ensure migrations table exists
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	// embedded migrations are provided under "migrations/..." in the top-level db package
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			// already applied
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, ?)`, version, time.Now().UTC().UnixMilli()); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	// optional seed files: default sectors and services for the public site
	if err := seedTaxonomy(ctx, d, seedFS, path.Join("seed", "sectors.json"), "sectors"); err != nil {
		return err
	}
	if err := seedTaxonomy(ctx, d, seedFS, path.Join("seed", "services.json"), "services"); err != nil {
		return err
	}

	return nil
}

type seedEntry struct {
	Slug      string `json:"slug"`
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func seedTaxonomy(ctx context.Context, d *DB, seedFS embed.FS, p, table string) error {
	b, err := fs.ReadFile(seedFS, p)
	if err != nil {
		// seed files are optional
		return nil
	}

	var entries []seedEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("parse seed %s: %w", p, err)
	}

	now := time.Now().UTC().UnixMilli()
	for _, e := range entries {
		q := fmt.Sprintf(`INSERT OR IGNORE INTO %s (slug, name_en, name_ar, icon, sort_order, is_active, created, updated) VALUES (?, ?, ?, ?, ?, 1, ?, ?)`, table)
		if _, err := d.Exec(ctx, q, e.Slug, e.NameEN, e.NameAR, e.Icon, e.SortOrder, now, now); err != nil {
			return fmt.Errorf("seed %s row %s: %w", table, e.Slug, err)
		}
	}

	return nil
}
