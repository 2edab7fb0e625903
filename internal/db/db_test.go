package db

import (
	"context"
	"database/sql"
	"testing"
)

// Foreign key enforcement must hold on every pooled connection, not just the
// one that happened to serve a setup statement.
func TestForeignKeysEnforcedOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	d, err := New(ctx, "file:fk_pool?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE parents (id INTEGER PRIMARY KEY);
		CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL REFERENCES parents(id))`); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	pool := d.GetConn()
	pool.SetMaxOpenConns(2)

	// Hold both connections open at once so the second statement cannot be
	// served by the first connection.
	first, err := pool.Conn(ctx)
	if err != nil {
		t.Fatalf("failed to get first connection: %v", err)
	}
	defer first.Close()
	second, err := pool.Conn(ctx)
	if err != nil {
		t.Fatalf("failed to get second connection: %v", err)
	}
	defer second.Close()

	for i, c := range []*sql.Conn{first, second} {
		var on int
		if err := c.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on); err != nil {
			t.Fatalf("failed to read pragma on connection %d: %v", i, err)
		}
		if on != 1 {
			t.Fatalf("connection %d has foreign_keys=%d, want 1", i, on)
		}
	}

	if _, err := second.ExecContext(ctx, `INSERT INTO children (parent_id) VALUES (999)`); err == nil {
		t.Fatalf("expected foreign key violation on second connection, insert was accepted")
	}
}
