// Package storage persists the cart in a local SQLite file.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type sqldb interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type CartDB struct {
	*sql.DB
}

// NewCartDB opens the cart database at path, creating the file when
// absent, and verifies the connection.
func NewCartDB(ctx context.Context, path string) (CartDB, error) {
	const op = "NewCartDB"
	log := slog.With("op", op)

	dsn := filepath.Clean(path) +
		"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return CartDB{}, fmt.Errorf("%s: failed to open: %w", op, err)
	}

	s := CartDB{db}
	if err := s.PingContext(ctx); err != nil {
		_ = db.Close()
		return CartDB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}
	log.Info("cart database is available", "path", path)
	return s, nil
}

func (s CartDB) Close() {
	const op = "CartDB.Close"
	log := slog.With("op", op)

	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("cart database is closed")
}
