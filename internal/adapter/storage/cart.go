package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/port"
	"github.com/sapiens-sapiens/storefront/pkg/retry"
)

var _ port.CartStorage = CartRepository{}

var writeRetry = retry.Config{
	MaxAttempts: 3,
	Delay:       50 * time.Millisecond,
	ShouldRetry: isBusy,
}

type CartRepository struct {
	sqldb sqldb
}

func NewCartRepository(sqldb sqldb) CartRepository {
	return CartRepository{sqldb}
}

// LoadCart returns the persisted lines in insertion order.
func (r CartRepository) LoadCart(
	ctx context.Context,
) ([]domain.CartLine, error) {
	const op = "CartRepository.LoadCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.sqldb.QueryContext(ctx,
		`SELECT product_id, quantity FROM cart_lines ORDER BY position;`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lines, nil
}

// ReplaceCart atomically swaps the persisted cart for lines,
// keeping their order. Writes against a busy file are retried.
func (r CartRepository) ReplaceCart(
	ctx context.Context, lines []domain.CartLine,
) error {
	const op = "CartRepository.ReplaceCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := retry.Do(ctx, writeRetry, func() error {
		return r.replaceCartTx(ctx, lines)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartRepository) replaceCartTx(
	ctx context.Context, lines []domain.CartLine,
) (txErr error) {
	log := slog.With("op", "CartRepository.replaceCartTx")

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	defer func() {
		if txErr == nil {
			if err := tx.Commit(); err != nil {
				txErr = fmt.Errorf("failed to commit: %w", err)
			}
			return
		}
		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_lines;`); err != nil {
		return fmt.Errorf("failed to clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cart_lines (product_id, quantity) VALUES ($1, $2);`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare stmt: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, l := range lines {
		if _, err := stmt.ExecContext(ctx, l.ProductID, l.Quantity); err != nil {
			return fmt.Errorf("failed to insert %q: %w", l.ProductID, err)
		}
	}
	return nil
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
