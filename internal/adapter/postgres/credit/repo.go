// Package credit implements the credit balance and ledger repository using PostgreSQL.
package credit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Repo provides credit balance updates and ledger rows backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new credit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// AdjustBalance adds delta to the user's balance in a single conditional
// UPDATE and returns the new balance. The row is left unchanged when the
// result would go negative. Returns domain.ErrNotFound for an unknown user
// and domain.ErrInsufficientCredit when the guard rejects the update.
func (r *Repo) AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var balance int
	err := q.QueryRow(ctx,
		`UPDATE users
		    SET credit_balance = credit_balance + $2, updated_at = now()
		  WHERE id = $1 AND credit_balance + $2 >= 0
		  RETURNING credit_balance`,
		userID, delta,
	).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, postgres.MapError(err, "user", userID)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	if !exists {
		return 0, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return 0, fmt.Errorf("user %s: %w", userID, domain.ErrInsufficientCredit)
}

// Balance returns the user's current credit balance.
func (r *Repo) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var balance int
	err := q.QueryRow(ctx, `SELECT credit_balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return balance, nil
}

// InsertTransaction appends a ledger row.
func (r *Repo) InsertTransaction(ctx context.Context, tx *domain.CreditTransaction) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO credit_transactions (id, user_id, delta, balance_after, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, tx.UserID, tx.Delta, tx.BalanceAfter, string(tx.Reason), tx.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "credit_transaction", tx.ID)
	}
	return nil
}

type transactionRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Delta        int       `db:"delta"`
	BalanceAfter int       `db:"balance_after"`
	Reason       string    `db:"reason"`
	CreatedAt    time.Time `db:"created_at"`
}

// History returns the user's most recent ledger rows, newest first.
func (r *Repo) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditTransaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []transactionRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT id, user_id, delta, balance_after, reason, created_at
		   FROM credit_transactions
		  WHERE user_id = $1
		  ORDER BY created_at DESC, id
		  LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "credit_transaction", userID)
	}

	out := make([]domain.CreditTransaction, len(rows))
	for i, row := range rows {
		out[i] = domain.CreditTransaction{
			ID:           row.ID,
			UserID:       row.UserID,
			Delta:        row.Delta,
			BalanceAfter: row.BalanceAfter,
			Reason:       domain.CreditReason(row.Reason),
			CreatedAt:    row.CreatedAt,
		}
	}
	return out, nil
}
