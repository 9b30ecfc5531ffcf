// Package credit owns every change to a user's credit balance. Each change
// is a conditional row update plus an append-only ledger row, committed in
// one transaction.
package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

type creditRepo interface {
	AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) (int, error)
	InsertTransaction(ctx context.Context, tx *domain.CreditTransaction) error
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditTransaction, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	CreditAdjusted(reason domain.CreditReason, delta int)
	CreditRejected(reason domain.CreditReason)
}

// Service implements the credit ledger.
type Service struct {
	log     *slog.Logger
	credits creditRepo
	tx      txManager
	metrics recorder
	clock   clockz.Clock
}

// NewService creates a new credit service instance.
func NewService(logger *slog.Logger, credits creditRepo, tx txManager, metrics recorder) *Service {
	return &Service{
		log:     logger.With("service", "credit"),
		credits: credits,
		tx:      tx,
		metrics: metrics,
		clock:   clockz.RealClock,
	}
}

// Adjust applies delta to the user's balance and returns the new balance.
// A debit that would take the balance below zero fails with
// domain.ErrInsufficientCredit and changes nothing.
func (s *Service) Adjust(ctx context.Context, userID uuid.UUID, delta int, reason domain.CreditReason) (int, error) {
	in := AdjustInput{UserID: userID, Delta: delta, Reason: reason}
	if err := in.Validate(); err != nil {
		return 0, err
	}

	var balance int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.credits.AdjustBalance(ctx, userID, delta)
		if err != nil {
			return err
		}

		return s.credits.InsertTransaction(ctx, &domain.CreditTransaction{
			ID:           uuid.New(),
			UserID:       userID,
			Delta:        delta,
			BalanceAfter: balance,
			Reason:       reason,
			CreatedAt:    s.clock.Now().UTC(),
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredit) {
			s.metrics.CreditRejected(reason)
			s.log.InfoContext(ctx, "credit debit rejected",
				slog.String("user_id", userID.String()),
				slog.Int("delta", delta),
				slog.String("reason", reason.String()))
		}
		return 0, fmt.Errorf("credit.Adjust: %w", err)
	}

	s.metrics.CreditAdjusted(reason, delta)
	s.log.InfoContext(ctx, "credit balance adjusted",
		slog.String("user_id", userID.String()),
		slog.Int("delta", delta),
		slog.Int("balance", balance),
		slog.String("reason", reason.String()))

	return balance, nil
}

// Balance returns the user's current balance.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	balance, err := s.credits.Balance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("credit.Balance: %w", err)
	}
	return balance, nil
}

// History returns the user's recent ledger rows, newest first.
func (s *Service) History(ctx context.Context, in HistoryInput) ([]domain.CreditTransaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.credits.History(ctx, in.UserID, in.limit())
	if err != nil {
		return nil, fmt.Errorf("credit.History: %w", err)
	}
	return rows, nil
}
