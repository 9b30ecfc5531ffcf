package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Apply merges the draft into the committed configuration and charges the
// credit fee. The merged configuration is published only after the debit
// succeeds; on failure the session goes back to Editing with its draft and
// committed configuration untouched.
//
// Pending debounced edits are flushed first so they are part of the apply.
func (s *Session) Apply(ctx context.Context) error {
	// Flushed edits take s.mu themselves.
	s.edits.FlushAll()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("transform.Apply: %w", errSessionClosed)
	}
	if s.transforming || s.submitting {
		s.mu.Unlock()
		return fmt.Errorf("transform.Apply: %w: session is busy", domain.ErrConflict)
	}
	if s.draft.IsEmpty() {
		s.mu.Unlock()
		return fmt.Errorf("transform.Apply: %w: nothing to apply", domain.ErrConflict)
	}

	draft := s.draft
	merged := s.committed.Merge(draft)
	s.state = StatePendingApply
	s.transforming = true
	s.touchLocked()
	s.mu.Unlock()

	fee := s.m.cfg.CreditFee
	balance, err := s.m.credits.Adjust(ctx, s.ownerID, -fee, domain.CreditReasonApply)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transforming = false
	s.touchLocked()

	if err != nil {
		s.state = StateEditing

		cause := "ledger"
		if errors.Is(err, domain.ErrInsufficientCredit) {
			cause = "insufficient_credit"
			s.notifyLocked(NotificationError, "Insufficient credits", "You need more credits to apply this transformation")
		} else {
			s.notifyLocked(NotificationError, "Transformation failed", "Please try again")
		}
		s.m.metrics.ApplyFailed(s.kind.Kind, cause)

		s.m.log.WarnContext(ctx, "transformation apply rejected",
			slog.String("session_id", s.id.String()),
			slog.String("user_id", s.ownerID.String()),
			slog.String("cause", cause),
			slog.String("error", err.Error()))

		return fmt.Errorf("transform.Apply: %w", err)
	}

	s.committed = merged
	s.balance = &balance
	if s.draft == draft {
		s.draft = nil
		s.state = StateApplied
	} else {
		// Edited while the debit was in flight; the newer draft stays pending.
		s.state = StateEditing
	}

	s.notifyLocked(NotificationSuccess, "Transformation applied", creditsMessage(fee))
	s.m.metrics.ApplySucceeded(s.kind.Kind)

	s.m.log.InfoContext(ctx, "transformation applied",
		slog.String("session_id", s.id.String()),
		slog.String("user_id", s.ownerID.String()),
		slog.String("kind", s.kind.Kind.String()),
		slog.Int("balance", balance))

	return nil
}

func creditsMessage(fee int) string {
	if fee == 1 {
		return "1 credit was deducted from your account"
	}
	return fmt.Sprintf("%d credits were deducted from your account", fee)
}
