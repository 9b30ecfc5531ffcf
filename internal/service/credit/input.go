package credit

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// AdjustInput holds parameters for a balance change.
type AdjustInput struct {
	UserID uuid.UUID
	Delta  int
	Reason domain.CreditReason
}

// Validate validates the adjust input.
func (i AdjustInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must not be zero"})
	}
	if !i.Reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "unknown reason"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds parameters for listing ledger rows. Limit 0 means the default.
type HistoryInput struct {
	UserID uuid.UUID
	Limit  int
}

// Validate validates the history input.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i HistoryInput) limit() int {
	if i.Limit == 0 {
		return defaultHistoryLimit
	}
	return i.Limit
}
