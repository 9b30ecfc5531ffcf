package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreditTransaction is an append-only ledger row written alongside every
// balance change.
type CreditTransaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Delta        int
	BalanceAfter int
	Reason       CreditReason
	CreatedAt    time.Time
}
