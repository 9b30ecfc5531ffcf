package transform

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	AdjustFunc func(ctx context.Context, userID uuid.UUID, delta int, reason domain.CreditReason) (int, error)

	calls struct {
		Adjust []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Delta  int
			Reason domain.CreditReason
		}
	}
	lockAdjust sync.RWMutex
}

func (mock *ledgerMock) Adjust(ctx context.Context, userID uuid.UUID, delta int, reason domain.CreditReason) (int, error) {
	if mock.AdjustFunc == nil {
		panic("ledgerMock.AdjustFunc: method is nil but ledger.Adjust was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Delta  int
		Reason domain.CreditReason
	}{
		Ctx:    ctx,
		UserID: userID,
		Delta:  delta,
		Reason: reason,
	}
	mock.lockAdjust.Lock()
	mock.calls.Adjust = append(mock.calls.Adjust, callInfo)
	mock.lockAdjust.Unlock()
	return mock.AdjustFunc(ctx, userID, delta, reason)
}

func (mock *ledgerMock) AdjustCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Delta  int
	Reason domain.CreditReason
} {
	mock.lockAdjust.RLock()
	calls := mock.calls.Adjust
	mock.lockAdjust.RUnlock()
	return calls
}
