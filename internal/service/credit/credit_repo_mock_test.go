package credit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ creditRepo = &creditRepoMock{}

type creditRepoMock struct {
	AdjustBalanceFunc     func(ctx context.Context, userID uuid.UUID, delta int) (int, error)
	BalanceFunc           func(ctx context.Context, userID uuid.UUID) (int, error)
	HistoryFunc           func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditTransaction, error)
	InsertTransactionFunc func(ctx context.Context, tx *domain.CreditTransaction) error

	calls struct {
		AdjustBalance []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Delta  int
		}
		Balance []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		History []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		InsertTransaction []struct {
			Ctx context.Context
			Tx  *domain.CreditTransaction
		}
	}
	lockAdjustBalance     sync.RWMutex
	lockBalance           sync.RWMutex
	lockHistory           sync.RWMutex
	lockInsertTransaction sync.RWMutex
}

func (mock *creditRepoMock) AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) (int, error) {
	if mock.AdjustBalanceFunc == nil {
		panic("creditRepoMock.AdjustBalanceFunc: method is nil but creditRepo.AdjustBalance was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Delta  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Delta:  delta,
	}
	mock.lockAdjustBalance.Lock()
	mock.calls.AdjustBalance = append(mock.calls.AdjustBalance, callInfo)
	mock.lockAdjustBalance.Unlock()
	return mock.AdjustBalanceFunc(ctx, userID, delta)
}

func (mock *creditRepoMock) AdjustBalanceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Delta  int
} {
	mock.lockAdjustBalance.RLock()
	calls := mock.calls.AdjustBalance
	mock.lockAdjustBalance.RUnlock()
	return calls
}

func (mock *creditRepoMock) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.BalanceFunc == nil {
		panic("creditRepoMock.BalanceFunc: method is nil but creditRepo.Balance was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockBalance.Lock()
	mock.calls.Balance = append(mock.calls.Balance, callInfo)
	mock.lockBalance.Unlock()
	return mock.BalanceFunc(ctx, userID)
}

func (mock *creditRepoMock) BalanceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockBalance.RLock()
	calls := mock.calls.Balance
	mock.lockBalance.RUnlock()
	return calls
}

func (mock *creditRepoMock) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditTransaction, error) {
	if mock.HistoryFunc == nil {
		panic("creditRepoMock.HistoryFunc: method is nil but creditRepo.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, userID, limit)
}

func (mock *creditRepoMock) HistoryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *creditRepoMock) InsertTransaction(ctx context.Context, tx *domain.CreditTransaction) error {
	if mock.InsertTransactionFunc == nil {
		panic("creditRepoMock.InsertTransactionFunc: method is nil but creditRepo.InsertTransaction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tx  *domain.CreditTransaction
	}{
		Ctx: ctx,
		Tx:  tx,
	}
	mock.lockInsertTransaction.Lock()
	mock.calls.InsertTransaction = append(mock.calls.InsertTransaction, callInfo)
	mock.lockInsertTransaction.Unlock()
	return mock.InsertTransactionFunc(ctx, tx)
}

func (mock *creditRepoMock) InsertTransactionCalls() []struct {
	Ctx context.Context
	Tx  *domain.CreditTransaction
} {
	mock.lockInsertTransaction.RLock()
	calls := mock.calls.InsertTransaction
	mock.lockInsertTransaction.RUnlock()
	return calls
}
