package credit

import (
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	CreditAdjustedFunc func(reason domain.CreditReason, delta int)
	CreditRejectedFunc func(reason domain.CreditReason)

	calls struct {
		CreditAdjusted []struct {
			Reason domain.CreditReason
			Delta  int
		}
		CreditRejected []struct {
			Reason domain.CreditReason
		}
	}
	lockCreditAdjusted sync.RWMutex
	lockCreditRejected sync.RWMutex
}

func (mock *recorderMock) CreditAdjusted(reason domain.CreditReason, delta int) {
	if mock.CreditAdjustedFunc == nil {
		panic("recorderMock.CreditAdjustedFunc: method is nil but recorder.CreditAdjusted was just called")
	}
	callInfo := struct {
		Reason domain.CreditReason
		Delta  int
	}{
		Reason: reason,
		Delta:  delta,
	}
	mock.lockCreditAdjusted.Lock()
	mock.calls.CreditAdjusted = append(mock.calls.CreditAdjusted, callInfo)
	mock.lockCreditAdjusted.Unlock()
	mock.CreditAdjustedFunc(reason, delta)
}

func (mock *recorderMock) CreditAdjustedCalls() []struct {
	Reason domain.CreditReason
	Delta  int
} {
	mock.lockCreditAdjusted.RLock()
	calls := mock.calls.CreditAdjusted
	mock.lockCreditAdjusted.RUnlock()
	return calls
}

func (mock *recorderMock) CreditRejected(reason domain.CreditReason) {
	if mock.CreditRejectedFunc == nil {
		panic("recorderMock.CreditRejectedFunc: method is nil but recorder.CreditRejected was just called")
	}
	callInfo := struct {
		Reason domain.CreditReason
	}{
		Reason: reason,
	}
	mock.lockCreditRejected.Lock()
	mock.calls.CreditRejected = append(mock.calls.CreditRejected, callInfo)
	mock.lockCreditRejected.Unlock()
	mock.CreditRejectedFunc(reason)
}

func (mock *recorderMock) CreditRejectedCalls() []struct {
	Reason domain.CreditReason
} {
	mock.lockCreditRejected.RLock()
	calls := mock.calls.CreditRejected
	mock.lockCreditRejected.RUnlock()
	return calls
}
