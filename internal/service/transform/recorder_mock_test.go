package transform

import (
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ApplyFailedFunc    func(kind domain.TransformationKind, cause string)
	ApplySucceededFunc func(kind domain.TransformationKind)
	ImageSavedFunc     func(mode domain.FormMode)
	SessionsActiveFunc func(n int)

	calls struct {
		ApplyFailed []struct {
			Kind  domain.TransformationKind
			Cause string
		}
		ApplySucceeded []struct {
			Kind domain.TransformationKind
		}
		ImageSaved []struct {
			Mode domain.FormMode
		}
		SessionsActive []struct {
			N int
		}
	}
	lockApplyFailed    sync.RWMutex
	lockApplySucceeded sync.RWMutex
	lockImageSaved     sync.RWMutex
	lockSessionsActive sync.RWMutex
}

func (mock *recorderMock) ApplyFailed(kind domain.TransformationKind, cause string) {
	if mock.ApplyFailedFunc == nil {
		panic("recorderMock.ApplyFailedFunc: method is nil but recorder.ApplyFailed was just called")
	}
	callInfo := struct {
		Kind  domain.TransformationKind
		Cause string
	}{
		Kind:  kind,
		Cause: cause,
	}
	mock.lockApplyFailed.Lock()
	mock.calls.ApplyFailed = append(mock.calls.ApplyFailed, callInfo)
	mock.lockApplyFailed.Unlock()
	mock.ApplyFailedFunc(kind, cause)
}

func (mock *recorderMock) ApplyFailedCalls() []struct {
	Kind  domain.TransformationKind
	Cause string
} {
	mock.lockApplyFailed.RLock()
	calls := mock.calls.ApplyFailed
	mock.lockApplyFailed.RUnlock()
	return calls
}

func (mock *recorderMock) ApplySucceeded(kind domain.TransformationKind) {
	if mock.ApplySucceededFunc == nil {
		panic("recorderMock.ApplySucceededFunc: method is nil but recorder.ApplySucceeded was just called")
	}
	callInfo := struct {
		Kind domain.TransformationKind
	}{
		Kind: kind,
	}
	mock.lockApplySucceeded.Lock()
	mock.calls.ApplySucceeded = append(mock.calls.ApplySucceeded, callInfo)
	mock.lockApplySucceeded.Unlock()
	mock.ApplySucceededFunc(kind)
}

func (mock *recorderMock) ApplySucceededCalls() []struct {
	Kind domain.TransformationKind
} {
	mock.lockApplySucceeded.RLock()
	calls := mock.calls.ApplySucceeded
	mock.lockApplySucceeded.RUnlock()
	return calls
}

func (mock *recorderMock) ImageSaved(mode domain.FormMode) {
	if mock.ImageSavedFunc == nil {
		panic("recorderMock.ImageSavedFunc: method is nil but recorder.ImageSaved was just called")
	}
	callInfo := struct {
		Mode domain.FormMode
	}{
		Mode: mode,
	}
	mock.lockImageSaved.Lock()
	mock.calls.ImageSaved = append(mock.calls.ImageSaved, callInfo)
	mock.lockImageSaved.Unlock()
	mock.ImageSavedFunc(mode)
}

func (mock *recorderMock) ImageSavedCalls() []struct {
	Mode domain.FormMode
} {
	mock.lockImageSaved.RLock()
	calls := mock.calls.ImageSaved
	mock.lockImageSaved.RUnlock()
	return calls
}

func (mock *recorderMock) SessionsActive(n int) {
	if mock.SessionsActiveFunc == nil {
		panic("recorderMock.SessionsActiveFunc: method is nil but recorder.SessionsActive was just called")
	}
	callInfo := struct {
		N int
	}{
		N: n,
	}
	mock.lockSessionsActive.Lock()
	mock.calls.SessionsActive = append(mock.calls.SessionsActive, callInfo)
	mock.lockSessionsActive.Unlock()
	mock.SessionsActiveFunc(n)
}

func (mock *recorderMock) SessionsActiveCalls() []struct {
	N int
} {
	mock.lockSessionsActive.RLock()
	calls := mock.calls.SessionsActive
	mock.lockSessionsActive.RUnlock()
	return calls
}
