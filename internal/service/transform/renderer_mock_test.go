package transform

import (
	"context"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ renderer = &rendererMock{}

type rendererMock struct {
	BuildFunc func(ctx context.Context, req domain.RenderRequest) (string, error)

	calls struct {
		Build []struct {
			Ctx context.Context
			Req domain.RenderRequest
		}
	}
	lockBuild sync.RWMutex
}

func (mock *rendererMock) Build(ctx context.Context, req domain.RenderRequest) (string, error) {
	if mock.BuildFunc == nil {
		panic("rendererMock.BuildFunc: method is nil but renderer.Build was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.RenderRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockBuild.Lock()
	mock.calls.Build = append(mock.calls.Build, callInfo)
	mock.lockBuild.Unlock()
	return mock.BuildFunc(ctx, req)
}

func (mock *rendererMock) BuildCalls() []struct {
	Ctx context.Context
	Req domain.RenderRequest
} {
	mock.lockBuild.RLock()
	calls := mock.calls.Build
	mock.lockBuild.RUnlock()
	return calls
}
