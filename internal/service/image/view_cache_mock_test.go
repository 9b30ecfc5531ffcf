package image

import (
	"context"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ viewCache = &viewCacheMock{}

type viewCacheMock struct {
	GetImageFunc   func(ctx context.Context, path string) (*domain.Image, bool, error)
	RevalidateFunc func(ctx context.Context, path string) error
	SetImageFunc   func(ctx context.Context, path string, img *domain.Image) error

	calls struct {
		GetImage []struct {
			Ctx  context.Context
			Path string
		}
		Revalidate []struct {
			Ctx  context.Context
			Path string
		}
		SetImage []struct {
			Ctx  context.Context
			Path string
			Img  *domain.Image
		}
	}
	lockGetImage   sync.RWMutex
	lockRevalidate sync.RWMutex
	lockSetImage   sync.RWMutex
}

func (mock *viewCacheMock) GetImage(ctx context.Context, path string) (*domain.Image, bool, error) {
	if mock.GetImageFunc == nil {
		panic("viewCacheMock.GetImageFunc: method is nil but viewCache.GetImage was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockGetImage.Lock()
	mock.calls.GetImage = append(mock.calls.GetImage, callInfo)
	mock.lockGetImage.Unlock()
	return mock.GetImageFunc(ctx, path)
}

func (mock *viewCacheMock) GetImageCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockGetImage.RLock()
	calls := mock.calls.GetImage
	mock.lockGetImage.RUnlock()
	return calls
}

func (mock *viewCacheMock) Revalidate(ctx context.Context, path string) error {
	if mock.RevalidateFunc == nil {
		panic("viewCacheMock.RevalidateFunc: method is nil but viewCache.Revalidate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockRevalidate.Lock()
	mock.calls.Revalidate = append(mock.calls.Revalidate, callInfo)
	mock.lockRevalidate.Unlock()
	return mock.RevalidateFunc(ctx, path)
}

func (mock *viewCacheMock) RevalidateCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockRevalidate.RLock()
	calls := mock.calls.Revalidate
	mock.lockRevalidate.RUnlock()
	return calls
}

func (mock *viewCacheMock) SetImage(ctx context.Context, path string, img *domain.Image) error {
	if mock.SetImageFunc == nil {
		panic("viewCacheMock.SetImageFunc: method is nil but viewCache.SetImage was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
		Img  *domain.Image
	}{
		Ctx:  ctx,
		Path: path,
		Img:  img,
	}
	mock.lockSetImage.Lock()
	mock.calls.SetImage = append(mock.calls.SetImage, callInfo)
	mock.lockSetImage.Unlock()
	return mock.SetImageFunc(ctx, path, img)
}

func (mock *viewCacheMock) SetImageCalls() []struct {
	Ctx  context.Context
	Path string
	Img  *domain.Image
} {
	mock.lockSetImage.RLock()
	calls := mock.calls.SetImage
	mock.lockSetImage.RUnlock()
	return calls
}
