package transform

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"sync"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	CreateFunc  func(ctx context.Context, ownerID uuid.UUID, in image.CreateInput) (*domain.Image, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	UpdateFunc  func(ctx context.Context, ownerID uuid.UUID, in image.UpdateInput) (*domain.Image, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			In      image.CreateInput
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			In      image.UpdateInput
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *imageStoreMock) Create(ctx context.Context, ownerID uuid.UUID, in image.CreateInput) (*domain.Image, error) {
	if mock.CreateFunc == nil {
		panic("imageStoreMock.CreateFunc: method is nil but imageStore.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		In      image.CreateInput
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		In:      in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, in)
}

func (mock *imageStoreMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	In      image.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *imageStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	if mock.GetByIDFunc == nil {
		panic("imageStoreMock.GetByIDFunc: method is nil but imageStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *imageStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *imageStoreMock) Update(ctx context.Context, ownerID uuid.UUID, in image.UpdateInput) (*domain.Image, error) {
	if mock.UpdateFunc == nil {
		panic("imageStoreMock.UpdateFunc: method is nil but imageStore.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		In      image.UpdateInput
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		In:      in,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, in)
}

func (mock *imageStoreMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	In      image.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
