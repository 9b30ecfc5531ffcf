package image

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ imageRepo = &imageRepoMock{}

type imageRepoMock struct {
	CreateFunc       func(ctx context.Context, img *domain.Image) (*domain.Image, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (bool, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	ListByAuthorFunc func(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]domain.Image, int, error)
	UpdateFunc       func(ctx context.Context, img *domain.Image) (*domain.Image, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Img *domain.Image
		}
		Delete []struct {
			Ctx      context.Context
			Id       uuid.UUID
			AuthorID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
			Limit    int
			Offset   int
		}
		Update []struct {
			Ctx context.Context
			Img *domain.Image
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockListByAuthor sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *imageRepoMock) Create(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	if mock.CreateFunc == nil {
		panic("imageRepoMock.CreateFunc: method is nil but imageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img *domain.Image
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, img)
}

func (mock *imageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Img *domain.Image
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *imageRepoMock) Delete(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("imageRepoMock.DeleteFunc: method is nil but imageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		AuthorID uuid.UUID
	}{
		Ctx:      ctx,
		Id:       id,
		AuthorID: authorID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, authorID)
}

func (mock *imageRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	AuthorID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *imageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	if mock.GetByIDFunc == nil {
		panic("imageRepoMock.GetByIDFunc: method is nil but imageRepo.GetByID was just called")
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

func (mock *imageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *imageRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	if mock.GetForUpdateFunc == nil {
		panic("imageRepoMock.GetForUpdateFunc: method is nil but imageRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *imageRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *imageRepoMock) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]domain.Image, int, error) {
	if mock.ListByAuthorFunc == nil {
		panic("imageRepoMock.ListByAuthorFunc: method is nil but imageRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Limit    int
		Offset   int
	}{
		Ctx:      ctx,
		AuthorID: authorID,
		Limit:    limit,
		Offset:   offset,
	}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID, limit, offset)
}

func (mock *imageRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *imageRepoMock) Update(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	if mock.UpdateFunc == nil {
		panic("imageRepoMock.UpdateFunc: method is nil but imageRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img *domain.Image
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, img)
}

func (mock *imageRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Img *domain.Image
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
