package image

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetAuthorFunc func(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	calls struct {
		GetAuthor []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetAuthor sync.RWMutex
}

func (mock *userRepoMock) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	if mock.GetAuthorFunc == nil {
		panic("userRepoMock.GetAuthorFunc: method is nil but userRepo.GetAuthor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetAuthor.Lock()
	mock.calls.GetAuthor = append(mock.calls.GetAuthor, callInfo)
	mock.lockGetAuthor.Unlock()
	return mock.GetAuthorFunc(ctx, id)
}

func (mock *userRepoMock) GetAuthorCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetAuthor.RLock()
	calls := mock.calls.GetAuthor
	mock.lockGetAuthor.RUnlock()
	return calls
}
