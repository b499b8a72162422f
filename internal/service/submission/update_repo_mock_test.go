package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ updateRepo = &updateRepoMock{}

type updateRepoMock struct {
	CreateFunc      func(ctx context.Context, u domain.ProjectUpdate) (domain.ProjectUpdate, error)
	CreateMediaFunc func(ctx context.Context, media []domain.MediaObject) ([]domain.MediaObject, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.ProjectUpdate
		}
		CreateMedia []struct {
			Ctx   context.Context
			Media []domain.MediaObject
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockCreateMedia sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *updateRepoMock) Create(ctx context.Context, u domain.ProjectUpdate) (domain.ProjectUpdate, error) {
	if mock.CreateFunc == nil {
		panic("updateRepoMock.CreateFunc: method is nil but updateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.ProjectUpdate
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *updateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.ProjectUpdate
} {
	var calls []struct {
		Ctx context.Context
		U   domain.ProjectUpdate
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *updateRepoMock) CreateMedia(ctx context.Context, media []domain.MediaObject) ([]domain.MediaObject, error) {
	if mock.CreateMediaFunc == nil {
		panic("updateRepoMock.CreateMediaFunc: method is nil but updateRepo.CreateMedia was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Media []domain.MediaObject
	}{
		Ctx:   ctx,
		Media: media,
	}
	mock.lockCreateMedia.Lock()
	mock.calls.CreateMedia = append(mock.calls.CreateMedia, callInfo)
	mock.lockCreateMedia.Unlock()
	return mock.CreateMediaFunc(ctx, media)
}

func (mock *updateRepoMock) CreateMediaCalls() []struct {
	Ctx   context.Context
	Media []domain.MediaObject
} {
	var calls []struct {
		Ctx   context.Context
		Media []domain.MediaObject
	}
	mock.lockCreateMedia.RLock()
	calls = mock.calls.CreateMedia
	mock.lockCreateMedia.RUnlock()
	return calls
}

func (mock *updateRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("updateRepoMock.DeleteFunc: method is nil but updateRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *updateRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
