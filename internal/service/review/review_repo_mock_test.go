package review

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	AppendFunc    func(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error)
	ListByAIPFunc func(ctx context.Context, aipID uuid.UUID) ([]domain.ReviewEvent, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Event domain.ReviewEvent
		}
		ListByAIP []struct {
			Ctx   context.Context
			AipID uuid.UUID
		}
	}
	lockAppend sync.RWMutex
	lockListByAIP sync.RWMutex
}

func (mock *reviewRepoMock) Append(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error) {
	if mock.AppendFunc == nil {
		panic("reviewRepoMock.AppendFunc: method is nil but reviewRepo.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.ReviewEvent
	}{
		Ctx:   ctx,
		Event: event,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, event)
}

func (mock *reviewRepoMock) AppendCalls() []struct {
	Ctx   context.Context
	Event domain.ReviewEvent
} {
	var calls []struct {
		Ctx   context.Context
		Event domain.ReviewEvent
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByAIP(ctx context.Context, aipID uuid.UUID) ([]domain.ReviewEvent, error) {
	if mock.ListByAIPFunc == nil {
		panic("reviewRepoMock.ListByAIPFunc: method is nil but reviewRepo.ListByAIP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		AipID uuid.UUID
	}{
		Ctx:   ctx,
		AipID: aipID,
	}
	mock.lockListByAIP.Lock()
	mock.calls.ListByAIP = append(mock.calls.ListByAIP, callInfo)
	mock.lockListByAIP.Unlock()
	return mock.ListByAIPFunc(ctx, aipID)
}

func (mock *reviewRepoMock) ListByAIPCalls() []struct {
	Ctx   context.Context
	AipID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		AipID uuid.UUID
	}
	mock.lockListByAIP.RLock()
	calls = mock.calls.ListByAIP
	mock.lockListByAIP.RUnlock()
	return calls
}
