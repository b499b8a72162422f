package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ aipRepo = &aipRepoMock{}

type aipRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.AIP, error)
	ListForCityFunc  func(ctx context.Context, cityID uuid.UUID) ([]domain.SubmissionRow, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.AIPStatus) (time.Time, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListForCity []struct {
			Ctx    context.Context
			CityID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.AIPStatus
		}
	}
	lockGetByID sync.RWMutex
	lockListForCity sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *aipRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AIP, error) {
	if mock.GetByIDFunc == nil {
		panic("aipRepoMock.GetByIDFunc: method is nil but aipRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *aipRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *aipRepoMock) ListForCity(ctx context.Context, cityID uuid.UUID) ([]domain.SubmissionRow, error) {
	if mock.ListForCityFunc == nil {
		panic("aipRepoMock.ListForCityFunc: method is nil but aipRepo.ListForCity was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CityID uuid.UUID
	}{
		Ctx:    ctx,
		CityID: cityID,
	}
	mock.lockListForCity.Lock()
	mock.calls.ListForCity = append(mock.calls.ListForCity, callInfo)
	mock.lockListForCity.Unlock()
	return mock.ListForCityFunc(ctx, cityID)
}

func (mock *aipRepoMock) ListForCityCalls() []struct {
	Ctx    context.Context
	CityID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CityID uuid.UUID
	}
	mock.lockListForCity.RLock()
	calls = mock.calls.ListForCity
	mock.lockListForCity.RUnlock()
	return calls
}

func (mock *aipRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AIPStatus) (time.Time, error) {
	if mock.UpdateStatusFunc == nil {
		panic("aipRepoMock.UpdateStatusFunc: method is nil but aipRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.AIPStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *aipRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.AIPStatus
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.AIPStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
