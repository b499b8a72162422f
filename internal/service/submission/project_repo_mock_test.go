package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	ApplyPatchFunc                  func(ctx context.Context, projectID uuid.UUID, patch domain.ProjectPatch) error
	UpsertHealthDetailsFunc         func(ctx context.Context, d domain.HealthDetails) error
	UpsertInfrastructureDetailsFunc func(ctx context.Context, d domain.InfrastructureDetails) error

	calls struct {
		ApplyPatch []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Patch     domain.ProjectPatch
		}
		UpsertHealthDetails []struct {
			Ctx context.Context
			D   domain.HealthDetails
		}
		UpsertInfrastructureDetails []struct {
			Ctx context.Context
			D   domain.InfrastructureDetails
		}
	}
	lockApplyPatch sync.RWMutex
	lockUpsertHealthDetails sync.RWMutex
	lockUpsertInfrastructureDetails sync.RWMutex
}

func (mock *projectRepoMock) ApplyPatch(ctx context.Context, projectID uuid.UUID, patch domain.ProjectPatch) error {
	if mock.ApplyPatchFunc == nil {
		panic("projectRepoMock.ApplyPatchFunc: method is nil but projectRepo.ApplyPatch was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Patch     domain.ProjectPatch
	}{
		Ctx:       ctx,
		ProjectID: projectID,
		Patch:     patch,
	}
	mock.lockApplyPatch.Lock()
	mock.calls.ApplyPatch = append(mock.calls.ApplyPatch, callInfo)
	mock.lockApplyPatch.Unlock()
	return mock.ApplyPatchFunc(ctx, projectID, patch)
}

func (mock *projectRepoMock) ApplyPatchCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Patch     domain.ProjectPatch
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Patch     domain.ProjectPatch
	}
	mock.lockApplyPatch.RLock()
	calls = mock.calls.ApplyPatch
	mock.lockApplyPatch.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpsertHealthDetails(ctx context.Context, d domain.HealthDetails) error {
	if mock.UpsertHealthDetailsFunc == nil {
		panic("projectRepoMock.UpsertHealthDetailsFunc: method is nil but projectRepo.UpsertHealthDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.HealthDetails
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockUpsertHealthDetails.Lock()
	mock.calls.UpsertHealthDetails = append(mock.calls.UpsertHealthDetails, callInfo)
	mock.lockUpsertHealthDetails.Unlock()
	return mock.UpsertHealthDetailsFunc(ctx, d)
}

func (mock *projectRepoMock) UpsertHealthDetailsCalls() []struct {
	Ctx context.Context
	D   domain.HealthDetails
} {
	var calls []struct {
		Ctx context.Context
		D   domain.HealthDetails
	}
	mock.lockUpsertHealthDetails.RLock()
	calls = mock.calls.UpsertHealthDetails
	mock.lockUpsertHealthDetails.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpsertInfrastructureDetails(ctx context.Context, d domain.InfrastructureDetails) error {
	if mock.UpsertInfrastructureDetailsFunc == nil {
		panic("projectRepoMock.UpsertInfrastructureDetailsFunc: method is nil but projectRepo.UpsertInfrastructureDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.InfrastructureDetails
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockUpsertInfrastructureDetails.Lock()
	mock.calls.UpsertInfrastructureDetails = append(mock.calls.UpsertInfrastructureDetails, callInfo)
	mock.lockUpsertInfrastructureDetails.Unlock()
	return mock.UpsertInfrastructureDetailsFunc(ctx, d)
}

func (mock *projectRepoMock) UpsertInfrastructureDetailsCalls() []struct {
	Ctx context.Context
	D   domain.InfrastructureDetails
} {
	var calls []struct {
		Ctx context.Context
		D   domain.InfrastructureDetails
	}
	mock.lockUpsertInfrastructureDetails.RLock()
	calls = mock.calls.UpsertInfrastructureDetails
	mock.lockUpsertInfrastructureDetails.RUnlock()
	return calls
}
