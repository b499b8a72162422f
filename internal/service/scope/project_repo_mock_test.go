package scope

import (
	"context"
	"sync"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	FindInScopeFunc func(ctx context.Context, scope domain.Scope, ref string) ([]domain.ScopedProject, error)

	calls struct {
		FindInScope []struct {
			Ctx   context.Context
			Scope domain.Scope
			Ref   string
		}
	}
	lockFindInScope sync.RWMutex
}

func (mock *projectRepoMock) FindInScope(ctx context.Context, scope domain.Scope, ref string) ([]domain.ScopedProject, error) {
	if mock.FindInScopeFunc == nil {
		panic("projectRepoMock.FindInScopeFunc: method is nil but projectRepo.FindInScope was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		Ref   string
	}{Ctx: ctx, Scope: scope, Ref: ref}
	mock.lockFindInScope.Lock()
	mock.calls.FindInScope = append(mock.calls.FindInScope, callInfo)
	mock.lockFindInScope.Unlock()
	return mock.FindInScopeFunc(ctx, scope, ref)
}

func (mock *projectRepoMock) FindInScopeCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	Ref   string
} {
	mock.lockFindInScope.RLock()
	calls := mock.calls.FindInScope
	mock.lockFindInScope.RUnlock()
	return calls
}
