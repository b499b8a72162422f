package submission

import (
	"context"
	"sync"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ projectResolver = &projectResolverMock{}

type projectResolverMock struct {
	ActorForFunc       func(ctx context.Context, routeScope domain.ScopeKind) (domain.Actor, error)
	ResolveProjectFunc func(ctx context.Context, actor domain.Actor, ref string) (*domain.ScopedProject, error)

	calls struct {
		ActorFor []struct {
			Ctx        context.Context
			RouteScope domain.ScopeKind
		}
		ResolveProject []struct {
			Ctx   context.Context
			Actor domain.Actor
			Ref   string
		}
	}
	lockActorFor sync.RWMutex
	lockResolveProject sync.RWMutex
}

func (mock *projectResolverMock) ActorFor(ctx context.Context, routeScope domain.ScopeKind) (domain.Actor, error) {
	if mock.ActorForFunc == nil {
		panic("projectResolverMock.ActorForFunc: method is nil but projectResolver.ActorFor was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RouteScope domain.ScopeKind
	}{
		Ctx:        ctx,
		RouteScope: routeScope,
	}
	mock.lockActorFor.Lock()
	mock.calls.ActorFor = append(mock.calls.ActorFor, callInfo)
	mock.lockActorFor.Unlock()
	return mock.ActorForFunc(ctx, routeScope)
}

func (mock *projectResolverMock) ActorForCalls() []struct {
	Ctx        context.Context
	RouteScope domain.ScopeKind
} {
	var calls []struct {
		Ctx        context.Context
		RouteScope domain.ScopeKind
	}
	mock.lockActorFor.RLock()
	calls = mock.calls.ActorFor
	mock.lockActorFor.RUnlock()
	return calls
}

func (mock *projectResolverMock) ResolveProject(ctx context.Context, actor domain.Actor, ref string) (*domain.ScopedProject, error) {
	if mock.ResolveProjectFunc == nil {
		panic("projectResolverMock.ResolveProjectFunc: method is nil but projectResolver.ResolveProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Ref   string
	}{
		Ctx:   ctx,
		Actor: actor,
		Ref:   ref,
	}
	mock.lockResolveProject.Lock()
	mock.calls.ResolveProject = append(mock.calls.ResolveProject, callInfo)
	mock.lockResolveProject.Unlock()
	return mock.ResolveProjectFunc(ctx, actor, ref)
}

func (mock *projectResolverMock) ResolveProjectCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Ref   string
} {
	var calls []struct {
		Ctx   context.Context
		Actor domain.Actor
		Ref   string
	}
	mock.lockResolveProject.RLock()
	calls = mock.calls.ResolveProject
	mock.lockResolveProject.RUnlock()
	return calls
}
