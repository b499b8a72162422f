package review

import (
	"context"
	"sync"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.ActivityRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.ActivityRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, record domain.ActivityRecord) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.ActivityRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.ActivityRecord
} {
	var calls []struct {
		Ctx    context.Context
		Record domain.ActivityRecord
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
