package submission

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	PutFunc    func(ctx context.Context, bucket string, key string, body io.Reader, size int64, mimeType string) error
	RemoveFunc func(ctx context.Context, bucket string, keys []string) error

	calls struct {
		Put []struct {
			Ctx      context.Context
			Bucket   string
			Key      string
			Body     io.Reader
			Size     int64
			MimeType string
		}
		Remove []struct {
			Ctx    context.Context
			Bucket string
			Keys   []string
		}
	}
	lockPut sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *objectStoreMock) Put(ctx context.Context, bucket string, key string, body io.Reader, size int64, mimeType string) error {
	if mock.PutFunc == nil {
		panic("objectStoreMock.PutFunc: method is nil but objectStore.Put was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Bucket   string
		Key      string
		Body     io.Reader
		Size     int64
		MimeType string
	}{
		Ctx:      ctx,
		Bucket:   bucket,
		Key:      key,
		Body:     body,
		Size:     size,
		MimeType: mimeType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, bucket, key, body, size, mimeType)
}

func (mock *objectStoreMock) PutCalls() []struct {
	Ctx      context.Context
	Bucket   string
	Key      string
	Body     io.Reader
	Size     int64
	MimeType string
} {
	var calls []struct {
		Ctx      context.Context
		Bucket   string
		Key      string
		Body     io.Reader
		Size     int64
		MimeType string
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *objectStoreMock) Remove(ctx context.Context, bucket string, keys []string) error {
	if mock.RemoveFunc == nil {
		panic("objectStoreMock.RemoveFunc: method is nil but objectStore.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Bucket string
		Keys   []string
	}{
		Ctx:    ctx,
		Bucket: bucket,
		Keys:   keys,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, bucket, keys)
}

func (mock *objectStoreMock) RemoveCalls() []struct {
	Ctx    context.Context
	Bucket string
	Keys   []string
} {
	var calls []struct {
		Ctx    context.Context
		Bucket string
		Keys   []string
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
