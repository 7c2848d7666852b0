// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-simplify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run() {
	m.runCount.Add(1)
}

// blockingWorker runs until release is closed.
type blockingWorker struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingWorker() *blockingWorker {
	return &blockingWorker{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingWorker) Run() {
	close(b.started)
	<-b.release
}

// recordingCallback counts callback invocations.
type recordingCallback struct {
	mu        sync.Mutex
	successes []*models.Map
	errs      []error
	done      chan struct{}
}

func newRecordingCallback() *recordingCallback {
	return &recordingCallback{done: make(chan struct{}, 2)}
}

func (r *recordingCallback) OnSuccess(result *models.Map) {
	r.mu.Lock()
	r.successes = append(r.successes, result)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recordingCallback) OnError(err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	r.done <- struct{}{}
}

// ---------------------------------------------------------------------------
// Workers
// ---------------------------------------------------------------------------

func TestWorkers_Go_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers()
	for _, w := range []Worker{w1, w2, w3} {
		ws.Go(w)
	}
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
	assert.Equal(t, 0, ws.InFlight())
}

func TestWorkers_Wait_Empty(t *testing.T) {
	var ws Workers

	// Should not block on an empty set
	ws.Wait()
	require.NoError(t, ws.WaitContext(context.Background()))
}

func TestWorkers_Go_DoesNotBlockCaller(t *testing.T) {
	ws := NewWorkers()
	b := newBlockingWorker()

	ws.Go(b)
	<-b.started

	assert.Equal(t, 1, ws.InFlight())

	close(b.release)
	ws.Wait()
	assert.Equal(t, 0, ws.InFlight())
}

func TestWorkers_WaitContext_Timeout(t *testing.T) {
	ws := NewWorkers()
	b := newBlockingWorker()
	ws.Go(b)
	<-b.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, ws.WaitContext(ctx), context.DeadlineExceeded)

	close(b.release)
	require.NoError(t, ws.WaitContext(context.Background()))
}

// ---------------------------------------------------------------------------
// Call
// ---------------------------------------------------------------------------

func TestCall_Success(t *testing.T) {
	want := models.NewMap().MustSet("id", "tok_123")
	cb := newRecordingCallback()

	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		return want, nil
	}, cb, nil, nil)

	NewWorkers().Go(call)
	<-cb.done

	got, err := call.Future().Await(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)

	cb.mu.Lock()
	defer cb.mu.Unlock()
	assert.Len(t, cb.successes, 1)
	assert.Empty(t, cb.errs)
}

func TestCall_Error(t *testing.T) {
	gwErr := models.NewGatewayError(402, nil)
	cb := newRecordingCallback()

	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		return nil, gwErr
	}, cb, nil, nil)
	call.Run()

	_, err := call.Future().Await(context.Background())
	assert.ErrorIs(t, err, gwErr)

	assert.Empty(t, cb.successes)
	require.Len(t, cb.errs, 1)
	assert.ErrorIs(t, cb.errs[0], gwErr)
}

func TestCall_NilResultBecomesEmptyMap(t *testing.T) {
	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		return nil, nil
	}, nil, nil, nil)
	call.Run()

	got, err := call.Future().Await(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}

func TestCall_PanicBecomesError(t *testing.T) {
	cb := newRecordingCallback()
	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		panic("boom")
	}, cb, nil, nil)

	assert.NotPanics(t, call.Run)

	require.Len(t, cb.errs, 1)
	assert.ErrorIs(t, cb.errs[0], ErrPanic)
	assert.Contains(t, cb.errs[0].Error(), "boom")
}

func TestCall_CallbackPanicIsContained(t *testing.T) {
	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		return models.NewMap(), nil
	}, CallbackFuncs{Success: func(*models.Map) { panic("callback") }}, nil, nil)

	assert.NotPanics(t, call.Run)
	_, err := call.Future().Await(context.Background())
	assert.NoError(t, err)
}

func TestCall_IgnoresCancellation(t *testing.T) {
	type ctxKey struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "value"))
	cancel()

	var sawErr error
	var sawValue any
	call := NewCall(ctx, func(ctx context.Context) (*models.Map, error) {
		sawErr = ctx.Err()
		sawValue = ctx.Value(ctxKey{})
		return models.NewMap(), nil
	}, nil, nil, nil)
	call.Run()

	assert.NoError(t, sawErr)
	assert.Equal(t, "value", sawValue)
}

func TestCall_UsesDispatcher(t *testing.T) {
	var dispatched atomic.Int32
	dispatch := func(fn func()) {
		dispatched.Add(1)
		fn()
	}

	var got error
	call := NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
		return nil, assert.AnError
	}, CallbackFuncs{Error: func(err error) { got = err }}, dispatch, nil)
	call.Run()

	assert.Equal(t, int32(1), dispatched.Load())
	assert.ErrorIs(t, got, assert.AnError)
}

func TestCall_CallbackFiresExactlyOnce(t *testing.T) {
	var successes, failures atomic.Int32
	cb := CallbackFuncs{
		Success: func(*models.Map) { successes.Add(1) },
		Error:   func(error) { failures.Add(1) },
	}

	ws := NewWorkers()
	for i := range 50 {
		ws.Go(NewCall(context.Background(), func(ctx context.Context) (*models.Map, error) {
			if i%2 == 0 {
				return nil, errors.New("odd one out")
			}
			return models.NewMap(), nil
		}, cb, nil, nil))
	}
	ws.Wait()

	assert.Equal(t, int32(25), successes.Load())
	assert.Equal(t, int32(25), failures.Load())
}

// ---------------------------------------------------------------------------
// Future
// ---------------------------------------------------------------------------

func TestFuture_AwaitContextEnds(t *testing.T) {
	f := newFuture()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-f.Done():
		t.Fatal("future must not be done")
	default:
	}
}

func TestFuture_CompleteOnce(t *testing.T) {
	f := newFuture()
	first := models.NewMap().MustSet("n", 1)

	f.complete(first, nil)
	f.complete(nil, assert.AnError)

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestCallbackFuncs_NilFunctions(t *testing.T) {
	var cb Callback = CallbackFuncs{}
	assert.NotPanics(t, func() {
		cb.OnSuccess(models.NewMap())
		cb.OnError(assert.AnError)
	})
}
