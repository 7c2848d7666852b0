package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-simplify/models"
)

// Future is the single-value result of an asynchronous call.
type Future struct {
	once   sync.Once
	done   chan struct{}
	result *models.Map
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// complete stores the outcome; later calls are ignored.
func (f *Future) complete(result *models.Map, err error) {
	f.once.Do(func() {
		f.result, f.err = result, err
		close(f.done)
	})
}

// Done is closed once the call has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call finishes or ctx ends. Ending ctx stops the
// waiting only; the call itself keeps running.
func (f *Future) Await(ctx context.Context) (*models.Map, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
