package workers

import (
	"context"
	"sync"
	"sync/atomic"
)

// Workers starts each [Worker] on its own goroutine and keeps track of the
// ones still running so a host can drain them on shutdown. The zero value is
// ready to use.
type Workers struct {
	wg       sync.WaitGroup
	inFlight atomic.Int64
}

func NewWorkers() *Workers {
	return &Workers{}
}

// Go starts worker on a new goroutine and returns immediately.
func (w *Workers) Go(worker Worker) {
	w.wg.Add(1)
	w.inFlight.Add(1)

	go func() {
		defer w.wg.Done()
		defer w.inFlight.Add(-1)

		worker.Run()
	}()
}

// InFlight reports how many workers have not finished yet.
func (w *Workers) InFlight() int {
	return int(w.inFlight.Load())
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// WaitContext is Wait bounded by ctx. Workers keep running when ctx ends
// first; only the waiting stops.
func (w *Workers) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
