// Package workers runs gateway calls off the calling goroutine.
//
// Every call gets its own short-lived goroutine; there is no pool, queue or
// ordering between calls. A finished call completes its [Future] and then
// reports to its [Callback] exactly once through a [Dispatcher], which lets
// the host choose where the callback runs (inline on the worker goroutine by
// default, or e.g. on a UI event loop).
package workers

import "github.com/MKhiriev/go-simplify/models"

// Worker is the interface that must be implemented by anything [Workers]
// can start. Run blocks for the duration of the work.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // do the work
//	}
type Worker interface {
	Run()
}

// Callback receives the outcome of an asynchronous call. Exactly one of the
// methods is invoked, exactly once.
type Callback interface {
	OnSuccess(result *models.Map)
	OnError(err error)
}

// Dispatcher runs fn in the execution context the caller wants callbacks
// delivered on.
type Dispatcher func(fn func())

// Inline runs callbacks directly on the worker goroutine.
func Inline(fn func()) {
	fn()
}

// CallbackFuncs adapts two plain functions to [Callback]. Nil functions are
// skipped.
type CallbackFuncs struct {
	Success func(result *models.Map)
	Error   func(err error)
}

func (c CallbackFuncs) OnSuccess(result *models.Map) {
	if c.Success != nil {
		c.Success(result)
	}
}

func (c CallbackFuncs) OnError(err error) {
	if c.Error != nil {
		c.Error(err)
	}
}
