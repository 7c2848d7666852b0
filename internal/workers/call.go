package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/models"
)

// Func is the blocking body of a call.
type Func func(ctx context.Context) (*models.Map, error)

// Call is a [Worker] that runs one Func to completion and reports its
// outcome. Context values reach the Func but cancellation does not: once
// started, a call ends only by finishing or failing.
type Call struct {
	ctx      context.Context
	fn       Func
	future   *Future
	callback Callback
	dispatch Dispatcher
	logger   *logger.Logger
}

// NewCall prepares a call. cb may be nil when only the [Future] is used; a
// nil dispatch means [Inline].
func NewCall(ctx context.Context, fn Func, cb Callback, dispatch Dispatcher, log *logger.Logger) *Call {
	if dispatch == nil {
		dispatch = Inline
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Call{
		ctx:      context.WithoutCancel(ctx),
		fn:       fn,
		future:   newFuture(),
		callback: cb,
		dispatch: dispatch,
		logger:   log,
	}
}

// Future returns the handle completed when the call finishes.
func (c *Call) Future() *Future {
	return c.future
}

// Run implements [Worker].
func (c *Call) Run() {
	result, err := c.execute()
	c.future.complete(result, err)

	if c.callback == nil {
		return
	}

	c.dispatch(func() {
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error().Interface("panic", r).Msg("callback panicked")
			}
		}()

		if err != nil {
			c.callback.OnError(err)
			return
		}
		c.callback.OnSuccess(result)
	})
}

func (c *Call) execute() (result *models.Map, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	result, err = c.fn(c.ctx)
	if err == nil && result == nil {
		result = models.NewMap()
	}
	return result, err
}
