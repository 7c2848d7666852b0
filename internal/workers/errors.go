package workers

import "errors"

// ErrPanic wraps a panic recovered from a call.
var ErrPanic = errors.New("call panicked")
