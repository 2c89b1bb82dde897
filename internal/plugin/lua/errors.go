package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a call runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoRenderFunc is recorded when a script does not define render.
	ErrNoRenderFunc = errors.New("lua script does not define a render function")
)
