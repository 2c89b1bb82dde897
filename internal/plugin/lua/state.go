package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds every call into Lua.
const DefaultExecutionTimeout = 100 * time.Millisecond

// State wraps gopher-lua with a sandbox and per-call timeouts.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// made through State; code that uses LuaState directly must not run
// concurrently with them.
type State struct {
	l  *lua.LState
	mu sync.Mutex

	executionTimeout time.Duration
	print            func(string)

	sandbox *Sandbox
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for each call. Zero disables it.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithPrint routes the script's print output to fn.
func WithPrint(fn func(string)) StateOption {
	return func(s *State) {
		s.print = fn
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	state := &State{
		executionTimeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(state)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.l = L
	openSafeLibraries(L)

	state.sandbox = NewSandbox(L, state.print)
	state.sandbox.Install()
	return state
}

// openSafeLibraries opens only the Lua standard libraries that cannot reach
// outside the process.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoString executes a chunk of Lua source.
func (s *State) DoString(code string) error {
	return s.run(context.Background(), func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(context.Background(), func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// Call calls the global function fn with args and returns its results.
func (s *State) Call(ctx context.Context, fn string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.run(ctx, func(L *lua.LState) error {
		fnVal := L.GetGlobal(fn)
		if fnVal.Type() != lua.LTFunction {
			return fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
		}

		top := L.GetTop()
		L.Push(fnVal)
		for _, arg := range args {
			L.Push(arg)
		}
		if err := L.PCall(len(args), lua.MultRet, nil); err != nil {
			L.SetTop(top)
			return err
		}

		n := L.GetTop() - top
		results = make([]lua.LValue, n)
		for i := 0; i < n; i++ {
			results[i] = L.Get(top + i + 1)
		}
		L.SetTop(top)
		return nil
	})
	return results, err
}

// HasFunc reports whether fn is a global function.
func (s *State) HasFunc(fn string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return s.l.GetGlobal(fn).Type() == lua.LTFunction
}

// run executes fn under the lock with the timeout applied and panics
// recovered.
func (s *State) run(ctx context.Context, fn func(L *lua.LState) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.l.SetContext(ctx)
	defer s.l.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn(s.l)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.l.GetGlobal(name)
}

// SetGlobal sets a global variable.
func (s *State) SetGlobal(name string, value lua.LValue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.l.SetGlobal(name, value)
}

// LuaState returns the underlying gopher-lua state. Using it bypasses the
// mutex and the timeout.
func (s *State) LuaState() *lua.LState {
	return s.l
}

// Sandbox returns the sandbox installed in the state.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the Lua state. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.l.Close()
	s.closed = true
	return nil
}

// Reset removes every global the script defined and undoes its changes to
// the builtins and library tables.
func (s *State) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	s.sandbox.Restore()
	return nil
}

// Replace swaps the loaded script for code. The chunk is compiled first; if
// it does not compile the previous script's globals stay as they were.
// Otherwise the state is reset and the chunk is run.
func (s *State) Replace(code string) error {
	return s.run(context.Background(), func(L *lua.LState) error {
		fn, err := L.LoadString(code)
		if err != nil {
			return err
		}
		s.sandbox.Restore()

		top := L.GetTop()
		defer L.SetTop(top)
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
}
