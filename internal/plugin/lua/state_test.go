package lua

import (
	"context"
	"errors"
	"testing"
	"time"

	glua "github.com/yuin/gopher-lua"
)

func TestStateDoString(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`x = 1 + 1`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	v, ok := state.GetGlobal("x").(glua.LNumber)
	if !ok {
		t.Fatalf("x is not a number, got %T", state.GetGlobal("x"))
	}
	if float64(v) != 2 {
		t.Errorf("x = %v, want 2", v)
	}
}

func TestStateDoStringSyntaxError(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`invalid lua code !!!`); err == nil {
		t.Error("DoString() should fail on a syntax error")
	}
}

func TestSandboxRemovesGlobals(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range removedGlobals {
		if v := state.GetGlobal(name); v != glua.LNil {
			t.Errorf("%s should be removed, got %T", name, v)
		}
	}
	for _, name := range []string{"io", "os", "debug", "package"} {
		if v := state.GetGlobal(name); v != glua.LNil {
			t.Errorf("library %s should not be opened", name)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if v := state.GetGlobal(name); v == glua.LNil {
			t.Errorf("%s should be available", name)
		}
	}
}

func TestSandboxPrint(t *testing.T) {
	var got []string
	state := NewState(WithPrint(func(s string) { got = append(got, s) }))
	defer state.Close()

	if err := state.DoString(`print("a", 1, true)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(got) != 1 || got[0] != "a\t1\ttrue" {
		t.Errorf("print output = %q, want [\"a\\t1\\ttrue\"]", got)
	}

	// Without a callback print is silently discarded.
	quiet := NewState()
	defer quiet.Close()
	if err := quiet.DoString(`print("ignored")`); err != nil {
		t.Errorf("DoString() error = %v", err)
	}
}

func TestStateCall(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`function add(a, b) return a + b, "sum" end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	results, err := state.Call(context.Background(), "add", glua.LNumber(2), glua.LNumber(3))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Call() returned %d values, want 2", len(results))
	}
	if results[0] != glua.LNumber(5) || results[1] != glua.LString("sum") {
		t.Errorf("Call() = %v, want [5 sum]", results)
	}
	if top := state.LuaState().GetTop(); top != 0 {
		t.Errorf("stack top after Call = %d, want 0", top)
	}
}

func TestStateCallErrors(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`notfn = 1; function fail() error("boom") end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	tests := []string{"missing", "notfn", "fail"}
	for _, fn := range tests {
		if _, err := state.Call(context.Background(), fn); err == nil {
			t.Errorf("Call(%q) should fail", fn)
		}
	}
	if !state.HasFunc("fail") || state.HasFunc("notfn") {
		t.Error("HasFunc() mismatch")
	}
}

func TestStateTimeout(t *testing.T) {
	state := NewState(WithExecutionTimeout(20 * time.Millisecond))
	defer state.Close()

	err := state.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("DoString() error = %v, want ErrExecutionTimeout", err)
	}
}

func TestStateClose(t *testing.T) {
	state := NewState()
	if err := state.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !state.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := state.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() after Close error = %v, want ErrStateClosed", err)
	}
	if err := state.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if state.GetGlobal("x") != glua.LNil {
		t.Error("GetGlobal() after Close should return LNil")
	}
}

func TestStateReset(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`y = 1; function f() end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if err := state.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state.GetGlobal("y") != glua.LNil || state.HasFunc("f") {
		t.Error("Reset() should remove script globals")
	}
	if state.GetGlobal("string") == glua.LNil || state.GetGlobal("print") == glua.LNil {
		t.Error("Reset() should keep builtins")
	}
}

func TestStateResetRestoresLibraries(t *testing.T) {
	var printed []string
	state := NewState(WithPrint(func(msg string) { printed = append(printed, msg) }))
	defer state.Close()

	if err := state.DoString(`
string.rep = nil
string.extra = 1
print = nil
math = nil
_G[1] = "array"`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if err := state.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	err := state.DoString(`
assert(string.rep("a", 2) == "aa")
assert(("b"):rep(2) == "bb")
assert(string.extra == nil)
assert(math.floor(1.5) == 1)
assert(_G[1] == nil)
print("ok")`)
	if err != nil {
		t.Fatalf("libraries not restored: %v", err)
	}
	if len(printed) != 1 || printed[0] != "ok" {
		t.Errorf("print output = %v, want [ok]", printed)
	}
}

func TestStateReplace(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.Replace(`x = 1; function f() end`); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if err := state.Replace(`function f(`); err == nil {
		t.Fatal("Replace() with a syntax error should fail")
	}
	if !state.HasFunc("f") || state.GetGlobal("x") != glua.LNumber(1) {
		t.Error("a chunk that does not compile should leave the previous globals")
	}

	if err := state.Replace(`y = 2`); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if state.HasFunc("f") || state.GetGlobal("x") != glua.LNil {
		t.Error("Replace() should clear the previous script's globals")
	}
	if state.GetGlobal("y") != glua.LNumber(2) {
		t.Errorf("y = %v, want 2", state.GetGlobal("y"))
	}
}
