package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals load code from outside the script or reach into the
// module system.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
	"collectgarbage",
}

// Sandbox restricts what a script can reach.
type Sandbox struct {
	L *lua.LState

	print     func(string)
	builtins  map[string]lua.LValue
	libraries map[*lua.LTable]map[lua.LValue]lua.LValue
}

// NewSandbox creates a sandbox for L. Output from print goes to printFn;
// a nil printFn discards it.
func NewSandbox(L *lua.LState, printFn func(string)) *Sandbox {
	return &Sandbox{
		L:         L,
		print:     printFn,
		builtins:  make(map[string]lua.LValue),
		libraries: make(map[*lua.LTable]map[lua.LValue]lua.LValue),
	}
}

// Install removes unsafe globals and replaces print. The globals present
// afterwards, and the contents of the library tables, are recorded so
// Restore can undo whatever a script changed.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installSafePrint()

	globals := s.globals()
	globals.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		s.builtins[string(ks)] = v
		if t, ok := v.(*lua.LTable); ok && t != globals {
			s.libraries[t] = snapshot(t)
		}
	})
}

// Restore removes every global a script defined and puts the builtins and
// library tables back as Install recorded them.
func (s *Sandbox) Restore() {
	globals := s.globals()
	var stale []lua.LValue
	globals.ForEach(func(k, _ lua.LValue) {
		if ks, ok := k.(lua.LString); !ok || !s.isBuiltin(string(ks)) {
			stale = append(stale, k)
		}
	})
	for _, k := range stale {
		globals.RawSet(k, lua.LNil)
	}
	for name, v := range s.builtins {
		globals.RawSetString(name, v)
	}

	for t, fields := range s.libraries {
		stale = stale[:0]
		t.ForEach(func(k, _ lua.LValue) {
			if _, ok := fields[k]; !ok {
				stale = append(stale, k)
			}
		})
		for _, k := range stale {
			t.RawSet(k, lua.LNil)
		}
		for k, v := range fields {
			t.RawSet(k, v)
		}
	}
}

func (s *Sandbox) globals() *lua.LTable {
	return s.L.Get(lua.GlobalsIndex).(*lua.LTable)
}

func snapshot(t *lua.LTable) map[lua.LValue]lua.LValue {
	fields := make(map[lua.LValue]lua.LValue)
	t.ForEach(func(k, v lua.LValue) {
		fields[k] = v
	})
	return fields
}

// installSafePrint replaces print so scripts never write to the terminal
// the UI is drawing on.
func (s *Sandbox) installSafePrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		if s.print == nil {
			return 0
		}
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		s.print(strings.Join(parts, "\t"))
		return 0
	}))
}

func (s *Sandbox) isBuiltin(name string) bool {
	_, ok := s.builtins[name]
	return ok
}
