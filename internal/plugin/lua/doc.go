// Package lua lets Lua scripts draw into a frame.
//
// A script defines a global render function. It is called once per frame
// with the region and a drawing context:
//
//	function render(area, ctx)
//	    ctx:set_string(0, 0, "hello from lua", {fg = "#ff8800", attrs = "bold"})
//	    ctx:set_string(0, 1, "width " .. ctx:width())
//	    ctx:set_style(0, 0, ctx:width(), 1, {attrs = "underline|-bold"})
//	end
//
// Coordinates passed to the context are relative to the region and writes
// are clipped to it.
//
// # State
//
// State wraps a gopher-lua runtime with only the base, table, string and
// math libraries opened. The Sandbox removes functions that load code from
// disk or strings and routes print to a Go callback. Every call runs under
// a timeout:
//
//	state := lua.NewState(lua.WithExecutionTimeout(50 * time.Millisecond))
//	defer state.Close()
//
// # Widget
//
// Widget turns a script into a widget.MutRenderer. Rendering never fails:
// script errors are recorded and available from LastError, and whatever the
// script wrote before failing stays in the frame.
//
// # Watcher
//
// Watcher reloads a Widget's script when its file changes on disk.
package lua
