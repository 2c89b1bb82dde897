// Package main is the entry point for the tessera widget demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/dshills/tessera/internal/app"
	"github.com/dshills/tessera/internal/config"
	"github.com/dshills/tessera/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	scriptPath string
	watch      bool
	dump       string
	size       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.scriptPath != "" {
		cfg.Script.Path = opts.scriptPath
	}
	if opts.watch {
		cfg.Script.Watch = true
	}

	logOut, closeLog, err := openLog(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: logOut,
		Prefix: "tessera",
	})

	if opts.dump != "" {
		return dump(cfg, logger, opts)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use -dump to render without one)")
		return 1
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{Config: cfg, Backend: terminal, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dump renders one frame and prints it instead of running interactively.
func dump(cfg *config.Config, logger *app.Logger, opts options) int {
	width, height, err := parseSize(opts.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	buf, err := application.Snapshot(width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch opts.dump {
	case "text":
		fmt.Println(buf.String())
	case "json":
		data, err := buf.MarshalJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		os.Stdout.Write(pretty.Pretty(data))
	}
	return 0
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return 0, 0, fmt.Errorf("invalid width in size %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("invalid height in size %q", s)
	}
	return w, h, nil
}

// openLog opens the log file. An empty path discards logs, since the
// terminal is in use by the UI.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script drawn in the detail pane")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the script when it changes")
	flag.StringVar(&opts.dump, "dump", "", "Render one frame to stdout (text or json)")
	flag.StringVar(&opts.size, "size", "80x24", "Frame size for -dump")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Tessera - terminal widget render contracts demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tessera [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tessera                          Run interactively\n")
		fmt.Fprintf(os.Stderr, "  tessera -script w.lua -watch     Draw a Lua widget, reloading on save\n")
		fmt.Fprintf(os.Stderr, "  tessera -dump text -size 60x12   Print one frame\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Tessera %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	switch opts.dump {
	case "", "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid dump format %q (must be text or json)\n", opts.dump)
		os.Exit(1)
	}

	return opts
}
