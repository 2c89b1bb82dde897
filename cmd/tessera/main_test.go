package main

import (
	"io"
	"path/filepath"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int
		wantErr bool
	}{
		{"80x24", 80, 24, false},
		{"120X40", 120, 40, false},
		{"0x0", 0, 0, false},
		{"80", 0, 0, true},
		{"ax24", 0, 0, true},
		{"80x-1", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %d, %d, want %d, %d", tt.input, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestOpenLog(t *testing.T) {
	out, closeLog, err := openLog("")
	if err != nil || out != io.Discard {
		t.Fatalf("openLog(\"\") = %v, %v", out, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "tessera.log")
	out, closeLog, err = openLog(path)
	if err != nil {
		t.Fatalf("openLog() error = %v", err)
	}
	defer closeLog()
	if _, err := io.WriteString(out, "hello\n"); err != nil {
		t.Errorf("write error = %v", err)
	}

	if _, _, err := openLog(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("openLog() in a missing directory should fail")
	}
}
