package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		wantErr   bool
	}{
		{"", false, false},
		{"debug", true, false},
		{"warn", false, false},
		{"loud", false, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: tt.level})
		if tt.wantErr {
			if err == nil {
				t.Errorf("level %q: expected an error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("level %q: %v", tt.level, err)
		}
		logger.Debug("coin captured", "score", 1)
		if got := strings.Contains(buf.String(), "coin captured"); got != tt.debugSeen {
			t.Errorf("level %q: debug written=%v, want %v", tt.level, got, tt.debugSeen)
		}
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "coinfall.log")
	logger, closer, err := NewFile(Options{File: path, Prefix: "coinfall"})
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	logger.Info("round started", "seed", 7)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round started") || !strings.Contains(string(data), "seed=7") {
		t.Errorf("log file content = %q", data)
	}
}

func TestNewFileDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, closer, err := NewFile(Options{})
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	closer.Close()

	if _, err := os.Stat(filepath.Join(home, ".coinfall", "coinfall.log")); err != nil {
		t.Errorf("default log file not created: %v", err)
	}
}
