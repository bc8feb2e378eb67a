package logfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenAndLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dwim.log")

	lg, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	lg.Log("subl /a/b.py:42")
	if err := lg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "subl /a/b.py:42") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dwim.log")

	for _, msg := range []string{"first", "second"} {
		lg, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		lg.Log(msg)
		lg.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("expected both entries, got %q", string(data))
	}
}

func TestNop(t *testing.T) {
	// Must not panic.
	Nop().Log("anything")
}
