package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	l.Logf("built %d views", 3)

	lines := l.Lines()
	want := "[2026-01-02 03:04:05] built 3 views"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("Lines = %q, want [%q]", lines, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestMemoryOnlyAndBounded(t *testing.T) {
	l := New("")
	for i := 0; i < MaxLines+10; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != MaxLines {
		t.Fatalf("len(Lines) = %d, want %d", len(lines), MaxLines)
	}
	if !strings.HasSuffix(lines[0], "line 10") {
		t.Errorf("oldest line = %q, want line 10", lines[0])
	}
}
