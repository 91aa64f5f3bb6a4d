package watch

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".glassicon.toml")
	if err := os.WriteFile(path, []byte("out_dir = '.'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("out_dir = 'dist'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".glassicon.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "icon.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes:
		t.Fatal("change reported for an unrelated file")
	case <-time.After(4 * Debounce):
	}
}

func TestStopClosesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	w.Stop()

	if _, ok := <-w.Changes; ok {
		t.Error("Changes still open after Stop")
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestWatcherLogsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	logger := &recordingLogger{}
	w.Logger = logger
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	w.watcher.Errors <- errors.New("queue overflow")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, line := range logger.snapshot() {
			if strings.HasPrefix(line, "watch: ") && strings.Contains(line, "queue overflow") {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("error not logged, got %v", logger.snapshot())
}
