// Package watch reports changes to a single file.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay quiet before a change is reported.
const Debounce = 100 * time.Millisecond

// Logger receives watch failures.
type Logger interface {
	Errorf(component string, format string, args ...interface{})
}

// Watcher monitors one file using fsnotify. Editors often replace files
// instead of writing them in place, so the parent directory is watched and
// events are filtered by name.
type Watcher struct {
	Path    string
	Changes <-chan struct{} // Read-only external channel
	// Logger, when set, is told about fsnotify errors. Watching continues.
	Logger Logger

	changes chan struct{} // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the file at path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 1)
	return &Watcher{
		Path:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(Debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.Logger != nil {
				w.Logger.Errorf("watch", "%s: %v", w.Path, err)
			}

		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < Debounce {
				continue
			}
			pending = time.Time{}
			// Coalesce: one buffered notification is enough.
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}
