// Package watch reports changes to a set of annotated files so their lenses
// can be recomputed.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches files through their parent directories, so editors that
// save by renaming a temporary file are still observed.
//
// Create instances with [New].
type Watcher struct {
	files    map[string]bool
	watcher  *fsnotify.Watcher
	Debounce time.Duration
}

// New creates a [Watcher] for the given files.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		watcher:  fw,
		Debounce: DefaultDebounce,
	}

	dirs := map[string]bool{}

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			closeErr := fw.Close()

			return nil, fmt.Errorf("watch %s: %w", f, errors.Join(err, closeErr))
		}

		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		err := fw.Add(dir)
		if err != nil {
			closeErr := fw.Close()

			return nil, fmt.Errorf("watch %s: %w", dir, errors.Join(err, closeErr))
		}
	}

	return w, nil
}

// Run delivers the absolute path of each changed file to fn until ctx is
// done, then closes the watcher. Calls to fn are sequential.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	defer func() {
		err := w.watcher.Close()
		if err != nil {
			slog.Warn("close watcher", slog.Any("error", err))
		}
	}()

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	pending := make(map[string]time.Time)

	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.files[event.Name] {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					delete(pending, file)
					slog.Debug("file changed", slog.String("path", file))
					fn(file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch error", slog.Any("error", err))
		}
	}
}
