// Package watcher re-runs a callback whenever a carrier image changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/easylsb/pkg/log"
)

// Handler is called once at start and after every settled change.
type Handler func(ctx context.Context, path string)

// Watcher monitors a single file via fsnotify.
//
// The parent directory is watched rather than the file itself so that
// atomic replacements (write to a temporary file, then rename) are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	logger   log.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for path. A nil logger discards output.
func New(path string, debounce time.Duration, handler Handler, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		handler:  handler,
		logger:   logger,
	}
}

// Run calls the handler once, then again after each change to the file,
// until ctx is cancelled. Bursts of events within the debounce delay
// produce a single call. Calls never overlap, and none is in progress
// once Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching carrier", log.String("path", w.path), log.Duration("debounce", w.debounce))

	// A change settling while the handler runs leaves one pending call.
	settled := make(chan struct{}, 1)
	defer w.stopTimer()

	w.handler(ctx, w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-settled:
			if ctx.Err() != nil {
				return nil
			}
			w.handler(ctx, w.path)

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("carrier changed", log.String("op", event.Op.String()))
			w.schedule(settled)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

// schedule restarts the debounce timer. When it fires it only signals
// settled; the handler itself runs on the Run goroutine.
func (w *Watcher) schedule(settled chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case settled <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
