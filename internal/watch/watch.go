// Package watch re-runs generation whenever the component manifest changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of filesystem events most editors emit
// for a single save.
const DefaultDebounce = 250 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the quiet period between the last filesystem event
// and the regeneration callback.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger attaches a logger to the watch loop.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher triggers a callback when one manifest file changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
}

// New prepares a watcher for the manifest at path.
func New(path string, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch: path is required")
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is cancelled, invoking onChange after every settled
// burst of changes to the manifest. Callback errors are logged and watching
// continues; only a broken watch channel or cancellation ends the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	if ctx == nil {
		return errors.New("watch: context is required")
	}
	if onChange == nil {
		return errors.New("watch: onChange callback is required")
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer notifier.Close()

	// Watch the parent directory rather than the file itself: editors
	// replace files on save, and the watch on the old inode would go stale.
	dir := filepath.Dir(w.path)
	if err := notifier.Add(dir); err != nil {
		return fmt.Errorf("watch: watch %q: %w", dir, err)
	}
	w.logger.Info("watching manifest", zap.String("path", w.path))

	// The timer starts stopped; the first relevant event arms it, and every
	// further event pushes the deadline out past the burst.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-notifier.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("manifest changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-notifier.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

// relevant reports whether event concerns the watched manifest.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
