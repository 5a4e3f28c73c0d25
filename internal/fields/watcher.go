package fields

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"querylens/internal/logging"
)

// Watcher hot-reloads a file-backed registry when the file changes, so a
// running assistant picks up schema changes without a restart. Editors save
// in bursts, so events are debounced before reloading.
type Watcher struct {
	mu       sync.Mutex
	registry *Registry
	watcher  *fsnotify.Watcher
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	log      *zap.Logger
}

// NewWatcher creates a watcher for a registry loaded via Load.
func NewWatcher(registry *Registry) (*Watcher, error) {
	if registry.Path() == "" {
		return nil, fmt.Errorf("registry has no backing file to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		registry: registry,
		watcher:  fw,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		log:      logging.Get(logging.CategoryFields),
	}, nil
}

// Start begins watching. Non-blocking; the watch loop runs until Stop or
// ctx cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: editors replace files on save and
	// a direct file watch dies with the old inode.
	dir := filepath.Dir(w.registry.Path())
	if err := w.watcher.Add(dir); err != nil {
		// The loop never started, so a later Stop must not wait on it.
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	target := filepath.Clean(w.registry.Path())
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			if err := w.registry.reload(); err != nil {
				w.log.Warn("reload failed, keeping previous field set", zap.Error(err))
				continue
			}
			w.log.Info("metadata fields reloaded",
				zap.String("path", target),
				zap.Int("count", len(w.registry.Names())))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Stop halts the watcher and releases its resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	_ = w.watcher.Close()
	<-w.doneCh
}
