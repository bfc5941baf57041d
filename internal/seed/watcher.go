package seed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zaryabali001/roommate/internal/models"
)

// Resetter is what the watcher reloads seeds into. *store.Store satisfies it.
type Resetter interface {
	Reset(ctx context.Context, seed *models.Seed)
}

// WatcherConfig configures a seed file watcher.
type WatcherConfig struct {
	// Path is the YAML seed file to watch.
	Path string

	// DebounceDelay is how long to wait for more writes before reloading.
	DebounceDelay time.Duration

	Logger *slog.Logger
}

// Watcher reloads a YAML seed into a store whenever the file changes.
// Invalid seeds are logged and ignored; the store keeps its current state.
type Watcher struct {
	config  WatcherConfig
	source  *YAMLSource
	target  Resetter
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
}

// NewWatcher creates a watcher for config.Path feeding target.
func NewWatcher(config WatcherConfig, target Resetter) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 200 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		source:  NewYAMLSource(config.Path),
		target:  target,
		watcher: fsw,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the watch is registered; reloads
// happen in the background until ctx is cancelled or Stop is called.
// When the watch cannot be registered the watcher is closed and Done is closed.
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the directory: editors often replace the file rather than write it.
	dir := filepath.Dir(w.config.Path)
	if err := w.watcher.Add(dir); err != nil {
		_ = w.watcher.Close()
		close(w.done)
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.processEvents(ctx)

	w.logger.Info("Seed watcher started",
		"path", w.config.Path,
		"debounce", w.config.DebounceDelay)
	return nil
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Stop closes the underlying watcher, which ends the event loop.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)

	target := filepath.Clean(w.config.Path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Seed file changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.config.DebounceDelay)
			} else {
				timer.Reset(w.config.DebounceDelay)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Seed watcher error", "error", err)

		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	seed, err := w.source.LoadSeed(ctx)
	if err != nil {
		w.logger.Warn("Seed reload failed", "path", w.config.Path, "error", err)
		return
	}
	w.target.Reset(ctx, seed)
	w.logger.Info("Seed reloaded", "path", w.config.Path, "users", len(seed.Users))
}
