package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"NewswireNotifier/internal/infrastructure/source"
	"NewswireNotifier/internal/ports"
)

const defaultDebounce = 500 * time.Millisecond

// Handler receives each bulletin dropped into the watched directory.
type Handler func(ctx context.Context, bulletin ports.Bulletin)

// DropWatcher watches a wire drop directory and hands settled XML files to a handler.
type DropWatcher struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewDropWatcher builds a watcher; a non-positive debounce uses 500ms.
func NewDropWatcher(dir string, debounce time.Duration, logger *slog.Logger) *DropWatcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DropWatcher{
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]time.Time),
	}
}

// Run blocks until ctx is cancelled. Files are handled once no write has
// been seen for the debounce interval, so partially uploaded bulletins are
// not parsed.
func (w *DropWatcher) Run(ctx context.Context, handle Handler) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create drop dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("drop watcher started", "dir", w.dir, "debounce", w.debounce)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.track(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		case now := <-ticker.C:
			for _, path := range w.settled(now) {
				bulletin, err := source.ReadFile(path)
				if err != nil {
					w.logger.Warn("read dropped bulletin", "path", path, "error", err)
					continue
				}
				handle(ctx, bulletin)
			}
		}
	}
}

func (w *DropWatcher) track(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !isBulletin(event.Name) {
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *DropWatcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, seen := range w.pending {
		if now.Sub(seen) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}

func isBulletin(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}
