package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor emits on save.
const reloadDelay = 200 * time.Millisecond

// Watch reloads the store whenever a file under dir changes, until ctx is
// canceled. dir must be the on-disk root the store reads from.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	for _, d := range []string{dir, filepath.Join(dir, BlogDir)} {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}

	go s.watchFiles(ctx, watcher)
	s.logger.Info("Watching content for changes", "dir", dir)
	return nil
}

func (s *Store) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		watcher.Close()
		s.logger.Info("Content watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("Content changed", "op", event.Op.String(), "path", event.Name)

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDelay, func() {
				if err := s.Load(); err != nil {
					s.logger.Error("Content reload failed, keeping previous content", "error", err)
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("Content watcher error", "error", err)
		}
	}
}
