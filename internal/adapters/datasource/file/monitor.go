package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/okian/regista/pkg/logger"
)

// debounceWindow coalesces the burst of write events an editor or
// download produces for a single file change.
const debounceWindow = 500 * time.Millisecond

// Monitor watches the preloaded CSV and invokes a reload callback when
// the file changes. The parent directory is watched, not the file itself,
// so atomic replace-by-rename is seen too.
type Monitor struct {
	path    string
	watcher *fsnotify.Watcher
	log     logger.Logger
}

// NewMonitor creates a monitor for path.
func NewMonitor(path string, log logger.Logger) (*Monitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return &Monitor{path: path, watcher: watcher, log: log}, nil
}

// Watch blocks until ctx is done, calling reload once the write burst for
// a change has settled. Every event restarts the debounce timer, so reload
// only runs after the file has been quiet for the full window and never
// reads a half-written file. Reload failures are logged and do not stop
// the watch.
func (m *Monitor) Watch(ctx context.Context, reload func(context.Context) error) error {
	defer m.watcher.Close()

	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				settled = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounceWindow)
		case <-settled:
			timer, settled = nil, nil

			if m.log != nil {
				m.log.Info(ctx, "preloaded data changed, reloading",
					logger.String("path", m.path))
			}
			if err := reload(ctx); err != nil {
				if m.log != nil {
					m.log.Warn(ctx, "reload failed; keeping previous dataset",
						logger.String("path", m.path), logger.Error(err))
				}
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
