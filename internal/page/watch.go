package page

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/contentools/pagegen/internal/logging"
)

const rebuildDebounce = 200 * time.Millisecond

// Watch rebuilds the page whenever the input file changes, until ctx is
// cancelled. Events are debounced so editors that write in multiple steps
// trigger a single rebuild. Build failures are logged and the loop keeps
// running; only watcher setup errors are returned.
func Watch(ctx context.Context, svc Service, inputPath string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NoOp()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the parent directory: editors commonly replace files via rename,
	// which drops a watch registered on the file itself.
	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	logger.Info("watch: started", "input", inputPath)

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(rebuildDebounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(rebuildDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			logger.Info("watch: stopped")
			return nil

		case <-rebuildCh:
			if result, buildErr := svc.Build(ctx, BuildOptions{}); buildErr != nil {
				logger.Error("watch: rebuild failed", "error", buildErr.Error())
			} else {
				logger.Info("watch: rebuilt", "checksum", result.Checksum)
			}

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, absErr := filepath.Abs(ev.Name)
			if absErr != nil || abs != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleRebuild()
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: error", "error", watchErr.Error())
		}
	}
}
