package overlay

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"rardesc/connector"
)

// Watch reapplies overlay at path to c every time the file is written or
// recreated, until ctx is done. Bursts of events closer than debounce result
// in a single reload. Overlays which fail to load are logged and skipped, c
// keeps whatever was applied last. onApply, when not nil, receives result of
// every successful application.
func Watch(ctx context.Context, path string, c *connector.Connector, debounce time.Duration, log *zap.Logger, onApply func(*Result)) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("watch").With(zap.String("overlay", path))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer w.Close()

	// editors often replace files, watching directory survives that
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", filepath.Dir(path), err)
	}
	name := filepath.Base(path)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	log.Debug("Watching overlay")
	for {
		select {
		case <-ctx.Done():
			log.Debug("Watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("File watcher error", zap.Error(err))
		case <-timer.C:
			reload(path, c, log, onApply)
		}
	}
}

func reload(path string, c *connector.Connector, log *zap.Logger, onApply func(*Result)) {
	ov, err := LoadFile(path)
	if err != nil {
		log.Warn("Unable to reload overlay, keeping previous state", zap.Error(err))
		return
	}
	res, err := ov.Apply(c, log)
	if err != nil {
		log.Warn("Unable to apply overlay, keeping previous state", zap.Error(err))
		return
	}
	if onApply != nil {
		onApply(res)
	}
}
