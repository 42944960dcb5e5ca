package cmd

import (
	"context"
	"fmt"
	"github.com/cottand/dlnf/internal/log"
	"github.com/fsnotify/fsnotify"
	"log/slog"
	"path/filepath"
	"slices"
)

// watchFiles calls run once, then again every time one of paths is written,
// created or renamed, until ctx is done. Parent directories are watched rather
// than the files, so editors replacing a file do not end the watch.
func watchFiles(ctx context.Context, logger *slog.Logger, paths []string, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start watching files: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	var watched []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("could not get absolute path of %s: %w", p, err)
		}
		watched = append(watched, abs)
		dir := filepath.Dir(abs)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !slices.Contains(watched, filepath.Clean(event.Name)) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Info("input changed, normalizing again", "section", log.SectionCLI, "file", event.Name, "op", event.Op.String())
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
