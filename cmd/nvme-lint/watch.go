package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OpenMPDK/nvme-lint/logging"
)

// debounceDelay batches the event bursts editors and PDF exporters emit
// while writing a file.
const debounceDelay = 500 * time.Millisecond

// watchFiles runs until ctx is cancelled, calling relint for a watched file
// once its change events settle. Lint failures inside watch mode are logged
// and the watch continues.
func watchFiles(ctx context.Context, files []string, relint func(context.Context, string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories. Exporters replace files by rename,
	// which drops a watch on the file itself but not on the directory.
	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		watched[file] = true
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	log := logging.For("watch")
	log.Infow("watching for changes", "files", len(files), "directories", len(dirs))

	changes := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()
	schedule := func(path string) {
		if timer, ok := timers[path]; ok {
			timer.Reset(debounceDelay)
			return
		}
		timers[path] = time.AfterFunc(debounceDelay, func() {
			select {
			case changes <- path:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			log.Infow("stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !watched[path] {
				continue
			}
			schedule(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", "error", err)
		case path := <-changes:
			log.Infow("file changed, linting again", "file", path)
			if err := relint(ctx, path); err != nil {
				log.Errorw("lint failed", "file", path, "error", err)
			}
		}
	}
}
