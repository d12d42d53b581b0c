package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls rerun every time the file at path is written or replaced,
// until the context is done. Errors from rerun are logged.
func (a *app) watch(ctx context.Context, path string, rerun func() error) (err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	defer watcher.Close()

	// Watch the directory, as editors often replace the file.
	target := filepath.Clean(path)
	err = watcher.Add(filepath.Dir(target))
	if err != nil {
		return
	}

	a.logger.Info("watching", "file", target)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				a.logger.Info("reload", "file", target)
				run_err := rerun()
				if run_err != nil {
					a.logger.Error("run", "file", target, "error", run_err)
				}
			}
		case watch_err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			a.logger.Error("watch", "error", watch_err)
		}
	}
}
