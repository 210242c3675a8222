package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration at path each time the file is written or
// created and passes the result to fn. Watcher errors are passed to fn with
// a nil Config. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return WatchFile(ctx, abs, func(err error) {
		if err != nil {
			fn(nil, err)
			return
		}
		fn(Load(abs))
	})
}

// WatchFile calls fn with a nil error each time the file at path is written
// or created, and with the error when the watcher fails. It blocks until
// ctx is done.
func WatchFile(ctx context.Context, path string, fn func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so files replaced by rename are still seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fn(nil)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(err)
		}
	}
}
