package config

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// reloadDebounce coalesces editor write bursts into one reload
const reloadDebounce = 100 * time.Millisecond

// Watch delivers a freshly resolved Config each time the file at path changes
// The parent directory is watched so editors that replace the file are seen
// Invalid edits are logged and skipped; the channel closes when ctx is done
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: watch %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: watcher")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "config: watch %s", filepath.Dir(abs))
	}

	out := make(chan *Config, 1)
	go watchLoop(ctx, watcher, abs, out)
	return out, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, out chan *Config) {
	defer close(out)
	defer watcher.Close()

	// Stopped timer; armed by relevant events
	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(event, path) {
				continue
			}
			timer.Reset(reloadDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("CONFIG: watcher error: %v", err)

		case <-timer.C:
			cfg, err := Load(path, false)
			if err != nil {
				log.Printf("CONFIG: reload rejected, keeping previous: %v", err)
				continue
			}
			log.Printf("CONFIG: reloaded %s", path)

			// Latest wins: drop an unconsumed older config
			select {
			case <-out:
			default:
			}
			select {
			case out <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func relevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
