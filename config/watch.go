package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk. Updates and Errors are closed
// once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path. The directory is watched rather than the file so that
// editors which replace the file on save keep triggering reloads.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Updates: make(chan *Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Updates)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now

			t, err := Load(w.path)
			if err != nil {
				log.Printf("Warning: tuning reload failed: %v", err)
				w.send(nil, err)
				continue
			}
			log.Printf("Reloaded tuning from %s", w.path)
			w.send(t, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send drops the value when the consumer has not drained the previous one.
func (w *Watcher) send(t *Tuning, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	select {
	case w.Updates <- t:
	default:
		// Replace the stale pending update with the newest one
		select {
		case <-w.Updates:
		default:
		}
		select {
		case w.Updates <- t:
		default:
		}
	}
}
