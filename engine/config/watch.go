package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before it is reloaded.
// Editors commonly emit several writes per save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a controller config file whenever it changes on disk.
// Parsed configs are published on Configs and failures on Errors; both channels
// are drained by the frame thread, which is the only place the controller is touched.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	Configs chan Controller
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The containing directory is watched so that
// editors which save by renaming a temp file are still observed.
//
// Parameters:
//   - path: the config file to watch
//
// Returns:
//   - *Watcher: the running watcher
//   - error: if the underlying fsnotify watcher cannot be created
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Configs: make(chan Controller, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Safe to call more than once.
//
// Returns:
//   - error: from closing the fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

// Drain applies every config published since the last call and logs any reload errors.
// It never blocks, so it can be called once per frame from the thread that owns the controller.
// A config rejected by apply is logged and skipped.
//
// Parameters:
//   - apply: receives each reloaded config, typically a controller's Configure
//
// Returns:
//   - int: the number of configs applied successfully
func (w *Watcher) Drain(apply func(Controller) error) int {
	applied := 0
	for {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return applied
			}
			if err := apply(cfg); err != nil {
				log.Printf("[Config] rejected reload of %s: %v", w.path, err)
				continue
			}
			log.Printf("[Config] reloaded %s", w.path)
			applied++
		case err, ok := <-w.Errors:
			if !ok {
				return applied
			}
			log.Printf("[Config] reload failed: %v", err)
		default:
			return applied
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	// Reload on the trailing edge so a truncate-then-write save is read once, complete.
	reload := time.NewTimer(reloadDebounce)
	reload.Stop()
	defer reload.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			reload.Reset(reloadDebounce)
		case <-reload.C:
			cfg, err := Load(w.path)
			if err != nil {
				w.publishError(err)
				continue
			}
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publishError(err)
		case <-w.closeCh:
			return
		}
	}
}

// publish keeps only the newest config when the consumer falls behind.
func (w *Watcher) publish(cfg Controller) {
	for {
		select {
		case w.Configs <- cfg:
			return
		default:
		}
		select {
		case <-w.Configs:
		default:
		}
	}
}

func (w *Watcher) publishError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
