package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Registry holds the catalog in use and swaps it on reload.
type Registry struct {
	mu      sync.RWMutex
	current *Catalog
	path    string
	log     *slog.Logger
}

// NewRegistry loads the catalog at path, or the built-in one when path is empty.
func NewRegistry(path string, log *slog.Logger) (*Registry, error) {
	r := &Registry{path: path, log: log}
	if path == "" {
		r.current = Default()
		return r, nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	r.current = c
	return r, nil
}

// Current returns the active catalog.
func (r *Registry) Current() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Reload re-reads the catalog file. On error the previous catalog stays active.
func (r *Registry) Reload() error {
	if r.path == "" {
		return nil
	}
	c, err := LoadFile(r.path)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.current = c
	r.mu.Unlock()
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Watch reloads the catalog whenever its file changes, coalescing bursts of
// events within debounce. The directory is watched rather than the file so
// editors that replace the file by rename are picked up. Close stops it.
func (r *Registry) Watch(debounce time.Duration) (io.Closer, error) {
	if r.path == "" {
		return closerFunc(func() error { return nil }), nil
	}
	target, err := filepath.Abs(r.path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		for {
			select {
			case <-stopCh:
				if timer != nil {
					timer.Stop()
				}
				return
			case <-timerC:
				timerC = nil
				if err := r.Reload(); err != nil {
					r.log.Error("catalog reload failed", "path", r.path, "error", err)
					continue
				}
				r.log.Info("catalog reloaded", "path", r.path, "sections", r.Current().Names())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.log.Warn("catalog watcher error", "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !shouldReload(evt, target) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
				timerC = timer.C
			}
		}
	}()

	r.log.Info("catalog auto-reload enabled", "path", r.path, "debounce", debounce)
	return closerFunc(func() error {
		close(stopCh)
		err := watcher.Close()
		<-doneCh
		return err
	}), nil
}

func shouldReload(evt fsnotify.Event, target string) bool {
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(evt.Name)
	if err != nil {
		return false
	}
	return name == target
}
