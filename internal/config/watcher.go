package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	changes chan *Config
	errs    chan error

	debounceDur time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the config file at path. The parent
// directory is watched so editors that replace the file are handled.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:        filepath.Clean(path),
		watcher:     w,
		changes:     make(chan *Config, 1),
		errs:        make(chan error, 1),
		debounceDur: 200 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Changes delivers each successfully reloaded config.
func (cw *Watcher) Changes() <-chan *Config { return cw.changes }

// Errors delivers reload and watch errors.
func (cw *Watcher) Errors() <-chan error { return cw.errs }

// Start runs the watch loop until ctx is done or Stop is called.
func (cw *Watcher) Start(ctx context.Context) {
	go cw.run(ctx)
}

// Stop ends the watch loop and releases the underlying watcher.
func (cw *Watcher) Stop() {
	cw.stopOnce.Do(func() {
		close(cw.stopCh)
		_ = cw.watcher.Close()
	})
}

// Done is closed once the watch loop has exited.
func (cw *Watcher) Done() <-chan struct{} { return cw.doneCh }

func (cw *Watcher) run(ctx context.Context) {
	defer close(cw.doneCh)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			cw.Stop()
			return
		case <-cw.stopCh:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Debounce rapid saves.
			pending = time.After(cw.debounceDur)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		case <-pending:
			pending = nil
			cfg, err := Load(cw.path)
			if err != nil {
				cw.sendErr(err)
				continue
			}
			// Keep only the newest config.
			select {
			case <-cw.changes:
			default:
			}
			cw.changes <- cfg
		}
	}
}

func (cw *Watcher) sendErr(err error) {
	select {
	case cw.errs <- err:
	default:
	}
}
