package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"focusring/internal/ui/preferences"
	"github.com/fsnotify/fsnotify"
)

const defaultSettingsDebounce = 300 * time.Millisecond

// SettingsChangeCallback receives settings reloaded from disk, or the error
// that prevented reloading them.
type SettingsChangeCallback func(settings preferences.Settings, err error)

// SettingsWatcher reloads the settings file when it is edited on disk.
type SettingsWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback SettingsChangeCallback
	debounce time.Duration

	timer  *time.Timer
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSettingsWatcher watches the directory holding path. The directory must
// exist; editors that replace the file atomically are still seen.
func NewSettingsWatcher(path string, callback SettingsChangeCallback) (*SettingsWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch settings directory: %w", err)
	}

	return &SettingsWatcher{
		watcher:  watcher,
		path:     filepath.Clean(path),
		callback: callback,
		debounce: defaultSettingsDebounce,
	}, nil
}

// SetDebounce changes how long the watcher waits for writes to settle.
func (sw *SettingsWatcher) SetDebounce(debounce time.Duration) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.debounce = debounce
}

// Start begins watching until ctx ends or Stop is called.
func (sw *SettingsWatcher) Start(ctx context.Context) {
	ctx, sw.cancel = context.WithCancel(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-sw.watcher.Events:
				if !ok {
					return
				}
				sw.handleEvent(event)
			case err, ok := <-sw.watcher.Errors:
				if !ok {
					return
				}
				if sw.callback != nil {
					sw.callback(preferences.Settings{}, fmt.Errorf("watch settings: %w", err))
				}
			}
		}
	}()
}

// Stop stops watching and drops any pending reload.
func (sw *SettingsWatcher) Stop() {
	if sw.cancel != nil {
		sw.cancel()
	}
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()
	_ = sw.watcher.Close()
}

func (sw *SettingsWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != sw.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, sw.flush)
}

func (sw *SettingsWatcher) flush() {
	if sw.callback == nil {
		return
	}
	settings, err := LoadSettings(sw.path)
	sw.callback(settings, err)
}
