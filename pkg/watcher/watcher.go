// Package watcher provides debounced change notification for model
// files, so a document can be re-parsed once per save rather than once
// per write syscall.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher notifies a callback when watched files change. Editors
// and slicers tend to emit bursts of writes for a single save; events
// for the same path are coalesced until the path has been quiet for the
// debounce interval.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a watcher that holds notifications back until a
// path has been quiet for the debounce interval.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   watcher,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers files for change notification. The callback receives
// the absolute path of the file that changed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.callbacks[absPath] = callback
	}
	return nil
}

// Start begins delivering notifications. It returns immediately; the
// event loop runs until Close.
func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			// Writes and creates change content; chmod and rename noise
			// is dropped.
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				fw.fileChanged(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watch error", "error", err)
		}
	}
}

// fileChanged restarts the debounce timer for the path, so the callback
// fires once per burst of events.
func (fw *FileWatcher) fileChanged(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[path]
	if !exists {
		return
	}
	if timer, exists := fw.timers[path]; exists {
		timer.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher and its event loop.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// RemoveAll stops watching every registered file.
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.callbacks {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}
	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	return nil
}
