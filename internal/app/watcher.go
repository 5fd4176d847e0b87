package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 100 * time.Millisecond

// DirectoryWatcher follows the directory currently on screen and calls
// notify when its contents change. Bursts of events are coalesced.
type DirectoryWatcher struct {
	fsWatcher *fsnotify.Watcher
	notify    func()
	log       logrus.FieldLogger
	debounce  time.Duration

	mutex    sync.Mutex
	current  string
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

// NewDirectoryWatcher creates a watcher that is not yet following anything.
func NewDirectoryWatcher(notify func(), log logrus.FieldLogger) (*DirectoryWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if log == nil {
		log = discardLogger()
	}
	return &DirectoryWatcher{
		fsWatcher: fsWatcher,
		notify:    notify,
		log:       log,
		debounce:  watchDebounce,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Watch replaces the watched directory with dir.
func (w *DirectoryWatcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if dir == w.current {
		return nil
	}
	if w.current != "" {
		// The old directory may already be gone.
		_ = w.fsWatcher.Remove(w.current)
		w.current = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.current = dir
	w.log.WithField("path", dir).Debug("watching directory")
	return nil
}

// Start begins delivering change notifications.
func (w *DirectoryWatcher) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
}

func (w *DirectoryWatcher) loop() {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Permission and timestamp changes do not alter the listing.
			if event.Op == fsnotify.Chmod {
				continue
			}
			if pending == nil {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithField("error", err).Warn("fsnotify watcher error")

		case <-pending:
			pending = nil
			w.notify()

		case <-w.stopChan:
			return
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *DirectoryWatcher) Close() error {
	w.mutex.Lock()
	running := w.running
	w.running = false
	w.mutex.Unlock()

	if running {
		close(w.stopChan)
		<-w.done
	}
	if err := w.fsWatcher.Close(); err != nil {
		return fmt.Errorf("failed to close fsnotify watcher: %w", err)
	}
	return nil
}
