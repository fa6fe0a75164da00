package assets

import (
	"errors"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/scenecast/core"
)

// ReloadFunc is invoked with the path of a watched file after it
// changes on disk.
type ReloadFunc func(path string)

/**
 * @brief Watches the files backing loaded descriptors and notifies the
 * caller on change, so it can rebuild the descriptor and re-send the
 * object to the viewer.
 */
type Watcher struct {
	fsnotify *fsnotify.Watcher
	reload   ReloadFunc

	mutex      sync.Mutex
	lastReload map[string]time.Time
	isClosed   bool

	done chan struct{}
}

// Editors fire several write events per save; changes within this
// window collapse into one reload.
const reloadDebounce = 100 * time.Millisecond

func NewWatcher(reload ReloadFunc) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsnotify:   fsWatch,
		reload:     reload,
		lastReload: make(map[string]time.Time),
		done:       make(chan struct{}),
	}
	go w.start()

	return w, nil
}

// Add starts watching the named file.
func (w *Watcher) Add(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher instance already closed")
	}
	return w.fsnotify.Add(path)
}

// Remove stops watching the named file.
func (w *Watcher) Remove(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher instance already closed")
	}
	return w.fsnotify.Remove(path)
}

func (w *Watcher) start() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.shouldReload(event.Name) {
				continue
			}
			core.LogDebug("asset changed: %s", event.Name)
			w.reload(event.Name)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err.Error())
		}
	}
}

func (w *Watcher) shouldReload(path string) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	now := time.Now()
	if last, ok := w.lastReload[path]; ok && now.Sub(last) < reloadDebounce {
		return false
	}
	w.lastReload[path] = now
	return true
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
