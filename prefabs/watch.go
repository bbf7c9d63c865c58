package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports edits to spec and script files under the watched
// directories. Events are consumed between frames with Poll.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan string
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		events:  make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Poll drains pending change notifications without blocking. It returns
// the changed paths, deduplicated, and the first watcher error if any.
func (w *Watcher) Poll() ([]string, error) {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.events:
			if !ok {
				return changed, nil
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		case err := <-w.errors:
			return changed, err
		default:
			return changed, nil
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// run reports a file once it has been quiet for the debounce window, so an
// editor saving in several writes yields one event for the final contents.
func (w *Watcher) run() {
	defer w.wg.Done()
	pending := make(map[string]time.Time)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsContentFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()
			timer.Reset(debounce)
		case <-timer.C:
			now := time.Now()
			var next time.Duration
			for name, last := range pending {
				if wait := debounce - now.Sub(last); wait > 0 {
					if next == 0 || wait < next {
						next = wait
					}
					continue
				}
				delete(pending, name)
				select {
				case w.events <- name:
				case <-w.closeCh:
					return
				}
			}
			if next > 0 {
				timer.Reset(next)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsContentFile reports whether path is a yaml spec or a tengo script.
func IsContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
