package catalog

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/pickergrid"
)

// Reload is one reload of a watched catalog. Err is set when the file could
// not be read or validated; Groups is nil then and the previous groups stay
// current. The receiver picks the animation hint with Hint, against whatever
// it is showing by then.
type Reload struct {
	Groups []pickergrid.ItemGroup
	Err    error
}

// Watcher reloads a catalog file when it changes on disk. Reloads are
// delivered on a channel so the grid's update loop can apply them on its own
// goroutine.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	reloads chan Reload
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher watches path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}
	// Editors replace files by rename; watch the directory.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch catalog %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		reloads: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Reloads returns the channel reloads are delivered on.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.send(w.reload())
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: fmt.Errorf("watch catalog: %w", err)})
		}
	}
}

func (w *Watcher) reload() Reload {
	groups, err := LoadGroups(w.path)
	if err != nil {
		return Reload{Err: err}
	}
	return Reload{Groups: groups}
}

func (w *Watcher) send(r Reload) {
	select {
	case w.reloads <- r:
	case <-w.done:
	}
}
