package source

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/colonyops/eventboard/internal/core/logging"
)

// Watcher signals when files matching a File source pattern change.
// Bursts of filesystem events inside the debounce window collapse into one
// signal, and signals never queue up behind a slow reader.
type Watcher struct {
	pattern  string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	logger   zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	onError func(error)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher watches the directories that can hold files matching pattern:
// the static base of the glob and the parent of every current match.
func NewWatcher(pattern string, debounce time.Duration, logger zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs, err := watchDirs(pattern)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		pattern:  filepath.Clean(pattern),
		debounce: debounce,
		watcher:  fw,
		changes:  make(chan struct{}, 1),
		logger:   logging.Tag(logger, "watcher"),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.wg.Add(1)
	go w.run()

	w.logger.Debug().Strs("dirs", dirs).Str("pattern", pattern).Msg("watching")
	return w, nil
}

// Changes receives one value per debounced burst of changes.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// OnError registers fn to receive errors reported by the underlying
// watcher. fn runs on the watcher goroutine and must not block.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	w.onError = fn
	w.mu.Unlock()
}

// Close stops watching. Changes is not closed so pending readers simply
// stop receiving.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")

			w.mu.Lock()
			fn := w.onError
			w.mu.Unlock()
			if fn != nil {
				fn(err)
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}

	if ok, _ := doublestar.PathMatch(w.pattern, filepath.Clean(ev.Name)); !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

func (w *Watcher) notify() {
	if w.ctx.Err() != nil {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
		// a signal is already pending
	}
}

func watchDirs(pattern string) ([]string, error) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	dirs := []string{filepath.FromSlash(base)}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	for _, m := range matches {
		dirs = append(dirs, filepath.Dir(m))
	}

	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}
