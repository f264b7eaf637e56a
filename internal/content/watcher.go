package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"Folio3D/internal/logger"
)

// DefaultQuiet is how long the file must stay unchanged before a reload.
const DefaultQuiet = 100 * time.Millisecond

// Watcher reloads a content file whenever it changes on disk. A burst of
// writes or creates yields one reload once the file has been quiet for Quiet.
type Watcher struct {
	Quiet time.Duration

	path     string
	onChange func(*Site)
	fsw      *fsnotify.Watcher
}

// NewWatcher watches the directory holding path so that editors which
// replace the file on save are still seen.
func NewWatcher(path string, onChange func(*Site)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create content watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{Quiet: DefaultQuiet, path: abs, onChange: onChange, fsw: fsw}, nil
}

// Run delivers reloads until ctx is done or the watcher is closed.
// Files that fail to load are logged and skipped.
func (w *Watcher) Run(ctx context.Context) {
	timer := time.NewTimer(w.Quiet)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			// A rename moves the file away; the replacement arrives as a create.
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if pending != nil && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.Quiet)
			pending = timer.C
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Content watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	site, err := Load(w.path)
	if err != nil {
		logger.Log.Warn("Ignoring invalid content file", zap.String("path", w.path), zap.Error(err))
		return
	}
	logger.Log.Info("Content reloaded", zap.String("path", w.path), zap.Int("projects", len(site.Projects)))
	if w.onChange != nil {
		w.onChange(site)
	}
}

// Close stops watching. Run returns after Close.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
