package batch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"trisolve/internal/logging"
)

// RunFunc receives each run the watcher performs. err is set when the job
// file could not be loaded or the run was aborted.
type RunFunc func(report Report, err error)

// Watcher re-runs a job file every time it changes. Bursts of events from
// one save are folded into a single run once the file has been quiet for
// the debounce duration.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	runner      *Runner
	path        string
	onRun       RunFunc
	debounceDur time.Duration
	pendingAt   time.Time // zero when nothing is pending
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	logger      *zap.Logger

	stats WatcherStats
}

// WatcherStats counts watcher activity.
type WatcherStats struct {
	Events        int
	Runs          int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// NewWatcher creates a watcher for the job file at path.
func NewWatcher(path string, runner *Runner, debounce time.Duration, onRun RunFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		runner:      runner,
		path:        abs,
		onRun:       onRun,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logging.Get(logging.CategoryWatch),
	}, nil
}

// Start runs the job file once and then watches it in the background.
// The parent directory is watched rather than the file, since editors
// commonly save by renaming a new file over the old one.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		return err
	}
	w.logger.Info("Watching job file", zap.String("path", w.path))

	w.runOnce(ctx)
	go w.loop(ctx)
	return nil
}

// Stop ends watching and waits for the background loop to exit. Stopping a
// watcher that never started just releases it.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Error closing watcher", zap.Error(err))
	}
	w.logger.Info("Watcher stopped")
}

// Watch starts the watcher and blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	tick := max(w.debounceDur/4, 10*time.Millisecond)
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processPending(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0, event.Op&fsnotify.Remove != 0:
		// The replacement arrives as a create.
		eventType = "delete"
	default:
		return
	}

	w.logger.Debug("Job file event", zap.String("op", eventType))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventType = eventType
	if eventType != "delete" {
		w.pendingAt = time.Now()
	}
}

func (w *Watcher) processPending(ctx context.Context) {
	w.mu.Lock()
	due := !w.pendingAt.IsZero() && time.Since(w.pendingAt) >= w.debounceDur
	if due {
		w.pendingAt = time.Time{}
	}
	w.mu.Unlock()

	if due {
		w.runOnce(ctx)
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	w.mu.Lock()
	w.stats.Runs++
	w.mu.Unlock()

	jobs, err := Load(w.path)
	if err != nil {
		w.logger.Warn("Job file not runnable", zap.Error(err))
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		w.onRun(Report{}, err)
		return
	}

	report, err := w.runner.Run(ctx, jobs)
	w.onRun(report, err)
}
