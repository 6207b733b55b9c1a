// Package watcher monitors the feature matrix file so the board can be
// rebuilt when the data changes.
package watcher

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MatrixWatcher monitors one matrix file for changes with debouncing.
type MatrixWatcher interface {
	// Start begins watching, calling callback after each debounced change.
	Start(ctx context.Context, callback func()) error

	// Stop stops the watcher and cleans up resources.
	Stop() error
}

// matrixWatcher implements MatrixWatcher.
type matrixWatcher struct {
	watcher       *fsnotify.Watcher
	path          string             // absolute path of the matrix file
	debounceTime  time.Duration      // quiet period before firing callback
	callback      func()             // callback to invoke after a change settles
	ctx           context.Context    // context for lifecycle management
	cancel        context.CancelFunc // cancel function for internal context
	debounceTimer *time.Timer        // current debounce timer
	timerMu       sync.Mutex         // protects debounce timer
	stopOnce      sync.Once          // ensures Stop() is idempotent
	doneCh        chan struct{}      // signals watch goroutine has finished
}

// NewMatrixWatcher creates a watcher for the given matrix file. The file's
// directory is watched rather than the file itself: editors replace files
// on save, which would silently drop a watch on the file.
func NewMatrixWatcher(path string) (MatrixWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &matrixWatcher{
		watcher:      watcher,
		path:         abs,
		debounceTime: 500 * time.Millisecond,
		doneCh:       make(chan struct{}),
	}, nil
}

// Start begins watching for changes to the matrix file.
func (mw *matrixWatcher) Start(ctx context.Context, callback func()) error {
	if callback == nil {
		return nil
	}

	mw.callback = callback
	mw.ctx, mw.cancel = context.WithCancel(ctx)

	go mw.watch()
	return nil
}

// Stop stops the matrix watcher.
func (mw *matrixWatcher) Stop() error {
	var err error
	mw.stopOnce.Do(func() {
		if mw.cancel != nil {
			mw.cancel()

			// Wait for goroutine to finish (only if Start() was called)
			<-mw.doneCh
		} else {
			// Never started, close doneCh manually
			close(mw.doneCh)
		}

		err = mw.watcher.Close()
	})
	return err
}

// watch is the main event loop.
func (mw *matrixWatcher) watch() {
	defer close(mw.doneCh)

	changedCh := make(chan struct{}, 1)

	for {
		select {
		case <-mw.ctx.Done():
			mw.stopDebounceTimer()
			return

		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if !mw.shouldProcessEvent(event) {
				continue
			}
			mw.resetDebounceTimer(changedCh)

		case <-changedCh:
			// Debounce period expired - the change has settled
			mw.callback()

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Matrix watcher error: %v", err)
		}
	}
}

// shouldProcessEvent filters directory events down to ones touching the
// matrix file. Create and Rename cover replace-on-save editors.
func (mw *matrixWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != mw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// resetDebounceTimer restarts the quiet-period timer.
func (mw *matrixWatcher) resetDebounceTimer(changedCh chan struct{}) {
	mw.timerMu.Lock()
	defer mw.timerMu.Unlock()

	if mw.debounceTimer != nil {
		mw.debounceTimer.Stop()
	}
	mw.debounceTimer = time.AfterFunc(mw.debounceTime, func() {
		select {
		case changedCh <- struct{}{}:
		default:
		}
	})
}

// stopDebounceTimer stops any pending debounce timer.
func (mw *matrixWatcher) stopDebounceTimer() {
	mw.timerMu.Lock()
	defer mw.timerMu.Unlock()

	if mw.debounceTimer != nil {
		mw.debounceTimer.Stop()
		mw.debounceTimer = nil
	}
}
