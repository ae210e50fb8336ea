package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"meeting-task-converter/internal/media"
	"meeting-task-converter/pkg/log"
)

// settleDelay gives the writer time to finish before we read the file.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	l         log.Logger
	inboxDir  string
	handler   EventHandler
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start monitors the inbox until ctx is cancelled. Each recognized
// recording is handed to the handler in its own goroutine, bounded by
// the semaphore.
func (w *implWatcher) Start(ctx context.Context) error {
	w.l.Infof(ctx, "Inbox watcher started, monitoring %s", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "Waiting for in-flight recordings to finish")
			w.wg.Wait()
			w.l.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !media.IsRecognized(event.Name) {
				w.l.Debugf(ctx, "Ignoring unrecognized file: %s", event.Name)
				continue
			}

			w.l.Infof(ctx, "New recording detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.l.Errorf(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.l.Errorf(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
