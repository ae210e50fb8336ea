package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"meeting-task-converter/pkg/log"
)

// New creates a Watcher over inboxDir with concurrency control.
func New(l log.Logger, inboxDir string, handler EventHandler, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		l:         l,
		inboxDir:  inboxDir,
		handler:   handler,
		watcher:   fsw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
