package watcher

import "context"

// Watcher monitors an inbox directory for dropped recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes a newly dropped file.
type EventHandler func(ctx context.Context, filePath string) error
