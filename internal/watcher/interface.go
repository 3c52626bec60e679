package watcher

import "context"

// Watcher monitors a directory for newly dropped transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one transcript file.
type Handler func(ctx context.Context, transcriptPath string) error
