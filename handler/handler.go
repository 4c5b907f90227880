package handler

import (
	"github.com/philipp01105/runlog/core"
)

// Handler defines the interface for log handlers (sinks)
type Handler interface {
	// Handle processes a log entry. The entry must not be retained.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
