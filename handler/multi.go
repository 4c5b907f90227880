package handler

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/runlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Add appends a handler. Entries handled afterwards reach it as well.
func (h *MultiHandler) Add(child Handler) {
	if child == nil {
		return
	}
	h.mu.Lock()
	h.handlers = append(h.handlers, child)
	h.mu.Unlock()
}

// Len returns the number of child handlers
func (h *MultiHandler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

// Handle processes a log entry by sending it to all handlers.
// Every child is attempted; errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
