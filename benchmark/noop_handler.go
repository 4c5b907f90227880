// Package benchmark compares runlog's write path with other loggers
// producing an equivalent line: timestamp, level, caller and message.
package benchmark

import (
	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/handler"
)

// noopHandler measures the facade without any formatting cost
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
