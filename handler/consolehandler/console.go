package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/formatter"
	"github.com/philipp01105/runlog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: RecordFormatter)
	Formatter formatter.Formatter
	// Color renders level names with ANSI colors. Only applies when
	// Formatter is nil, since the default formatter is built here.
	Color bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		fc := formatter.Config{}
		if cfg.Color {
			fc.LevelDecorator = colorizeLevel
		}
		cfg.Formatter = formatter.NewRecordFormatter(fc)
	}
}

// ConsoleHandler writes formatted entries to an io.Writer. Writes are
// synchronous and serialized by the handler's mutex.
type ConsoleHandler struct {
	mu              sync.Mutex // protects buf and writer
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	buf             bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementDropped()
		return nil
	}

	var err error
	switch {
	case h.bufferFormatter != nil:
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err = h.writer.Write(h.buf.Bytes())
	case h.writerFormatter != nil:
		err = h.writerFormatter.FormatTo(entry, h.writer)
	default:
		var data []byte
		if data, err = h.formatter.Format(entry); err == nil {
			_, err = h.writer.Write(data)
		}
	}
	h.stats.Record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The writer is owned by the caller
// and is not closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
