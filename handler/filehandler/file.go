package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/formatter"
	"github.com/philipp01105/runlog/handler"
)

// RunFileLayout is the time layout embedded in run file names
const RunFileLayout = "02-01-2006_150405"

// RunFileName returns the file name for a run started at t,
// e.g. Run_18-02-2026_130405.log.
func RunFileName(t time.Time) string {
	return "Run_" + t.Format(RunFileLayout) + ".log"
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Directory holds the run file; it is created with parents if absent.
	Directory string
	// Filename overrides the generated run file name when set.
	Filename string
	// Formatter to use (default: RecordFormatter)
	Formatter formatter.Formatter
	// Clock names the run file (default: core.SystemClock)
	Clock core.Clock
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewRecordFormatter(formatter.Config{})
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	if cfg.Filename == "" {
		cfg.Filename = RunFileName(cfg.Clock())
	}
}

// FileHandler appends formatted entries to a single run file. Every
// entry reaches the file before Handle returns.
type FileHandler struct {
	mu              sync.Mutex
	path            string
	file            *os.File
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	buf             bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewFileHandler creates the directory if needed and opens the run
// file in append mode.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Directory == "" {
		return nil, errors.New("directory is required")
	}
	applyFileDefaults(&cfg)

	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(cfg.Directory, cfg.Filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	h := &FileHandler{
		path:      path,
		file:      file,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h, nil
}

// Path returns the run file path, joined from the configured directory.
func (h *FileHandler) Path() string {
	return h.path
}

// Handle formats and writes an entry.
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementDropped()
		return nil
	}

	err := h.write(entry)
	h.stats.Record(err)
	return err
}

func (h *FileHandler) write(entry *core.Entry) error {
	switch {
	case h.bufferFormatter != nil:
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.file.Write(h.buf.Bytes())
		return err
	case h.writerFormatter != nil:
		return h.writerFormatter.FormatTo(entry, h.file)
	default:
		data, err := h.formatter.Format(entry)
		if err != nil {
			return err
		}
		_, err = h.file.Write(data)
		return err
	}
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the file. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}
