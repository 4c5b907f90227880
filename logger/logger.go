package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/formatter"
	"github.com/philipp01105/runlog/handler"
	"github.com/philipp01105/runlog/handler/filehandler"
)

// callerSkip reaches the user's call site from core.GetCaller:
// GetCaller, write, the public method, the caller.
const callerSkip = 3

// Logger is a named logging handle. Apart from the one-time attachment
// of its file sink it never changes after construction.
type Logger struct {
	name      string
	level     core.Level
	clock     core.Clock
	formatter formatter.Formatter
	sinks     *handler.MultiHandler

	mu        sync.Mutex // guards file and directory
	file      *filehandler.FileHandler
	directory string

	closed atomic.Bool
}

// Name returns the handle's name
func (l *Logger) Name() string {
	return l.name
}

// Path returns the run file path, or "" when no file sink is attached
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Path()
}

// Directory returns the directory holding the run file, or "" when no
// file sink is attached
func (l *Logger) Directory() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.directory
}

// AttachFile attaches the run file sink in dir, creating dir if it is
// absent. An empty dir means DefaultDirectory and NoFile attaches
// nothing. A handle holds at most one file sink: once attached, the
// path never changes and further calls return ErrFileAttached.
func (l *Logger) AttachFile(dir string) (string, error) {
	if dir == NoFile {
		return "", nil
	}
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDirectory()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed.Load() {
		return "", ErrClosed
	}
	if l.file != nil {
		return l.file.Path(), ErrFileAttached
	}

	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Directory: dir,
		Formatter: l.formatter,
		Clock:     l.clock,
	})
	if err != nil {
		return "", &InitError{Op: "attach file", Path: dir, Err: err}
	}

	l.file = fh
	l.directory = dir
	l.sinks.Add(fh)
	return fh.Path(), nil
}

// enabled reports whether a record at level would be written. Methods
// that format their message check it first so filtered calls do no work.
func (l *Logger) enabled(level core.Level) bool {
	return level >= l.level && !l.closed.Load()
}

// write is the basis of every public write method. It must be called
// directly by them so that callerSkip lands on the user's call site.
func (l *Logger) write(level core.Level, source, msg string) {
	if level < l.level || l.closed.Load() {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.clock()
	entry.Level = level
	entry.Message = msg
	entry.Source = source
	entry.Caller = core.GetCaller(callerSkip)

	// Sink failures are counted by each sink's Stats
	_ = l.sinks.Handle(entry)
	core.PutEntry(entry)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	l.write(level, l.name, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.write(core.InfoLevel, l.name, msg)
}

// InfoFrom logs an info message on behalf of another component
func (l *Logger) InfoFrom(source, msg string) {
	l.write(core.InfoLevel, source, msg)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.enabled(core.InfoLevel) {
		return
	}
	l.write(core.InfoLevel, l.name, fmt.Sprintf(format, args...))
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.write(core.WarningLevel, l.name, msg)
}

// WarningFrom logs a warning message on behalf of another component
func (l *Logger) WarningFrom(source, msg string) {
	l.write(core.WarningLevel, source, msg)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.enabled(core.WarningLevel) {
		return
	}
	l.write(core.WarningLevel, l.name, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.write(core.ErrorLevel, l.name, msg)
}

// ErrorFrom logs an error message on behalf of another component
func (l *Logger) ErrorFrom(source, msg string) {
	l.write(core.ErrorLevel, source, msg)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.enabled(core.ErrorLevel) {
		return
	}
	l.write(core.ErrorLevel, l.name, fmt.Sprintf(format, args...))
}

// LogStackTrace logs err at ERROR followed by the stack frames that
// mention the handle's name. Frames come from the error chain when it
// was annotated with WithStack, otherwise from the calling goroutine.
func (l *Logger) LogStackTrace(err error) {
	if err == nil || !l.enabled(core.ErrorLevel) {
		return
	}
	l.write(core.ErrorLevel, l.name, stackMessage(err, stackOf(err, 1), l.name))
}

// Slog returns a log/slog logger that writes through this handle's sinks
func (l *Logger) Slog() *slog.Logger {
	return slog.New(handler.NewSlogHandler(l.sinks, l.level, l.name))
}

// Close flushes and closes every sink. Writes after Close are dropped.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sinks.Close()
}
