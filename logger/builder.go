package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/formatter"
	"github.com/philipp01105/runlog/handler"
	"github.com/philipp01105/runlog/handler/consolehandler"
)

// NoFile tells Create not to attach a file sink
const NoFile = "NoFileHandler"

// DefaultDirectory returns <cwd>/log, used when no destination is given
func DefaultDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return "log"
	}
	return filepath.Join(wd, "log")
}

// Create builds a handle named name. destination selects the file sink:
// NoFile for console only, empty for DefaultDirectory, anything else is
// the directory to hold the run file. Failures are *InitError.
func Create(name, destination string) (*Logger, error) {
	return NewBuilder().
		WithName(name).
		WithDirectory(destination).
		Build()
}

// MustCreate is like Create but panics if the handle cannot be built
func MustCreate(name, destination string) *Logger {
	l, err := Create(name, destination)
	if err != nil {
		panic(err)
	}
	return l
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name        string
	destination string
	wantFile    bool
	console     io.Writer
	noConsole   bool
	color       bool
	formatter   formatter.Formatter
	level       core.Level
	clock       core.Clock
	handlers    []handler.Handler
}

// NewBuilder creates a new logger builder. Without WithDirectory the
// handle logs to the console only.
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel,
		clock: core.SystemClock,
	}
}

// WithName sets the name printed as the source of every record
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithDirectory requests a file sink, with the same destination rules
// as Create
func (b *Builder) WithDirectory(destination string) *Builder {
	b.destination = destination
	b.wantFile = destination != NoFile
	return b
}

// WithConsole sets the console writer (default: os.Stderr)
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	b.noConsole = false
	return b
}

// WithoutConsole disables the console sink
func (b *Builder) WithoutConsole() *Builder {
	b.noConsole = true
	return b
}

// WithColor enables ANSI level colors on the console. Ignored when a
// formatter is set with WithFormatter.
func (b *Builder) WithColor(enabled bool) *Builder {
	b.color = enabled
	return b
}

// WithFormatter sets the formatter for the console and file sinks
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithLevel sets the minimum level written
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock sets the time source for record timestamps and run file names
func (b *Builder) WithClock(clock core.Clock) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// WithHandler adds an extra sink, e.g. a zaphandler.ZapHandler. The
// sink is closed by Logger.Close but left open if Build fails.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() (*Logger, error) {
	sinks := handler.NewMultiHandler()
	var console *consolehandler.ConsoleHandler
	if !b.noConsole {
		console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    b.console,
			Formatter: b.formatter,
			Color:     b.color,
		})
		sinks.Add(console)
	}
	for _, h := range b.handlers {
		sinks.Add(h)
	}

	l := &Logger{
		name:      b.name,
		level:     b.level,
		clock:     b.clock,
		formatter: b.formatter,
		sinks:     sinks,
	}

	if b.wantFile {
		if _, err := l.AttachFile(b.destination); err != nil {
			// Handlers from WithHandler stay open, they belong to the caller
			if console != nil {
				err = multierr.Append(err, console.Close())
			}
			return nil, err
		}
	}
	return l, nil
}
