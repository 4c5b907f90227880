package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/runlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Handler.
// Attributes are appended to the message as key=value pairs since records
// carry a single message line.
type SlogHandler struct {
	handler Handler
	level   core.Level
	source  string
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// source is printed as the record's component name.
func NewSlogHandler(h Handler, level core.Level, source string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
		source:  source,
	}
}

// Enabled reports whether the handler handles records at the given level.
// Levels below slog.LevelInfo have no counterpart and are never enabled.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return false
	}
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record into a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})

	entry := core.GetEntry()
	if !record.Time.IsZero() {
		entry.Time = record.Time
	}
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = sb.String()
	entry.Source = s.source
	entry.Caller = core.CallerFromPC(record.PC)

	err := s.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	clone := *s
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	default:
		return core.InfoLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindString:
		sb.WriteString(a.Value.String())
	default:
		fmt.Fprint(sb, a.Value.Any())
	}
}
