// Package zaphandler forwards runlog entries into a zap core, so a
// program that already ships zap output can receive facade records in
// the same stream.
package zaphandler

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/handler"
)

// ZapHandler adapts a zapcore.Core to handler.Handler
type ZapHandler struct {
	core   zapcore.Core
	stats  *handler.Stats
	closed atomic.Bool
}

// New wraps a zap core
func New(c zapcore.Core) *ZapHandler {
	return &ZapHandler{core: c, stats: handler.NewStats()}
}

// NewFromLogger wraps the core of an existing zap logger
func NewFromLogger(l *zap.Logger) *ZapHandler {
	return New(l.Core())
}

// Handle writes the entry if the zap core enables its level. The
// record's source becomes the zap logger name. Entries handled after
// Close are dropped.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		h.stats.IncrementDropped()
		return nil
	}

	ze := zapcore.Entry{
		Level:      ToZapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Source,
		Message:    entry.Message,
		Caller: zapcore.EntryCaller{
			Defined:  entry.Caller.Defined,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		},
	}

	ce := h.core.Check(ze, nil)
	if ce == nil {
		return nil
	}
	ce.Write()
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ZapHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs the zap core and stops forwarding. The core itself stays
// usable by its owner. Closing twice is a no-op.
func (h *ZapHandler) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	return h.core.Sync()
}

// ToZapLevel maps a runlog level onto zap's. SEVERE and ERROR both
// become zap's ErrorLevel.
func ToZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
