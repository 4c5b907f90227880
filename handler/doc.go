// Package handler provides the Handler interface that every sink
// implements, plus the pieces shared between sinks.
//
// Handlers are synchronous: Handle returns once the entry has been
// written, and the entry may be recycled immediately afterwards.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes records to any io.Writer (default: stderr).
//   - filehandler.FileHandler appends records to one run-scoped file.
//   - zaphandler.ZapHandler forwards records into a zap core.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts a Handler to log/slog.Handler.
//
// Handlers track processed, failed and dropped counts via Stats, which
// can be queried at runtime through StatsProvider.
package handler
