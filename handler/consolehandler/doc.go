// Package consolehandler provides the console sink, which writes
// formatted entries to any io.Writer (default: os.Stderr).
//
// Writes are synchronous. The handler formats into its own buffer and
// issues a single Write per entry while holding its mutex, so lines
// from concurrent callers never interleave.
package consolehandler
