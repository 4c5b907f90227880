// Package formatter defines how log entries are serialized into bytes.
//
// RecordFormatter produces the canonical single-line form
//
//	[02-01-2006 15:04:05][INFO - Demo:42] hello
//
// and JSONFormatter produces one JSON object per line for machine
// consumption. Both implement Formatter, WriterFormatter and
// BufferFormatter; handlers check for the optional interfaces once at
// construction and prefer BufferFormatter on the write path.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
