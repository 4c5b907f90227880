// Package core defines the shared types used across runlog.
//
// It provides the Level type, the Entry type that represents a single
// record, caller capture built on runtime.Caller, and stack capture for
// errors that should be logged with their origin.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has
// consumed it. Handlers must not retain an Entry after Handle returns.
package core
