// Package filehandler provides the run-scoped file sink.
//
// Each handler owns exactly one file named after the moment it was
// created, Run_<dd-MM-yyyy_HHmmss>.log, opened in append mode. There is
// no size rotation: a new file appears only when a new handler is
// created, normally once per process run. The file is released by Close.
package filehandler
