package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization matches every *InitError via errors.Is
	ErrInitialization = errors.New("logger initialization failed")

	// ErrFileAttached is returned when a handle already has its file sink
	ErrFileAttached = errors.New("file sink already attached")

	// ErrClosed is returned when attaching a file to a closed handle
	ErrClosed = errors.New("logger is closed")
)

// InitError reports a directory or file failure while setting up a handle
type InitError struct {
	Op   string
	Path string
	Err  error
}

func (e *InitError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("logger: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("logger: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Is reports ErrInitialization as a match
func (e *InitError) Is(target error) bool {
	return target == ErrInitialization
}
