package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

const maxStackDepth = 64

// Frame is one resolved stack frame
type Frame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame as function(file.go:line)
func (f Frame) String() string {
	return f.Function + "(" + filepath.Base(f.File) + ":" + strconv.Itoa(f.Line) + ")"
}

// StackTracer is implemented by errors that carry the stack captured
// where they were created.
type StackTracer interface {
	StackFrames() []Frame
}

// CaptureStack returns the frames of the calling goroutine. skip 0 is
// the caller of CaptureStack.
func CaptureStack(skip int) []Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}

type stackError struct {
	err    error
	frames []Frame
}

func (e *stackError) Error() string        { return e.err.Error() }
func (e *stackError) Unwrap() error        { return e.err }
func (e *stackError) StackFrames() []Frame { return e.frames }

// WithStack annotates err with the stack at the point WithStack is
// called. A nil err returns nil.
func WithStack(err error) error {
	return WithStackSkip(err, 1)
}

// WithStackSkip is WithStack for helpers that wrap it; skip counts the
// helper frames to leave out.
func WithStackSkip(err error, skip int) error {
	if err == nil {
		return nil
	}
	return &stackError{err: err, frames: CaptureStack(skip + 1)}
}
