package logger

import (
	"errors"
	"strings"

	"github.com/philipp01105/runlog/core"
)

// WithStack annotates err with the current stack so that LogStackTrace
// reports where the error was created rather than where it was logged.
func WithStack(err error) error {
	return core.WithStackSkip(err, 1)
}

// stackOf returns the frames carried by err, or the stack of the caller
// skip frames above stackOf's caller.
func stackOf(err error, skip int) []core.Frame {
	var st core.StackTracer
	if errors.As(err, &st) {
		return st.StackFrames()
	}
	return core.CaptureStack(skip + 1)
}

// stackMessage renders "<err> at:" followed by one line per frame that
// mentions name.
func stackMessage(err error, frames []core.Frame, name string) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString(" at:")
	for _, f := range frames {
		s := f.String()
		if !strings.Contains(s, name) {
			continue
		}
		sb.WriteByte('\n')
		sb.WriteString(s)
	}
	return sb.String()
}
