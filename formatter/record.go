package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/runlog/core"
)

// RecordLayout is the default timestamp layout, dd-MM-yyyy HH:mm:ss
const RecordLayout = "02-01-2006 15:04:05"

// RecordFormatter renders one entry per line as
//
//	[02-01-2006 15:04:05][LEVEL - source:line] message
type RecordFormatter struct {
	Config
}

// NewRecordFormatter creates a new record formatter
func NewRecordFormatter(cfg Config) *RecordFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = RecordLayout
	}
	return &RecordFormatter{Config: cfg}
}

// Format formats an entry as a single line
func (f *RecordFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *RecordFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *RecordFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

func (f *RecordFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("][")

	if f.LevelDecorator != nil {
		buf.WriteString(f.LevelDecorator(entry.Level, entry.Level.String()))
	} else {
		buf.WriteString(entry.Level.String())
	}

	buf.WriteString(" - ")
	buf.WriteString(entry.Source)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	buf.WriteString("] ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
