package asmtext

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Logger is the sink capability accepting already-rendered text.
//
// Log is the only operation an implementation must provide; LogString,
// Logf and LogBinary are derived from it. Each Logger owns a
// FormatOptions instance that producers read to steer rendering.
//
// A Log failure means "this diagnostic was not written" and nothing more:
// callers are expected to continue generating code regardless.
type Logger interface {
	// Log delivers raw text bytes to the sink. It returns an error if and
	// only if the underlying delivery failed; it never panics on data
	// content and is never retried automatically.
	Log(data []byte) error

	// Options returns the format options attached to this sink. The
	// pointer is owned by the Logger and may be mutated by callers to
	// steer subsequent rendering.
	Options() *FormatOptions
}

// LogString delivers s to the sink.
func LogString(l Logger, s string) error {
	return l.Log([]byte(s))
}

// logfBufferSize bounds the text produced by a single Logf call. Output
// beyond the bound is silently truncated rather than failing; pick direct
// Log calls for payloads that may legitimately be this large.
const logfBufferSize = 4096

// Logf renders a printf-style template and forwards the result to Log.
func Logf(l Logger, format string, args ...interface{}) error {
	s := fmt.Sprintf(format, args...)
	if len(s) > logfBufferSize {
		s = s[:logfBufferSize]
	}
	return LogString(l, s)
}

// LogBinary renders data as a two-lowercase-hex-digit-per-byte sequence,
// no separators, and forwards it to Log. Empty input is a successful no-op.
func LogBinary(l Logger, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	buf := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(buf, data)
	return l.Log(buf)
}

// FileLogger is a Logger forwarding bytes to an io.Writer, typically an
// *os.File.
//
// The writer may be nil, in which case every Log call is a no-op that
// reports success. Note that nulling the writer silences this instance
// only; a producer holding the logger still pays the cost of calling it.
// To stop that cost, detach the logger from the producer instead.
type FileLogger struct {
	opts FormatOptions
	out  io.Writer
}

// NewFileLogger returns a FileLogger writing to out, which may be nil.
func NewFileLogger(out io.Writer) *FileLogger {
	return &FileLogger{out: out}
}

// File returns the output writer, or nil if the logger is silenced.
func (l *FileLogger) File() io.Writer { return l.out }

// SetFile replaces the output writer. A nil writer silences the logger.
func (l *FileLogger) SetFile(out io.Writer) { l.out = out }

// Options implements Logger.Options.
func (l *FileLogger) Options() *FormatOptions { return &l.opts }

// Log implements Logger.Log. On a write error the whole call reports
// failure; the underlying writer may have consumed a prefix of data.
func (l *FileLogger) Log(data []byte) error {
	if l.out == nil {
		return nil
	}
	if _, err := l.out.Write(data); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
}

// StringLogger is a Logger appending to an owned, growable text buffer.
//
// The zero value is ready to use. Appends are monotonic until Clear; the
// buffer is exclusively owned by the logger and only read-only views of
// its content escape.
type StringLogger struct {
	opts    FormatOptions
	content []byte
}

// Options implements Logger.Options.
func (l *StringLogger) Options() *FormatOptions { return &l.opts }

// Log implements Logger.Log. The append is all-or-nothing: short of
// memory exhaustion (which panics, as any Go allocation does) the full
// chunk is appended and nil returned.
func (l *StringLogger) Log(data []byte) error {
	l.content = append(l.content, data...)
	return nil
}

// Content returns the accumulated text.
func (l *StringLogger) Content() string { return string(l.content) }

// Len returns the length of the accumulated text in bytes.
func (l *StringLogger) Len() int { return len(l.content) }

// Clear truncates the content to empty. Whether backing capacity is
// retained is unspecified; callers must not depend on either choice.
func (l *StringLogger) Clear() { l.content = l.content[:0] }

var (
	_ Logger = (*FileLogger)(nil)
	_ Logger = (*StringLogger)(nil)
)
