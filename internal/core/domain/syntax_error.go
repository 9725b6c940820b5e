package domain

import (
	"strconv"
	"strings"
)

// SyntaxError is a parse-time failure reported against a stylesheet source.
// The parser creates it with a line and message; callers that know which file
// was being processed annotate it with AddBacktraceEntry as it propagates.
type SyntaxError struct {
	Message string
	Line    int

	backtrace []string
	cause     error
}

// NewSyntaxError creates a SyntaxError at the given line. A line of 0 means unknown.
func NewSyntaxError(message string, line int) *SyntaxError {
	return &SyntaxError{Message: message, Line: line}
}

// WithCause attaches an underlying error so errors.Is can match it.
func (e *SyntaxError) WithCause(err error) *SyntaxError {
	e.cause = err
	return e
}

// AddBacktraceEntry records filename as a file the error passed through.
// The first entry is the file the error originated in.
func (e *SyntaxError) AddBacktraceEntry(filename string) {
	e.backtrace = append(e.backtrace, filename)
}

// Filename returns the file the error originated in, or "" if not yet annotated.
func (e *SyntaxError) Filename() string {
	if len(e.backtrace) == 0 {
		return ""
	}
	return e.backtrace[0]
}

// Backtrace returns the annotated files, innermost first.
func (e *SyntaxError) Backtrace() []string {
	return append([]string(nil), e.backtrace...)
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	filename := e.Filename()
	if filename == "" && e.Line <= 0 {
		return e.Message
	}

	var b strings.Builder
	if filename != "" {
		b.WriteString(filename)
	} else {
		b.WriteString("line")
	}
	if e.Line > 0 {
		if filename != "" {
			b.WriteByte(':')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(e.Line))
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Unwrap returns the attached cause, if any.
func (e *SyntaxError) Unwrap() error {
	return e.cause
}
