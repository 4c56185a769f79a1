package ui

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Logger writes prefixed status lines, keeping stdout free for the
// sample itself.
type Logger struct {
	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	errorp  *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	quiet   bool
}

// New creates a logger writing to stderr.
func New(quiet bool) *Logger {
	return NewWithWriter(os.Stderr, quiet)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, quiet bool) *Logger {
	return &Logger{
		info:    pterm.Info.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
		errorp:  pterm.Error.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		quiet:   quiet,
	}
}

// LogInfo logs an info message
func (l *Logger) LogInfo(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	l.info.Printfln(format, args...)
}

// LogWarning logs a warning message
func (l *Logger) LogWarning(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	l.warning.Printfln(format, args...)
}

// LogSuccess logs a success message
func (l *Logger) LogSuccess(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	l.success.Printfln(format, args...)
}

// LogError logs an error message.  Errors are shown even when quiet.
func (l *Logger) LogError(format string, args ...interface{}) {
	l.errorp.Printfln(format, args...)
}
