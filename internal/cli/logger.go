package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger is a leveled, styled logger for stderr. Debug and info lines are
// dropped unless verbose is set.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{out: w, verbose: verbose}
}

// SetVerbose toggles debug output.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.isVerbose() {
		l.write(dimStyle.Render("debug"), format, args)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.isVerbose() {
		l.write(headerStyle.Render("info "), format, args)
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write(warnStyle.Render("warn "), format, args)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write(errorStyle.Render("error"), format, args)
}

func (l *Logger) isVerbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func (l *Logger) write(level, format string, args []any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s\n", level, msg)
}
