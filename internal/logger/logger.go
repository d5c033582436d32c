// Package logger provides a small leveled logger. Three levels: off
// (silent), normal (info/warn/error), verbose (adds debug). Safe for
// concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Level controls verbosity.
type Level int32

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal enables info, warn and error.
	LevelNormal
	// LevelVerbose additionally enables debug.
	LevelVerbose
)

// Logger writes leveled, time-prefixed lines to a single destination.
type Logger struct {
	level atomic.Int32
	out   *log.Logger
}

// New creates a logger at the given level. A nil out writes to stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{out: log.New(out, "", log.Ltime)}
	l.level.Store(int32(level))
	return l
}

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Debug logs at debug level; visible only in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(LevelVerbose, "DBG", format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.emit(LevelNormal, "INF", format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(LevelNormal, "WRN", format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.emit(LevelNormal, "ERR", format, args...)
}

func (l *Logger) emit(min Level, tag, format string, args ...any) {
	if Level(l.level.Load()) < min {
		return
	}
	l.out.Output(3, "["+tag+"] "+fmt.Sprintf(format, args...))
}
