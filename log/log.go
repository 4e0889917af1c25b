// Package log provides a small leveled logger used for diagnostics that
// must never reach the player's narrative: swallowed content queries,
// persistence failures, startup info.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
)

// Level is a log severity. Messages at or below the configured level
// are emitted.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. Valid names: error, warn, info, debug.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", name)
	}
}

// Logger wraps the standard logger with level filtering.
type Logger struct {
	mu     sync.Mutex
	logger *stdlog.Logger
	level  Level
}

// New creates a logger writing to out at the given level.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: stdlog.New(out, "", stdlog.Ldate|stdlog.Ltime),
		level:  level,
	}
}

// SetLevel changes the logger's level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }

var defaultLogger = New(os.Stderr, LevelWarn)

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger }

// SetLevel sets the level on the process-wide logger.
func SetLevel(level Level) { defaultLogger.SetLevel(level) }

func Error(format string, args ...any) { defaultLogger.Error(format, args...) }
func Warn(format string, args ...any)  { defaultLogger.Warn(format, args...) }
func Info(format string, args ...any)  { defaultLogger.Info(format, args...) }
func Debug(format string, args ...any) { defaultLogger.Debug(format, args...) }
