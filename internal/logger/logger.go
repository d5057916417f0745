// Package logger provides structured JSON logging for the puckcal
// pipeline. Entries carry a timestamp, level, message, and arbitrary
// structured fields, one JSON object per line. The pipeline logs to
// stderr so stdout stays clean for command output.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// Fields holds structured context attached to a log entry.
type Fields map[string]interface{}

// Logger writes structured entries at or above a minimum level.
type Logger struct {
	mu  sync.Mutex
	min Level
	out io.Writer
}

// New creates a logger writing to out, discarding entries below min.
func New(min Level, out io.Writer) *Logger {
	return &Logger{min: min, out: out}
}

var (
	defaultMu sync.RWMutex
	defaultL  = New(LevelInfo, os.Stderr)
)

// SetDefault replaces the package-level logger used by the convenience
// functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultL = l
	defaultMu.Unlock()
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if level < l.min {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)
	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		fmt.Fprintf(l.out, "[%s] %s: %s (marshal error: %v)\n", e.Timestamp, e.Level, e.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.out, string(data))
}

func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }
func (l *Logger) Info(message string, fields Fields)  { l.log(LevelInfo, message, fields, nil) }
func (l *Logger) Warn(message string, fields Fields)  { l.log(LevelWarn, message, fields, nil) }
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultL
}

// Debug logs a debug message with the default logger.
func Debug(message string, fields Fields) { current().Debug(message, fields) }

// Info logs an informational message with the default logger.
func Info(message string, fields Fields) { current().Info(message, fields) }

// Warn logs a warning with the default logger.
func Warn(message string, fields Fields) { current().Warn(message, fields) }

// Error logs an error with the default logger.
func Error(message string, fields Fields, err error) { current().Error(message, fields, err) }
