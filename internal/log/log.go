// Package log provides structured logging for pickr.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and is only enabled via the --debug flag or PICKR_DEBUG env.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
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
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig    Category = "config"    // Configuration loading and hot reload
	CatUI        Category = "ui"        // UI component updates
	CatPicker    Category = "picker"    // Pick animation lifecycle
	CatClipboard Category = "clipboard" // Clipboard writes
	CatParse     Category = "parse"     // Choice parsing
)

// Logger writes structured entries to a single writer.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// InitWithTeaLog uses tea.LogToFile for initialization.
// Returns a cleanup function that closes the log file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	setDefault(&Logger{
		closer:   f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
	})
	return func() {
		setDefault(nil)
		_ = f.Close()
	}, nil
}

// InitWriter routes log output to w.
func InitWriter(w io.Writer) func() {
	setDefault(&Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
	})
	return func() { setDefault(nil) }
}

// Enabled reports whether a logger is installed and active.
func Enabled() bool {
	l := current()
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// DebugFromEnv reports whether PICKR_DEBUG requests debug logging.
func DebugFromEnv() bool {
	return os.Getenv("PICKR_DEBUG") != ""
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func setDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	_, _ = io.WriteString(l.writer, format(time.Now(), level, cat, msg, fields...))
}

// format renders one entry:
// 2025-12-06T10:45:00 [ERROR] [clipboard] message key=value key2=value2
func format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	entry := fmt.Sprintf("%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	return entry + "\n"
}
