// Package logging provides categorized file-based debug logging for the
// kiosk core. Each category writes to its own file under the configured
// logs directory. Logging is a silent no-op unless debug mode is enabled,
// so the conversation core never pays for it in production.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category identifies a kiosk subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // startup, catalog loading
	CategoryMatcher  Category = "matcher"  // menu/option matching scores
	CategoryDialog   Category = "dialog"   // state machine transitions
	CategorySession  Category = "session"  // session lifecycle, resets
	CategoryCart     Category = "cart"     // cart adds/removes, dedup rejections
	CategoryDispatch Category = "dispatch" // transcript routing, dropped input
)

// Log levels, ordered.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Options configures the logging system. Zero value means disabled.
type Options struct {
	// Dir is the directory log files are written to.
	Dir string

	// Debug enables logging; when false nothing is written anywhere.
	Debug bool

	// Level is the minimum level written: debug, info, warn, error.
	Level string

	// Categories filters which categories log. Nil enables all.
	Categories map[string]bool
}

// Logger writes messages for one category.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu       sync.RWMutex
	opts     Options
	level    int
	loggers  = make(map[Category]*Logger)
	disabled = &Logger{}
)

// Configure installs the logging options. Call once at startup, before the
// first Get; reconfiguration closes previously opened files.
func Configure(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)

	opts = o
	switch o.Level {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	default:
		level = LevelInfo
	}

	if !o.Debug {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("logging: debug mode requires a log directory")
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("logging: create %s: %w", o.Dir, err)
	}
	return nil
}

// Enabled reports whether the category would produce output.
func Enabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabledLocked(category)
}

func enabledLocked(category Category) bool {
	if !opts.Debug || opts.Dir == "" {
		return false
	}
	if opts.Categories == nil {
		return true
	}
	on, ok := opts.Categories[string(category)]
	return !ok || on
}

// Get returns the logger for a category, creating its file on first use.
// Disabled categories get a shared no-op logger.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	enabled := enabledLocked(category)
	dir := opts.Dir
	mu.RUnlock()

	if !enabled {
		return disabled
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed files keep rotation a matter of deleting old names.
	name := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] cannot open %s: %v\n", name, err)
		return disabled
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func (l *Logger) write(lvl int, tag, format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	mu.RLock()
	min := level
	mu.RUnlock()
	if lvl < min {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "INFO", format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, "WARN", format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, "ERROR", format, args...)
}
