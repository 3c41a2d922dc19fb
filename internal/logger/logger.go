package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the session log file, relative to the working
// directory (project root when run via go run ./cmd/studio).
const LogFilePath = "logs/studio.log"

// Level is the severity of a log line. Debug lines (e.g. a node classifying
// as unknown) are kept out of the terminal view by default.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

// Logger stores log lines in memory for the terminal overlay and appends
// every line to a file on disk. Safe for use from multiple goroutines.
type Logger struct {
	mu    sync.Mutex
	lines []string
	// MinLevel is the lowest level kept in the in-memory lines; everything
	// still goes to the file. Defaults to LevelInfo.
	MinLevel Level
}

// New returns a new Logger and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]string, 0), MinLevel: LevelInfo}
}

// Debug logs a low-severity line (file only under the default MinLevel).
func (l *Logger) Debug(line string) { l.log(LevelDebug, line) }

// Info logs a normal line.
func (l *Logger) Info(line string) { l.log(LevelInfo, line) }

// Warn logs a warning line.
func (l *Logger) Warn(line string) { l.log(LevelWarn, line) }

// Log is Info; kept as the short form used by the terminal for user input.
func (l *Logger) Log(line string) { l.log(LevelInfo, line) }

func (l *Logger) log(level Level, line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.String() + " " + line

	l.mu.Lock()
	if level >= l.MinLevel {
		l.lines = append(l.lines, stamped)
	}
	l.mu.Unlock()

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored in-memory lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
