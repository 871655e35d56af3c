package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level is a log level for console output.
type Level string

const (
	LevelStart   Level = "START"
	LevelProcess Level = "PROCESS"
	LevelInfo    Level = "INFO"
	LevelDebug   Level = "DEBUG"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
	LevelDone    Level = "DONE"
)

var levelColors = map[Level]*color.Color{
	LevelStart:   color.New(color.FgCyan),
	LevelProcess: color.New(color.FgBlue),
	LevelInfo:    color.New(color.FgGreen),
	LevelDebug:   color.New(color.FgYellow),
	LevelWarn:    color.New(color.FgMagenta),
	LevelError:   color.New(color.FgRed),
	LevelDone:    color.New(color.FgGreen),
}

// Logger writes colored "[LEVEL] message" lines. Debug lines are dropped
// unless verbose mode is enabled.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New returns a logger writing to stdout.
func New(verbose bool) *Logger {
	return &Logger{out: os.Stdout, verbose: verbose}
}

// NewWriter returns a logger writing to w, for tests and redirected output.
func NewWriter(w io.Writer, verbose bool) *Logger {
	return &Logger{out: w, verbose: verbose}
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level == LevelDebug && !l.verbose {
		return
	}
	c, ok := levelColors[level]
	if !ok {
		c = color.New(color.FgWhite)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Startf(format string, args ...interface{})   { l.log(LevelStart, format, args...) }
func (l *Logger) Processf(format string, args ...interface{}) { l.log(LevelProcess, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})    { l.log(LevelInfo, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{})   { l.log(LevelDebug, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})    { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{})   { l.log(LevelError, format, args...) }
func (l *Logger) Donef(format string, args ...interface{})    { l.log(LevelDone, format, args...) }
