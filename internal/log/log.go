package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. Unknown names fall
// back to LevelInfo.
func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is a leveled printf-style logger. Core types take one at
// construction rather than reaching for a global.
type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0),
		level:  level,
	}
}

func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, format, v...) }

func (l *Logger) printf(level Level, format string, v ...any) {
	if l.level <= level {
		l.logger.Printf(level.String()+": "+format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
