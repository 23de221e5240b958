package logger

import (
	"log"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type leveledLogger struct {
	level  Level
	prefix string
}

func NewLogger(level Level) *leveledLogger {
	return &leveledLogger{level: level}
}

// NewPrefixedLogger tags every line with a fixed prefix, usually the
// component name.
func NewPrefixedLogger(level Level, prefix string) *leveledLogger {
	return &leveledLogger{level: level, prefix: prefix + ": "}
}

// Silence returns a logger that drops everything. Used in tests.
func Silence() *leveledLogger {
	return &leveledLogger{level: SILENCE}
}

func (l *leveledLogger) printf(at Level, msg string, a ...any) {
	if l.level <= at {
		log.Printf(l.prefix+msg+"\n", a...)
	}
}

func (l *leveledLogger) Debugf(msg string, a ...any) {
	l.printf(DEBUG, msg, a...)
}

func (l *leveledLogger) Infof(msg string, a ...any) {
	l.printf(INFO, msg, a...)
}

func (l *leveledLogger) Warnf(msg string, a ...any) {
	l.printf(WARNING, msg, a...)
}

func (l *leveledLogger) Errorf(msg string, a ...any) {
	l.printf(ERROR, msg, a...)
}
