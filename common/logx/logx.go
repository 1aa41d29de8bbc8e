package logx

import (
	"log/slog"
	"sync/atomic"
)

// Logger is the logging surface used across the module. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

type holder struct{ Logger }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{slog.Default()})
}

func L() Logger {
	return current.Load().Logger
}

// SetLogger replaces the process wide logger. A nil logger discards output.
func SetLogger(l Logger) {
	if l == nil {
		l = nop{}
	}
	current.Store(&holder{l})
}
