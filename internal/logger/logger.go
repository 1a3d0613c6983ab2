package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is our internal wrapper around zerolog so every package logs
// through the same underlying instance
type Logger struct {
	zl *zerolog.Logger
}

var (
	once   sync.Once
	shared Logger
)

// New returns the shared logger, creating it on first use
func New() Logger {
	once.Do(func() {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Logger()

		shared = Logger{zl: &zl}
	})

	return shared
}

// GlobalSetOutput points the shared logger at f, e.g. a log file
func GlobalSetOutput(f *os.File) {
	l := New()

	newZl := l.zl.Output(f)

	*l.zl = newZl
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Warn wrapper around zerolog Warn
func (l Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}

// Fatal wrapper around zerolog Fatal
func (l Logger) Fatal() *zerolog.Event {
	return l.zl.Fatal()
}
