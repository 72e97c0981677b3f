package logging

import (
	"io"
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is implemented by loggers.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to, e.g. a log
	// file.
	AdditionalWriters []io.Writer
}

// NewLogger constructs Logger, a slog wrapper that keeps a record of messages
// in memory.
func NewLogger(opts Options) *Logger {
	writer := &writer{}
	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)
	return &Logger{
		Logger: slog.New(handler),
		writer: writer,
	}
}

// Logger wraps slog, additionally retaining log records so that they can be
// surfaced in the TUI.
type Logger struct {
	*slog.Logger

	writer *writer
}

// Last returns the most recent message with at least the given level. False is
// returned if there is no such message.
func (l *Logger) Last(level slog.Level) (Message, bool) {
	msgs := l.writer.list()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Level >= level {
			return msgs[i], true
		}
	}
	return Message{}, false
}
