package executor

import (
	"log/slog"
	"time"
)

// Status is the outcome of running a command.
type Status string

const (
	Succeeded Status = "succeeded"
	Failed    Status = "failed"
	TimedOut  Status = "timed out"
)

// Result is the outcome of running a tab's command.
type Result struct {
	// Output is the command's standard output. It is always valid UTF-8.
	Output string
	Status Status
	// Nil unless the command failed or timed out.
	Err error
	// Duration is how long the command took to run.
	Duration time.Duration
}

func (r Result) Succeeded() bool {
	return r.Status == Succeeded
}

func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("status", string(r.Status)),
		slog.Duration("duration", r.Duration),
		slog.Int("bytes", len(r.Output)),
	}
	if r.Err != nil {
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}
