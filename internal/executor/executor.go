// Package executor runs the commands behind tabs.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hokaccha/go-prettyjson"
	"github.com/leg100/tabdash/internal/logging"
	"github.com/leg100/tabdash/internal/tab"
)

const (
	// DefaultTimeout is the default bound on the time a command may run.
	DefaultTimeout = 10 * time.Second

	// gracePeriod is how long a command has to exit after being interrupted
	// before it is killed.
	gracePeriod = time.Second
)

type Options struct {
	// Timeout bounds how long a command may run. Zero means no bound.
	Timeout time.Duration
	Logger  logging.Interface
}

// Executor runs a tab's command to completion, capturing its output.
type Executor struct {
	timeout time.Duration
	logger  logging.Interface
	// environ returns the environment inherited by commands.
	environ func() []string
}

func New(opts Options) *Executor {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Executor{
		timeout: opts.Timeout,
		logger:  opts.Logger,
		environ: os.Environ,
	}
}

// Run runs the spec's command and blocks until it finishes, times out, or the
// context is canceled. Failures are reported in the result rather than as an
// error.
func (e *Executor) Run(ctx context.Context, spec tab.Spec) Result {
	start := time.Now()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Cancel = func() error {
		// Kill program gracefully
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = gracePeriod
	cmd.Dir = spec.Dir
	// Later entries take precedence, so overrides go last.
	cmd.Env = append(e.environ(), spec.Env.Environ()...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Status:   Succeeded,
		Output:   e.decode(spec, stdout.Bytes()),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.Status = TimedOut
		res.Err = fmt.Errorf("timed out after %s", e.timeout)
	case errors.As(err, &exitErr):
		res.Status = Failed
		res.Err = err
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			res.Err = fmt.Errorf("%w: %s", err, msg)
		}
	default:
		res.Status = Failed
		res.Err = fmt.Errorf("running %s: %w", spec.Command, err)
	}

	if res.Succeeded() {
		e.logger.Debug("ran command", "tab", spec, "result", res)
	} else {
		e.logger.Error("running command", "tab", spec, "result", res)
	}
	return res
}

// decode converts output into valid UTF-8, pretty printing it if the spec
// says it's JSON.
func (e *Executor) decode(spec tab.Spec, out []byte) string {
	if !utf8.Valid(out) {
		e.logger.Warn("command output is not valid UTF-8", "tab", spec)
		out = bytes.ToValidUTF8(out, []byte(string(utf8.RuneError)))
	}
	if spec.JSON && len(bytes.TrimSpace(out)) > 0 {
		formatted, err := prettyjson.Format(out)
		if err != nil {
			e.logger.Warn("pretty printing json output", "tab", spec, "error", err)
		} else {
			out = formatted
		}
	}
	return string(out)
}
