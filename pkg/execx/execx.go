// Package execx runs external tools and captures their output.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Result holds the captured output of one process run.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner starts a process and waits for it to exit.
// A non-zero exit is reported through Result.ExitCode, not the error; the error is
// reserved for processes that could not be started or were cancelled.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	Logger *zap.Logger
}

// NewRunner returns a Runner that logs each invocation to logger. A nil logger is allowed.
func NewRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{Logger: logger}
}

// Run executes name with args. The process is killed when ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Info("running external tool",
		zap.String("tool", name),
		zap.Strings("args", args),
	)
	started := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Warn("external tool cancelled", zap.String("tool", name), zap.Error(ctxErr))
		return res, ctxErr
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		logger.Error("external tool failed to start", zap.String("tool", name), zap.Error(err))
		return res, err
	}

	logger.Info("external tool finished",
		zap.String("tool", name),
		zap.Int("exit_code", res.ExitCode),
		zap.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}
