// Package probe asks ffprobe for a media file's container duration.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/crush-cli/deps"
	"github.com/user/crush-cli/pkg/execx"
)

// ProbeError reports a failed duration query.
type ProbeError struct {
	File string
	Msg  string
	Err  error
}

func (e *ProbeError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return fmt.Sprintf("ffprobe error: %v", e.Err)
	}
	return "ffprobe error: " + e.Msg
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Prober runs ffprobe. Each call spawns a new process; nothing is cached.
type Prober struct {
	Path   string
	Runner execx.Runner
}

// New returns a Prober for the ffprobe binary at path.
func New(path string, runner execx.Runner) *Prober {
	return &Prober{Path: path, Runner: runner}
}

// Args returns the ffprobe arguments requesting only the container duration.
func Args(file string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		file,
	}
}

// Duration returns the container duration of file in seconds.
func (p *Prober) Duration(ctx context.Context, file string) (float64, error) {
	if err := deps.CheckFile("ffprobe", p.Path); err != nil {
		return 0, &ProbeError{File: file, Err: err}
	}

	res, err := p.Runner.Run(ctx, p.Path, Args(file)...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, &ProbeError{File: file, Err: err}
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(string(res.Stderr))
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		return 0, &ProbeError{File: file, Msg: msg}
	}

	s := strings.TrimSpace(string(res.Stdout))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ProbeError{File: file, Msg: fmt.Sprintf("parse duration %q", s), Err: err}
	}
	return sec, nil
}

// DurationReport formats a duration the way the status log shows it.
func DurationReport(sec float64) []string {
	return []string{
		fmt.Sprintf("Video Duration: %.2f seconds", sec),
		fmt.Sprintf("Video Duration: %.2f minutes", sec/60),
	}
}
