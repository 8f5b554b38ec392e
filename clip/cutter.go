package clip

import (
	"context"
	"fmt"
	"os"

	"github.com/user/crush-cli/pkg/execx"
)

// OversizeLimit is the size above which the cut is flagged as too large to share
// as a chat attachment. It is advisory only.
const OversizeLimit = 25 * 1024 * 1024

// BuildArgs returns the full argument vector, executable first:
// cutter -i in -ss start -to end <quality...> out
func BuildArgs(cutter string, job Job) []string {
	args := []string{
		cutter,
		"-i", job.Input,
		"-ss", job.Start,
		"-to", job.End,
	}
	args = append(args, job.QualityArgs...)
	return append(args, job.Output)
}

// Result describes a produced clip.
type Result struct {
	Path string
	Size int64
}

// SizeMiB returns the size in mebibytes.
func (r Result) SizeMiB() float64 {
	return float64(r.Size) / (1024 * 1024)
}

// Oversize reports whether the clip is larger than OversizeLimit.
func (r Result) Oversize() bool {
	return r.Size > OversizeLimit
}

// Report returns the status lines for a finished cut: the success line, and the
// oversize advisory when it applies.
func (r Result) Report() []Event {
	events := []Event{{
		Stage:   StageEncoding,
		Level:   LevelSuccess,
		Message: fmt.Sprintf("Video has been cut to %s. File size is %.2f MB.", r.Path, r.SizeMiB()),
	}}
	if r.Oversize() {
		events = append(events,
			Event{Stage: StageEncoding, Level: LevelWarning, Message: fmt.Sprintf("File size is %.2f MB, which is larger than 25 MB.", r.SizeMiB())},
			Event{Stage: StageEncoding, Level: LevelInfo, Message: "Consider compressing or zipping the file."},
		)
	}
	return events
}

// Cutter runs ffmpeg for a Job.
type Cutter struct {
	Path   string
	Runner execx.Runner
}

// Cut runs the cut synchronously. A non-zero exit, or a failure to start ffmpeg at
// all, fails with *EncodeError carrying the exit code and diagnostics.
func (c *Cutter) Cut(ctx context.Context, job Job) (Result, error) {
	argv := BuildArgs(c.Path, job)
	res, err := c.Runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, err
		}
		// ffmpeg never ran, e.g. the tool is not executable.
		return Result{}, &EncodeError{ExitCode: -1, Stderr: err.Error()}
	}
	if res.ExitCode != 0 {
		return Result{}, &EncodeError{ExitCode: res.ExitCode, Stderr: string(res.Stderr)}
	}

	info, err := os.Stat(job.Output)
	if err != nil {
		return Result{}, &EncodeError{Stderr: fmt.Sprintf("output not written: %v", err)}
	}
	return Result{Path: job.Output, Size: info.Size()}, nil
}
