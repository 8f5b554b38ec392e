package clip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrJobRunning is returned when a cut is started while another is in flight.
var ErrJobRunning = errors.New("a cut is already running")

// ValidationError reports missing or contradictory request fields.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BoundsError reports an end time past the end of the clip.
type BoundsError struct {
	EndSeconds int
	Duration   float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("The end time exceeds the video duration (%ds > %.2fs).", e.EndSeconds, e.Duration)
}

// EncodeError reports a non-zero ffmpeg exit. ExitCode is -1 when ffmpeg could
// not be started.
type EncodeError struct {
	ExitCode int
	Stderr   string
}

func (e *EncodeError) Error() string {
	tail := lastLine(e.Stderr)
	if e.ExitCode < 0 {
		return "ffmpeg could not be started: " + tail
	}
	if tail == "" {
		return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("ffmpeg exited with status %d: %s", e.ExitCode, tail)
}

// lastLine returns the last non-empty line of ffmpeg's diagnostics, which is
// where it prints the reason it gave up.
func lastLine(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

// Describe renders err as a single status log line.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return Event{Level: LevelError, Message: err.Error()}.String()
}
