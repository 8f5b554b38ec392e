package clip

import (
	"errors"
	"strings"

	"github.com/user/crush-cli/pkg/quality"
	"github.com/user/crush-cli/pkg/timeutil"
)

// Request is everything the user asked for in one cut. It is built once from the form
// or flags and passed by value through the pipeline.
type Request struct {
	Input      string
	OutputDir  string
	OutputName string
	Start      timeutil.TimeSpec
	End        timeutil.TimeSpec
	Quality    quality.Selection
	Zip        bool
	// Entire replaces Start/End with the whole clip once its duration is known.
	Entire bool
}

// Job is a Request resolved into concrete ffmpeg inputs.
type Job struct {
	Input       string
	Output      string
	Name        string
	Start       string
	End         string
	QualityArgs []string
}

// checkFields reports blank input or output fields.
func checkFields(req Request) error {
	if strings.TrimSpace(req.Input) == "" || strings.TrimSpace(req.OutputDir) == "" {
		return &ValidationError{Msg: "Please fill in all fields."}
	}
	return nil
}

// checkRange reports a start time that is not strictly before the end time.
func checkRange(start, end timeutil.TimeSpec) error {
	before, err := timeutil.Before(start, end)
	if err != nil {
		var fe *timeutil.FieldError
		if errors.As(err, &fe) {
			return &ValidationError{Msg: "Times must be whole numbers.", Err: err}
		}
		return err
	}
	if !before {
		return &ValidationError{Msg: "Start time must be earlier than end time."}
	}
	return nil
}

// Validate checks the fields that can be checked without probing the input.
// When Entire is set the range is filled in later and is not checked here.
func Validate(req Request) error {
	if err := checkFields(req); err != nil {
		return err
	}
	if req.Entire {
		return nil
	}
	return checkRange(req.Start, req.End)
}

// CheckBounds fails with *BoundsError when end lies beyond duration seconds.
func CheckBounds(end timeutil.TimeSpec, duration float64) error {
	sec, err := end.TotalSeconds()
	if err != nil {
		return &ValidationError{Msg: "Times must be whole numbers.", Err: err}
	}
	if float64(sec) > duration {
		return &BoundsError{EndSeconds: sec, Duration: duration}
	}
	return nil
}
