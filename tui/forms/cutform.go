package forms

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/config"
	"github.com/user/crush-cli/pkg/quality"
	"github.com/user/crush-cli/pkg/timeutil"
)

// CutFormResult holds the values bound to the cut form fields.
type CutFormResult struct {
	Input      string
	OutputDir  string
	OutputName string
	Quality    quality.Selection

	StartH, StartM, StartS string
	EndH, EndM, EndS       string

	Zip    bool
	Entire bool
}

// NewCutFormResult returns a result pre-filled from the stored settings.
func NewCutFormResult(s config.Settings) *CutFormResult {
	q, err := s.QualitySelection()
	if err != nil {
		q = quality.PreserveOriginal
	}
	return &CutFormResult{
		OutputDir: s.OutputDir,
		Quality:   q,
		Zip:       s.Zip,
	}
}

// Request converts the form values into a cut request. Blank time fields become "0".
func (r *CutFormResult) Request() clip.Request {
	return clip.Request{
		Input:      strings.TrimSpace(r.Input),
		OutputDir:  strings.TrimSpace(r.OutputDir),
		OutputName: r.OutputName,
		Start:      timeutil.NewTimeSpec(r.StartH, r.StartM, r.StartS),
		End:        timeutil.NewTimeSpec(r.EndH, r.EndM, r.EndS),
		Quality:    r.Quality,
		Zip:        r.Zip,
		Entire:     r.Entire,
	}
}

// Again returns a copy for the next cut that keeps the files and options but clears the range.
func (r *CutFormResult) Again() *CutFormResult {
	next := *r
	next.StartH, next.StartM, next.StartS = "", "", ""
	next.EndH, next.EndM, next.EndS = "", "", ""
	next.OutputName = ""
	return &next
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

func existingFile(s string) error {
	if err := required("input video")(s); err != nil {
		return err
	}
	info, err := os.Stat(strings.TrimSpace(s))
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("that is a directory")
	}
	return nil
}

// wholeNumber accepts blank (meaning 0) or a non-negative integer.
func wholeNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 0 {
		return errors.New("whole number")
	}
	return nil
}

func timeField(title string, v *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0").
		CharLimit(4).
		Inline(true).
		Validate(wholeNumber).
		Value(v)
}

// NewCutForm creates the form collecting a cut request. Field validators check
// presence and number format only; the processor validates the request as a whole.
func NewCutForm(r *CutFormResult) *huh.Form {
	options := make([]huh.Option[quality.Selection], 0, len(quality.All()))
	for _, s := range quality.All() {
		options = append(options, huh.NewOption(s.String(), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Crush a video").Description("Step 1 of 3: Files"),
			huh.NewInput().
				Title("Input video").
				Placeholder("/path/to/video.mp4").
				Validate(existingFile).
				Value(&r.Input),
			huh.NewInput().
				Title("Output folder").
				Validate(required("output folder")).
				Value(&r.OutputDir),
			huh.NewInput().
				Title("Output name").
				Description("Optional. Defaults to crushed-video-<timestamp>").
				Value(&r.OutputName),
		),
		huh.NewGroup(
			huh.NewNote().Title("Crush a video").Description("Step 2 of 3: Range"),
			huh.NewConfirm().
				Title("Crush entire video?").
				Description("Ignores the times below and keeps the whole video").
				Value(&r.Entire),
			timeField("Start hours  ", &r.StartH),
			timeField("Start minutes", &r.StartM),
			timeField("Start seconds", &r.StartS),
			timeField("End hours    ", &r.EndH),
			timeField("End minutes  ", &r.EndM),
			timeField("End seconds  ", &r.EndS),
		),
		huh.NewGroup(
			huh.NewNote().Title("Crush a video").Description("Step 3 of 3: Output"),
			huh.NewSelect[quality.Selection]().
				Title("Quality").
				Options(options...).
				Value(&r.Quality),
			huh.NewConfirm().
				Title("Zip output?").
				Description("Also writes <name>.zip next to the clip").
				Value(&r.Zip),
		),
	).WithTheme(Theme())
}
