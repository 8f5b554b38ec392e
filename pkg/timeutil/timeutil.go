package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}

// TimeSpec is an hour/minute/second triple as typed into three separate fields.
// Fields are kept as text so that the value handed to ffmpeg is exactly what the user entered.
type TimeSpec struct {
	Hours   string
	Minutes string
	Seconds string
}

// FieldError reports time text that cannot be read, usually a field that is not a
// non-negative integer.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s must be a whole number, got %q", e.Field, e.Value)
}

// NewTimeSpec builds a TimeSpec from raw field text. Blank fields default to "0".
func NewTimeSpec(hours, minutes, seconds string) TimeSpec {
	return TimeSpec{
		Hours:   orZero(hours),
		Minutes: orZero(minutes),
		Seconds: orZero(seconds),
	}
}

func orZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}

// SplitClock splits flag text such as "1:02:03", "2:03" or "3" into a TimeSpec.
// Missing leading components become "0"; the text of each component is kept as-is.
// More than three components fail with *FieldError.
func SplitClock(s string) (TimeSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewTimeSpec("", "", ""), nil
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		return NewTimeSpec("", "", parts[0]), nil
	case 2:
		return NewTimeSpec("", parts[0], parts[1]), nil
	case 3:
		return NewTimeSpec(parts[0], parts[1], parts[2]), nil
	default:
		return TimeSpec{}, &FieldError{Field: "time", Value: s, Reason: "expected H:M:S, M:S or S"}
	}
}

// FromSeconds decomposes a duration in seconds into whole hours, minutes and seconds.
// Fractional seconds are dropped.
func FromSeconds(sec float64) TimeSpec {
	if sec < 0 {
		sec = 0
	}
	total := int(sec)
	return TimeSpec{
		Hours:   strconv.Itoa(total / 3600),
		Minutes: strconv.Itoa((total % 3600) / 60),
		Seconds: strconv.Itoa(total % 60),
	}
}

// String returns the "H:M:S" argument form. Components are not padded and
// out-of-range minutes or seconds are passed through unchanged.
func (t TimeSpec) String() string {
	n := NewTimeSpec(t.Hours, t.Minutes, t.Seconds)
	return n.Hours + ":" + n.Minutes + ":" + n.Seconds
}

// TotalSeconds converts the triple to seconds. Minutes and seconds above 59 carry over.
func (t TimeSpec) TotalSeconds() (int, error) {
	n := NewTimeSpec(t.Hours, t.Minutes, t.Seconds)
	h, err := field("hours", n.Hours)
	if err != nil {
		return 0, err
	}
	m, err := field("minutes", n.Minutes)
	if err != nil {
		return 0, err
	}
	s, err := field("seconds", n.Seconds)
	if err != nil {
		return 0, err
	}
	return h*3600 + m*60 + s, nil
}

func field(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return 0, &FieldError{Field: name, Value: value}
	}
	return v, nil
}

// Before reports whether a is strictly earlier than b, comparing total seconds.
func Before(a, b TimeSpec) (bool, error) {
	as, err := a.TotalSeconds()
	if err != nil {
		return false, err
	}
	bs, err := b.TotalSeconds()
	if err != nil {
		return false, err
	}
	return as < bs, nil
}
