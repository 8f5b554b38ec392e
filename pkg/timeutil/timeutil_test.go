package timeutil

import (
	"errors"
	"testing"
)

func TestNewTimeSpecDefaultsBlankFields(t *testing.T) {
	tests := []struct {
		h, m, s string
		want    string
	}{
		{"", "", "", "0:0:0"},
		{"1", "", "", "1:0:0"},
		{"", "2", "", "0:2:0"},
		{"", "", "30", "0:0:30"},
		{" 1 ", "  ", "5", "1:0:5"},
		{"01", "09", "10", "01:09:10"},
		{"1", "90", "0", "1:90:0"},
	}
	for _, tt := range tests {
		got := NewTimeSpec(tt.h, tt.m, tt.s).String()
		if got != tt.want {
			t.Errorf("NewTimeSpec(%q, %q, %q) = %q, want %q", tt.h, tt.m, tt.s, got, tt.want)
		}
	}
}

func TestZeroValueStringsAsZero(t *testing.T) {
	var ts TimeSpec
	if got := ts.String(); got != "0:0:0" {
		t.Errorf("zero TimeSpec = %q, want 0:0:0", got)
	}
}

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		spec TimeSpec
		want int
	}{
		{NewTimeSpec("", "", ""), 0},
		{NewTimeSpec("0", "2", "0"), 120},
		{NewTimeSpec("1", "1", "1"), 3661},
		{NewTimeSpec("1", "90", "0"), 9000},
	}
	for _, tt := range tests {
		got, err := tt.spec.TotalSeconds()
		if err != nil {
			t.Fatalf("TotalSeconds(%s) error: %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("TotalSeconds(%s) = %d, want %d", tt.spec, got, tt.want)
		}
	}
}

func TestTotalSecondsRejectsNonNumeric(t *testing.T) {
	for _, spec := range []TimeSpec{
		NewTimeSpec("a", "", ""),
		NewTimeSpec("", "1.5", ""),
		NewTimeSpec("", "", "-3"),
	} {
		_, err := spec.TotalSeconds()
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Errorf("TotalSeconds(%s) error = %v, want *FieldError", spec, err)
		}
	}
}

func TestBeforeIsNumeric(t *testing.T) {
	// "0:9:0" sorts after "0:10:0" as text but is earlier in time.
	before, err := Before(NewTimeSpec("0", "9", "0"), NewTimeSpec("0", "10", "0"))
	if err != nil {
		t.Fatal(err)
	}
	if !before {
		t.Error("0:9:0 should be before 0:10:0")
	}

	before, err = Before(NewTimeSpec("0", "1", "0"), NewTimeSpec("0", "0", "60"))
	if err != nil {
		t.Fatal(err)
	}
	if before {
		t.Error("equal instants must not compare as before")
	}
}

func TestSplitClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0:0:0"},
		{"10", "0:0:10"},
		{"1:30", "0:1:30"},
		{"0:0:10", "0:0:10"},
		{"2:03:04", "2:03:04"},
		{"1::5", "1:0:5"},
	}
	for _, tt := range tests {
		got, err := SplitClock(tt.in)
		if err != nil {
			t.Fatalf("SplitClock(%q): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("SplitClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitClockRejectsExtraComponents(t *testing.T) {
	for _, in := range []string{"1:0:0:10", "0:0:0:0:5"} {
		_, err := SplitClock(in)
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Errorf("SplitClock(%q) error = %v, want *FieldError", in, err)
			continue
		}
		if fe.Value != in {
			t.Errorf("FieldError.Value = %q, want %q", fe.Value, in)
		}
	}
}

func TestFromSeconds(t *testing.T) {
	got := FromSeconds(3725.9)
	if got.String() != "1:2:5" {
		t.Errorf("FromSeconds(3725.9) = %q, want 1:2:5", got)
	}
	if FromSeconds(-1).String() != "0:0:0" {
		t.Error("negative seconds should clamp to zero")
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(90); got != "0:01:30" {
		t.Errorf("FormatTime(90) = %q", got)
	}
	if got := FormatTime(4282); got != "1:11:22" {
		t.Errorf("FormatTime(4282) = %q", got)
	}
}
