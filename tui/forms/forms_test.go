package forms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/crush-cli/config"
	"github.com/user/crush-cli/pkg/quality"
)

func TestCutFormResultRequest(t *testing.T) {
	r := &CutFormResult{
		Input:     " /videos/clip.mov ",
		OutputDir: "/out",
		Quality:   quality.High,
		StartS:    "10",
		EndM:      "1",
		Zip:       true,
	}
	req := r.Request()
	if req.Input != "/videos/clip.mov" {
		t.Errorf("Input = %q", req.Input)
	}
	if req.Start.String() != "0:0:10" || req.End.String() != "0:1:0" {
		t.Errorf("range = %s..%s", req.Start, req.End)
	}
	if req.Quality != quality.High || !req.Zip || req.Entire {
		t.Errorf("request = %+v", req)
	}
}

func TestNewCutFormResultUsesSettings(t *testing.T) {
	r := NewCutFormResult(config.Settings{OutputDir: "/clips", Quality: "low", Zip: true})
	if r.OutputDir != "/clips" || r.Quality != quality.Low || !r.Zip {
		t.Errorf("result = %+v", r)
	}
	r = NewCutFormResult(config.Settings{Quality: "bogus"})
	if r.Quality != quality.PreserveOriginal {
		t.Errorf("bad stored quality should fall back, got %v", r.Quality)
	}
}

func TestAgainClearsRange(t *testing.T) {
	r := &CutFormResult{Input: "a.mp4", OutputDir: "/o", OutputName: "x", StartS: "5", EndS: "9", Quality: quality.Medium}
	next := r.Again()
	if next.Input != "a.mp4" || next.Quality != quality.Medium {
		t.Errorf("files/options not kept: %+v", next)
	}
	if next.StartS != "" || next.EndS != "" || next.OutputName != "" {
		t.Errorf("range not cleared: %+v", next)
	}
	if r.StartS != "5" {
		t.Error("Again must not modify the original")
	}
}

func TestValidators(t *testing.T) {
	for _, s := range []string{"", " ", "0", "59", "90"} {
		if err := wholeNumber(s); err != nil {
			t.Errorf("wholeNumber(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"a", "-1", "1.5"} {
		if err := wholeNumber(s); err == nil {
			t.Errorf("wholeNumber(%q) accepted", s)
		}
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "v.mp4")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := existingFile(file); err != nil {
		t.Errorf("existingFile(file) = %v", err)
	}
	if err := existingFile(dir); err == nil {
		t.Error("directory accepted as input")
	}
	if err := existingFile(filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestFormsBuild(t *testing.T) {
	if NewCutForm(NewCutFormResult(config.DefaultSettings())) == nil {
		t.Fatal("nil cut form")
	}
	var cancel bool
	if NewConfirmCancelForm(&cancel) == nil {
		t.Fatal("nil confirm form")
	}
}
