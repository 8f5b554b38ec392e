package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFromToolsDir(t *testing.T) {
	dir := t.TempDir()
	tools := Resolve("", dir)
	if filepath.Dir(tools.FFmpeg) != dir || filepath.Dir(tools.FFprobe) != dir {
		t.Fatalf("tools not under %s: %+v", dir, tools)
	}
	if err := tools.CheckFFmpeg(); err == nil {
		t.Fatal("expected missing ffmpeg")
	}

	var nf *ToolNotFoundError
	if !errors.As(tools.CheckFFprobe(), &nf) {
		t.Fatal("expected *ToolNotFoundError for ffprobe")
	}
	if nf.Path != tools.FFprobe {
		t.Errorf("error path = %q, want %q", nf.Path, tools.FFprobe)
	}
}

func TestResolveExplicitPathPutsProbeBeside(t *testing.T) {
	dir := t.TempDir()
	ffmpeg := filepath.Join(dir, "bin", "ffmpeg-custom")
	tools := Resolve(ffmpeg, "")
	if tools.FFmpeg != ffmpeg {
		t.Errorf("FFmpeg = %q", tools.FFmpeg)
	}
	if filepath.Dir(tools.FFprobe) != filepath.Join(dir, "bin") {
		t.Errorf("FFprobe = %q, want it beside ffmpeg", tools.FFprobe)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := CheckFile("ffmpeg", path); err != nil {
		t.Errorf("existing file reported missing: %v", err)
	}
	if err := CheckFile("ffmpeg", dir); err == nil {
		t.Error("directory must not count as a tool")
	}
}
