package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"

	// ToolsDirName is the directory beside the executable searched for ffmpeg and ffprobe.
	ToolsDirName = "tools"
)

// ToolNotFoundError reports an external tool missing at its resolved location.
type ToolNotFoundError struct {
	Name       string
	Path       string
	InstallURL string
}

func (e *ToolNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("The specified path to %s cannot be found: %s", e.Name, e.Path)
	}
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// Tools holds the resolved locations of ffmpeg and ffprobe.
type Tools struct {
	FFmpeg  string
	FFprobe string
}

// exeName appends the platform executable suffix.
func exeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// DefaultToolsDir returns the tools directory beside the running executable.
func DefaultToolsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ToolsDirName
	}
	return filepath.Join(filepath.Dir(exe), ToolsDirName)
}

// Resolve works out where ffmpeg and ffprobe live. ffmpegPath may be empty (use
// toolsDir), a bare command name (looked up in PATH) or a file path. ffprobe is always
// expected next to ffmpeg. Resolve does not check that the files exist; see Tools.Check.
func Resolve(ffmpegPath, toolsDir string) Tools {
	ffmpegPath = strings.TrimSpace(ffmpegPath)
	if ffmpegPath == "" {
		if toolsDir == "" {
			toolsDir = DefaultToolsDir()
		}
		return Tools{
			FFmpeg:  filepath.Join(toolsDir, exeName("ffmpeg")),
			FFprobe: filepath.Join(toolsDir, exeName("ffprobe")),
		}
	}

	if !strings.ContainsAny(ffmpegPath, `/\`) {
		found, err := exec.LookPath(ffmpegPath)
		if err != nil {
			return Tools{FFmpeg: ffmpegPath, FFprobe: exeName("ffprobe")}
		}
		ffmpegPath = found
	}
	return Tools{
		FFmpeg:  ffmpegPath,
		FFprobe: filepath.Join(filepath.Dir(ffmpegPath), exeName("ffprobe")),
	}
}

// CheckFile returns a *ToolNotFoundError unless path is an existing regular file.
func CheckFile(name, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ToolNotFoundError{Name: name, Path: path, InstallURL: FfmpegInstallURL}
	}
	return nil
}

// CheckFFmpeg verifies the resolved ffmpeg binary exists.
func (t Tools) CheckFFmpeg() error {
	return CheckFile("ffmpeg", t.FFmpeg)
}

// CheckFFprobe verifies the resolved ffprobe binary exists.
func (t Tools) CheckFFprobe() error {
	return CheckFile("ffprobe", t.FFprobe)
}

// CheckMpv checks if mpv is installed and available in PATH
func CheckMpv() error {
	_, err := exec.LookPath("mpv")
	if err != nil {
		return &ToolNotFoundError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// Status is one line of the doctor report.
type Status struct {
	Name     string
	Path     string
	Err      error
	Optional bool
}

// CheckAll checks ffmpeg, ffprobe and the optional mpv previewer.
func CheckAll(t Tools) []Status {
	mpvPath, _ := exec.LookPath("mpv")
	return []Status{
		{Name: "ffmpeg", Path: t.FFmpeg, Err: t.CheckFFmpeg()},
		{Name: "ffprobe", Path: t.FFprobe, Err: t.CheckFFprobe()},
		{Name: "mpv", Path: mpvPath, Err: CheckMpv(), Optional: true},
	}
}
