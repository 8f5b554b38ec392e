package clip

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/user/crush-cli/deps"
	"github.com/user/crush-cli/pkg/archive"
	"github.com/user/crush-cli/pkg/quality"
	"github.com/user/crush-cli/pkg/timeutil"
	"github.com/user/crush-cli/probe"
)

type fakeHistory struct {
	mu       sync.Mutex
	stages   []Stage
	complete *Outcome
	failed   Stage
	reason   string
}

func (h *fakeHistory) Begin(Request) (int64, error) { return 1, nil }

func (h *fakeHistory) Advance(_ int64, s Stage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stages = append(h.stages, s)
	return nil
}

func (h *fakeHistory) Complete(_ int64, out Outcome) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.complete = &out
	return nil
}

func (h *fakeHistory) Fail(_ int64, s Stage, reason string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failed, h.reason = s, reason
	return nil
}

// newTestProcessor creates stand-in tool files so the existence checks pass.
func newTestProcessor(t *testing.T, r *scriptRunner) (*Processor, *fakeHistory) {
	t.Helper()
	dir := t.TempDir()
	tools := deps.Tools{FFmpeg: filepath.Join(dir, "ffmpeg"), FFprobe: filepath.Join(dir, "ffprobe")}
	for _, p := range []string{tools.FFmpeg, tools.FFprobe} {
		if err := os.WriteFile(p, nil, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	r.ffprobe = tools.FFprobe
	h := &fakeHistory{}
	p := NewProcessor(tools, h, nil)
	p.Runner = r
	p.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) }
	return p, h
}

func baseRequest(t *testing.T) Request {
	return Request{
		Input:     "clip.mov",
		OutputDir: t.TempDir(),
		Start:     timeutil.NewTimeSpec("0", "0", "10"),
		End:       timeutil.NewTimeSpec("0", "1", "0"),
		Quality:   quality.High,
	}
}

func messages(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

func TestProcessorRunSuccess(t *testing.T) {
	r := &scriptRunner{duration: "100.0\n", outputSize: 10 * 1024 * 1024}
	p, h := newTestProcessor(t, r)
	req := baseRequest(t)

	var events []Event
	out, err := p.Run(context.Background(), req, func(e Event) { events = append(events, e) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantPath := filepath.Join(req.OutputDir, "crushed-video-01-02-03-04-05.mp4")
	if out.Result.Path != wantPath {
		t.Errorf("output path = %q, want %q", out.Result.Path, wantPath)
	}
	if out.Duration != 100 {
		t.Errorf("duration = %v", out.Duration)
	}
	if len(r.calls) != 2 {
		t.Fatalf("expected probe and cut calls, got %d", len(r.calls))
	}
	cut := r.calls[1]
	if cut[0] != p.Tools.FFmpeg || cut[4] != "0:0:10" || cut[6] != "0:1:0" {
		t.Errorf("cut argv = %v", cut)
	}

	log := messages(events)
	for _, want := range []string{
		"[Info:] Video Duration: 100.00 seconds",
		"[Info:] Video Duration: 1.67 minutes",
		"[Success:] Video has been cut to " + wantPath + ". File size is 10.00 MB.",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("status log missing %q:\n%s", want, log)
		}
	}
	if strings.Contains(log, "[Warning:]") {
		t.Errorf("unexpected oversize warning:\n%s", log)
	}

	if h.complete == nil {
		t.Fatal("history not completed")
	}
	wantStages := []Stage{StageValidating, StageProbing, StageEncoding}
	if len(h.stages) != len(wantStages) {
		t.Fatalf("stages = %v", h.stages)
	}
	for i, s := range wantStages {
		if h.stages[i] != s {
			t.Errorf("stage %d = %v, want %v", i, h.stages[i], s)
		}
	}
}

func TestProcessorOversizeAdvisory(t *testing.T) {
	r := &scriptRunner{duration: "100", outputSize: int64(30.5 * 1024 * 1024)}
	p, _ := newTestProcessor(t, r)

	var events []Event
	if _, err := p.Run(context.Background(), baseRequest(t), func(e Event) { events = append(events, e) }); err != nil {
		t.Fatal(err)
	}
	log := messages(events)
	if !strings.Contains(log, "[Warning:] File size is 30.50 MB, which is larger than 25 MB.") {
		t.Errorf("missing oversize warning:\n%s", log)
	}
	if !strings.Contains(log, "Consider compressing or zipping the file.") {
		t.Errorf("missing zip hint:\n%s", log)
	}
}

func TestProcessorEndBeyondDuration(t *testing.T) {
	r := &scriptRunner{duration: "100.0"}
	p, h := newTestProcessor(t, r)
	req := baseRequest(t)
	req.End = timeutil.NewTimeSpec("0", "2", "0")

	_, err := p.Run(context.Background(), req, nil)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BoundsError, got %v", err)
	}
	for _, c := range r.calls {
		if c[0] == p.Tools.FFmpeg {
			t.Fatal("ffmpeg must not run when the end time is out of bounds")
		}
	}
	if h.failed != StageFailed {
		t.Errorf("history failure stage = %v", h.failed)
	}
}

func TestProcessorValidationStopsBeforeTools(t *testing.T) {
	r := &scriptRunner{duration: "100"}
	p, _ := newTestProcessor(t, r)
	req := baseRequest(t)
	req.Input = ""

	_, err := p.Run(context.Background(), req, nil)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Msg != "Please fill in all fields." {
		t.Fatalf("expected fill-in error, got %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("no process should run, got %v", r.calls)
	}
}

func TestProcessorMissingFFmpeg(t *testing.T) {
	r := &scriptRunner{duration: "100"}
	p, _ := newTestProcessor(t, r)
	p.Tools.FFmpeg = filepath.Join(t.TempDir(), "nope")

	_, err := p.Run(context.Background(), baseRequest(t), nil)
	var nf *deps.ToolNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *ToolNotFoundError, got %v", err)
	}
}

func TestProcessorProbeFailure(t *testing.T) {
	r := &scriptRunner{probeExit: 1, probeStderr: "clip.mov: Invalid data found when processing input"}
	p, _ := newTestProcessor(t, r)

	_, err := p.Run(context.Background(), baseRequest(t), nil)
	var pe *probe.ProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProbeError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Could not validate video duration") {
		t.Errorf("err = %q", err)
	}
}

func TestProcessorEncodeFailure(t *testing.T) {
	r := &scriptRunner{duration: "100", ffmpegExit: 1, ffmpegStderr: "Conversion failed!"}
	p, h := newTestProcessor(t, r)

	_, err := p.Run(context.Background(), baseRequest(t), nil)
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EncodeError, got %v", err)
	}
	if !strings.Contains(h.reason, "Conversion failed!") {
		t.Errorf("history reason = %q", h.reason)
	}
}

func TestProcessorEntireVideo(t *testing.T) {
	r := &scriptRunner{duration: "3725.4", outputSize: 1024}
	p, _ := newTestProcessor(t, r)
	req := baseRequest(t)
	req.Entire = true
	req.Start, req.End = timeutil.TimeSpec{}, timeutil.TimeSpec{}

	var events []Event
	out, err := p.Run(context.Background(), req, func(e Event) { events = append(events, e) })
	if err != nil {
		t.Fatal(err)
	}
	if out.Job.Start != "0:0:0" || out.Job.End != "1:2:5" {
		t.Errorf("range = %s..%s", out.Job.Start, out.Job.End)
	}
	if !strings.Contains(messages(events), "Set to crush entire video: 1h 2m 5s") {
		t.Errorf("missing entire-video line:\n%s", messages(events))
	}
}

func TestProcessorZip(t *testing.T) {
	r := &scriptRunner{duration: "100", outputSize: 4096}
	p, h := newTestProcessor(t, r)
	req := baseRequest(t)
	req.Zip = true
	req.OutputName = "match"

	out, err := p.Run(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.ArchivePath != filepath.Join(req.OutputDir, "match.zip") {
		t.Errorf("archive path = %q", out.ArchivePath)
	}
	name, data, err := archive.ReadEntry(out.ArchivePath)
	if err != nil {
		t.Fatal(err)
	}
	if name != "match.mp4" || len(data) != 4096 {
		t.Errorf("entry %q with %d bytes", name, len(data))
	}
	if _, err := os.Stat(out.Result.Path); err != nil {
		t.Errorf("mp4 must survive zipping: %v", err)
	}
	if last := h.stages[len(h.stages)-1]; last != StageArchiving {
		t.Errorf("last stage = %v", last)
	}
}

func TestProcessorStartStreamsAndRejectsSecondJob(t *testing.T) {
	r := &scriptRunner{block: true}
	p, h := newTestProcessor(t, r)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Start(ctx, baseRequest(t))
	if err != nil {
		t.Fatal(err)
	}
	// Wait until the probe is running.
	for e := range ch {
		if e.Stage == StageProbing {
			break
		}
	}
	if !p.Running() {
		t.Fatal("processor should report running")
	}
	if _, err := p.Start(ctx, baseRequest(t)); !errors.Is(err, ErrJobRunning) {
		t.Fatalf("second Start = %v, want ErrJobRunning", err)
	}

	cancel()
	var last Event
	for e := range ch {
		last = e
	}
	if !last.Done || last.Stage != StageCancelled {
		t.Errorf("final event = %+v", last)
	}
	if !errors.Is(last.Err, context.Canceled) {
		t.Errorf("final err = %v", last.Err)
	}
	if h.failed != StageCancelled {
		t.Errorf("history stage = %v", h.failed)
	}
	if p.Running() {
		t.Error("processor still running after the final event")
	}
}
