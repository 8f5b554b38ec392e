package clip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/user/crush-cli/deps"
	"github.com/user/crush-cli/pkg/archive"
	"github.com/user/crush-cli/pkg/execx"
	"github.com/user/crush-cli/pkg/quality"
	"github.com/user/crush-cli/pkg/timeutil"
	"github.com/user/crush-cli/probe"
)

// Stage is a step of the cut state machine.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StageProbing
	StageEncoding
	StageArchiving
	StageDone
	StageFailed
	StageCancelled
)

var stageNames = [...]string{"idle", "validating", "probing", "encoding", "archiving", "done", "failed", "cancelled"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Terminal reports whether s ends a run.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed || s == StageCancelled
}

// Level classifies a status log line.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

var levelTags = [...]string{"[Info:]", "[Success:]", "[Warning:]", "[Error:]"}

func (l Level) String() string {
	if int(l) < len(levelTags) {
		return levelTags[l]
	}
	return "[?]"
}

// Event is one status update from a running cut. The final event of a run has
// Done set and carries the Outcome or the error.
type Event struct {
	Stage   Stage
	Level   Level
	Message string

	// Transition marks the event announcing entry into Stage.
	Transition bool

	Done    bool
	Outcome Outcome
	Err     error
}

// String renders the event as a status log line, e.g. "[Error:] ...".
func (e Event) String() string {
	return e.Level.String() + " " + e.Message
}

// Outcome is the result of a successful run.
type Outcome struct {
	Job         Job
	Result      Result
	ArchivePath string
	Duration    float64
}

// History records each run. Implementations must be safe to call from the worker goroutine.
type History interface {
	Begin(req Request) (int64, error)
	Advance(id int64, stage Stage) error
	Complete(id int64, out Outcome) error
	Fail(id int64, stage Stage, reason string) error
}

// Processor runs cuts one at a time.
type Processor struct {
	Tools   deps.Tools
	Runner  execx.Runner
	History History
	Logger  *zap.Logger
	Now     func() time.Time

	mu      sync.Mutex
	running bool
}

// NewProcessor returns a Processor using the os/exec runner.
func NewProcessor(tools deps.Tools, history History, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		Tools:   tools,
		Runner:  execx.NewRunner(logger),
		History: history,
		Logger:  logger,
		Now:     time.Now,
	}
}

func (p *Processor) acquire() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return ErrJobRunning
	}
	p.running = true
	return nil
}

func (p *Processor) release() {
	p.mu.Lock()
	p.running = false
	p.mu.Unlock()
}

// Running reports whether a cut is in flight.
func (p *Processor) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Start launches a goroutine that runs req and streams its events on the returned
// channel. The last event has Done set; the channel is closed after it.
// Cancelling ctx kills the running ffmpeg or ffprobe process.
func (p *Processor) Start(ctx context.Context, req Request) (<-chan Event, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}

	ch := make(chan Event, 16)
	go func() {
		defer close(ch)
		defer p.release()

		out, err := p.run(ctx, req, func(e Event) { ch <- e })
		ch <- finalEvent(out, err)
	}()
	return ch, nil
}

// Run executes req synchronously, passing each event to emit (which may be nil).
func (p *Processor) Run(ctx context.Context, req Request, emit func(Event)) (Outcome, error) {
	if err := p.acquire(); err != nil {
		return Outcome{}, err
	}
	defer p.release()
	if emit == nil {
		emit = func(Event) {}
	}
	return p.run(ctx, req, emit)
}

func finalEvent(out Outcome, err error) Event {
	switch {
	case err == nil:
		return Event{Stage: StageDone, Level: LevelSuccess, Message: "Done.", Done: true, Outcome: out}
	case errors.Is(err, context.Canceled):
		return Event{Stage: StageCancelled, Level: LevelWarning, Message: "Cut cancelled.", Done: true, Err: err}
	default:
		return Event{Stage: StageFailed, Level: LevelError, Message: err.Error(), Done: true, Err: err}
	}
}

// run walks Validating -> Probing -> Encoding -> Archiving. The first failing stage
// aborts the rest.
func (p *Processor) run(ctx context.Context, req Request, emit func(Event)) (Outcome, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	var id int64
	if p.History != nil {
		var err error
		if id, err = p.History.Begin(req); err != nil {
			logger.Warn("history begin failed", zap.Error(err))
		}
	}
	stage := StageValidating
	advance := func(s Stage) {
		stage = s
		emit(Event{Stage: s, Level: LevelInfo, Message: "Stage: " + s.String(), Transition: true})
		if p.History != nil && id != 0 {
			if err := p.History.Advance(id, s); err != nil {
				logger.Warn("history advance failed", zap.Error(err))
			}
		}
	}
	fail := func(err error) (Outcome, error) {
		end := StageFailed
		if errors.Is(err, context.Canceled) {
			end = StageCancelled
		}
		logger.Error("cut failed", zap.Stringer("stage", stage), zap.Error(err))
		if p.History != nil && id != 0 {
			if herr := p.History.Fail(id, end, err.Error()); herr != nil {
				logger.Warn("history fail failed", zap.Error(herr))
			}
		}
		return Outcome{}, err
	}

	// Validating
	advance(StageValidating)
	if err := Validate(req); err != nil {
		return fail(err)
	}
	if err := p.Tools.CheckFFmpeg(); err != nil {
		return fail(err)
	}
	qargs, err := quality.Args(req.Quality)
	if err != nil {
		return fail(err)
	}

	// Probing
	advance(StageProbing)
	prober := probe.New(p.Tools.FFprobe, p.Runner)
	duration, err := prober.Duration(ctx, req.Input)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fail(err)
		}
		return fail(fmt.Errorf("Could not validate video duration: %w", err))
	}
	for _, line := range probe.DurationReport(duration) {
		emit(Event{Stage: StageProbing, Level: LevelInfo, Message: line})
	}

	start, end := req.Start, req.End
	if req.Entire {
		start = timeutil.NewTimeSpec("0", "0", "0")
		end = timeutil.FromSeconds(duration)
		emit(Event{Stage: StageProbing, Level: LevelInfo, Message: fmt.Sprintf(
			"Set to crush entire video: %sh %sm %ss", end.Hours, end.Minutes, end.Seconds)})
		if err := checkRange(start, end); err != nil {
			return fail(err)
		}
	}
	if err := CheckBounds(end, duration); err != nil {
		return fail(err)
	}

	name := OutputName(req.OutputName, now())
	job := Job{
		Input:       req.Input,
		Output:      OutputPath(req.OutputDir, name),
		Name:        name,
		Start:       start.String(),
		End:         end.String(),
		QualityArgs: qargs,
	}

	// Encoding
	advance(StageEncoding)
	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return fail(&ValidationError{Msg: "Could not create output directory.", Err: err})
	}
	logger.Info("cutting clip",
		zap.String("input", job.Input),
		zap.String("output", job.Output),
		zap.String("start", job.Start),
		zap.String("end", job.End),
		zap.Stringer("quality", req.Quality),
	)
	cutter := &Cutter{Path: p.Tools.FFmpeg, Runner: p.Runner}
	res, err := cutter.Cut(ctx, job)
	if err != nil {
		return fail(err)
	}
	for _, e := range res.Report() {
		emit(e)
	}

	out := Outcome{Job: job, Result: res, Duration: duration}

	// Archiving
	if req.Zip {
		advance(StageArchiving)
		zipPath := archive.ArchivePath(req.OutputDir, name)
		if err := archive.Zip(ctx, res.Path, zipPath); err != nil {
			return fail(err)
		}
		out.ArchivePath = zipPath
		emit(Event{Stage: StageArchiving, Level: LevelSuccess, Message: "Output file has been zipped as " + zipPath})
	}

	if p.History != nil && id != 0 {
		if err := p.History.Complete(id, out); err != nil {
			logger.Warn("history complete failed", zap.Error(err))
		}
	}
	logger.Info("cut finished", zap.String("output", res.Path), zap.Int64("size", res.Size))
	return out, nil
}
