package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/user/crush-cli/clip"
)

// JobStore records processor runs in the cuts table.
type JobStore struct {
	DB  *sql.DB
	Now func() time.Time
}

// NewJobStore returns a JobStore over db.
func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{DB: db, Now: time.Now}
}

var _ clip.History = (*JobStore)(nil)

func (s *JobStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Begin inserts a pending row for req.
func (s *JobStore) Begin(req clip.Request) (int64, error) {
	return InsertCut(s.DB, CutParams{
		UUID:       uuid.NewString(),
		Input:      req.Input,
		OutputDir:  req.OutputDir,
		OutputName: req.OutputName,
		Start:      req.Start.String(),
		End:        req.End.String(),
		Quality:    req.Quality.Key(),
		Zip:        req.Zip,
		Entire:     req.Entire,
	}, s.now())
}

// Advance records the stage the run has entered.
func (s *JobStore) Advance(id int64, stage clip.Stage) error {
	return UpdateCutStage(s.DB, id, stage.String())
}

// Complete records a successful run. The range stored is the one actually cut,
// which differs from the request for entire-video runs.
func (s *JobStore) Complete(id int64, out clip.Outcome) error {
	return MarkCutComplete(s.DB, id, CutResult{
		Start:       out.Job.Start,
		End:         out.Job.End,
		OutputPath:  out.Result.Path,
		ArchivePath: out.ArchivePath,
		Duration:    out.Duration,
		Filesize:    out.Result.Size,
	}, s.now())
}

// Fail records a failed or cancelled run. The stage column keeps the stage that failed.
func (s *JobStore) Fail(id int64, stage clip.Stage, reason string) error {
	status := StatusError
	if stage == clip.StageCancelled {
		status = StatusCancelled
	}
	return MarkCutError(s.DB, id, status, s.now(), reason)
}
