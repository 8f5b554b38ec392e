package db

import "time"

// Cut status values stored in cuts.status.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusError      = "error"
	StatusCancelled  = "cancelled"
)

// Cut represents a row in the cuts table.
type Cut struct {
	ID          int64
	UUID        string
	Input       string
	OutputDir   string
	OutputName  string
	Start       string
	End         string
	Quality     string
	Zip         bool
	Entire      bool
	Status      string
	Stage       string
	OutputPath  string
	ArchivePath string
	Duration    float64
	Filesize    int64
	CreatedAt   time.Time
	FinishedAt  *time.Time
	ErrorAt     *time.Time
	Log         string
}
