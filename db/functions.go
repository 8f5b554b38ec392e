package db

import (
	"database/sql"
	"fmt"
	"time"
)

// CutParams are the request fields recorded when a cut is queued.
type CutParams struct {
	UUID       string
	Input      string
	OutputDir  string
	OutputName string
	Start      string
	End        string
	Quality    string
	Zip        bool
	Entire     bool
}

// InsertCut inserts a pending cuts row and returns its ID.
func InsertCut(db *sql.DB, p CutParams, createdAt time.Time) (int64, error) {
	result, err := db.Exec(InsertCutSQL, p.UUID, p.Input, p.OutputDir, p.OutputName, p.Start, p.End, p.Quality, p.Zip, p.Entire, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert cut: %w", err)
	}
	return result.LastInsertId()
}

// UpdateCutStage marks a cut as processing in the given stage.
func UpdateCutStage(db *sql.DB, id int64, stage string) error {
	if _, err := db.Exec(UpdateCutStageSQL, stage, id); err != nil {
		return fmt.Errorf("update cut stage: %w", err)
	}
	return nil
}

// CutResult is what a finished cut produced.
type CutResult struct {
	Start       string
	End         string
	OutputPath  string
	ArchivePath string
	Duration    float64
	Filesize    int64
}

// MarkCutComplete records the outcome of a successful cut.
func MarkCutComplete(db *sql.DB, id int64, r CutResult, finishedAt time.Time) error {
	_, err := db.Exec(MarkCutCompleteSQL, r.Start, r.End, r.OutputPath, r.ArchivePath, r.Duration, r.Filesize, finishedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("mark cut complete: %w", err)
	}
	return nil
}

// MarkCutError records a failed or cancelled cut with its reason.
func MarkCutError(db *sql.DB, id int64, status string, errorAt time.Time, logMsg string) error {
	if _, err := db.Exec(MarkCutErrorSQL, status, errorAt.UTC(), logMsg, id); err != nil {
		return fmt.Errorf("mark cut error: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCut(s scanner) (*Cut, error) {
	var c Cut
	err := s.Scan(&c.ID, &c.UUID, &c.Input, &c.OutputDir, &c.OutputName, &c.Start, &c.End, &c.Quality, &c.Zip, &c.Entire,
		&c.Status, &c.Stage, &c.OutputPath, &c.ArchivePath, &c.Duration, &c.Filesize, &c.CreatedAt, &c.FinishedAt, &c.ErrorAt, &c.Log)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SelectCutByID returns a single cuts row by ID.
func SelectCutByID(db *sql.DB, id int64) (*Cut, error) {
	return scanCut(db.QueryRow(SelectCutByIDSQL, id))
}

// SelectCuts returns up to limit cuts, newest first.
func SelectCuts(db *sql.DB, limit int) ([]Cut, error) {
	rows, err := db.Query(SelectCutsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select cuts: %w", err)
	}
	defer rows.Close()

	var cuts []Cut
	for rows.Next() {
		c, err := scanCut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cut: %w", err)
		}
		cuts = append(cuts, *c)
	}
	return cuts, rows.Err()
}

// DeleteFinishedCuts removes every cut that is no longer running and returns the count.
func DeleteFinishedCuts(db *sql.DB) (int64, error) {
	result, err := db.Exec(DeleteCutsSQL)
	if err != nil {
		return 0, fmt.Errorf("delete cuts: %w", err)
	}
	return result.RowsAffected()
}
