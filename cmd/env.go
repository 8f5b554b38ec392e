package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/config"
	"github.com/user/crush-cli/db"
	"github.com/user/crush-cli/deps"
	"github.com/user/crush-cli/logging"
)

// env is what a cutting command needs: settings, tools, a logger and the history database.
type env struct {
	Settings config.Settings
	Tools    deps.Tools
	Logger   *zap.Logger
	DB       *sql.DB

	closeLog func()
}

func loadSettings() (config.Settings, *config.JSONStore, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Settings{}, nil, fmt.Errorf("locate config: %w", err)
	}
	store := config.NewJSONStore(path)
	settings, err := store.Load()
	if err != nil {
		return config.Settings{}, nil, fmt.Errorf("load config: %w", err)
	}
	return settings, store, nil
}

// resolveTools applies the --ffmpeg flag over the stored path.
func resolveTools(cmd *cobra.Command, settings config.Settings) deps.Tools {
	ffmpeg := settings.FFmpegPath
	if f := cmd.Flag("ffmpeg"); f != nil && f.Changed {
		ffmpeg = f.Value.String()
	}
	return deps.Resolve(ffmpeg, "")
}

func newEnv(cmd *cobra.Command) (*env, error) {
	settings, _, err := loadSettings()
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, closeLog, err := logging.New(logging.Options{File: logging.DefaultFile(), Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	e := &env{
		Settings: settings,
		Tools:    resolveTools(cmd, settings),
		Logger:   logger,
		closeLog: closeLog,
	}

	// History is best effort; a cut must not fail because the database is unavailable.
	database, err := db.Open()
	if err != nil {
		logger.Warn("history disabled", zap.Error(err))
	} else {
		e.DB = database
	}
	return e, nil
}

// Processor returns a processor recording into the history database when it is open.
func (e *env) Processor() *clip.Processor {
	var history clip.History
	if e.DB != nil {
		history = db.NewJobStore(e.DB)
	}
	return clip.NewProcessor(e.Tools, history, e.Logger)
}

func (e *env) Close() {
	if e.DB != nil {
		e.DB.Close()
	}
	e.closeLog()
}
