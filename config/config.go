// Package config persists user defaults for cuts in a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/user/crush-cli/pkg/quality"
)

// Settings are the stored defaults. Command-line flags override them per run.
type Settings struct {
	// FFmpegPath is empty to use the tools directory beside the executable.
	FFmpegPath string `json:"ffmpeg_path"`
	OutputDir  string `json:"output_dir"`
	Quality    string `json:"quality"`
	Zip        bool   `json:"zip"`
}

// DefaultSettings returns the defaults used before anything is saved.
func DefaultSettings() Settings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return Settings{
		OutputDir: filepath.Join(homeDir, "Videos", "crushed"),
		Quality:   quality.PreserveOriginal.Key(),
	}
}

// DefaultPath returns ~/.config/crush-cli/config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crush-cli", "config.json"), nil
}

// QualitySelection parses the stored quality key.
func (s Settings) QualitySelection() (quality.Selection, error) {
	if strings.TrimSpace(s.Quality) == "" {
		return quality.PreserveOriginal, nil
	}
	return quality.Parse(s.Quality)
}

// Keys lists the names accepted by Set, sorted.
func Keys() []string {
	keys := []string{"ffmpeg", "output", "quality", "zip"}
	sort.Strings(keys)
	return keys
}

// Set assigns one setting by its command-line key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "ffmpeg":
		s.FFmpegPath = strings.TrimSpace(value)
	case "output":
		s.OutputDir = strings.TrimSpace(value)
	case "quality":
		q, err := quality.Parse(value)
		if err != nil {
			return err
		}
		s.Quality = q.Key()
	case "zip":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("zip must be true or false, got %q", value)
		}
		s.Zip = b
	default:
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Store defines persistence operations for settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// JSONStore keeps settings in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed settings store at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *JSONStore) Path() string { return s.path }

// Load reads settings, returning DefaultSettings when the file does not exist.
// Fields missing from the file keep their default values.
func (s *JSONStore) Load() (Settings, error) {
	cfg := DefaultSettings()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Settings{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save writes settings as indented JSON, creating parent directories.
func (s *JSONStore) Save(cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
