package sim

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunLog records one finished arena.
type RunLog struct {
	Timestamp time.Time `json:"timestamp"`
	Host      string    `json:"host"` // terminal, ssh, window, headless
	Seed      int64     `json:"seed"`
	Level     string    `json:"level"`
	Stats
}

// SaveRunLog appends rl as a single JSON line to runs.jsonl.
// Errors are logged but never stop the caller.
func SaveRunLog(rl RunLog, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write failed", "error", err)
	}
}

// runLogDir follows the XDG base directory layout:
// $XDG_DATA_HOME/penguin-patrol, defaulting to ~/.local/share/penguin-patrol.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "penguin-patrol"), nil
}
