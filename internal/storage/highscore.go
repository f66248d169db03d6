package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// HighScores adapts a Store to core.ScoreStore for one game.
// Failures are logged and never reach the game: loads fall back to 0.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScores creates the adapter. A nil store behaves as empty storage.
func NewHighScores(store *Store, gameID string, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{store: store, gameID: gameID, logger: logger}
}

// Load returns the committed high score, or 0 if unavailable.
func (h *HighScores) Load() int {
	if h.store == nil {
		return 0
	}
	score, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Warn("could not load high score", "game", h.gameID, "error", err)
		return 0
	}
	return score
}

// Save commits a new high score.
func (h *HighScores) Save(score int) {
	if h.store == nil {
		return
	}
	if err := h.store.SetHighScore(h.gameID, score); err != nil {
		h.logger.Warn("could not save high score", "game", h.gameID, "score", score, "error", err)
		return
	}
	h.logger.Info("new high score", "game", h.gameID, "score", score)
}

// highScoreFile is the on-disk JSON document.
type highScoreFile struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps a single high score in a JSON file such as
// {"high_score": 42}.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a file-backed score store.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the high score. A missing or corrupt file yields 0.
func (f *FileStore) Load() int {
	score, err := f.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("no high score file yet", "path", f.path)
		} else {
			f.logger.Warn("could not read high score file", "path", f.path, "error", err)
		}
		return 0
	}
	return score
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, err
	}
	var doc highScoreFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file: %w", err)
	}
	if doc.HighScore < 0 {
		return 0, nil
	}
	return doc.HighScore, nil
}

// Save writes the high score, replacing the file atomically.
func (f *FileStore) Save(score int) {
	if err := f.write(score); err != nil {
		f.logger.Warn("could not write high score file", "path", f.path, "error", err)
	}
}

func (f *FileStore) write(score int) error {
	data, err := json.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}

var (
	_ core.ScoreStore = (*HighScores)(nil)
	_ core.ScoreStore = (*FileStore)(nil)
)
