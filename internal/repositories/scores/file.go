package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/kerchief/duelbot/internal/models"
)

// FileConfig holds configuration for the JSON file score repository
type FileConfig struct {
	// Path is the location of the score file
	Path string
}

// fileRepository implements the Repository interface with a single JSON file,
// an object of objects keyed by guild ID then user ID.
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed score repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("score file path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Load reads the score file. A missing file yields an empty snapshot; a
// corrupt file is discarded with a logged warning rather than stopping the bot.
func (r *fileRepository) Load(_ context.Context) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Score file %s not found, starting empty", r.path)
			return &LoadOutput{Snapshot: models.ScoreSnapshot{}}, nil
		}
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	var snapshot models.ScoreSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Warning: score file %s is corrupted, starting empty: %v", r.path, err)
		return &LoadOutput{Snapshot: models.ScoreSnapshot{}}, nil
	}

	if snapshot == nil {
		snapshot = models.ScoreSnapshot{}
	}

	return &LoadOutput{Snapshot: snapshot}, nil
}

// Save overwrites the score file with the given snapshot
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.MarshalIndent(input.Snapshot, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}

	return nil
}
