package scores

import "github.com/kerchief/duelbot/internal/models"

// LoadOutput contains the result of loading the score snapshot
type LoadOutput struct {
	Snapshot models.ScoreSnapshot
}

// SaveInput contains parameters for persisting the score snapshot
type SaveInput struct {
	Snapshot models.ScoreSnapshot
}
