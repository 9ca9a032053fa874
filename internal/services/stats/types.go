package stats

import (
	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/repositories/scores"
)

// Config holds configuration for the stats service
type Config struct {
	// Repository persists the score snapshot
	Repository scores.Repository
}

// GetPlayerStatsInput contains parameters for retrieving a player's record
type GetPlayerStatsInput struct {
	// GuildID scopes the lookup to one guild
	GuildID string

	// UserID is the Discord user ID of the player
	UserID string
}

// GetPlayerStatsOutput contains the result of retrieving a player's record
type GetPlayerStatsOutput struct {
	// Stats is a copy of the player's record
	Stats *models.PlayerStats
}

// RecordResultInput contains parameters for recording a resolved duel
type RecordResultInput struct {
	// GuildID scopes the record to one guild
	GuildID string

	// UserID is the Discord user ID of the player
	UserID string

	// Username is the player's latest known display name
	Username string

	// Outcome is the player's result in the duel
	Outcome models.GameOutcome

	// PointsDelta is the signed point change to apply
	PointsDelta int
}

// RecordResultOutput contains the result of recording a duel
type RecordResultOutput struct {
	// Stats is a copy of the player's record after the update
	Stats *models.PlayerStats
}
