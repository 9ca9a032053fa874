package models

// GameOutcome is a single player's result in a resolved duel
type GameOutcome string

const (
	// GameOutcomeWin counts toward the player's wins
	GameOutcomeWin GameOutcome = "win"

	// GameOutcomeLoss counts toward the player's losses
	GameOutcomeLoss GameOutcome = "loss"

	// GameOutcomeTie counts toward the player's ties
	GameOutcomeTie GameOutcome = "tie"
)

// UnknownPlayerName is the sentinel display name for players with no recorded games
const UnknownPlayerName = "Unknown"

// PlayerStats holds a player's cumulative duel record within one guild.
// GamesPlayed always equals Wins + Losses + Ties.
type PlayerStats struct {
	// Username is the last known display name of the player
	Username string `json:"username"`

	// Points is the running point total, signed and unbounded
	Points int `json:"points"`

	// Wins is the number of duels won
	Wins int `json:"wins"`

	// Losses is the number of duels lost
	Losses int `json:"losses"`

	// Ties is the number of duels tied
	Ties int `json:"ties"`

	// GamesPlayed is the total number of resolved duels
	GamesPlayed int `json:"games_played"`
}

// NewPlayerStats returns a zeroed record with the sentinel name
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{Username: UnknownPlayerName}
}

// ScoreSnapshot is the full persisted score state, keyed by guild ID then user ID
type ScoreSnapshot map[string]map[string]*PlayerStats

// Clone returns a deep copy of the snapshot
func (s ScoreSnapshot) Clone() ScoreSnapshot {
	out := make(ScoreSnapshot, len(s))
	for guildID, players := range s {
		out[guildID] = make(map[string]*PlayerStats, len(players))
		for userID, stats := range players {
			copied := *stats
			out[guildID][userID] = &copied
		}
	}
	return out
}
