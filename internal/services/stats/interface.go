package stats

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kerchief/duelbot/internal/services/stats Service

// Service defines the interface for player score tracking
type Service interface {
	// GetPlayerStats retrieves a player's record for a guild. Absent players
	// get a zeroed record with the sentinel name; no entry is created.
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// RecordResult applies one resolved duel to a player's record and
	// persists the whole store before returning
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)
}
