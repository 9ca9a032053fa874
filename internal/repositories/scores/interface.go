package scores

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kerchief/duelbot/internal/repositories/scores Repository

// Repository defines the interface for score snapshot persistence. The whole
// snapshot is loaded once at startup and overwritten on every update.
type Repository interface {
	// Load retrieves the full score snapshot
	Load(ctx context.Context) (*LoadOutput, error)

	// Save overwrites the persisted snapshot
	Save(ctx context.Context, input *SaveInput) error
}
