package duel

import "context"

// Service defines the interface for duel lifecycle operations. Each method
// maps to one slash command trigger.
type Service interface {
	// Challenge registers a pending duel between two users and announces it
	Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error)

	// Accept confirms a pending challenge and starts the duel run. The
	// number-collection phase continues asynchronously after Accept returns.
	Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error)

	// Decline rejects a pending challenge on behalf of the challenged user
	Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error)

	// Drop withdraws a pending challenge on behalf of the challenger
	Drop(ctx context.Context, input *DropInput) (*DropOutput, error)

	// DrawRole performs a standalone random role draw
	DrawRole(ctx context.Context, input *DrawRoleInput) (*DrawRoleOutput, error)
}
