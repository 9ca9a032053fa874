package duel

import (
	"time"

	"github.com/kerchief/duelbot/internal/coin"
	"github.com/kerchief/duelbot/internal/common/clock"
	"github.com/kerchief/duelbot/internal/common/uuid"
	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/registry"
	"github.com/kerchief/duelbot/internal/services/stats"
)

// Default tunables, matching the classic game rules
const (
	// DefaultPointsPerWin is awarded to the winner of a duel
	DefaultPointsPerWin = 10

	// DefaultMaxNumber is the upper bound of a valid secret choice
	DefaultMaxNumber = 60

	// DefaultResponseTimeout is each participant's answer window
	DefaultResponseTimeout = 30 * time.Second
)

// Config holds configuration for the duel service
type Config struct {
	// Registry tracks active duel participation
	Registry *registry.Registry

	// Stats records resolved duels
	Stats stats.Service

	// Notifier delivers public and private messages
	Notifier Notifier

	// Roles draws the Dropper/Checker assignment
	Roles coin.Flipper

	// Clock provides timestamps for logging
	Clock clock.Clock

	// UUIDGenerator labels each duel run for log correlation
	UUIDGenerator uuid.UUID

	// PointsPerWin awarded to the winner; defaults to DefaultPointsPerWin
	PointsPerWin int

	// MaxNumber is the largest valid choice; defaults to DefaultMaxNumber
	MaxNumber int

	// ResponseTimeout is each participant's independent answer window,
	// started when their prompt is delivered; defaults to DefaultResponseTimeout
	ResponseTimeout time.Duration
}

// ChallengeInput contains parameters for issuing a challenge
type ChallengeInput struct {
	// ChallengerID is the Discord user ID of the challenger
	ChallengerID string

	// ChallengerName is the challenger's display name
	ChallengerName string

	// OpponentID is the Discord user ID of the challenged user. The caller
	// must already have verified this is a distinct human user.
	OpponentID string

	// OpponentName is the opponent's display name
	OpponentName string

	// ChannelID is the channel the challenge was issued in
	ChannelID string

	// GuildID is the guild the duel is scoped to
	GuildID string
}

// ChallengeOutput contains the result of issuing a challenge
type ChallengeOutput struct {
	// OpponentID echoes the challenged user
	OpponentID string
}

// AcceptInput contains parameters for accepting a challenge
type AcceptInput struct {
	// AcceptorID is the Discord user ID of the challenged user
	AcceptorID string
}

// AcceptOutput contains the result of accepting a challenge
type AcceptOutput struct {
	// DuelID identifies the started duel run in logs
	DuelID string

	// ChallengerID is the user whose challenge was accepted
	ChallengerID string
}

// DeclineInput contains parameters for declining a challenge
type DeclineInput struct {
	// DeclinerID is the Discord user ID of the challenged user
	DeclinerID string
}

// DeclineOutput contains the result of declining a challenge
type DeclineOutput struct {
	// ChallengerID is the user whose challenge was declined
	ChallengerID string
}

// DropInput contains parameters for withdrawing a challenge
type DropInput struct {
	// ChallengerID is the Discord user ID of the challenger
	ChallengerID string
}

// DropOutput contains the result of withdrawing a challenge
type DropOutput struct {
	// OpponentID is the user who was challenged
	OpponentID string
}

// DrawRoleInput contains parameters for a standalone role draw
type DrawRoleInput struct{}

// DrawRoleOutput contains the result of a standalone role draw
type DrawRoleOutput struct {
	// Role is the randomly drawn role
	Role models.Role
}
