package models

// ChallengeState represents where a duel is in its lifecycle
type ChallengeState string

const (
	// ChallengeStatePendingAcceptance indicates a challenge is waiting on the opponent
	ChallengeStatePendingAcceptance ChallengeState = "pending_acceptance"

	// ChallengeStateAwaitingRoles indicates an accepted duel waiting on role assignment
	ChallengeStateAwaitingRoles ChallengeState = "awaiting_roles"

	// ChallengeStateAwaitingNumbers indicates a duel collecting secret numbers over DM
	ChallengeStateAwaitingNumbers ChallengeState = "awaiting_numbers"
)

// Role is one of the two asymmetric duel roles
type Role string

const (
	// RoleDropper drops the handkerchief
	RoleDropper Role = "Dropper"

	// RoleChecker tries to catch the dropper
	RoleChecker Role = "Checker"
)

// Participation tracks one user's side of an active duel. Records are always
// created and removed in mirrored pairs; a user holds at most one at a time.
type Participation struct {
	// Username is the participant's display name at challenge time
	Username string

	// OpponentID is the Discord user ID of the other participant
	OpponentID string

	// ChannelID is the channel the challenge was issued in
	ChannelID string

	// GuildID is the guild the duel is scoped to
	GuildID string

	// IsChallenger is true for the side that issued the challenge
	IsChallenger bool

	// State is the current lifecycle state of the duel
	State ChallengeState
}
