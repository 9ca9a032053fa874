// Package registry tracks which users are inside a duel. Records exist in
// mirrored pairs and every mutation applies to the pair under one lock hold,
// so no caller can ever observe a half-created or half-removed duel.
package registry

import (
	"errors"
	"sync"

	"github.com/kerchief/duelbot/internal/models"
)

// ErrAlreadyEngaged is returned when a user already has a participation record
var ErrAlreadyEngaged = errors.New("user is already in a duel or pending challenge")

// Registry is the in-memory map of user ID to participation record
type Registry struct {
	mu      sync.Mutex
	records map[string]*models.Participation
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		records: make(map[string]*models.Participation),
	}
}

// CreatePairInput contains parameters for registering a new challenge
type CreatePairInput struct {
	// ChallengerID is the user issuing the challenge
	ChallengerID string

	// ChallengerName is the challenger's display name
	ChallengerName string

	// OpponentID is the user being challenged
	OpponentID string

	// OpponentName is the opponent's display name
	OpponentName string

	// ChannelID is the channel the challenge was issued in
	ChannelID string

	// GuildID is the guild the duel is scoped to
	GuildID string
}

// CreatePair inserts mirrored pending records for both participants. It fails
// with ErrAlreadyEngaged if either user already holds a record, leaving the
// registry untouched.
func (r *Registry) CreatePair(input *CreatePairInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[input.ChallengerID]; ok {
		return ErrAlreadyEngaged
	}
	if _, ok := r.records[input.OpponentID]; ok {
		return ErrAlreadyEngaged
	}

	r.records[input.ChallengerID] = &models.Participation{
		Username:     input.ChallengerName,
		OpponentID:   input.OpponentID,
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		IsChallenger: true,
		State:        models.ChallengeStatePendingAcceptance,
	}
	r.records[input.OpponentID] = &models.Participation{
		Username:     input.OpponentName,
		OpponentID:   input.ChallengerID,
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		IsChallenger: false,
		State:        models.ChallengeStatePendingAcceptance,
	}

	return nil
}

// Get returns a copy of the user's participation record, if any
func (r *Registry) Get(userID string) (*models.Participation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return nil, false
	}

	copied := *record
	return &copied, true
}

// Transition advances one user's record to the given state. The caller must
// have validated the transition; it returns false if the record is gone.
func (r *Registry) Transition(userID string, state models.ChallengeState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return false
	}

	record.State = state
	return true
}

// TransitionPair advances both sides of a duel in one step. It returns false
// without mutating anything unless both records exist and mirror each other.
func (r *Registry) TransitionPair(userA, userB string, state models.ChallengeState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	recordA, okA := r.records[userA]
	recordB, okB := r.records[userB]
	if !okA || !okB || recordA.OpponentID != userB || recordB.OpponentID != userA {
		return false
	}

	recordA.State = state
	recordB.State = state
	return true
}

// RemovePair deletes both participants' records. Idempotent: missing records
// are not an error.
func (r *Registry) RemovePair(userA, userB string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, userA)
	delete(r.records, userB)
}
