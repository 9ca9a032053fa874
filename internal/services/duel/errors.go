package duel

import (
	"errors"
	"fmt"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilRegistry      = errors.New("registry cannot be nil")
	ErrNilStats         = errors.New("stats service cannot be nil")
	ErrNilNotifier      = errors.New("notifier cannot be nil")
	ErrNilRoleFlipper   = errors.New("role flipper cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")

	// ErrSelfChallenge is returned when a user challenges themselves
	ErrSelfChallenge = errors.New("cannot duel yourself")

	// ErrAlreadyEngaged is returned when either party already has an active duel
	ErrAlreadyEngaged = errors.New("user is already in a duel or pending challenge")

	// ErrNoPendingChallenge is returned when the command does not match the
	// caller's current state (wrong side, wrong state, or no record at all)
	ErrNoPendingChallenge = errors.New("no valid pending challenge for this action")

	// ErrStaleChallenge is returned when the mirrored record is missing or
	// inconsistent; any orphaned record has been cleaned up silently
	ErrStaleChallenge = errors.New("challenge is no longer valid")

	// ErrPrivateRefused is returned by a Notifier when the recipient's
	// private channel is closed to the bot
	ErrPrivateRefused = errors.New("recipient does not accept direct messages")
)

// FaultKind classifies why a duel run was aborted
type FaultKind string

const (
	// FaultDeliveryFailed indicates a message could not be delivered
	FaultDeliveryFailed FaultKind = "delivery_failed"

	// FaultPrivateRefused indicates a participant's DMs are closed
	FaultPrivateRefused FaultKind = "private_refused"

	// FaultTimeout indicates a participant's answer window elapsed
	FaultTimeout FaultKind = "timeout"

	// FaultInternal indicates results were incomplete with no reported cause
	FaultInternal FaultKind = "internal"
)

// Fault is a duel abort carrying the participant at fault, if any. The
// cleanup routine matches on Kind to phrase the cancellation notices.
type Fault struct {
	// Kind classifies the abort
	Kind FaultKind

	// UserID is the participant at fault, empty for internal faults
	UserID string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (f *Fault) Error() string {
	if f.UserID != "" {
		return fmt.Sprintf("duel fault %s (user %s): %v", f.Kind, f.UserID, f.Err)
	}
	return fmt.Sprintf("duel fault %s: %v", f.Kind, f.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As
func (f *Fault) Unwrap() error {
	return f.Err
}
