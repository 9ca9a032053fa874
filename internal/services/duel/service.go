package duel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kerchief/duelbot/internal/coin"
	"github.com/kerchief/duelbot/internal/common/clock"
	"github.com/kerchief/duelbot/internal/common/uuid"
	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/registry"
	"github.com/kerchief/duelbot/internal/services/stats"
)

// participant is one side of a running duel
type participant struct {
	id   string
	name string
}

func (p participant) mention() string {
	return fmt.Sprintf("<@%s>", p.id)
}

// service implements the Service interface
type service struct {
	registry *registry.Registry
	stats    stats.Service
	notifier Notifier
	roles    coin.Flipper
	clock    clock.Clock
	uuidGen  uuid.UUID

	pointsPerWin    int
	maxNumber       int
	responseTimeout time.Duration

	// round numbers resolved duels across the process lifetime
	round atomic.Int64
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Stats == nil {
		return nil, ErrNilStats
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Roles == nil {
		return nil, ErrNilRoleFlipper
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		registry:        cfg.Registry,
		stats:           cfg.Stats,
		notifier:        cfg.Notifier,
		roles:           cfg.Roles,
		clock:           cfg.Clock,
		uuidGen:         cfg.UUIDGenerator,
		pointsPerWin:    cfg.PointsPerWin,
		maxNumber:       cfg.MaxNumber,
		responseTimeout: cfg.ResponseTimeout,
	}

	if s.pointsPerWin == 0 {
		s.pointsPerWin = DefaultPointsPerWin
	}
	if s.maxNumber == 0 {
		s.maxNumber = DefaultMaxNumber
	}
	if s.responseTimeout == 0 {
		s.responseTimeout = DefaultResponseTimeout
	}

	return s, nil
}

// Challenge registers a pending duel and announces it in the channel
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChallengerID == input.OpponentID {
		return nil, ErrSelfChallenge
	}

	err := s.registry.CreatePair(&registry.CreatePairInput{
		ChallengerID:   input.ChallengerID,
		ChallengerName: input.ChallengerName,
		OpponentID:     input.OpponentID,
		OpponentName:   input.OpponentName,
		ChannelID:      input.ChannelID,
		GuildID:        input.GuildID,
	})
	if err != nil {
		if errors.Is(err, registry.ErrAlreadyEngaged) {
			return nil, ErrAlreadyEngaged
		}
		return nil, err
	}

	announcement := fmt.Sprintf("<@%s> challenged <@%s>!\n<@%s>: `/accept` or `/decline`.\n<@%s>: `/drop` to cancel.",
		input.ChallengerID, input.OpponentID, input.OpponentID, input.ChallengerID)
	if err := s.notifier.SendPublic(ctx, input.ChannelID, announcement); err != nil {
		// The challenge never became visible; tear it down
		s.registry.RemovePair(input.ChallengerID, input.OpponentID)
		return nil, fmt.Errorf("failed to announce challenge: %w", err)
	}

	return &ChallengeOutput{OpponentID: input.OpponentID}, nil
}

// Accept confirms a pending challenge and launches the duel run
func (s *service) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, ok := s.registry.Get(input.AcceptorID)
	if !ok || record.IsChallenger || record.State != models.ChallengeStatePendingAcceptance {
		return nil, ErrNoPendingChallenge
	}

	challengerID := record.OpponentID
	mirror, ok := s.registry.Get(challengerID)
	if !ok || mirror.State != models.ChallengeStatePendingAcceptance || mirror.OpponentID != input.AcceptorID {
		// The challenger side vanished or points elsewhere; clean up whatever is left
		s.registry.RemovePair(input.AcceptorID, challengerID)
		return nil, ErrStaleChallenge
	}

	if !s.registry.TransitionPair(input.AcceptorID, challengerID, models.ChallengeStateAwaitingRoles) {
		s.registry.RemovePair(input.AcceptorID, challengerID)
		return nil, ErrStaleChallenge
	}

	acceptor := participant{id: input.AcceptorID, name: record.Username}
	challenger := participant{id: challengerID, name: mirror.Username}

	announcement := fmt.Sprintf("%s accepted the duel vs %s! Game on!", acceptor.mention(), challenger.mention())
	if err := s.notifier.SendPublic(ctx, record.ChannelID, announcement); err != nil {
		s.abortDuel(ctx, challenger, acceptor, record.ChannelID,
			"",
			"The duel could not be announced. Duel cancelled.",
			"The duel could not be announced. Duel cancelled.")
		return nil, fmt.Errorf("failed to announce acceptance: %w", err)
	}

	duelID := s.uuidGen.NewUUID()

	// The run owns its own lifetime; it must not die with the command context
	go s.runDuel(context.Background(), duelID, challenger, acceptor, record.ChannelID, record.GuildID)

	return &AcceptOutput{
		DuelID:       duelID,
		ChallengerID: challengerID,
	}, nil
}

// Decline rejects a pending challenge
func (s *service) Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, ok := s.registry.Get(input.DeclinerID)
	if !ok || record.IsChallenger || record.State != models.ChallengeStatePendingAcceptance {
		return nil, ErrNoPendingChallenge
	}

	challengerID := record.OpponentID
	notice := fmt.Sprintf("<@%s> declined the duel from <@%s>.", input.DeclinerID, challengerID)
	if err := s.notifier.SendPublic(ctx, record.ChannelID, notice); err != nil {
		log.Printf("Failed to announce decline in channel %s: %v", record.ChannelID, err)
	}
	if err := s.notifier.SendPrivate(ctx, challengerID, fmt.Sprintf("<@%s> declined your challenge.", input.DeclinerID)); err != nil {
		log.Printf("Failed to DM challenger %s about decline: %v", challengerID, err)
	}

	s.registry.RemovePair(input.DeclinerID, challengerID)

	return &DeclineOutput{ChallengerID: challengerID}, nil
}

// Drop withdraws a pending challenge
func (s *service) Drop(ctx context.Context, input *DropInput) (*DropOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, ok := s.registry.Get(input.ChallengerID)
	if !ok || !record.IsChallenger || record.State != models.ChallengeStatePendingAcceptance {
		return nil, ErrNoPendingChallenge
	}

	opponentID := record.OpponentID
	notice := fmt.Sprintf("<@%s> dropped their challenge to <@%s>.", input.ChallengerID, opponentID)
	if err := s.notifier.SendPublic(ctx, record.ChannelID, notice); err != nil {
		log.Printf("Failed to announce drop in channel %s: %v", record.ChannelID, err)
	}
	if err := s.notifier.SendPrivate(ctx, opponentID, fmt.Sprintf("<@%s> dropped their challenge to you.", input.ChallengerID)); err != nil {
		log.Printf("Failed to DM opponent %s about drop: %v", opponentID, err)
	}

	s.registry.RemovePair(input.ChallengerID, opponentID)

	return &DropOutput{OpponentID: opponentID}, nil
}

// DrawRole performs a standalone random role draw
func (s *service) DrawRole(_ context.Context, _ *DrawRoleInput) (*DrawRoleOutput, error) {
	return &DrawRoleOutput{Role: s.roles.DrawRole()}, nil
}

// runDuel drives one accepted duel to completion: role draw, announcement,
// concurrent number collection, resolution, scoring, and result broadcast.
// Runs on its own goroutine; never blocks other duels.
func (s *service) runDuel(ctx context.Context, duelID string, challenger, acceptor participant, channelID, guildID string) {
	started := s.clock.Now()
	log.Printf("[duel %s] starting: %s vs %s in guild %s", duelID, challenger.id, acceptor.id, guildID)

	// Defensive re-check: both records must still mirror each other
	challengerRec, okA := s.registry.Get(challenger.id)
	acceptorRec, okB := s.registry.Get(acceptor.id)
	if !okA || !okB ||
		challengerRec.State != models.ChallengeStateAwaitingRoles ||
		acceptorRec.State != models.ChallengeStateAwaitingRoles ||
		challengerRec.OpponentID != acceptor.id || acceptorRec.OpponentID != challenger.id {
		log.Printf("[duel %s] participation records inconsistent at start, cancelling", duelID)
		s.abortDuel(ctx, challenger, acceptor, channelID, "Critical duel tracking error. Game cancelled.", "", "")
		return
	}

	// Uniform 50/50 draw decides which side drops
	dropper, checker := challenger, acceptor
	if s.roles.DrawRole() == models.RoleChecker {
		dropper, checker = acceptor, challenger
	}
	log.Printf("[duel %s] roles: dropper=%s checker=%s", duelID, dropper.id, checker.id)

	if !s.registry.TransitionPair(challenger.id, acceptor.id, models.ChallengeStateAwaitingNumbers) {
		log.Printf("[duel %s] records vanished before number collection, cancelling", duelID)
		s.abortDuel(ctx, challenger, acceptor, channelID, "Critical duel tracking error. Game cancelled.", "", "")
		return
	}

	roleAnnouncement := fmt.Sprintf("%s is the Dropper, %s is the Checker! Dropper, drop the handkerchief!",
		dropper.mention(), checker.mention())
	if err := s.notifier.SendPublic(ctx, channelID, roleAnnouncement); err != nil {
		log.Printf("[duel %s] failed to announce roles: %v", duelID, err)
		reason := "Could not announce the roles. Duel cancelled."
		s.abortDuel(ctx, challenger, acceptor, channelID, reason, reason, reason)
		return
	}

	dropperChoice, checkerChoice, err := s.collectChoices(ctx, dropper, checker)
	if err != nil {
		s.abortCollection(ctx, duelID, challenger, acceptor, channelID, err)
		return
	}

	s.resolveDuel(ctx, duelID, dropper, checker, dropperChoice, checkerChoice, channelID, guildID)
	s.registry.RemovePair(challenger.id, acceptor.id)
	log.Printf("[duel %s] finished in %s", duelID, s.clock.Now().Sub(started))
}

// abortCollection phrases the cancellation for a collection fault and funnels
// into the common cleanup
func (s *service) abortCollection(ctx context.Context, duelID string, challenger, acceptor participant, channelID string, err error) {
	reason := "Something went wrong during number collection."

	var fault *Fault
	if errors.As(err, &fault) {
		switch fault.Kind {
		case FaultPrivateRefused:
			reason = fmt.Sprintf("Could not DM <@%s> (DMs disabled).", fault.UserID)
		case FaultDeliveryFailed:
			reason = fmt.Sprintf("Could not DM <@%s>.", fault.UserID)
		case FaultTimeout:
			reason = fmt.Sprintf("<@%s> timed out.", fault.UserID)
		case FaultInternal:
			log.Printf("[duel %s] internal consistency fault: %v", duelID, fault.Err)
			reason = "An unexpected game error occurred."
		}
	} else {
		log.Printf("[duel %s] unexpected collection error: %v", duelID, err)
	}

	s.abortDuel(ctx, challenger, acceptor, channelID, reason+" Duel cancelled.", "", "")
}

// resolveDuel scores the collected choices and broadcasts the result
func (s *service) resolveDuel(ctx context.Context, duelID string, dropper, checker participant, dropperChoice, checkerChoice int, channelID, guildID string) {
	outcome, dropperDelta, checkerDelta := Resolve(dropperChoice, checkerChoice, s.pointsPerWin)

	var resultText string
	dropperOutcome, checkerOutcome := models.GameOutcomeTie, models.GameOutcomeTie
	switch outcome {
	case OutcomeCheckerWin:
		dropperOutcome, checkerOutcome = models.GameOutcomeLoss, models.GameOutcomeWin
		resultText = fmt.Sprintf("Successful high check! %s caught %s, who loses %d points.",
			checker.mention(), dropper.mention(), -dropperDelta)
	case OutcomeDropperWin:
		dropperOutcome, checkerOutcome = models.GameOutcomeWin, models.GameOutcomeLoss
		resultText = fmt.Sprintf("Dropper outsmarted Checker! %s successfully dropped.", dropper.mention())
	default:
		resultText = "It's a tie! Numbers were equal."
	}

	scoresSaved := true
	dropperTotal := s.recordResult(ctx, duelID, guildID, dropper, dropperOutcome, dropperDelta, &scoresSaved)
	checkerTotal := s.recordResult(ctx, duelID, guildID, checker, checkerOutcome, checkerDelta, &scoresSaved)

	round := s.round.Add(1)
	lines := []string{
		"==== Drop The Handkerchief ====",
		fmt.Sprintf("Round %d", round),
		fmt.Sprintf("%s dropped: %d", dropper.mention(), dropperChoice),
		fmt.Sprintf("%s checked: %d", checker.mention(), checkerChoice),
		fmt.Sprintf("**RESULT: %s**", resultText),
		fmt.Sprintf("%s (total: %d) | %s (total: %d)", dropper.mention(), dropperTotal, checker.mention(), checkerTotal),
	}
	if !scoresSaved {
		lines = append(lines, "Warning: scores could not be saved.")
	}

	if err := s.notifier.SendPublic(ctx, channelID, strings.Join(lines, "\n")); err != nil {
		log.Printf("[duel %s] failed to send result to channel %s: %v", duelID, channelID, err)
		// Fall back to DMs so the players still learn the outcome
		fallback := fmt.Sprintf("Game result: %s", resultText)
		if err := s.notifier.SendPrivate(ctx, dropper.id, fmt.Sprintf("%s Your total points: %d", fallback, dropperTotal)); err != nil {
			log.Printf("[duel %s] result DM to %s failed: %v", duelID, dropper.id, err)
		}
		if err := s.notifier.SendPrivate(ctx, checker.id, fmt.Sprintf("%s Your total points: %d", fallback, checkerTotal)); err != nil {
			log.Printf("[duel %s] result DM to %s failed: %v", duelID, checker.id, err)
		}
	}
}

// recordResult applies one player's outcome and returns their new total
func (s *service) recordResult(ctx context.Context, duelID, guildID string, p participant, outcome models.GameOutcome, delta int, saved *bool) int {
	output, err := s.stats.RecordResult(ctx, &stats.RecordResultInput{
		GuildID:     guildID,
		UserID:      p.id,
		Username:    p.name,
		Outcome:     outcome,
		PointsDelta: delta,
	})
	if err != nil {
		// The stats service already retried once; announce anyway
		log.Printf("[duel %s] failed to record result for %s: %v", duelID, p.id, err)
		*saved = false
		return 0
	}
	return output.Stats.Points
}

// abortDuel is the single funnel for every cancellation path: best-effort
// notices, then unconditional pair removal. Notification failures here are
// logged and swallowed, never propagated.
func (s *service) abortDuel(ctx context.Context, userA, userB participant, channelID, publicReason, dmReasonA, dmReasonB string) {
	if publicReason != "" {
		if err := s.notifier.SendPublic(ctx, channelID, publicReason); err != nil {
			log.Printf("Failed to send cancellation notice to channel %s: %v", channelID, err)
		}
	}
	if dmReasonA != "" {
		if err := s.notifier.SendPrivate(ctx, userA.id, dmReasonA); err != nil {
			log.Printf("Failed to send cancellation DM to %s: %v", userA.id, err)
		}
	}
	if dmReasonB != "" {
		if err := s.notifier.SendPrivate(ctx, userB.id, dmReasonB); err != nil {
			log.Printf("Failed to send cancellation DM to %s: %v", userB.id, err)
		}
	}

	s.registry.RemovePair(userA.id, userB.id)
}
