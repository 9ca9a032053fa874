package duel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kerchief/duelbot/internal/models"
)

// choiceResult is one participant's report from the collection phase. Every
// launched wait reports exactly once, success or not.
type choiceResult struct {
	userID string
	value  int
	err    error
}

// collectChoices obtains one validated number from each participant over
// their private channels. The two waits run concurrently with independent
// timeout windows; the first fault cancels the other wait, but the join
// always drains both reports before returning. Returns the dropper's and
// checker's choices, in that order.
func (s *service) collectChoices(ctx context.Context, dropper, checker participant) (int, int, error) {
	collectCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan choiceResult, 2)
	go s.awaitChoice(collectCtx, dropper, models.RoleDropper, checker, results)
	go s.awaitChoice(collectCtx, checker, models.RoleChecker, dropper, results)

	collected := make(map[string]int, 2)
	var firstFault error

	for i := 0; i < 2; i++ {
		res := <-results
		switch {
		case res.err == nil:
			collected[res.userID] = res.value
		case errors.Is(res.err, context.Canceled):
			// The other wait was cancelled after the first fault; its
			// report only matters for the join count.
		case firstFault == nil:
			firstFault = res.err
			cancel()
		}
	}

	if firstFault != nil {
		return 0, 0, firstFault
	}

	dropperChoice, okDropper := collected[dropper.id]
	checkerChoice, okChecker := collected[checker.id]
	if !okDropper || !okChecker {
		return 0, 0, &Fault{
			Kind: FaultInternal,
			Err:  fmt.Errorf("collected results incomplete: dropper=%t checker=%t", okDropper, okChecker),
		}
	}

	return dropperChoice, checkerChoice, nil
}

// awaitChoice prompts one participant over DM and waits for their first valid
// number. The watch opens before the prompt so an instant reply cannot be
// missed; the timeout window opens only once the prompt is delivered.
func (s *service) awaitChoice(ctx context.Context, p participant, role models.Role, opponent participant, results chan<- choiceResult) {
	msgs, stop, err := s.notifier.WatchPrivate(ctx, p.id)
	if err != nil {
		results <- choiceResult{userID: p.id, err: &Fault{Kind: FaultDeliveryFailed, UserID: p.id, Err: err}}
		return
	}
	defer stop()

	prompt := fmt.Sprintf("You are the **%s**! Pick a number (1-%d) against %s. You have %.0f seconds.",
		role, s.maxNumber, opponent.name, s.responseTimeout.Seconds())
	if err := s.notifier.SendPrivate(ctx, p.id, prompt); err != nil {
		kind := FaultDeliveryFailed
		if errors.Is(err, ErrPrivateRefused) {
			kind = FaultPrivateRefused
		}
		results <- choiceResult{userID: p.id, err: &Fault{Kind: kind, UserID: p.id, Err: err}}
		return
	}

	timer := time.NewTimer(s.responseTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			results <- choiceResult{userID: p.id, err: ctx.Err()}
			return
		case <-timer.C:
			// Best-effort nudge; the public cancellation follows from the join
			_ = s.notifier.SendPrivate(ctx, p.id, "You took too long to respond! Duel cancelled.")
			results <- choiceResult{userID: p.id, err: &Fault{Kind: FaultTimeout, UserID: p.id}}
			return
		case msg, ok := <-msgs:
			if !ok {
				results <- choiceResult{userID: p.id, err: &Fault{
					Kind:   FaultInternal,
					UserID: p.id,
					Err:    errors.New("private message stream closed"),
				}}
				return
			}

			value, valid := parseChoice(msg, p.id, s.maxNumber)
			if !valid {
				// Not this participant's answer; keep waiting
				continue
			}

			results <- choiceResult{userID: p.id, value: value}
			return
		}
	}
}

// parseChoice validates one incoming message as the participant's answer
func parseChoice(msg IncomingMessage, userID string, maxNumber int) (int, bool) {
	if msg.AuthorID != userID {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(msg.Content))
	if err != nil {
		return 0, false
	}

	if value < 1 || value > maxNumber {
		return 0, false
	}

	return value, true
}
