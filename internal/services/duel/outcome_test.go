package duel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		dropperChoice int
		checkerChoice int
		wantOutcome   Outcome
		wantDropper   int
		wantChecker   int
	}{
		{
			name:          "checker wins and dropper loses the margin",
			dropperChoice: 25,
			checkerChoice: 40,
			wantOutcome:   OutcomeCheckerWin,
			wantDropper:   -15,
			wantChecker:   10,
		},
		{
			name:          "dropper wins flat",
			dropperChoice: 40,
			checkerChoice: 25,
			wantOutcome:   OutcomeDropperWin,
			wantDropper:   10,
			wantChecker:   0,
		},
		{
			name:          "tie changes nothing",
			dropperChoice: 30,
			checkerChoice: 30,
			wantOutcome:   OutcomeTie,
			wantDropper:   0,
			wantChecker:   0,
		},
		{
			name:          "margin of one",
			dropperChoice: 59,
			checkerChoice: 60,
			wantOutcome:   OutcomeCheckerWin,
			wantDropper:   -1,
			wantChecker:   10,
		},
		{
			name:          "extreme margin",
			dropperChoice: 1,
			checkerChoice: 60,
			wantOutcome:   OutcomeCheckerWin,
			wantDropper:   -59,
			wantChecker:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, dropperDelta, checkerDelta := Resolve(tt.dropperChoice, tt.checkerChoice, DefaultPointsPerWin)
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantDropper, dropperDelta)
			assert.Equal(t, tt.wantChecker, checkerDelta)
		})
	}
}

// Swapping both choices and role labels must mirror the winning side. Point
// deltas are deliberately role-dependent under the margin rule, so only the
// outcome label is symmetric.
func TestResolveOutcomeSymmetry(t *testing.T) {
	for dropper := 1; dropper <= DefaultMaxNumber; dropper++ {
		for checker := 1; checker <= DefaultMaxNumber; checker++ {
			outcome, _, _ := Resolve(dropper, checker, DefaultPointsPerWin)
			swapped, _, _ := Resolve(checker, dropper, DefaultPointsPerWin)

			switch outcome {
			case OutcomeDropperWin:
				assert.Equal(t, OutcomeCheckerWin, swapped, "dropper=%d checker=%d", dropper, checker)
			case OutcomeCheckerWin:
				assert.Equal(t, OutcomeDropperWin, swapped, "dropper=%d checker=%d", dropper, checker)
			case OutcomeTie:
				assert.Equal(t, OutcomeTie, swapped, "dropper=%d checker=%d", dropper, checker)
			}
		}
	}
}

// The winner always gains exactly the configured reward and the loser never
// gains points, for every valid pair of choices.
func TestResolveDeltaBounds(t *testing.T) {
	for dropper := 1; dropper <= DefaultMaxNumber; dropper++ {
		for checker := 1; checker <= DefaultMaxNumber; checker++ {
			outcome, dropperDelta, checkerDelta := Resolve(dropper, checker, DefaultPointsPerWin)

			switch outcome {
			case OutcomeDropperWin:
				assert.Equal(t, DefaultPointsPerWin, dropperDelta)
				assert.LessOrEqual(t, checkerDelta, 0)
			case OutcomeCheckerWin:
				assert.Equal(t, DefaultPointsPerWin, checkerDelta)
				assert.Equal(t, dropper-checker, dropperDelta)
				assert.Negative(t, dropperDelta)
			case OutcomeTie:
				assert.Zero(t, dropperDelta)
				assert.Zero(t, checkerDelta)
			}
		}
	}
}
