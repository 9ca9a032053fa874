package duel

// Outcome classifies a resolved duel
type Outcome string

const (
	// OutcomeDropperWin means the dropper picked the strictly higher number
	OutcomeDropperWin Outcome = "dropper_win"

	// OutcomeCheckerWin means the checker picked the strictly higher number
	OutcomeCheckerWin Outcome = "checker_win"

	// OutcomeTie means both picked the same number
	OutcomeTie Outcome = "tie"
)

// Resolve compares the two secret choices and returns the outcome with the
// point deltas for the dropper and the checker, in that order. The higher
// number wins regardless of role.
//
// Margin rule: the winner always gains pointsPerWin. A dropper caught by a
// higher check additionally loses the margin between the two numbers; a
// checker who undershoots loses nothing. Ties change no points.
func Resolve(dropperChoice, checkerChoice, pointsPerWin int) (Outcome, int, int) {
	switch {
	case checkerChoice > dropperChoice:
		return OutcomeCheckerWin, -(checkerChoice - dropperChoice), pointsPerWin
	case dropperChoice > checkerChoice:
		return OutcomeDropperWin, pointsPerWin, 0
	default:
		return OutcomeTie, 0, 0
	}
}
