package session

// Phase is the position of a quiz session in its state machine:
//
//	NotStarted → Presenting ⇄ Reviewing → … → Complete
//
// Complete is terminal until Restart.
type Phase int

const (
	PhaseNotStarted Phase = iota // No session; waiting for Start
	PhasePresenting              // Clip shown, waiting for an answer or a give-up
	PhaseReviewing               // Verdict shown, waiting for Advance or Retreat
	PhaseComplete                // All items judged; Summary available
)

// String returns the phase name used in logs and errors.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePresenting:
		return "presenting"
	case PhaseReviewing:
		return "reviewing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Active reports whether an item is on screen.
func (p Phase) Active() bool {
	return p == PhasePresenting || p == PhaseReviewing
}
