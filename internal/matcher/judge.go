package matcher

import (
	"strings"

	"github.com/abhisek/opusquiz/internal/catalog"
)

// Typo tolerance per field. Fixed for every item so grading stays
// comparable across the whole catalog.
const (
	ComposerThreshold = 2 // "Beethovan" for "Beethoven" is accepted
	TitleThreshold    = 3
)

// Feedback messages shown with a verdict.
const (
	MessageCorrect   = "Excellent work!"
	MessageIncorrect = "That wasn't quite right. The correct answer is shown above. Keep trying!"
	MessageGaveUp    = "Don't worry! Here's the correct answer. Keep practicing!"
)

// Verdict is the outcome of judging one answer attempt.
type Verdict struct {
	Correct bool

	// Reference is the item that was judged, captured at judging time.
	Reference catalog.Item

	// SubmittedComposer and SubmittedTitle hold the trimmed guesses.
	// Both are nil when the learner gave up.
	SubmittedComposer *string
	SubmittedTitle    *string

	Message string

	// GaveUp is true when no answer was submitted.
	GaveUp bool

	// Distances of the trimmed guesses from the reference, -1 after a give-up.
	ComposerDistance int
	TitleDistance    int
}

// Judge compares a composer/title guess against ref. Both fields must pass
// their thresholds independently; a perfect title cannot make up for a
// wrong composer.
func Judge(composer, title string, ref catalog.Item) Verdict {
	composer = strings.TrimSpace(composer)
	title = strings.TrimSpace(title)

	cd := EditDistance(composer, ref.Composer)
	td := EditDistance(title, ref.Title)
	correct := cd <= ComposerThreshold && td <= TitleThreshold

	msg := MessageIncorrect
	if correct {
		msg = MessageCorrect
	}

	return Verdict{
		Correct:           correct,
		Reference:         ref,
		SubmittedComposer: &composer,
		SubmittedTitle:    &title,
		Message:           msg,
		ComposerDistance:  cd,
		TitleDistance:     td,
	}
}

// GiveUp returns the verdict for a learner who revealed the answer without
// guessing.
func GiveUp(ref catalog.Item) Verdict {
	return Verdict{
		Correct:          false,
		Reference:        ref,
		Message:          MessageGaveUp,
		GaveUp:           true,
		ComposerDistance: -1,
		TitleDistance:    -1,
	}
}

// Answer returns the submitted guess formatted like an item, or "" after a
// give-up.
func (v Verdict) Answer() string {
	if v.SubmittedComposer == nil || v.SubmittedTitle == nil {
		return ""
	}
	return catalog.Item{Composer: *v.SubmittedComposer, Title: *v.SubmittedTitle}.String()
}
