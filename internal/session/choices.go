package session

import (
	"fmt"

	"github.com/abhisek/opusquiz/internal/catalog"
)

// Mode selects how the learner answers.
type Mode string

const (
	ModeWrite  Mode = "write"  // free-text composer and title
	ModeChoice Mode = "choice" // pick one of several pieces
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWrite, ModeChoice:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q: must be %s or %s", s, ModeWrite, ModeChoice)
}

// DefaultChoiceCount is the number of options offered in choice mode.
const DefaultChoiceCount = 4

// Choice is one multiple-choice option.
type Choice struct {
	Composer string
	Title    string
}

func (c Choice) String() string {
	return catalog.Item{Composer: c.Composer, Title: c.Title}.String()
}

// BuildChoices returns up to n distinct options for ref: ref itself plus
// distractors drawn from pool, in shuffled order. ref appears exactly once.
// When the pool is too small fewer than n options are returned.
func BuildChoices(ref catalog.Item, pool []catalog.Item, n int, s Shuffler) []Choice {
	if n < 1 {
		n = 1
	}

	seen := map[catalog.Key]bool{ref.Key(): true}
	var distractors []Choice
	for _, it := range pool {
		if seen[it.Key()] {
			continue
		}
		seen[it.Key()] = true
		distractors = append(distractors, Choice{Composer: it.Composer, Title: it.Title})
	}

	s.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > n-1 {
		distractors = distractors[:n-1]
	}

	out := append([]Choice{{Composer: ref.Composer, Title: ref.Title}}, distractors...)
	s.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
