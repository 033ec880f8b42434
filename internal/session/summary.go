package session

import "math"

// Summary is the final result of a completed session.
type Summary struct {
	Score int
	Total int
}

// Percent returns the score as a whole percentage of the total, rounded
// half away from zero. Zero when there are no items.
func (s Summary) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Score) / float64(s.Total) * 100))
}
