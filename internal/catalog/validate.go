package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateItems performs all structural checks on the given items.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return &ValidationError{Problems: []string{"catalog has no pieces"}}
	}

	var errs []string
	seen := make(map[string]map[Key]bool)

	for i, it := range items {
		where := fmt.Sprintf("piece %d", i+1)
		if strings.TrimSpace(it.Composer) == "" {
			errs = append(errs, fmt.Sprintf("%s: composer is empty", where))
		}
		if strings.TrimSpace(it.Title) == "" {
			errs = append(errs, fmt.Sprintf("%s: title is empty", where))
		}
		if strings.TrimSpace(it.MediaRef) == "" {
			errs = append(errs, fmt.Sprintf("%s (%s): youtube_id is empty", where, it))
		}
		if strings.TrimSpace(it.Group) == "" {
			errs = append(errs, fmt.Sprintf("%s (%s): group is empty", where, it))
		}
		if it.StartOffset < 0 {
			errs = append(errs, fmt.Sprintf("%s (%s): start must not be negative, got %d", where, it, it.StartOffset))
		}

		// Duplicates within a group make selection ambiguous.
		keys := seen[it.Group]
		if keys == nil {
			keys = make(map[Key]bool)
			seen[it.Group] = keys
		}
		if keys[it.Key()] {
			errs = append(errs, fmt.Sprintf("duplicate piece %s in group %q", it, it.Group))
		}
		keys[it.Key()] = true
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
