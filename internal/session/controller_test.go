package session

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/matcher"
)

// identityShuffler leaves the order untouched.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler reverses the order.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{Composer: "Bach", Title: "Air", MediaRef: "a", Group: "Week 1"},
		{Composer: "Mozart", Title: "Requiem", MediaRef: "b", Group: "Week 1"},
		{Composer: "Vivaldi", Title: "Spring", MediaRef: "c", Group: "Week 2"},
	}
}

func testController(t *testing.T, items []catalog.Item) *Controller {
	t.Helper()
	c := New(WithShuffler(identityShuffler{}))
	if err := c.Start(items); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

func TestNew_NotStarted(t *testing.T) {
	c := New()
	if c.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %s, want not-started", c.Phase())
	}
	if c.ID() != "" {
		t.Errorf("ID = %q, want empty", c.ID())
	}
	if cur, total := c.Progress(); cur != 0 || total != 0 {
		t.Errorf("Progress = %d/%d, want 0/0", cur, total)
	}
}

func TestStart_EmptyItems(t *testing.T) {
	c := New(WithShuffler(identityShuffler{}))
	err := c.Start(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Start(nil) error = %v, want ErrInvalidInput", err)
	}
	if c.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %s, want not-started (no partial session)", c.Phase())
	}
}

func TestStart_Initializes(t *testing.T) {
	c := testController(t, testItems())

	if c.Phase() != PhasePresenting {
		t.Errorf("Phase = %s, want presenting", c.Phase())
	}
	if c.Position() != 0 {
		t.Errorf("Position = %d, want 0", c.Position())
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
	if c.LastVerdict() != nil {
		t.Error("expected no verdict after Start")
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if c.ID() == "" {
		t.Error("expected a session ID after Start")
	}
}

func TestStart_UsesInjectedShuffler(t *testing.T) {
	c := New(WithShuffler(reverseShuffler{}))
	items := testItems()
	if err := c.Start(items); err != nil {
		t.Fatalf("Start: %v", err)
	}

	got := c.Items()
	if got[0].Composer != "Vivaldi" || got[2].Composer != "Bach" {
		t.Errorf("order = %v, want reversed", got)
	}
	if items[0].Composer != "Bach" {
		t.Error("Start must not reorder the caller's slice")
	}
}

func TestStart_SeededShuffleIsPermutation(t *testing.T) {
	items := testItems()
	a := New(WithShuffler(NewShuffler(7)))
	b := New(WithShuffler(NewShuffler(7)))
	if err := a.Start(items); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(items); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(a.Items(), b.Items()) {
		t.Error("same seed should give the same order")
	}

	got := a.Items()
	for _, it := range items {
		if !slices.Contains(got, it) {
			t.Errorf("shuffled items missing %s", it)
		}
	}
	if len(got) != len(items) {
		t.Errorf("len = %d, want %d", len(got), len(items))
	}
}

func TestStart_DiscardsPriorSession(t *testing.T) {
	c := testController(t, testItems())
	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	firstID := c.ID()

	if err := c.Start(testItems()[:1]); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 0 || c.Position() != 0 || c.LastVerdict() != nil {
		t.Errorf("residue from prior session: score=%d position=%d verdict=%v",
			c.Score(), c.Position(), c.LastVerdict())
	}
	if c.ID() == firstID {
		t.Error("expected a fresh session ID")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestSubmitAnswer_Correct(t *testing.T) {
	c := testController(t, testItems())

	v, err := c.SubmitAnswer("bach ", "Aire")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !v.Correct {
		t.Error("expected correct verdict")
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, want 1", c.Score())
	}
	if c.Phase() != PhaseReviewing {
		t.Errorf("Phase = %s, want reviewing", c.Phase())
	}
	last := c.LastVerdict()
	if last == nil || last.Reference.Composer != "Bach" {
		t.Errorf("LastVerdict = %+v, want verdict for Bach", last)
	}
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	c := testController(t, testItems())

	v, err := c.SubmitAnswer("Handel", "Air")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if v.Correct {
		t.Error("expected incorrect verdict")
	}
	if v.Message != matcher.MessageIncorrect {
		t.Errorf("Message = %q", v.Message)
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
	if c.Phase() != PhaseReviewing {
		t.Errorf("Phase = %s, want reviewing", c.Phase())
	}
}

func TestSubmitAnswer_ForeclosesResubmission(t *testing.T) {
	c := testController(t, testItems())
	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}

	_, err := c.SubmitAnswer("Bach", "Air")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second SubmitAnswer error = %v, want ErrInvalidState", err)
	}
	var pe *PhaseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PhaseError, got %T", err)
	}
	if pe.Op != "submit answer" || pe.Phase != PhaseReviewing {
		t.Errorf("PhaseError = %+v", pe)
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, want 1 (no double scoring)", c.Score())
	}
}

func TestGiveUp(t *testing.T) {
	c := testController(t, testItems())

	v, err := c.GiveUp()
	if err != nil {
		t.Fatalf("GiveUp: %v", err)
	}
	if v.Correct || !v.GaveUp {
		t.Errorf("verdict = %+v, want incorrect give-up", v)
	}
	if v.SubmittedComposer != nil || v.SubmittedTitle != nil {
		t.Error("give-up verdict must not carry submitted strings")
	}
	if v.Message != matcher.MessageGaveUp {
		t.Errorf("Message = %q", v.Message)
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
	if c.Phase() != PhaseReviewing {
		t.Errorf("Phase = %s, want reviewing", c.Phase())
	}

	if _, err := c.GiveUp(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("GiveUp while reviewing error = %v, want ErrInvalidState", err)
	}
	if _, err := c.SubmitAnswer("Bach", "Air"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitAnswer after GiveUp error = %v, want ErrInvalidState", err)
	}
}

func TestAdvance(t *testing.T) {
	c := testController(t, testItems())

	if err := c.Advance(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Advance while presenting error = %v, want ErrInvalidState", err)
	}

	if _, err := c.GiveUp(); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if c.Position() != 1 {
		t.Errorf("Position = %d, want 1", c.Position())
	}
	if c.Phase() != PhasePresenting {
		t.Errorf("Phase = %s, want presenting", c.Phase())
	}
	if c.LastVerdict() != nil {
		t.Error("verdict should be cleared on advance")
	}
}

func TestAdvance_LastItemCompletes(t *testing.T) {
	c := testController(t, testItems())
	for i := 0; i < c.Len(); i++ {
		if _, err := c.GiveUp(); err != nil {
			t.Fatalf("item %d GiveUp: %v", i, err)
		}
		if err := c.Advance(); err != nil {
			t.Fatalf("item %d Advance: %v", i, err)
		}
	}

	if c.Phase() != PhaseComplete {
		t.Fatalf("Phase = %s, want complete", c.Phase())
	}
	if err := c.Advance(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Advance after complete error = %v, want ErrInvalidState", err)
	}
	if _, err := c.CurrentItem(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("CurrentItem after complete error = %v, want ErrInvalidState", err)
	}
}

func TestSingleItemSession(t *testing.T) {
	c := testController(t, testItems()[:1])

	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if c.Phase() != PhaseComplete {
		t.Fatalf("Phase = %s, want complete", c.Phase())
	}
	sum, err := c.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum != (Summary{Score: 1, Total: 1}) {
		t.Errorf("Summary = %+v, want 1/1", sum)
	}
}

func TestRetreat_AtFirstItemIsNoop(t *testing.T) {
	c := testController(t, testItems())

	if err := c.Retreat(); err != nil {
		t.Fatalf("Retreat at 0: %v", err)
	}
	if c.Position() != 0 || c.Phase() != PhasePresenting {
		t.Errorf("position=%d phase=%s, want 0/presenting", c.Position(), c.Phase())
	}

	// Also a no-op while reviewing the first item: the verdict stays.
	if _, err := c.GiveUp(); err != nil {
		t.Fatal(err)
	}
	if err := c.Retreat(); err != nil {
		t.Fatal(err)
	}
	if c.Phase() != PhaseReviewing || c.LastVerdict() == nil {
		t.Errorf("phase=%s verdict=%v, want reviewing with verdict", c.Phase(), c.LastVerdict())
	}
}

func TestRetreat_KeepsScore(t *testing.T) {
	c := testController(t, testItems())

	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitAnswer("Mozart", "Requiem"); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 2 {
		t.Fatalf("Score = %d, want 2", c.Score())
	}

	if err := c.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if c.Position() != 0 || c.Phase() != PhasePresenting {
		t.Errorf("position=%d phase=%s, want 0/presenting", c.Position(), c.Phase())
	}
	if c.LastVerdict() != nil {
		t.Error("verdict should be cleared on retreat")
	}
	if v := c.Judged(); v == nil || !v.Correct {
		t.Errorf("Judged = %v, want the earlier correct verdict", v)
	}
	if c.Score() != 2 {
		t.Errorf("Score = %d, want 2 (retreat never changes score)", c.Score())
	}
}

func TestRetreat_ThenAdvanceReturnsToSamePosition(t *testing.T) {
	c := testController(t, testItems())

	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := c.Retreat(); err != nil {
		t.Fatal(err)
	}

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance after Retreat: %v", err)
	}
	if c.Position() != 1 || c.Phase() != PhasePresenting {
		t.Errorf("position=%d phase=%s, want 1/presenting", c.Position(), c.Phase())
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, want 1", c.Score())
	}
	if c.Judged() != nil {
		t.Error("item 1 has not been judged yet")
	}

	// Item 1 was never judged, so going forward from it still needs a
	// judging action.
	if err := c.Advance(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Advance on unjudged item error = %v, want ErrInvalidState", err)
	}
}

func TestRetreat_RevisitedItemIsNotRejudged(t *testing.T) {
	c := testController(t, testItems())

	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := c.Retreat(); err != nil {
		t.Fatal(err)
	}

	_, err := c.SubmitAnswer("Bach", "Air")
	if !errors.Is(err, ErrAlreadyJudged) {
		t.Errorf("SubmitAnswer on revisited item error = %v, want ErrAlreadyJudged", err)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("ErrAlreadyJudged should wrap ErrInvalidState, got %v", err)
	}
	if _, err := c.GiveUp(); !errors.Is(err, ErrAlreadyJudged) {
		t.Errorf("GiveUp on revisited item error = %v, want ErrAlreadyJudged", err)
	}
	if c.Score() != 1 || c.Phase() != PhasePresenting {
		t.Errorf("score=%d phase=%s, want 1/presenting", c.Score(), c.Phase())
	}
}

func TestRetreat_GaveUpItemKeepsVerdict(t *testing.T) {
	c := testController(t, testItems())

	if _, err := c.GiveUp(); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := c.Retreat(); err != nil {
		t.Fatal(err)
	}
	if v := c.Judged(); v == nil || !v.GaveUp {
		t.Errorf("Judged = %v, want the give-up verdict", v)
	}
	if _, err := c.SubmitAnswer("Bach", "Air"); !errors.Is(err, ErrAlreadyJudged) {
		t.Errorf("SubmitAnswer after give-up error = %v, want ErrAlreadyJudged", err)
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
}

func TestRetreat_LoopingNeverExceedsTotal(t *testing.T) {
	items := testItems()[:2]
	c := testController(t, items)

	for i := 0; i < 4; i++ {
		if c.Judged() == nil {
			if _, err := c.SubmitAnswer(items[0].Composer, items[0].Title); err != nil {
				t.Fatal(err)
			}
		} else {
			_, _ = c.SubmitAnswer(items[0].Composer, items[0].Title)
		}
		if err := c.Advance(); err != nil {
			t.Fatalf("round %d Advance: %v", i, err)
		}
		if err := c.Retreat(); err != nil {
			t.Fatalf("round %d Retreat: %v", i, err)
		}
	}
	if c.Score() != 1 {
		t.Fatalf("Score = %d after looping, want 1", c.Score())
	}

	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitAnswer(items[1].Composer, items[1].Title); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	sum, err := c.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum != (Summary{Score: 2, Total: 2}) {
		t.Errorf("Summary = %+v, want 2/2", sum)
	}
}

func TestAdvance_FromRevisitedLastItemCompletes(t *testing.T) {
	c := testController(t, testItems()[:2])

	for i := 0; i < 2; i++ {
		if _, err := c.GiveUp(); err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			if err := c.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}
	// Reviewing the last item: step back, forward again, then finish.
	if err := c.Retreat(); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if c.Position() != 1 || c.Phase() != PhasePresenting {
		t.Fatalf("position=%d phase=%s, want 1/presenting", c.Position(), c.Phase())
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance from judged last item: %v", err)
	}
	if c.Phase() != PhaseComplete {
		t.Errorf("Phase = %s, want complete", c.Phase())
	}
}

func TestRetreat_NotStartedOrComplete(t *testing.T) {
	c := New(WithShuffler(identityShuffler{}))
	if err := c.Retreat(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Retreat before Start error = %v, want ErrInvalidState", err)
	}

	c = testController(t, testItems()[:1])
	_, _ = c.GiveUp()
	_ = c.Advance()
	if err := c.Retreat(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Retreat after complete error = %v, want ErrInvalidState", err)
	}
}

func TestPositionInvariant(t *testing.T) {
	items := testItems()
	c := testController(t, items)
	n := len(items)

	// Alternate forward and backward moves until the session completes.
	for step := 0; c.Phase() != PhaseComplete && step < 100; step++ {
		if c.Position() < 0 || c.Position() >= n {
			t.Fatalf("step %d: position %d out of range", step, c.Position())
		}
		if c.Score() > n {
			t.Fatalf("step %d: score %d exceeds %d items", step, c.Score(), n)
		}
		switch {
		case c.Phase() == PhasePresenting && step%4 == 2:
			if err := c.Retreat(); err != nil {
				t.Fatal(err)
			}
		case c.Phase() == PhasePresenting && c.Judged() != nil:
			if err := c.Advance(); err != nil {
				t.Fatal(err)
			}
		case c.Phase() == PhasePresenting:
			if _, err := c.GiveUp(); err != nil {
				t.Fatal(err)
			}
		case c.Phase() == PhaseReviewing:
			if err := c.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if c.Phase() != PhaseComplete {
		t.Fatal("session did not complete")
	}
}

func TestCurrentItem(t *testing.T) {
	c := New(WithShuffler(identityShuffler{}))
	if _, err := c.CurrentItem(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("CurrentItem before Start error = %v, want ErrInvalidState", err)
	}

	c = testController(t, testItems())
	it, err := c.CurrentItem()
	if err != nil {
		t.Fatal(err)
	}
	if it.Composer != "Bach" {
		t.Errorf("CurrentItem = %s, want Bach", it)
	}

	_, _ = c.GiveUp()
	it, err = c.CurrentItem()
	if err != nil {
		t.Fatalf("CurrentItem while reviewing: %v", err)
	}
	if it.Composer != "Bach" {
		t.Errorf("CurrentItem = %s, want Bach", it)
	}
}

func TestSummary_OnlyWhenComplete(t *testing.T) {
	c := testController(t, testItems())
	if _, err := c.Summary(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Summary while presenting error = %v, want ErrInvalidState", err)
	}
}

func TestSummary_CountsCorrectAnswers(t *testing.T) {
	items := testItems()
	c := testController(t, items)

	// Answer 0 and 2 correctly, 1 wrong.
	answers := [][2]string{
		{"Bach", "Air"},
		{"Brahms", "Lullaby"},
		{"Vivaldi", "Sprng"},
	}
	for i, a := range answers {
		if _, err := c.SubmitAnswer(a[0], a[1]); err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if err := c.Advance(); err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
	}

	sum, err := c.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Score != 2 || sum.Total != 3 {
		t.Errorf("Summary = %+v, want 2/3", sum)
	}
}

func TestEndToEnd_CorrectThenGiveUp(t *testing.T) {
	items := []catalog.Item{
		{Composer: "Bach", Title: "Air", MediaRef: "a", Group: "g"},
		{Composer: "Mozart", Title: "Requiem", MediaRef: "b", Group: "g"},
	}
	c := testController(t, items)

	if _, err := c.SubmitAnswer("Bach", "Air"); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GiveUp(); err != nil {
		t.Fatal(err)
	}
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	sum, err := c.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum != (Summary{Score: 1, Total: 2}) {
		t.Errorf("Summary = %+v, want {1 2}", sum)
	}
	if sum.Percent() != 50 {
		t.Errorf("Percent = %d, want 50", sum.Percent())
	}
}

func TestRestart(t *testing.T) {
	c := testController(t, testItems())
	_, _ = c.SubmitAnswer("Bach", "Air")

	c.Restart()
	if c.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %s, want not-started", c.Phase())
	}
	if c.Score() != 0 || c.Len() != 0 || c.LastVerdict() != nil || c.Judged() != nil || c.ID() != "" {
		t.Error("Restart left session fields behind")
	}

	// Restart is valid from Complete as well.
	c = testController(t, testItems()[:1])
	_, _ = c.GiveUp()
	_ = c.Advance()
	c.Restart()
	if c.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %s, want not-started", c.Phase())
	}

	other := []catalog.Item{{Composer: "Handel", Title: "Hallelujah", MediaRef: "h", Group: "g"}}
	if err := c.Start(other); err != nil {
		t.Fatal(err)
	}
	it, _ := c.CurrentItem()
	if it.Composer != "Handel" || c.Score() != 0 || c.LastVerdict() != nil {
		t.Errorf("new session has residue: item=%s score=%d", it, c.Score())
	}
}

func TestLastVerdict_ReturnsCopy(t *testing.T) {
	c := testController(t, testItems())
	_, _ = c.SubmitAnswer("Bach", "Air")

	v := c.LastVerdict()
	v.Correct = false
	if !c.LastVerdict().Correct {
		t.Error("mutating the returned verdict changed controller state")
	}
}

func TestProgress(t *testing.T) {
	c := testController(t, testItems())
	if cur, total := c.Progress(); cur != 1 || total != 3 {
		t.Errorf("Progress = %d/%d, want 1/3", cur, total)
	}
	_, _ = c.GiveUp()
	_ = c.Advance()
	if cur, total := c.Progress(); cur != 2 || total != 3 {
		t.Errorf("Progress = %d/%d, want 2/3", cur, total)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseNotStarted, "not-started"},
		{PhasePresenting, "presenting"},
		{PhaseReviewing, "reviewing"},
		{PhaseComplete, "complete"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestSummaryPercent(t *testing.T) {
	tests := []struct {
		sum  Summary
		want int
	}{
		{Summary{Score: 0, Total: 0}, 0},
		{Summary{Score: 0, Total: 4}, 0},
		{Summary{Score: 1, Total: 3}, 33},
		{Summary{Score: 2, Total: 3}, 67},
		{Summary{Score: 1, Total: 8}, 13},
		{Summary{Score: 5, Total: 5}, 100},
	}
	for _, tt := range tests {
		if got := tt.sum.Percent(); got != tt.want {
			t.Errorf("%+v.Percent() = %d, want %d", tt.sum, got, tt.want)
		}
	}
}
