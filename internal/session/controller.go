package session

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/matcher"
)

// state holds everything that belongs to one quiz attempt. Restart
// replaces it wholesale.
type state struct {
	id          string
	items       []catalog.Item
	position    int
	score       int
	lastVerdict *matcher.Verdict
	// judged holds the verdict recorded for each position, nil until the
	// item is answered or given up.
	judged []*matcher.Verdict
	phase  Phase
}

// Controller sequences the items of a quiz, judges answers and keeps the
// score. It is driven by one caller at a time and does no locking.
type Controller struct {
	shuffler Shuffler
	logger   *slog.Logger
	st       state
}

// Option configures a Controller.
type Option func(*Controller)

// WithShuffler sets the randomness source used to order items on Start.
func WithShuffler(s Shuffler) Option {
	return func(c *Controller) {
		c.shuffler = s
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a Controller in PhaseNotStarted.
func New(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	if c.shuffler == nil {
		c.shuffler = newTimeShuffler()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Start begins a new session over a random permutation of items,
// discarding any previous session.
func (c *Controller) Start(items []catalog.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: start needs at least one item", ErrInvalidInput)
	}

	shuffled := slices.Clone(items)
	c.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	c.st = state{
		id:     uuid.New().String(),
		items:  shuffled,
		judged: make([]*matcher.Verdict, len(shuffled)),
		phase:  PhasePresenting,
	}
	c.logger.Debug("session started", "session_id", c.st.id, "items", len(shuffled))
	return nil
}

// SubmitAnswer judges a guess against the current item and moves to
// PhaseReviewing. A correct guess adds exactly one point. An item revisited
// with Retreat keeps its first verdict and cannot be judged again.
func (c *Controller) SubmitAnswer(composer, title string) (matcher.Verdict, error) {
	if c.st.phase != PhasePresenting {
		return matcher.Verdict{}, c.reject("submit answer")
	}
	if c.st.judged[c.st.position] != nil {
		return matcher.Verdict{}, c.rejectJudged("submit answer")
	}

	v := matcher.Judge(composer, title, c.st.items[c.st.position])
	if v.Correct {
		c.st.score++
	}
	c.record(v)

	c.logger.Debug("answer judged",
		"session_id", c.st.id,
		"position", c.st.position,
		"correct", v.Correct,
		"composer_distance", v.ComposerDistance,
		"title_distance", v.TitleDistance,
	)
	return v, nil
}

// GiveUp reveals the current item without scoring and moves to
// PhaseReviewing.
func (c *Controller) GiveUp() (matcher.Verdict, error) {
	if c.st.phase != PhasePresenting {
		return matcher.Verdict{}, c.reject("give up")
	}
	if c.st.judged[c.st.position] != nil {
		return matcher.Verdict{}, c.rejectJudged("give up")
	}

	v := matcher.GiveUp(c.st.items[c.st.position])
	c.record(v)

	c.logger.Debug("gave up", "session_id", c.st.id, "position", c.st.position)
	return v, nil
}

// Advance moves past a judged item. It is valid while reviewing, and while
// presenting an item that was judged before a Retreat. After the last item
// the session is Complete; otherwise the next item is presented.
func (c *Controller) Advance() error {
	switch {
	case c.st.phase == PhaseReviewing:
	case c.st.phase == PhasePresenting && c.st.judged[c.st.position] != nil:
	default:
		return c.reject("advance")
	}

	c.st.lastVerdict = nil
	if c.st.position == len(c.st.items)-1 {
		c.st.phase = PhaseComplete
		c.logger.Debug("session complete",
			"session_id", c.st.id,
			"score", c.st.score,
			"total", len(c.st.items),
		)
		return nil
	}

	c.st.position++
	c.st.phase = PhasePresenting
	return nil
}

// Retreat goes back one item without touching the score. The earlier item
// is presented again but keeps its recorded verdict. At the first item it
// does nothing.
func (c *Controller) Retreat() error {
	if !c.st.phase.Active() {
		return c.reject("retreat")
	}
	if c.st.position == 0 {
		return nil
	}

	c.st.lastVerdict = nil
	c.st.position--
	c.st.phase = PhasePresenting
	return nil
}

// Restart discards the session and returns to PhaseNotStarted.
func (c *Controller) Restart() {
	if c.st.phase != PhaseNotStarted {
		c.logger.Debug("session restarted", "session_id", c.st.id, "phase", c.st.phase.String())
	}
	c.st = state{}
}

// CurrentItem returns the item at the current position.
func (c *Controller) CurrentItem() (catalog.Item, error) {
	if !c.st.phase.Active() {
		return catalog.Item{}, c.reject("current item")
	}
	return c.st.items[c.st.position], nil
}

// Summary returns the final score. Only valid once the session is Complete.
func (c *Controller) Summary() (Summary, error) {
	if c.st.phase != PhaseComplete {
		return Summary{}, c.reject("summary")
	}
	return Summary{Score: c.st.score, Total: len(c.st.items)}, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.st.phase }

// Position returns the zero-based index of the current item.
func (c *Controller) Position() int { return c.st.position }

// Len returns the number of items in the session.
func (c *Controller) Len() int { return len(c.st.items) }

// Score returns the number of correct answers so far.
func (c *Controller) Score() int { return c.st.score }

// ID returns the session identifier, or "" before Start.
func (c *Controller) ID() string { return c.st.id }

// LastVerdict returns the verdict for the current item, or nil when the
// item has not been judged since it was presented.
func (c *Controller) LastVerdict() *matcher.Verdict {
	if c.st.lastVerdict == nil {
		return nil
	}
	v := *c.st.lastVerdict
	return &v
}

// Judged returns the verdict recorded for the current item, or nil when it
// has not been answered or given up yet. Unlike LastVerdict it survives a
// Retreat.
func (c *Controller) Judged() *matcher.Verdict {
	if !c.st.phase.Active() || c.st.judged[c.st.position] == nil {
		return nil
	}
	v := *c.st.judged[c.st.position]
	return &v
}

// Progress returns the one-based number of the current item and the total.
func (c *Controller) Progress() (current, total int) {
	if len(c.st.items) == 0 {
		return 0, 0
	}
	return c.st.position + 1, len(c.st.items)
}

// Items returns the session items in presentation order.
func (c *Controller) Items() []catalog.Item {
	return slices.Clone(c.st.items)
}

func (c *Controller) record(v matcher.Verdict) {
	c.st.lastVerdict = &v
	c.st.judged[c.st.position] = &v
	c.st.phase = PhaseReviewing
}

func (c *Controller) rejectJudged(op string) error {
	c.logger.Warn("operation rejected", "op", op, "position", c.st.position, "session_id", c.st.id)
	return fmt.Errorf("%w: %s at position %d", ErrAlreadyJudged, op, c.st.position)
}

func (c *Controller) reject(op string) error {
	c.logger.Warn("operation rejected", "op", op, "phase", c.st.phase.String(), "session_id", c.st.id)
	return &PhaseError{Op: op, Phase: c.st.phase}
}
