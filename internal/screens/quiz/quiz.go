package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/media"
	"github.com/abhisek/opusquiz/internal/router"
	"github.com/abhisek/opusquiz/internal/screen"
	"github.com/abhisek/opusquiz/internal/screens/summary"
	"github.com/abhisek/opusquiz/internal/session"
	"github.com/abhisek/opusquiz/internal/ui/components"
	"github.com/abhisek/opusquiz/internal/ui/layout"
)

// playTimeout bounds how long launching the browser may take.
const playTimeout = 10 * time.Second

// Options are the quiz settings shared by every screen that starts a quiz.
type Options struct {
	Mode session.Mode

	// Player opens clips. Nil disables playback.
	Player media.Player

	// Shuffler orders multiple-choice options.
	Shuffler session.Shuffler

	// ChoiceCount is the number of options in choice mode.
	ChoiceCount int

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = session.ModeWrite
	}
	if o.Shuffler == nil {
		o.Shuffler = session.NewShuffler(uint64(time.Now().UnixNano()))
	}
	if o.ChoiceCount <= 0 {
		o.ChoiceCount = session.DefaultChoiceCount
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// QuizScreen presents one piece at a time and shows the verdict after
// each answer. The controller must already be started.
type QuizScreen struct {
	ctrl *session.Controller
	opts Options

	composer components.TextInput
	title    components.TextInput

	choices    []session.Choice
	choiceList components.ChoiceList

	clipStatus string
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving ctrl.
func New(ctrl *session.Controller, opts Options) *QuizScreen {
	s := &QuizScreen{
		ctrl:     ctrl,
		opts:     opts.withDefaults(),
		composer: components.NewTextInput("Composer", "e.g. Beethoven", 80),
		title:    components.NewTextInput("Title", "e.g. Symphony No. 5", 120),
	}
	s.present()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.opts.Mode == session.ModeWrite && s.answering() {
		return s.composer.Focus()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	cur, total := s.ctrl.Progress()
	return fmt.Sprintf("Piece %d / %d", cur, total)
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d", s.ctrl.Score())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.reviewing() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Previous"},
			{Key: "P", Description: "Play clip"},
			{Key: "Esc", Description: "Setup"},
		}
	}
	if s.opts.Mode == session.ModeChoice {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Ctrl+G", Description: "Give up"},
			{Key: "←", Description: "Previous"},
			{Key: "P", Description: "Play clip"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+G", Description: "Give up"},
		{Key: "Ctrl+P", Description: "Previous"},
		{Key: "Ctrl+O", Description: "Play clip"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clipPlayedMsg:
		if msg.Err != nil {
			s.opts.Logger.Warn("open clip failed", "media_ref", msg.Item.MediaRef, "error", msg.Err)
			s.clipStatus = "Could not open clip: " + msg.Err.Error()
		} else {
			s.clipStatus = "Opened clip in your browser."
		}
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case s.answering():
			return s.handlePresentingKey(msg)
		case s.reviewing():
			return s.handleReviewingKey(msg)
		}
		return s, nil
	}

	// Forward everything else (cursor blink) to the focused input.
	if s.opts.Mode == session.ModeWrite && s.answering() {
		return s, s.updateInputs(msg)
	}
	return s, nil
}

func (s *QuizScreen) handlePresentingKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+g":
		if _, err := s.ctrl.GiveUp(); err != nil {
			s.errMsg = err.Error()
		}
		s.blurInputs()
		return s, nil
	case "ctrl+p":
		return s, s.retreat()
	case "ctrl+o":
		return s, s.playClip()
	}

	if s.opts.Mode == session.ModeChoice {
		switch msg.String() {
		case "left":
			return s, s.retreat()
		case "p":
			return s, s.playClip()
		}
		var picked bool
		s.choiceList, picked = s.choiceList.Update(msg)
		if picked {
			c := s.choices[s.choiceList.Chosen()]
			s.submit(c.Composer, c.Title)
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		return s, s.switchFocus()
	case "enter":
		// Both fields are required before judging.
		if !s.composer.Filled() || !s.title.Filled() {
			if !s.composer.Filled() {
				s.title.Blur()
				return s, s.composer.Focus()
			}
			s.composer.Blur()
			return s, s.title.Focus()
		}
		s.submit(s.composer.Value(), s.title.Value())
		s.blurInputs()
		return s, nil
	}
	return s, s.updateInputs(msg)
}

func (s *QuizScreen) handleReviewingKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "ctrl+n", "right":
		if err := s.ctrl.Advance(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.ctrl.Phase() == session.PhaseComplete {
			sum, err := s.ctrl.Summary()
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			next := summary.New(s.ctrl, sum)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		s.present()
		return s, s.Init()
	case "ctrl+p", "left":
		return s, s.retreat()
	case "p", "ctrl+o":
		return s, s.playClip()
	}
	return s, nil
}

func (s *QuizScreen) submit(composer, title string) {
	v, err := s.ctrl.SubmitAnswer(composer, title)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	if s.opts.Mode == session.ModeChoice {
		for i, c := range s.choices {
			if c.Composer == v.Reference.Composer && c.Title == v.Reference.Title {
				s.choiceList.Reveal(i)
			}
		}
	}
}

func (s *QuizScreen) retreat() tea.Cmd {
	pos := s.ctrl.Position()
	if err := s.ctrl.Retreat(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if s.ctrl.Position() == pos {
		return nil
	}
	s.present()
	return s.Init()
}

// answering reports whether the current item still waits for an answer.
func (s *QuizScreen) answering() bool {
	return s.ctrl.Phase() == session.PhasePresenting && s.ctrl.Judged() == nil
}

// reviewing reports whether a verdict is on screen: right after judging,
// or on an item revisited with Retreat.
func (s *QuizScreen) reviewing() bool {
	switch s.ctrl.Phase() {
	case session.PhaseReviewing:
		return true
	case session.PhasePresenting:
		return s.ctrl.Judged() != nil
	}
	return false
}

// present resets per-item UI state for the controller's current item.
func (s *QuizScreen) present() {
	s.errMsg = ""
	s.clipStatus = ""
	s.composer.Reset()
	s.title.Reset()
	s.blurInputs()

	item, err := s.ctrl.CurrentItem()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	if s.opts.Mode == session.ModeChoice && s.ctrl.Judged() == nil {
		s.choices = session.BuildChoices(item, s.ctrl.Items(), s.opts.ChoiceCount, s.opts.Shuffler)
		labels := make([]string, len(s.choices))
		for i, c := range s.choices {
			labels[i] = c.String()
		}
		s.choiceList = components.NewChoiceList(labels)
	}
}

func (s *QuizScreen) switchFocus() tea.Cmd {
	if s.composer.Focused() {
		s.composer.Blur()
		return s.title.Focus()
	}
	s.title.Blur()
	return s.composer.Focus()
}

func (s *QuizScreen) blurInputs() {
	s.composer.Blur()
	s.title.Blur()
}

func (s *QuizScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var c1, c2 tea.Cmd
	s.composer, c1 = s.composer.Update(msg)
	s.title, c2 = s.title.Update(msg)
	return tea.Batch(c1, c2)
}

func (s *QuizScreen) playClip() tea.Cmd {
	item, err := s.ctrl.CurrentItem()
	if err != nil {
		return nil
	}
	player := s.opts.Player
	if player == nil {
		s.clipStatus = "Playback disabled. Watch at " + media.WatchURL(item)
		return nil
	}
	s.clipStatus = "Opening clip..."
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), playTimeout)
		defer cancel()
		err := player.Play(ctx, item)
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("browser did not start within %s", playTimeout)
		}
		return clipPlayedMsg{Item: item, Err: err}
	}
}

// current returns the item on screen, or the zero item.
func (s *QuizScreen) current() catalog.Item {
	item, _ := s.ctrl.CurrentItem()
	return item
}
