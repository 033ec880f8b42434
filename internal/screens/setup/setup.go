package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/router"
	"github.com/abhisek/opusquiz/internal/screen"
	"github.com/abhisek/opusquiz/internal/screens/quiz"
	"github.com/abhisek/opusquiz/internal/session"
	"github.com/abhisek/opusquiz/internal/ui/components"
	"github.com/abhisek/opusquiz/internal/ui/layout"
	"github.com/abhisek/opusquiz/internal/ui/theme"
)

// SetupScreen lets the learner pick which groups to study and the answer
// mode, then starts the quiz.
type SetupScreen struct {
	cat  *catalog.Catalog
	ctrl *session.Controller
	opts quiz.Options

	groups components.Checklist
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with every group selected.
func New(cat *catalog.Catalog, ctrl *session.Controller, opts quiz.Options) *SetupScreen {
	return &SetupScreen{
		cat:    cat,
		ctrl:   ctrl,
		opts:   opts,
		groups: components.NewChecklist(cat.Groups()),
	}
}

// Init abandons any quiz still running, so returning here always starts
// fresh.
func (s *SetupScreen) Init() tea.Cmd {
	if s.ctrl.Phase() != session.PhaseNotStarted {
		s.ctrl.Restart()
	}
	s.errMsg = ""
	return nil
}

func (s *SetupScreen) Title() string {
	return "Select Weeks to Study"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A/N", Description: "All/None"},
		{Key: "M", Description: "Mode"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "m":
		if s.opts.Mode == session.ModeChoice {
			s.opts.Mode = session.ModeWrite
		} else {
			s.opts.Mode = session.ModeChoice
		}
		return s, nil
	case "enter":
		return s, s.start()
	}

	s.groups = s.groups.Update(kmsg)
	s.errMsg = ""
	return s, nil
}

func (s *SetupScreen) start() tea.Cmd {
	selected := s.groups.Checked()
	if len(selected) == 0 {
		s.errMsg = "Select at least one week to start."
		return nil
	}
	items, err := s.cat.Select(selected...)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if err := s.ctrl.Start(items); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	next := quiz.New(s.ctrl, s.opts)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// Mode returns the currently selected answer mode.
func (s *SetupScreen) Mode() session.Mode {
	return s.opts.Mode
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Select Weeks to Study"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Choose the weeks you want to be quizzed on."))
	b.WriteString("\n\n")

	block := s.groups.View() + "\n" + s.renderMode() + "\n\n" + s.renderStart()
	if s.errMsg != "" {
		block += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	return b.String()
}

func (s *SetupScreen) renderMode() string {
	write, choice := theme.Hint, theme.Hint
	if s.opts.Mode == session.ModeChoice {
		choice = theme.Selected
	} else {
		write = theme.Selected
	}
	return theme.Label.Render("Mode: ") +
		write.Render("Write answers") + theme.Hint.Render("  /  ") + choice.Render("Multiple choice")
}

func (s *SetupScreen) renderStart() string {
	n := len(s.groups.Checked())
	unit := "Weeks"
	if n == 1 {
		unit = "Week"
	}
	return components.NewButton(fmt.Sprintf("Start Quiz (%d %s)", n, unit), n > 0).View()
}
