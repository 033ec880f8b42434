package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/router"
	"github.com/abhisek/opusquiz/internal/screen"
	"github.com/abhisek/opusquiz/internal/session"
	"github.com/abhisek/opusquiz/internal/ui/components"
	"github.com/abhisek/opusquiz/internal/ui/layout"
	"github.com/abhisek/opusquiz/internal/ui/theme"
)

// SummaryScreen shows the final score of a completed quiz.
type SummaryScreen struct {
	ctrl    *session.Controller
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. ctrl is restarted when the learner plays again.
func New(ctrl *session.Controller, sum session.Summary) *SummaryScreen {
	return &SummaryScreen{ctrl: ctrl, summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			s.ctrl.Restart()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title, "Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Subtitle, "Your Final Score:"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body.Bold(true),
		fmt.Sprintf("%d / %d", s.summary.Score, s.summary.Total)))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("(%d%%)", s.summary.Percent())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewButton("Play Again", true).View()))

	return b.String()
}
