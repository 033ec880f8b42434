package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/matcher"
	"github.com/abhisek/opusquiz/internal/media"
	"github.com/abhisek/opusquiz/internal/session"
	"github.com/abhisek/opusquiz/internal/ui/components"
	"github.com/abhisek/opusquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if !s.ctrl.Phase().Active() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No quiz in progress.")
	}

	inner := min(width-4, 72)
	var b strings.Builder

	cur, total := s.ctrl.Progress()
	b.WriteString(components.NewProgressBar(cur, total, inner).View())
	b.WriteString("\n\n")
	b.WriteString(s.renderClip())
	b.WriteString("\n\n")

	switch v := s.ctrl.Judged(); {
	case v != nil && s.ctrl.Phase() == session.PhaseReviewing:
		if s.opts.Mode == session.ModeChoice {
			b.WriteString(s.choiceList.View())
			b.WriteString("\n")
		}
		b.WriteString(renderFeedback(*v, inner))
	case v != nil:
		b.WriteString(theme.Hint.Render("Already answered. Press Enter to move on."))
		b.WriteString("\n\n")
		b.WriteString(renderFeedback(*v, inner))
	default:
		b.WriteString(s.renderPrompt(inner))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(b.String())
}

func (s *QuizScreen) renderClip() string {
	item := s.current()
	line := theme.Label.Render("Clip: ") + theme.Body.Render(media.WatchURL(item))
	if item.StartOffset > 0 {
		line += theme.Hint.Render(fmt.Sprintf("  (from %d:%02d)", item.StartOffset/60, item.StartOffset%60))
	}
	if s.clipStatus != "" {
		line += "\n" + theme.Hint.Render(s.clipStatus)
	}
	return line
}

func (s *QuizScreen) renderPrompt(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Who wrote this, and what is it?"))
	b.WriteString("\n\n")

	if s.opts.Mode == session.ModeChoice {
		b.WriteString(s.choiceList.View())
		return b.String()
	}

	b.WriteString(s.composer.Frame(width))
	b.WriteString("\n")
	b.WriteString(s.title.Frame(width))
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Submit Answer", s.composer.Filled() && s.title.Filled()).View())
	return b.String()
}

func renderFeedback(v matcher.Verdict, width int) string {
	var b strings.Builder

	if v.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not Quite!"))
	}
	b.WriteString("\n\n")

	if !v.GaveUp {
		b.WriteString(theme.Label.Render("Your Answer"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(v.Answer()))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Label.Render("Correct Answer"))
	b.WriteString("\n")
	b.WriteString(theme.Correct.Render(v.Reference.String()))
	b.WriteString("\n\n")

	if v.Reference.HasNote() {
		note := theme.Label.Foreground(theme.Accent).Render("Key Point to Remember") + "\n" +
			theme.Body.Render(v.Reference.Note)
		b.WriteString(theme.NoteCard.Width(width).Render(note))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Render(v.Message))
	return b.String()
}
