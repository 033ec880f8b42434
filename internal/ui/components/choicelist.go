package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/opusquiz/internal/ui/theme"
)

// ChoiceList is a numbered single-selection list. It does not know which
// option is correct; after Submit the caller reveals the answer with
// Reveal.
type ChoiceList struct {
	Options  []string
	Selected int

	submitted bool
	chosen    int
	correct   int
}

// NewChoiceList creates a choice list with the cursor on the first option.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		chosen:  -1,
		correct: -1,
	}
}

// Update handles navigation. Enter or a digit key picks an option; the
// returned bool reports that a pick happened and Chosen holds it.
func (m ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	if m.submitted {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			return m.pick(m.Selected), true
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				return m.pick(i), true
			}
		}
	}
	return m, false
}

func (m ChoiceList) pick(i int) ChoiceList {
	m.Selected = i
	m.chosen = i
	m.submitted = true
	return m
}

// Chosen returns the picked index, or -1.
func (m ChoiceList) Chosen() int {
	return m.chosen
}

// Reveal marks option i as the correct one for rendering.
func (m *ChoiceList) Reveal(i int) {
	m.correct = i
}

// View renders the options.
func (m ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.submitted && i == m.correct:
			line = theme.Correct.Render(line)
		case m.submitted && i == m.chosen:
			line = theme.Incorrect.Render(line)
		case m.submitted:
			line = theme.Hint.Render(line)
		case i == m.Selected:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
